package piecewise

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/linefold/interp/utils/buffer"
)

// MarshalJSON returns the canonical JSON form of p: an array of [x, y]
// pairs in ascending-x order with every number rendered with an
// explicit decimal part, so 0 renders as 0.0. Infinite components are
// not representable in JSON and make MarshalJSON fail.
func (p Piecewise) MarshalJSON() ([]byte, error) {
	var sb strings.Builder
	sb.WriteByte('[')

	for i, c := range p.points {
		if i > 0 {
			sb.WriteByte(',')
		}

		x, err := formatFloat(c.x)
		if err != nil {
			return nil, fmt.Errorf("cannot MarshalJSON: point %d: %w", i, err)
		}

		y, err := formatFloat(c.y)
		if err != nil {
			return nil, fmt.Errorf("cannot MarshalJSON: point %d: %w", i, err)
		}

		sb.WriteByte('[')
		sb.WriteString(x)
		sb.WriteByte(',')
		sb.WriteString(y)
		sb.WriteByte(']')
	}

	sb.WriteByte(']')

	return []byte(sb.String()), nil
}

// formatFloat renders v with an explicit decimal part so that integral
// values round-trip as floats.
func formatFloat(v float64) (string, error) {
	if math.IsInf(v, 0) {
		return "", fmt.Errorf("%v is not representable in JSON", v)
	}

	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}

	return s, nil
}

// UnmarshalJSON decodes an array of two-element numeric arrays on p.
// The pairs may mix integer and float literals and may be in any order:
// decoding re-runs the full construction validation and fails with the
// corresponding construction error on empty, NaN-containing or
// non-function input.
func (p *Piecewise) UnmarshalJSON(data []byte) error {
	var raw [][]float64
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("cannot UnmarshalJSON: %w", err)
	}

	points := make([]Coord, len(raw))

	var err error
	for i, pair := range raw {
		if len(pair) != 2 {
			return fmt.Errorf("cannot UnmarshalJSON: element %d has %d components instead of 2", i, len(pair))
		}

		if points[i], err = NewCoord(pair[0], pair[1]); err != nil {
			return fmt.Errorf("cannot UnmarshalJSON: element %d: %w", i, err)
		}
	}

	fn, err := New(points)
	if err != nil {
		return fmt.Errorf("cannot UnmarshalJSON: %w", err)
	}

	*p = fn

	return nil
}

// BinarySize returns the serialized size of the object in bytes: an
// 8-byte point count followed by two float64 per point.
func (p Piecewise) BinarySize() int {
	return 8 + 16*len(p.points)
}

// WriteTo writes the object on an io.Writer. It implements the
// io.WriterTo interface and writes exactly BinarySize() bytes on w.
//
// Unless w implements the buffer.Writer interface (see
// utils/buffer/buffer.go), it will be wrapped into a bufio.Writer.
// Since this requires allocations, it is preferable to pass a
// buffer.Writer directly.
func (p Piecewise) WriteTo(w io.Writer) (n int64, err error) {
	switch w := w.(type) {
	case buffer.Writer:

		var inc int64
		if inc, err = buffer.WriteUint64(w, uint64(len(p.points))); err != nil {
			return n + inc, fmt.Errorf("buffer.WriteUint64: %w", err)
		}

		n += inc

		for i := range p.points {
			if inc, err = buffer.WriteFloat64(w, p.points[i].x); err != nil {
				return n + inc, fmt.Errorf("buffer.WriteFloat64: %w", err)
			}

			n += inc

			if inc, err = buffer.WriteFloat64(w, p.points[i].y); err != nil {
				return n + inc, fmt.Errorf("buffer.WriteFloat64: %w", err)
			}

			n += inc
		}

		return n, w.Flush()

	default:
		return p.WriteTo(bufio.NewWriter(w))
	}
}

// ReadFrom reads on the object from an io.Reader. It implements the
// io.ReaderFrom interface. The decoded points go through the full
// construction validation, so a stream carrying NaN components or a
// non-function point set fails with the corresponding construction
// error.
//
// Unless r implements the buffer.Reader interface (see
// utils/buffer/buffer.go), it will be wrapped into a bufio.Reader.
// Since this requires allocations, it is preferable to pass a
// buffer.Reader directly.
func (p *Piecewise) ReadFrom(r io.Reader) (n int64, err error) {
	switch r := r.(type) {
	case buffer.Reader:

		var inc int

		var size uint64
		if inc, err = buffer.ReadUint64(r, &size); err != nil {
			return n + int64(inc), fmt.Errorf("buffer.ReadUint64: %w", err)
		}

		n += int64(inc)

		points := make([]Coord, size)

		for i := range points {
			var x, y float64

			if inc, err = buffer.ReadFloat64(r, &x); err != nil {
				return n + int64(inc), fmt.Errorf("buffer.ReadFloat64: %w", err)
			}

			n += int64(inc)

			if inc, err = buffer.ReadFloat64(r, &y); err != nil {
				return n + int64(inc), fmt.Errorf("buffer.ReadFloat64: %w", err)
			}

			n += int64(inc)

			if points[i], err = NewCoord(x, y); err != nil {
				return n, fmt.Errorf("cannot ReadFrom: point %d: %w", i, err)
			}
		}

		fn, err := New(points)
		if err != nil {
			return n, fmt.Errorf("cannot ReadFrom: %w", err)
		}

		*p = fn

		return n, nil

	default:
		return p.ReadFrom(bufio.NewReader(r))
	}
}

// MarshalBinary encodes the object into a byte slice.
func (p Piecewise) MarshalBinary() (data []byte, err error) {
	buf := buffer.NewBufferSize(p.BinarySize())
	if _, err = p.WriteTo(buf); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// UnmarshalBinary decodes a slice of bytes generated by MarshalBinary
// on the object.
func (p *Piecewise) UnmarshalBinary(data []byte) error {
	_, err := p.ReadFrom(buffer.NewBuffer(data))
	return err
}
