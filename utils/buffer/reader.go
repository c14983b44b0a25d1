package buffer

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
)

// Read reads len(c) bytes from r into c.
func Read(r Reader, c []byte) (n int, err error) {
	return io.ReadFull(r, c)
}

// ReadUint64 reads a uint64 from r into c.
func ReadUint64(r Reader, c *uint64) (n int, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadUint64: c is nil")
	}

	var bb [8]byte

	if n, err = io.ReadFull(r, bb[:]); err != nil {
		return
	}

	*c = binary.LittleEndian.Uint64(bb[:])

	return n, nil
}

// ReadFloat64 reads a float64 from r into c.
func ReadFloat64(r Reader, c *float64) (n int, err error) {

	if c == nil {
		return 0, fmt.Errorf("cannot ReadFloat64: c is nil")
	}

	var bits uint64

	if n, err = ReadUint64(r, &bits); err != nil {
		return
	}

	*c = math.Float64frombits(bits)

	return n, nil
}

// ReadFloat64Slice reads a slice of float64 from r into c.
func ReadFloat64Slice(r Reader, c []float64) (n int, err error) {

	var inc int
	for i := range c {
		if inc, err = ReadFloat64(r, &c[i]); err != nil {
			return n + inc, err
		}

		n += inc
	}

	return
}
