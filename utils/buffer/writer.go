package buffer

import (
	"encoding/binary"
	"fmt"
	"math"
)

// Write writes a slice of bytes to w.
func Write(w Writer, c []byte) (n int64, err error) {
	nint, err := w.Write(c)
	return int64(nint), err
}

// WriteUint64 writes a uint64 c to w.
func WriteUint64(w Writer, c uint64) (n int64, err error) {

	if w.Available()>>3 == 0 {
		if err = w.Flush(); err != nil {
			return
		}

		if w.Available()>>3 == 0 {
			return 0, fmt.Errorf("cannot WriteUint64: available buffer/8 is zero even after flush")
		}
	}

	buf := w.AvailableBuffer()[:8]

	binary.LittleEndian.PutUint64(buf, c)

	nint, err := w.Write(buf)

	return int64(nint), err
}

// WriteFloat64 writes a float64 c to w, as the little-endian encoding
// of its IEEE-754 bit pattern.
func WriteFloat64(w Writer, c float64) (n int64, err error) {
	return WriteUint64(w, math.Float64bits(c))
}

// WriteFloat64Slice writes a slice of float64 c to w.
func WriteFloat64Slice(w Writer, c []float64) (n int64, err error) {

	var inc int64
	for i := range c {
		if inc, err = WriteFloat64(w, c[i]); err != nil {
			return n + inc, err
		}

		n += inc
	}

	return
}
