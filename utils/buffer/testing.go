package buffer

import (
	"bytes"
	"encoding"
	"io"
	"reflect"
	"testing"

	"github.com/stretchr/testify/require"
)

// Serializer is the standard serialization interface implemented by the
// serializable types of this module.
type Serializer interface {
	io.WriterTo
	io.ReaderFrom
	encoding.BinaryMarshaler
	encoding.BinaryUnmarshaler
	BinarySize() int
}

// RequireSerializerCorrect checks that the binary encoding of v is
// self-consistent: the encodings produced by WriteTo and MarshalBinary
// are identical and BinarySize() bytes long, and decoding them through
// ReadFrom and UnmarshalBinary into a fresh value re-encodes to the
// same bytes. v must be a non-nil pointer.
func RequireSerializerCorrect(t *testing.T, v Serializer) {
	t.Helper()

	data, err := v.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, v.BinarySize(), len(data))

	w := new(bytes.Buffer)
	n, err := v.WriteTo(w)
	require.NoError(t, err)
	require.Equal(t, int64(len(data)), n)
	require.Equal(t, data, w.Bytes())

	u := reflect.New(reflect.TypeOf(v).Elem()).Interface().(Serializer)
	require.NoError(t, u.UnmarshalBinary(data))

	redata, err := u.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, data, redata)

	u = reflect.New(reflect.TypeOf(v).Elem()).Interface().(Serializer)
	n, err = u.ReadFrom(bytes.NewReader(data))
	require.NoError(t, err)
	require.Equal(t, int64(len(data)), n)

	redata, err = u.MarshalBinary()
	require.NoError(t, err)
	require.Equal(t, data, redata)
}
