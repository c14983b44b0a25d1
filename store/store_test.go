package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/linefold/interp/piecewise"
)

func testCurve(t *testing.T) piecewise.Piecewise {
	t.Helper()

	fn, err := piecewise.FromPairs([][2]float64{{0, 18}, {90, 36}, {100, 42}})
	require.NoError(t, err)

	return fn
}

func TestStore(t *testing.T) {

	t.Run("SaveLoad", func(t *testing.T) {
		s := NewStore(t.TempDir())

		fn := testCurve(t)
		require.NoError(t, s.Save("sidearm", fn))

		have, err := s.Load("sidearm")
		require.NoError(t, err)
		require.Equal(t, fn.Points(), have.Points())
	})

	t.Run("CachedRead", func(t *testing.T) {
		root := t.TempDir()
		s := NewStore(root)

		fn := testCurve(t)
		require.NoError(t, s.Save("cached", fn))

		// A cached entry survives the file being removed.
		require.NoError(t, os.Remove(filepath.Join(root, "cached.yaml")))

		have, err := s.Load("cached")
		require.NoError(t, err)
		require.Equal(t, fn.Points(), have.Points())

		s.Invalidate("cached")

		_, err = s.Load("cached")
		require.Error(t, err)
	})

	t.Run("HandWrittenInts", func(t *testing.T) {
		root := t.TempDir()
		s := NewStore(root)

		// Integer scalars and unsorted pairs go through the same
		// construction validation as programmatic input.
		data := []byte("- [100, 42]\n- [0, 18]\n- [90, 36]\n")
		require.NoError(t, os.WriteFile(filepath.Join(root, "hand.yaml"), data, 0o600))

		fn, err := s.Load("hand")
		require.NoError(t, err)
		require.Equal(t, testCurve(t).Points(), fn.Points())
	})

	t.Run("UndefinedInput", func(t *testing.T) {
		root := t.TempDir()
		s := NewStore(root)

		data := []byte("- [1, 2]\n- [1, 3]\n")
		require.NoError(t, os.WriteFile(filepath.Join(root, "bad.yaml"), data, 0o600))

		_, err := s.Load("bad")
		require.ErrorIs(t, err, piecewise.ErrUndefined)
	})

	t.Run("EmptyInput", func(t *testing.T) {
		root := t.TempDir()
		s := NewStore(root)

		require.NoError(t, os.WriteFile(filepath.Join(root, "empty.yaml"), []byte("[]\n"), 0o600))

		_, err := s.Load("empty")
		require.ErrorIs(t, err, piecewise.ErrEmpty)
	})

	t.Run("NonNumericInput", func(t *testing.T) {
		root := t.TempDir()
		s := NewStore(root)

		data := []byte("- [a, 2]\n")
		require.NoError(t, os.WriteFile(filepath.Join(root, "nan.yaml"), data, 0o600))

		_, err := s.Load("nan")
		require.Error(t, err)
	})

	t.Run("MissingFile", func(t *testing.T) {
		s := NewStore(t.TempDir())

		_, err := s.Load("absent")
		require.Error(t, err)
	})
}
