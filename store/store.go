// Package store persists named piecewise-linear functions as YAML
// files under a root directory, with a TTL cache in front of reads.
// The interpolation kernel itself has no I/O surface; this package is a
// hosting-side helper.
package store

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"github.com/spf13/cast"
	"gopkg.in/yaml.v3"

	"github.com/linefold/interp/piecewise"
)

const (
	defaultExpiration = 5 * time.Minute
	cleanupInterval   = 10 * time.Minute
)

// Store reads and writes named curves under a root directory. A curve
// is stored as a YAML sequence of [x, y] pairs. Loading re-runs the
// full construction validation, so a file edited by hand is checked the
// same way as programmatic input.
type Store struct {
	root  string
	cache *gocache.Cache
}

// NewStore returns a Store rooted at root. The directory is created on
// the first Save.
func NewStore(root string) *Store {
	return &Store{
		root:  root,
		cache: gocache.New(defaultExpiration, cleanupInterval),
	}
}

func (s *Store) fileName(name string) string {
	return filepath.Join(s.root, name+".yaml")
}

// Save writes fn under name and refreshes the cache entry. Points are
// written in canonical ascending-x order.
func (s *Store) Save(name string, fn piecewise.Piecewise) error {
	pairs := make([][2]float64, 0, fn.Len())
	for _, c := range fn.Points() {
		pairs = append(pairs, [2]float64{c.X(), c.Y()})
	}

	data, err := yaml.Marshal(pairs)
	if err != nil {
		return fmt.Errorf("cannot Save %q: %w", name, err)
	}

	if err = os.MkdirAll(s.root, 0o700); err != nil {
		return fmt.Errorf("cannot Save %q: %w", name, err)
	}

	if err = os.WriteFile(s.fileName(name), data, 0o600); err != nil {
		return fmt.Errorf("cannot Save %q: %w", name, err)
	}

	s.cache.Set(name, fn, gocache.DefaultExpiration)

	return nil
}

// Load returns the curve stored under name, served from the cache when
// a fresh entry exists. The YAML pairs may mix integer and float
// scalars and may be in any order.
func (s *Store) Load(name string) (piecewise.Piecewise, error) {
	if v, ok := s.cache.Get(name); ok {
		return v.(piecewise.Piecewise), nil
	}

	data, err := os.ReadFile(s.fileName(name))
	if err != nil {
		return piecewise.Piecewise{}, fmt.Errorf("cannot Load %q: %w", name, err)
	}

	var raw [][]any
	if err = yaml.Unmarshal(data, &raw); err != nil {
		return piecewise.Piecewise{}, fmt.Errorf("cannot Load %q: %w", name, err)
	}

	points := make([]piecewise.Coord, len(raw))
	for i, pair := range raw {
		if len(pair) != 2 {
			return piecewise.Piecewise{}, fmt.Errorf("cannot Load %q: element %d has %d components instead of 2", name, i, len(pair))
		}

		x, err := cast.ToFloat64E(pair[0])
		if err != nil {
			return piecewise.Piecewise{}, fmt.Errorf("cannot Load %q: element %d: %w", name, i, err)
		}

		y, err := cast.ToFloat64E(pair[1])
		if err != nil {
			return piecewise.Piecewise{}, fmt.Errorf("cannot Load %q: element %d: %w", name, i, err)
		}

		if points[i], err = piecewise.NewCoord(x, y); err != nil {
			return piecewise.Piecewise{}, fmt.Errorf("cannot Load %q: element %d: %w", name, i, err)
		}
	}

	fn, err := piecewise.New(points)
	if err != nil {
		return piecewise.Piecewise{}, fmt.Errorf("cannot Load %q: %w", name, err)
	}

	s.cache.Set(name, fn, gocache.DefaultExpiration)

	return fn, nil
}

// Invalidate drops the cache entry for name, forcing the next Load to
// hit the filesystem.
func (s *Store) Invalidate(name string) {
	s.cache.Delete(name)
}
