package route

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strconv"

	"climb-routes/internal/logging"
	"climb-routes/pkg/geometry"
)

// CacheFilename is the name of the pre-generated Warwick route cache.
const CacheFilename = "warwick-routes-cached-v4-9.json"

// Cache maps grade keys ("4".."9") to generated routes. It is read-only
// after LoadCache and safe to share between goroutines.
type Cache map[string][]geometry.Route

// LoadCache reads a route cache file. The whole file must parse; there is
// no partial load.
func LoadCache(path string) (Cache, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrCacheNotFound, path)
		}
		return nil, fmt.Errorf("failed to read route cache: %w", err)
	}

	c, err := ParseCache(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}

	logging.Logger().Info("route cache loaded", "path", path, "grades", len(c), "routes", c.Len())
	return c, nil
}

// ParseCache decodes cache JSON. The top level must be an object whose
// values are arrays of routes.
func ParseCache(data []byte) (Cache, error) {
	var c Cache
	if err := json.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCacheParse, err)
	}
	if c == nil {
		return nil, fmt.Errorf("%w: top level is null", ErrCacheParse)
	}
	if len(c) == 0 {
		return nil, ErrEmptyCache
	}
	return c, nil
}

// Routes returns the cached routes for grade g. The slice must not be modified.
func (c Cache) Routes(g int) []geometry.Route {
	return c[GradeKey(g)]
}

// Len returns the total number of cached routes.
func (c Cache) Len() int {
	n := 0
	for _, routes := range c {
		n += len(routes)
	}
	return n
}

// GradeCount is the number of cached routes for one key.
type GradeCount struct {
	Key    string
	Routes int
}

// Stats lists route counts per key, numeric keys first in ascending order.
func (c Cache) Stats() []GradeCount {
	out := make([]GradeCount, 0, len(c))
	for k, routes := range c {
		out = append(out, GradeCount{Key: k, Routes: len(routes)})
	}
	sort.Slice(out, func(i, j int) bool {
		a, aErr := strconv.Atoi(out[i].Key)
		b, bErr := strconv.Atoi(out[j].Key)
		switch {
		case aErr == nil && bErr == nil:
			return a < b
		case aErr == nil:
			return true
		case bErr == nil:
			return false
		}
		return out[i].Key < out[j].Key
	})
	return out
}
