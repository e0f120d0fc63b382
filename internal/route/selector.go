package route

import (
	"fmt"
	"sync"

	"climb-routes/internal/logging"
	"climb-routes/pkg/geometry"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/sampleuv"
)

// Selector picks a route for a grade. Grades 1-3 and 10-14 always get the
// static Warwick route; grades 4-9 get a uniformly random route from the
// cache. A Selector is safe for concurrent use.
type Selector struct {
	cache Cache

	mu  sync.Mutex
	src rand.Source // nil means the package-level source
}

// NewSelector returns a Selector over cache, which may be nil when only
// static grades will be requested. A nil src uses the shared x/exp/rand
// source.
func NewSelector(cache Cache, src rand.Source) *Selector {
	return &Selector{cache: cache, src: src}
}

// Select returns a route for grade. The result is a copy and may be modified.
func (s *Selector) Select(grade int) (geometry.Route, error) {
	if err := CheckGrade(grade); err != nil {
		return nil, err
	}

	log := logging.Logger()
	if IsStatic(grade) {
		log.Info("static route selected", "grade", grade)
		return StaticRoute(), nil
	}

	if s.cache == nil {
		return nil, fmt.Errorf("%w: grade %d needs a route cache", ErrNoRoutesForGrade, grade)
	}
	routes := s.cache.Routes(grade)
	if len(routes) == 0 {
		return nil, fmt.Errorf("%w: %d", ErrNoRoutesForGrade, grade)
	}

	i := s.pick(len(routes))
	log.Info("cached route selected", "grade", grade, "index", i, "of", len(routes), "holds", len(routes[i]))
	return routes[i].Clone(), nil
}

// pick returns a uniform index in [0, n).
func (s *Selector) pick(n int) int {
	idx := make([]int, 1)
	if s.src == nil {
		sampleuv.WithoutReplacement(idx, n, nil)
		return idx[0]
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	sampleuv.WithoutReplacement(idx, n, s.src)
	return idx[0]
}

// Select is shorthand for NewSelector(cache, src).Select(grade).
func Select(grade int, cache Cache, src rand.Source) (geometry.Route, error) {
	return NewSelector(cache, src).Select(grade)
}
