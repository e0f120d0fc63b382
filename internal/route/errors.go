package route

import "errors"

var (
	ErrCacheNotFound    = errors.New("route cache not found")
	ErrCacheParse       = errors.New("route cache malformed")
	ErrEmptyCache       = errors.New("route cache is empty")
	ErrNoRoutesForGrade = errors.New("no routes for grade")
	ErrGradeOutOfRange  = errors.New("grade out of range")
	ErrGradeNotNumeric  = errors.New("grade is not numeric")
)

// ErrInvalidRouteID is returned for route ids that are not non-negative integers.
var ErrInvalidRouteID = errors.New("invalid route id")
