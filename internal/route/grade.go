package route

import (
	"fmt"
	"strconv"
)

// Grade bounds (V-scale).
const (
	MinGrade = 1
	MaxGrade = 14
)

// Grades at or below StaticMaxGrade, or at or above StaticMinHardGrade, use
// the static Warwick route; everything in between is drawn from the cache.
const (
	StaticMaxGrade     = 3
	StaticMinHardGrade = 10
)

// ParseGrade parses a grade argument. Only ASCII decimal digits are
// accepted; signs, spaces, decimals and other Unicode numerals are
// ErrGradeNotNumeric. Leading zeros are allowed.
func ParseGrade(s string) (int, error) {
	if s == "" {
		return 0, fmt.Errorf("%w: empty", ErrGradeNotNumeric)
	}
	for _, c := range s {
		if c < '0' || c > '9' {
			return 0, fmt.Errorf("%w: %q", ErrGradeNotNumeric, s)
		}
	}
	g, err := strconv.Atoi(s)
	if err != nil {
		// Only overflow can get here.
		return 0, fmt.Errorf("%w: %q", ErrGradeOutOfRange, s)
	}
	if err := CheckGrade(g); err != nil {
		return 0, err
	}
	return g, nil
}

// CheckGrade returns ErrGradeOutOfRange unless MinGrade <= g <= MaxGrade.
func CheckGrade(g int) error {
	if g < MinGrade || g > MaxGrade {
		return fmt.Errorf("%w: %d not in [%d,%d]", ErrGradeOutOfRange, g, MinGrade, MaxGrade)
	}
	return nil
}

// IsStatic reports whether grade g is served by the static route.
func IsStatic(g int) bool {
	return g <= StaticMaxGrade || g >= StaticMinHardGrade
}

// GradeKey is the cache key for grade g.
func GradeKey(g int) string {
	return strconv.Itoa(g)
}
