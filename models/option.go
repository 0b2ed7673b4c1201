package models

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidOptionType    = errors.New("option type must be 'call' or 'put'")
	ErrInvalidExerciseStyle = errors.New("exercise style must be 'european' or 'american'")
)

// OptionType tags a contract as a call or a put.
type OptionType int

const (
	Call OptionType = iota
	Put
)

// ParseOptionType maps a case-insensitive name to an OptionType.
func ParseOptionType(s string) (OptionType, error) {
	switch strings.ToLower(s) {
	case "call":
		return Call, nil
	case "put":
		return Put, nil
	}
	return 0, fmt.Errorf("%w, got %q", ErrInvalidOptionType, s)
}

func (t OptionType) String() string {
	switch t {
	case Call:
		return "call"
	case Put:
		return "put"
	}
	return fmt.Sprintf("OptionType(%d)", int(t))
}

// ExerciseStyle distinguishes European from American exercise. The
// closed-form pricer and the Greeks are defined for European exercise only;
// the binomial lattice supports both.
type ExerciseStyle int

const (
	European ExerciseStyle = iota
	American
)

// ParseExerciseStyle maps a case-insensitive name to an ExerciseStyle.
func ParseExerciseStyle(s string) (ExerciseStyle, error) {
	switch strings.ToLower(s) {
	case "european":
		return European, nil
	case "american":
		return American, nil
	}
	return 0, fmt.Errorf("%w, got %q", ErrInvalidExerciseStyle, s)
}

func (s ExerciseStyle) String() string {
	switch s {
	case European:
		return "european"
	case American:
		return "american"
	}
	return fmt.Sprintf("ExerciseStyle(%d)", int(s))
}
