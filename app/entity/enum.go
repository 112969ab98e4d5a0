package entity

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownEnumValue = errors.New("unknown enum value")

// ResolveEnum returns the variant equal to raw. Matching is exact and case-sensitive.
func ResolveEnum[E ~string](variants []E, raw string) (E, error) {
	for _, v := range variants {
		if string(v) == raw {
			return v, nil
		}
	}

	names := make([]string, 0, len(variants))
	for _, v := range variants {
		names = append(names, string(v))
	}
	var zero E
	return zero, fmt.Errorf("%w: %q (expected one of %s)", ErrUnknownEnumValue, raw, strings.Join(names, ", "))
}
