package core

import "fmt"

// EnumName returns the name of an enumerated value, or "Unknown".
func EnumName[T ~int](v T, names []string) string {
	if int(v) < 0 || int(v) >= len(names) {
		return "Unknown"
	}
	return names[v]
}

// ParseEnum looks a variant name up in names.
func ParseEnum[T ~int](s string, names []string) (T, error) {
	for i, n := range names {
		if n == s {
			return T(i), nil
		}
	}
	return 0, fmt.Errorf("unknown variant %q", s)
}
