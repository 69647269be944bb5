package contact

import "strings"

// SplitName splits a free-text full name into first and last name.
//
// The first whitespace-separated token becomes the first name and the rest,
// joined by single spaces, the last name. A single-token name yields an
// empty, non-nil last name. Nil or blank input yields (nil, nil).
func SplitName(full *string) (first, last *string) {
	if full == nil {
		return nil, nil
	}

	parts := strings.Fields(*full)
	if len(parts) == 0 {
		return nil, nil
	}

	f := parts[0]
	l := strings.Join(parts[1:], " ")
	return &f, &l
}
