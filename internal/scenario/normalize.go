package scenario

import (
	"strings"
	"unicode"
	"vendors/pkg/serrors"
)

// NormalizeName returns the canonical form of a reference name, used as the
// key entities are registered and looked up by.
//
// The rules keep references forgiving to hand-written files:
//   - Trim surrounding whitespace
//   - Lower-case every letter
//   - Treat runs of whitespace, underscores and hyphens as one "-"
//   - Keep every other character (accents included) as is
//
// A name that is empty after trimming is rejected.
func NormalizeName(raw string) (string, error) {
	words := strings.FieldsFunc(strings.ToLower(raw), func(r rune) bool {
		return unicode.IsSpace(r) || r == '_' || r == '-'
	})
	if len(words) == 0 {
		return "", serrors.With(serrors.ErrBadRequest, "name must not be empty")
	}

	return strings.Join(words, "-"), nil
}
