// Package slug derives URL-safe identifiers from human-readable labels.
//
// Slugs are assigned once, when an entity is created, and are unique within
// their entity type. The package has no knowledge of storage: callers pass an
// ExistsFunc that answers whether a candidate is already taken.
package slug

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Fallback is used as the base when a label normalizes to nothing
// (e.g. "!!!" or a name written entirely in a non-Latin script).
const Fallback = "untitled"

// ExistsFunc reports whether slug is already assigned within one entity type.
type ExistsFunc func(ctx context.Context, slug string) (bool, error)

// Normalize folds text into a lowercase ASCII token where every run of
// non-alphanumeric characters becomes a single hyphen, with no leading or
// trailing hyphen. It returns "" when nothing alphanumeric survives.
//
//	Normalize("Data Structures")   // "data-structures"
//	Normalize("Müller--Zoë")       // "muller-zoe"
//	Normalize("  C++ / Intro  ")   // "c-intro"
//	Normalize("Straße")            // "strasse"
func Normalize(text string) string {
	text = transliterate.Replace(text)
	folded, _, err := transform.String(asciiFold(), text)
	if err != nil {
		folded = text
	}

	var b strings.Builder
	b.Grow(len(folded))
	pendingSep := false
	for _, r := range folded {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
		case r >= 'A' && r <= 'Z':
			r = unicode.ToLower(r)
		default:
			pendingSep = true
			continue
		}
		if pendingSep && b.Len() > 0 {
			b.WriteByte('-')
		}
		pendingSep = false
		b.WriteRune(r)
	}
	return b.String()
}

// Assign returns the first slug derived from candidate that exists reports as
// free: the normalized base itself, then base-1, base-2, and so on.
//
// The check is advisory. Two concurrent callers can be handed the same slug,
// so the result must be persisted under a unique constraint.
func Assign(ctx context.Context, candidate string, exists ExistsFunc) (string, error) {
	base := Normalize(candidate)
	if base == "" {
		base = Fallback
	}

	s := base
	for n := 1; ; n++ {
		taken, err := exists(ctx, s)
		if err != nil {
			return "", fmt.Errorf("slug.Assign: check %q: %w", s, err)
		}
		if !taken {
			return s, nil
		}
		s = base + "-" + strconv.Itoa(n)
	}
}

// transliterate spells out Latin letters that have no canonical
// decomposition and would otherwise be dropped by asciiFold.
var transliterate = strings.NewReplacer(
	"ß", "ss", "ẞ", "SS",
	"Æ", "AE", "æ", "ae",
	"Œ", "OE", "œ", "oe",
	"Ø", "O", "ø", "o",
	"Ł", "L", "ł", "l",
	"Đ", "D", "đ", "d",
	"Ð", "D", "ð", "d",
	"Þ", "TH", "þ", "th",
	"ı", "i",
)

// asciiFold decomposes characters (NFKD) and drops combining marks, so that
// "é" becomes "e" and "ﬁ" becomes "fi".
func asciiFold() transform.Transformer {
	return transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}
