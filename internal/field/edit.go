package field

import "unicode/utf8"

// EditRange is a half-open [Start, End) range of rune indices.
type EditRange struct {
	Start int
	End   int
}

// Insertion is the empty range at i.
func Insertion(i int) EditRange { return EditRange{Start: i, End: i} }

// Len is the number of runes the range covers.
func (r EditRange) Len() int { return r.End - r.Start }

func (r EditRange) validIn(n int) bool {
	return r.Start >= 0 && r.End >= r.Start && r.End <= n
}

// applyEdit replaces r in text with replacement. ok is false when r does not
// lie within text.
func applyEdit(text string, r EditRange, replacement string) (string, bool) {
	runes := []rune(text)
	if !r.validIn(len(runes)) {
		return "", false
	}
	out := make([]rune, 0, len(runes)-r.Len()+utf8.RuneCountInString(replacement))
	out = append(out, runes[:r.Start]...)
	out = append(out, []rune(replacement)...)
	out = append(out, runes[r.End:]...)
	return string(out), true
}
