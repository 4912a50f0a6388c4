// Package strength classifies passwords by length.
package strength

// Level is an ordered password strength classification.
type Level int

const (
	None Level = iota
	Weak
	Medium
	Strong
)

// MaxPasswordLength is the longest password a field accepts. It is kept
// apart from the Strong band bound so either can move on its own.
const MaxPasswordLength = 20

// Band is a contiguous length range ending at Max (inclusive).
type Band struct {
	Level Level
	Max   int
}

var bands = [...]Band{
	{Level: None, Max: 0},
	{Level: Weak, Max: 5},
	{Level: Medium, Max: 9},
	{Level: Strong, Max: 20},
}

// Bands returns the classification table in ascending order.
func Bands() []Band {
	out := make([]Band, len(bands))
	copy(out, bands[:])
	return out
}

// UpperBound returns the inclusive length bound of level's band, or -1 for
// an unknown level.
func UpperBound(level Level) int {
	for _, b := range bands {
		if b.Level == level {
			return b.Max
		}
	}
	return -1
}

// Classify maps a password length to its level. Lengths past the last band
// (and negative lengths) are None.
func Classify(length int) Level {
	if length < 0 {
		return None
	}
	for _, b := range bands {
		if length <= b.Max {
			return b.Level
		}
	}
	return None
}

func (l Level) String() string {
	switch l {
	case None:
		return "empty"
	case Weak:
		return "weak"
	case Medium:
		return "medium"
	case Strong:
		return "strong"
	default:
		return "unknown"
	}
}

// Label is the user-facing description of the level.
func (l Level) Label() string { return l.String() }
