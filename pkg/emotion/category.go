package emotion

import "strings"

// Category is one label from the closed emotional-state set. Routing and dua
// lookup key off this type; raw model output never crosses a package boundary
// without going through Parse first.
type Category string

const (
	Sad      Category = "sad"
	Angry    Category = "angry"
	Anxious  Category = "anxious"
	Tired    Category = "tired"
	Lonely   Category = "lonely"
	Guilty   Category = "guilty"
	Empty    Category = "empty"
	Hopeless Category = "hopeless"
	Happy    Category = "happy"

	// None means no confident classification.
	None Category = "none"
)

// All categories a classifier may legally return, excluding None.
var All = []Category{Sad, Angry, Anxious, Tired, Lonely, Guilty, Empty, Hopeless, Happy}

// IsDistress reports whether the category triggers the dua lookup branch.
// Happy and None never do.
func (c Category) IsDistress() bool {
	switch c {
	case Sad, Angry, Anxious, Tired, Lonely, Guilty, Empty, Hopeless:
		return true
	}
	return false
}

func (c Category) String() string {
	return string(c)
}

// Parse normalizes raw classifier output into a Category. Anything outside
// the closed set collapses to None rather than leaking into routing.
func Parse(raw string) Category {
	cleaned := strings.ToLower(strings.TrimSpace(raw))
	cleaned = strings.Trim(cleaned, `."'`)
	if cleaned == "" || strings.ContainsAny(cleaned, " \t\n") {
		return None
	}
	for _, c := range All {
		if cleaned == string(c) {
			return c
		}
	}
	return None
}
