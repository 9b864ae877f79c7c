package emotion

import (
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want Category
	}{
		{name: "plain label", raw: "sad", want: Sad},
		{name: "uppercase", raw: "LONELY", want: Lonely},
		{name: "surrounding whitespace", raw: "  anxious\n", want: Anxious},
		{name: "trailing period", raw: "tired.", want: Tired},
		{name: "quoted", raw: `"guilty"`, want: Guilty},
		{name: "empty string", raw: "", want: None},
		{name: "whitespace only", raw: "   ", want: None},
		{name: "multi-word answer", raw: "the user is sad", want: None},
		{name: "out of set", raw: "melancholic", want: None},
		{name: "explicit none", raw: "none", want: None},
		{name: "happy", raw: "happy", want: Happy},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Parse(tt.raw); got != tt.want {
				t.Errorf("Parse(%q) = %q, want %q", tt.raw, got, tt.want)
			}
		})
	}
}

func TestIsDistress(t *testing.T) {
	distress := []Category{Sad, Angry, Anxious, Tired, Lonely, Guilty, Empty, Hopeless}
	for _, c := range distress {
		if !c.IsDistress() {
			t.Errorf("%s should be a distress category", c)
		}
	}

	for _, c := range []Category{Happy, None} {
		if c.IsDistress() {
			t.Errorf("%s should not be a distress category", c)
		}
	}
}
