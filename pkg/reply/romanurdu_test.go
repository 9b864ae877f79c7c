package reply

import "testing"

func TestIsRomanUrdu(t *testing.T) {
	tests := []struct {
		name string
		text string
		want bool
	}{
		{name: "roman urdu sentence", text: "mujhe bohat akela mehsoos ho raha hai", want: true},
		{name: "plain english", text: "i think that this is a good day", want: false},
		{name: "too short", text: "bohat udaas", want: false},
		{name: "urdu script", text: "میں بہت اداس ہوں آج کی رات", want: false},
		{name: "mixed with digits", text: "mujhe 2 din se neend nahi", want: false},
		{name: "english with punctuation", text: "haha, that is so funny!", want: false},
		{name: "empty", text: "", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsRomanUrdu(tt.text); got != tt.want {
				t.Errorf("IsRomanUrdu(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
