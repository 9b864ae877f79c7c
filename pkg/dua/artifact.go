package dua

import "fmt"

// Artifact is a short paired comfort unit: the dua in Arabic plus its plain
// English translation. Both fields are always non-empty once an Artifact
// leaves this package.
type Artifact struct {
	Arabic      string `json:"arabic"`
	Translation string `json:"translation"`
}

// Serialize renders the wire form used in the chat response.
func (a *Artifact) Serialize() string {
	return fmt.Sprintf("Original: %s\nTranslation: %s", a.Arabic, a.Translation)
}
