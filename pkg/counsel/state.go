package counsel

import (
	"fmt"

	"noor-counseling-be/pkg/dua"
	"noor-counseling-be/pkg/emotion"
	"noor-counseling-be/pkg/reply"
)

// State is the unit of work flowing through one pipeline run. Steps mutate it
// in sequence; nothing outside the run sees it until the run completes.
type State struct {
	RunID   string
	UserID  string
	Name    string
	Message string

	// Emotion is the classifier output for this run; None when the
	// classifier had no confident match.
	Emotion emotion.Category

	// ResolvedEmotion is the label read back from the session store during
	// recall. It is what the caller sees when the classifier returns None.
	ResolvedEmotion string

	Artifact *dua.Artifact
	Branch   reply.Mode
	Reply    string
}

// EmotionLabel is the user-facing emotion string: the detected category when
// there is one, otherwise the stored resolution.
func (s *State) EmotionLabel() string {
	if s.Emotion != emotion.None {
		return s.Emotion.String()
	}
	return s.ResolvedEmotion
}

// Pipeline step names, used as the failing stage in PipelineError.
const (
	StageRecallSession = "recall_session"
	StageClassify      = "classify_emotion"
	StageFetchDua      = "fetch_dua"
	StageSynthesize    = "synthesize_reply"
)

// PipelineError is a structural failure of a single run. Recoverable step
// failures (classification ambiguity, lookup misses, synthesis fallbacks) are
// absorbed inside their steps and never become one of these.
type PipelineError struct {
	Stage string
	Err   error
}

func (e *PipelineError) Error() string {
	return fmt.Sprintf("pipeline failed at %s: %v", e.Stage, e.Err)
}

func (e *PipelineError) Unwrap() error {
	return e.Err
}
