package counsel

import (
	"context"
	"errors"
	"log"
	"strings"

	"noor-counseling-be/pkg/dua"
	"noor-counseling-be/pkg/emotion"
	"noor-counseling-be/pkg/reply"
	"noor-counseling-be/pkg/session"

	"github.com/google/uuid"
)

// fsmState tracks pipeline progress. Transitions are linear with one guarded
// branch after classification; every run that returns without error has
// reached stateDone with a non-empty reply.
type fsmState int

const (
	stateStart fsmState = iota
	stateClassified
	stateContentFetched
	stateSynthesized
	stateDone
)

// Classifier is the classification step dependency.
type Classifier interface {
	Classify(ctx context.Context, text string) emotion.Category
}

// Lookup is the content-lookup step dependency.
type Lookup interface {
	Fetch(ctx context.Context, category emotion.Category) *dua.Artifact
}

// Synthesizer is the terminal step dependency.
type Synthesizer interface {
	Synthesize(ctx context.Context, in reply.Input, mode reply.Mode) string
}

// Executor owns the step graph: recall session, classify, route, optionally
// fetch a dua, synthesize. Steps run strictly sequentially on the calling
// goroutine; there is no intra-request parallelism and no per-step retry.
type Executor struct {
	store       *session.Store
	classifier  Classifier
	lookup      Lookup
	synthesizer Synthesizer
	logger      *log.Logger
}

func NewExecutor(
	store *session.Store,
	classifier Classifier,
	lookup Lookup,
	synthesizer Synthesizer,
	logger *log.Logger,
) *Executor {
	return &Executor{
		store:       store,
		classifier:  classifier,
		lookup:      lookup,
		synthesizer: synthesizer,
		logger:      logger,
	}
}

// Execute runs the full pipeline over the initial state and returns the final
// state, or a PipelineError naming the failing stage. No partial state leaks
// on failure.
func (e *Executor) Execute(ctx context.Context, initial State) (*State, error) {
	st := initial
	if st.RunID == "" {
		st.RunID = uuid.NewString()
	}

	current := stateStart
	for current != stateDone {
		switch current {

		case stateStart:
			if err := e.recallSession(&st); err != nil {
				return nil, &PipelineError{Stage: StageRecallSession, Err: err}
			}
			e.classify(ctx, &st)
			current = stateClassified

		case stateClassified:
			// Routing predicate: pure function of the detected category.
			if st.Emotion.IsDistress() {
				st.Branch = reply.ModeEmotional
				st.Artifact = e.lookup.Fetch(ctx, st.Emotion)
				current = stateContentFetched
			} else {
				st.Branch = reply.ModeCasual
				current = stateContentFetched
			}

		case stateContentFetched:
			e.synthesize(ctx, &st)
			current = stateSynthesized

		case stateSynthesized:
			if strings.TrimSpace(st.Reply) == "" {
				return nil, &PipelineError{Stage: StageSynthesize,
					Err: errors.New("synthesis produced an empty reply")}
			}
			current = stateDone
		}
	}

	e.logger.Printf("[PIPELINE] Run %s done: emotion=%s branch=%s dua=%t",
		st.RunID, st.EmotionLabel(), st.Branch, st.Artifact != nil)
	return &st, nil
}

// recallSession merges stored and incoming user context. The name write is
// visible to every later step of this run. Missing required fields are
// structural failures, not recoverable ones.
func (e *Executor) recallSession(st *State) error {
	if st.UserID == "" {
		return errors.New("user_id is required")
	}
	if strings.TrimSpace(st.Message) == "" {
		return errors.New("message is required")
	}

	name, lastEmotion := e.store.Merge(st.UserID, st.Name, "")
	st.Name = name
	st.ResolvedEmotion = lastEmotion
	return nil
}

// classify detects the emotion and writes it through to the session store
// before any later step runs. Classification failure degrades to None inside
// the classifier and never aborts the run.
func (e *Executor) classify(ctx context.Context, st *State) {
	st.Emotion = e.classifier.Classify(ctx, st.Message)
	if st.Emotion != emotion.None {
		e.store.SetEmotion(st.UserID, st.Emotion.String())
	}
}

func (e *Executor) synthesize(ctx context.Context, st *State) {
	st.Reply = e.synthesizer.Synthesize(ctx, reply.Input{
		Name:     st.Name,
		Emotion:  st.EmotionLabel(),
		Message:  st.Message,
		Artifact: st.Artifact,
	}, st.Branch)
}
