package industry

import (
	"fmt"

	"github.com/andrescamacho/eveindustry-go/internal/domain/catalog"
	"github.com/andrescamacho/eveindustry-go/internal/domain/record"
	"github.com/andrescamacho/eveindustry-go/internal/domain/shared"
)

// ReactionTask runs a reaction formula a number of times
type ReactionTask struct {
	Core

	reaction *catalog.Reaction
	runs     int
}

func newReactionTask(p DataProvider) (*ReactionTask, error) {
	t := &ReactionTask{runs: 1}
	if err := t.bind(p, KindReaction, t); err != nil {
		return nil, err
	}
	return t, nil
}

// NewReactionTask creates a task running reaction runs times
func NewReactionTask(p DataProvider, reaction *catalog.Reaction, runs int) (*ReactionTask, error) {
	t, err := newReactionTask(p)
	if err != nil {
		return nil, err
	}
	if reaction == nil {
		return nil, shared.NewValidationError("reaction", "is required")
	}
	if runs < 1 {
		return nil, shared.NewValidationError("runs", "must be at least 1")
	}
	t.reaction = reaction
	t.runs = runs
	t.updateMaterials()
	return t, nil
}

func (t *ReactionTask) Reaction() *catalog.Reaction { return t.reaction }
func (t *ReactionTask) Runs() int                   { return t.runs }

// SetRuns sets the number of runs
func (t *ReactionTask) SetRuns(runs int) error {
	if runs < 1 {
		return shared.NewValidationError("runs", "must be at least 1")
	}
	t.runs = runs
	t.updateMaterials()
	return nil
}

func (t *ReactionTask) Duration() int {
	if t.reaction == nil {
		return 0
	}
	return t.reaction.Time * t.runs
}

func (t *ReactionTask) rawProducedMaterials() []shared.ItemStack {
	if t.reaction == nil {
		return nil
	}
	return scaleMaterials(t.provider, t.reaction.Outputs, int64(t.runs))
}

func (t *ReactionTask) rawRequiredMaterials() []shared.ItemStack {
	if t.reaction == nil {
		return nil
	}
	return scaleMaterials(t.provider, t.reaction.Inputs, int64(t.runs))
}

func (t *ReactionTask) loadRecord(rec *record.Object) error {
	id := rec.Int("reaction", -1)
	r, ok := t.provider.Reaction(id)
	if !ok {
		return newTaskLoadError(KindReaction, fmt.Sprintf("reaction %d not found", id), nil)
	}
	t.reaction = r
	t.runs = rec.Int("runs", 1)
	if t.runs < 1 {
		return shared.NewValidationError("runs", "must be at least 1")
	}
	return nil
}

func (t *ReactionTask) writeFields(rec *record.Object) {
	if t.reaction != nil {
		rec.PutInt("reaction", int64(t.reaction.ID))
	}
	rec.PutInt("runs", int64(t.runs))
}
