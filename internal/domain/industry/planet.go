package industry

import (
	"fmt"

	"github.com/andrescamacho/eveindustry-go/internal/domain/catalog"
	"github.com/andrescamacho/eveindustry-go/internal/domain/record"
	"github.com/andrescamacho/eveindustry-go/internal/domain/shared"
)

// PlanetTask runs a planetary schematic for a number of cycles
type PlanetTask struct {
	Core

	schematic *catalog.Schematic
	runs      int
}

func newPlanetTask(p DataProvider) (*PlanetTask, error) {
	t := &PlanetTask{runs: 1}
	if err := t.bind(p, KindPlanet, t); err != nil {
		return nil, err
	}
	return t, nil
}

// NewPlanetTask creates a task running schematic for runs cycles
func NewPlanetTask(p DataProvider, schematic *catalog.Schematic, runs int) (*PlanetTask, error) {
	t, err := newPlanetTask(p)
	if err != nil {
		return nil, err
	}
	if schematic == nil {
		return nil, shared.NewValidationError("schematic", "is required")
	}
	if runs < 1 {
		return nil, shared.NewValidationError("runs", "must be at least 1")
	}
	t.schematic = schematic
	t.runs = runs
	t.updateMaterials()
	return t, nil
}

func (t *PlanetTask) Schematic() *catalog.Schematic { return t.schematic }
func (t *PlanetTask) Runs() int                     { return t.runs }

// SetRuns sets the number of cycles
func (t *PlanetTask) SetRuns(runs int) error {
	if runs < 1 {
		return shared.NewValidationError("runs", "must be at least 1")
	}
	t.runs = runs
	t.updateMaterials()
	return nil
}

func (t *PlanetTask) Duration() int {
	if t.schematic == nil {
		return 0
	}
	return t.schematic.Cycle * t.runs
}

func (t *PlanetTask) rawProducedMaterials() []shared.ItemStack {
	if t.schematic == nil {
		return nil
	}
	out := t.schematic.Output
	if stack, ok := resolveMaterial(t.provider, out, out.Amount*int64(t.runs)); ok {
		return []shared.ItemStack{stack}
	}
	return nil
}

func (t *PlanetTask) rawRequiredMaterials() []shared.ItemStack {
	if t.schematic == nil {
		return nil
	}
	return scaleMaterials(t.provider, t.schematic.Inputs, int64(t.runs))
}

func (t *PlanetTask) loadRecord(rec *record.Object) error {
	id := rec.Int("schematic", -1)
	s, ok := t.provider.Schematic(id)
	if !ok {
		return newTaskLoadError(KindPlanet, fmt.Sprintf("schematic %d not found", id), nil)
	}
	t.schematic = s
	t.runs = rec.Int("runs", 1)
	if t.runs < 1 {
		return shared.NewValidationError("runs", "must be at least 1")
	}
	return nil
}

func (t *PlanetTask) writeFields(rec *record.Object) {
	if t.schematic != nil {
		rec.PutInt("schematic", int64(t.schematic.ID))
	}
	rec.PutInt("runs", int64(t.runs))
}
