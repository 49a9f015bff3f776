package catalog

import (
	"github.com/andrescamacho/eveindustry-go/internal/domain/record"
	"github.com/andrescamacho/eveindustry-go/internal/domain/shared"
)

// Reaction is a moon material reaction formula for one run
type Reaction struct {
	ID      int
	Inputs  []Material
	Outputs []Material
	Time    int // seconds per run
}

// ReactionFromRecord parses a "reaction" record
func ReactionFromRecord(rec *record.Object) (*Reaction, error) {
	r := &Reaction{
		ID:   rec.Int("id", -1),
		Time: rec.Int("time", 0),
	}
	if r.ID < 0 {
		return nil, shared.NewInvalidRecordError("reaction", "missing id")
	}
	inputs, err := materialsFromRecord("reaction", rec.Objects("input"))
	if err != nil {
		return nil, err
	}
	outputs, err := materialsFromRecord("reaction", rec.Objects("output"))
	if err != nil {
		return nil, err
	}
	if len(outputs) == 0 {
		return nil, shared.NewInvalidRecordError("reaction", "no outputs")
	}
	r.Inputs = inputs
	r.Outputs = outputs
	return r, nil
}

// WriteRecord writes the reaction in the same layout ReactionFromRecord reads
func (r *Reaction) WriteRecord(rec *record.Object) {
	rec.PutInt("id", int64(r.ID))
	rec.PutInt("time", int64(r.Time))
	writeMaterials(rec, "input", r.Inputs)
	writeMaterials(rec, "output", r.Outputs)
}
