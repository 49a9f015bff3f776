package catalog

import (
	"github.com/andrescamacho/eveindustry-go/internal/domain/record"
	"github.com/andrescamacho/eveindustry-go/internal/domain/shared"
)

// Refinable describes what one portion of an ore refines into at 100% yield
type Refinable struct {
	ItemID  int
	Portion int64
	Outputs []Material
}

// RefinableFromRecord parses a "refine" record
func RefinableFromRecord(rec *record.Object) (*Refinable, error) {
	r := &Refinable{
		ItemID:  rec.Int("id", -1),
		Portion: rec.Int64("portion", 1),
	}
	if r.ItemID < 0 {
		return nil, shared.NewInvalidRecordError("refine", "missing id")
	}
	if r.Portion <= 0 {
		return nil, shared.NewInvalidRecordError("refine", "portion must be positive")
	}
	outputs, err := materialsFromRecord("refine", rec.Objects("output"))
	if err != nil {
		return nil, err
	}
	r.Outputs = outputs
	return r, nil
}

// WriteRecord writes the refinable in the same layout RefinableFromRecord reads
func (r *Refinable) WriteRecord(rec *record.Object) {
	rec.PutInt("id", int64(r.ItemID))
	rec.PutInt("portion", r.Portion)
	writeMaterials(rec, "output", r.Outputs)
}
