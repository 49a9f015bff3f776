package catalog

import (
	"github.com/andrescamacho/eveindustry-go/internal/domain/record"
	"github.com/andrescamacho/eveindustry-go/internal/domain/shared"
)

// Schematic is a planetary production recipe for one cycle
type Schematic struct {
	ID     int
	Inputs []Material
	Output Material
	Cycle  int // seconds per cycle
}

// SchematicFromRecord parses a "schematic" record
func SchematicFromRecord(rec *record.Object) (*Schematic, error) {
	s := &Schematic{
		ID:    rec.Int("id", -1),
		Cycle: rec.Int("cycle", 0),
	}
	if s.ID < 0 {
		return nil, shared.NewInvalidRecordError("schematic", "missing id")
	}
	output := rec.Object("output")
	if output == nil {
		return nil, shared.NewInvalidRecordError("schematic", "missing output")
	}
	out, err := materialFromRecord("schematic", output)
	if err != nil {
		return nil, err
	}
	s.Output = out
	inputs, err := materialsFromRecord("schematic", rec.Objects("input"))
	if err != nil {
		return nil, err
	}
	s.Inputs = inputs
	return s, nil
}

// WriteRecord writes the schematic in the same layout SchematicFromRecord reads
func (s *Schematic) WriteRecord(rec *record.Object) {
	rec.PutInt("id", int64(s.ID))
	rec.PutInt("cycle", int64(s.Cycle))
	output := record.New()
	s.Output.writeRecord(output)
	rec.PutObject("output", output)
	writeMaterials(rec, "input", s.Inputs)
}
