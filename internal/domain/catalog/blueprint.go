package catalog

import (
	"github.com/andrescamacho/eveindustry-go/internal/domain/record"
	"github.com/andrescamacho/eveindustry-go/internal/domain/shared"
)

// Blueprint describes a manufacturing recipe for one run
type Blueprint struct {
	ID        int
	Product   Material
	Materials []Material
	Time      int // seconds per run at TE 0
}

// BlueprintFromRecord parses a "blueprint" record
func BlueprintFromRecord(rec *record.Object) (*Blueprint, error) {
	bp := &Blueprint{
		ID:   rec.Int("id", -1),
		Time: rec.Int("time", 0),
	}
	if bp.ID < 0 {
		return nil, shared.NewInvalidRecordError("blueprint", "missing id")
	}
	product := rec.Object("product")
	if product == nil {
		return nil, shared.NewInvalidRecordError("blueprint", "missing product")
	}
	p, err := materialFromRecord("blueprint", product)
	if err != nil {
		return nil, err
	}
	bp.Product = p

	materials, err := materialsFromRecord("blueprint", rec.Objects("material"))
	if err != nil {
		return nil, err
	}
	bp.Materials = materials
	return bp, nil
}

// WriteRecord writes the blueprint in the same layout BlueprintFromRecord reads
func (b *Blueprint) WriteRecord(rec *record.Object) {
	rec.PutInt("id", int64(b.ID))
	rec.PutInt("time", int64(b.Time))
	product := record.New()
	b.Product.writeRecord(product)
	rec.PutObject("product", product)
	writeMaterials(rec, "material", b.Materials)
}
