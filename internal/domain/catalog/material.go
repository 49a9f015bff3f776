package catalog

import (
	"github.com/andrescamacho/eveindustry-go/internal/domain/record"
	"github.com/andrescamacho/eveindustry-go/internal/domain/shared"
)

// Material is an unresolved item quantity as stored in catalog records
type Material struct {
	ItemID int
	Amount int64
}

// materialFromRecord reads {item, amount} and rejects non-positive values
func materialFromRecord(kind string, rec *record.Object) (Material, error) {
	m := Material{
		ItemID: rec.Int("item", -1),
		Amount: rec.Int64("amount", 0),
	}
	if m.ItemID < 0 {
		return Material{}, shared.NewInvalidRecordError(kind, "material without item")
	}
	if m.Amount <= 0 {
		return Material{}, shared.NewInvalidRecordError(kind, "material amount must be positive")
	}
	return m, nil
}

func materialsFromRecord(kind string, recs []*record.Object) ([]Material, error) {
	out := make([]Material, 0, len(recs))
	for _, r := range recs {
		m, err := materialFromRecord(kind, r)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

func (m Material) writeRecord(rec *record.Object) {
	rec.PutInt("item", int64(m.ItemID))
	rec.PutInt("amount", m.Amount)
}

func writeMaterials(rec *record.Object, name string, materials []Material) {
	for _, m := range materials {
		child := record.New()
		m.writeRecord(child)
		rec.PutObject(name, child)
	}
}
