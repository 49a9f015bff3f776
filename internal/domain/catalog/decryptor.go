package catalog

import (
	"github.com/andrescamacho/eveindustry-go/internal/domain/record"
	"github.com/andrescamacho/eveindustry-go/internal/domain/shared"
)

// Decryptor modifies the efficiency levels of an invented blueprint
type Decryptor struct {
	ID int
	ME int
	TE int
}

// DecryptorFromRecord parses a "decryptor" record
func DecryptorFromRecord(rec *record.Object) (*Decryptor, error) {
	d := &Decryptor{
		ID: rec.Int("id", -1),
		ME: rec.Int("me", 0),
		TE: rec.Int("te", 0),
	}
	if d.ID < 0 {
		return nil, shared.NewInvalidRecordError("decryptor", "missing id")
	}
	return d, nil
}

// WriteRecord writes the decryptor fields into rec
func (d *Decryptor) WriteRecord(rec *record.Object) {
	rec.PutInt("id", int64(d.ID))
	rec.PutInt("me", int64(d.ME))
	rec.PutInt("te", int64(d.TE))
}
