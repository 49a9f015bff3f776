package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/eveindustry-go/internal/domain/catalog"
	"github.com/andrescamacho/eveindustry-go/internal/domain/record"
	"github.com/andrescamacho/eveindustry-go/internal/domain/shared"
)

func material(item, amount int64) *record.Object {
	m := record.New()
	m.PutInt("item", item)
	m.PutInt("amount", amount)
	return m
}

func TestBlueprintFromRecord(t *testing.T) {
	// Arrange
	rec := record.New()
	rec.PutInt("id", 691)
	rec.PutInt("time", 6000)
	rec.PutObject("product", material(587, 1))
	rec.PutObject("material", material(34, 32000))
	rec.PutObject("material", material(35, 6000))

	// Act
	bp, err := catalog.BlueprintFromRecord(rec)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, &catalog.Blueprint{
		ID:      691,
		Product: catalog.Material{ItemID: 587, Amount: 1},
		Materials: []catalog.Material{
			{ItemID: 34, Amount: 32000},
			{ItemID: 35, Amount: 6000},
		},
		Time: 6000,
	}, bp)
}

func TestBlueprintFromRecord_Invalid(t *testing.T) {
	cases := map[string]func() *record.Object{
		"missing id": func() *record.Object {
			rec := record.New()
			rec.PutObject("product", material(587, 1))
			return rec
		},
		"missing product": func() *record.Object {
			rec := record.New()
			rec.PutInt("id", 691)
			return rec
		},
		"zero amount": func() *record.Object {
			rec := record.New()
			rec.PutInt("id", 691)
			rec.PutObject("product", material(587, 1))
			rec.PutObject("material", material(34, 0))
			return rec
		},
	}
	for name, build := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := catalog.BlueprintFromRecord(build())

			var invalid *shared.InvalidRecordError
			assert.ErrorAs(t, err, &invalid)
		})
	}
}

func TestBlueprint_WriteRecordRoundTrip(t *testing.T) {
	original := &catalog.Blueprint{
		ID:        691,
		Product:   catalog.Material{ItemID: 587, Amount: 1},
		Materials: []catalog.Material{{ItemID: 34, Amount: 100}},
		Time:      60,
	}
	rec := record.New()
	original.WriteRecord(rec)

	restored, err := catalog.BlueprintFromRecord(rec)

	require.NoError(t, err)
	assert.Equal(t, original, restored)
}

func TestRefinableFromRecord_DefaultPortion(t *testing.T) {
	rec := record.New()
	rec.PutInt("id", 1230)
	rec.PutObject("output", material(34, 400))

	r, err := catalog.RefinableFromRecord(rec)

	require.NoError(t, err)
	assert.Equal(t, int64(1), r.Portion)
	assert.Equal(t, []catalog.Material{{ItemID: 34, Amount: 400}}, r.Outputs)
}

func TestReactionFromRecord_RequiresOutputs(t *testing.T) {
	rec := record.New()
	rec.PutInt("id", 46166)
	rec.PutObject("input", material(16634, 100))

	_, err := catalog.ReactionFromRecord(rec)

	var invalid *shared.InvalidRecordError
	assert.ErrorAs(t, err, &invalid)
}

func TestSchematicAndDecryptorRoundTrip(t *testing.T) {
	schematic := &catalog.Schematic{
		ID:     66,
		Inputs: []catalog.Material{{ItemID: 3645, Amount: 40}},
		Output: catalog.Material{ItemID: 9832, Amount: 5},
		Cycle:  3600,
	}
	decryptor := &catalog.Decryptor{ID: 34201, ME: 3, TE: -2}

	srec := record.New()
	schematic.WriteRecord(srec)
	drec := record.New()
	decryptor.WriteRecord(drec)

	restoredSchematic, err := catalog.SchematicFromRecord(srec)
	require.NoError(t, err)
	restoredDecryptor, err := catalog.DecryptorFromRecord(drec)
	require.NoError(t, err)

	assert.Equal(t, schematic, restoredSchematic)
	assert.Equal(t, decryptor, restoredDecryptor)
}
