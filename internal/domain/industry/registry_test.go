package industry_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/eveindustry-go/internal/domain/industry"
	"github.com/andrescamacho/eveindustry-go/internal/domain/market"
	"github.com/andrescamacho/eveindustry-go/internal/domain/record"
)

func TestKinds_ListsEveryVariant(t *testing.T) {
	assert.Equal(t, []industry.Kind{
		industry.KindGroup,
		industry.KindManufacturing,
		industry.KindPlanet,
		industry.KindReaction,
		industry.KindRefining,
	}, industry.Kinds())

	kind, ok := industry.ParseKind("refining")
	assert.True(t, ok)
	assert.Equal(t, industry.KindRefining, kind)
	_, ok = industry.ParseKind("invention")
	assert.False(t, ok)
}

func TestLoad_UnknownType(t *testing.T) {
	// Arrange
	f := newFixture()
	rec := record.New()
	rec.PutString("type", "invention")

	// Act
	task, err := industry.Load(f.provider, rec)

	// Assert
	assert.Nil(t, task)
	require.Error(t, err)
	assert.True(t, industry.IsTaskLoad(err))
	assert.Contains(t, err.Error(), "invention")
}

func TestLoad_MissingType(t *testing.T) {
	f := newFixture()

	task, err := industry.Load(f.provider, record.New())

	assert.Nil(t, task)
	assert.True(t, industry.IsTaskLoad(err))
}

func TestLoad_NilProvider(t *testing.T) {
	rec := record.New()
	rec.PutString("type", "manufacturing")

	task, err := industry.Load(nil, rec)

	assert.Nil(t, task)
	assert.True(t, industry.IsTaskLoad(err))
	assert.ErrorIs(t, err, industry.ErrIllegalState)
}

func TestLoad_MissingCatalogEntries(t *testing.T) {
	cases := map[string]func(rec *record.Object){
		"manufacturing": func(rec *record.Object) { rec.PutInt("blueprint", 1) },
		"refining":      func(rec *record.Object) { rec.PutInt("ore", 1) },
		"reaction":      func(rec *record.Object) { rec.PutInt("reaction", 1) },
		"planet":        func(rec *record.Object) { rec.PutInt("schematic", 1) },
	}
	for kind, fill := range cases {
		t.Run(kind, func(t *testing.T) {
			f := newFixture()
			rec := record.New()
			rec.PutString("type", kind)
			fill(rec)

			task, err := industry.Load(f.provider, rec)

			assert.Nil(t, task)
			assert.True(t, industry.IsTaskLoad(err))
		})
	}
}

func TestLoad_UnknownDecryptor(t *testing.T) {
	f := newFixture()
	rec := record.New()
	rec.PutString("type", "manufacturing")
	rec.PutInt("blueprint", rifterBPID)
	rec.PutInt("decryptor", 1)

	_, err := industry.Load(f.provider, rec)

	assert.True(t, industry.IsTaskLoad(err))
}

func TestLoad_InvalidAttributesAreTaskLoadErrors(t *testing.T) {
	f := newFixture()
	rec := record.New()
	rec.PutString("type", "manufacturing")
	rec.PutInt("blueprint", rifterBPID)
	rec.PutInt("me", 40)

	_, err := industry.Load(f.provider, rec)

	require.Error(t, err)
	assert.True(t, industry.IsTaskLoad(err))
}

func TestLoad_Manufacturing(t *testing.T) {
	// Arrange
	f := newFixture()
	rec := record.New()
	rec.PutString("type", "manufacturing")
	rec.PutInt("blueprint", rifterBPID)
	rec.PutInt("runs", 10)
	rec.PutInt("me", 10)
	rec.PutInt("decryptor", decryptorID)
	rec.PutString("fee", "12.5")

	// Act
	task, err := industry.Load(f.provider, rec)

	// Assert
	require.NoError(t, err)
	mt, ok := task.(*industry.ManufacturingTask)
	require.True(t, ok)
	assert.Equal(t, 10, mt.Runs())
	assert.Equal(t, 10, mt.MaterialEfficiency())
	assert.Same(t, f.decryptor, mt.Decryptor())
	assert.True(t, decimal.RequireFromString("12.5").Equal(mt.Fee()))
	assert.Equal(t, int64(900), amountOf(task.RequiredMaterials(), f.tritanium))
}

func TestLoad_LegacySourceField(t *testing.T) {
	// Arrange
	f := newFixture()
	rec := record.New()
	rec.PutString("type", "planet")
	rec.PutInt("schematic", schematicID)
	override := record.New()
	override.PutInt("item", waterID)
	override.PutInt("system", 30002187)
	override.PutInt("source", int64(market.OrderBuy))
	rec.PutObject("market", override)

	// Act
	task, err := industry.Load(f.provider, rec)

	// Assert
	require.NoError(t, err)
	m, ok := task.MaterialMarket(f.water)
	require.True(t, ok)
	assert.Equal(t, market.OrderBuy, m.Order())
	assert.Equal(t, 30002187, m.System())
}

func TestLoad_SkipsMarketsForUnknownItems(t *testing.T) {
	// Arrange
	f := newFixture()
	rec := record.New()
	rec.PutString("type", "planet")
	rec.PutInt("schematic", schematicID)
	override := record.New()
	override.PutInt("item", 999999)
	override.PutInt("order", int64(market.OrderBuy))
	rec.PutObject("market", override)

	// Act
	task, err := industry.Load(f.provider, rec)

	// Assert
	require.NoError(t, err)
	_, ok := task.MaterialMarkets()[999999]
	assert.False(t, ok)
	assert.Len(t, task.MaterialMarkets(), 2)
}

func TestSave_WritesTypeAndSortedMarkets(t *testing.T) {
	// Arrange
	f := newFixture()
	task, err := industry.NewReactionTask(f.provider, f.reaction, 2)
	require.NoError(t, err)

	// Act
	rec := industry.Save(task)

	// Assert
	assert.Equal(t, "reaction", rec.String("type", ""))
	assert.Equal(t, reactionID, rec.Int("reaction", 0))
	assert.Equal(t, 2, rec.Int("runs", 0))
	markets := rec.Objects("market")
	require.Len(t, markets, 3)
	assert.Equal(t, fuelID, markets[0].Int("item", 0))
	assert.Equal(t, coolantID, markets[1].Int("item", 0))
	assert.Equal(t, gasID, markets[2].Int("item", 0))
}

func TestSaveLoad_RoundTripPreservesState(t *testing.T) {
	// Arrange
	f := newFixture()
	original, err := industry.NewManufacturingTask(f.provider, f.blueprint, 7)
	require.NoError(t, err)
	require.NoError(t, original.SetMaterialEfficiency(8))
	require.NoError(t, original.SetTimeEfficiency(16))
	require.NoError(t, original.SetFee(decimal.RequireFromString("99.95")))
	original.SetMaterialMarket(f.tritanium, market.Manual(30000142, decimal.RequireFromString("4.20")))
	original.SetMaterialMarket(f.rifter, market.New(30002187, market.OrderBuy, decimal.Zero))

	// Act
	restored, err := industry.Load(f.provider, industry.Save(original))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, original.Kind(), restored.Kind())
	assert.Equal(t, original.ProducedMaterials(), restored.ProducedMaterials())
	assert.Equal(t, original.RequiredMaterials(), restored.RequiredMaterials())
	assert.Equal(t, original.Duration(), restored.Duration())
	assert.True(t, original.ExtraExpense().Equal(restored.ExtraExpense()))

	originalMarkets := original.MaterialMarkets()
	restoredMarkets := restored.MaterialMarkets()
	require.Len(t, restoredMarkets, len(originalMarkets))
	for id, m := range originalMarkets {
		assert.True(t, m.Equal(restoredMarkets[id]), "market for item %d", id)
	}
}

func TestSaveLoad_RefiningRoundTrip(t *testing.T) {
	f := newFixture()
	original, err := industry.NewRefiningTask(f.provider, f.refinable, 1000)
	require.NoError(t, err)
	require.NoError(t, original.SetEfficiency(decimal.RequireFromString("0.72")))
	require.NoError(t, original.SetTax(decimal.RequireFromString("0.1")))

	restored, err := industry.Load(f.provider, industry.Save(original))

	require.NoError(t, err)
	rt := restored.(*industry.RefiningTask)
	assert.Equal(t, int64(1000), rt.Amount())
	assert.True(t, original.Efficiency().Equal(rt.Efficiency()))
	assert.True(t, original.Tax().Equal(rt.Tax()))
	assert.Equal(t, original.ProducedMaterials(), restored.ProducedMaterials())
}

func TestSaveLoad_NestedGroupRoundTrip(t *testing.T) {
	// Arrange
	f := newFixture()
	planet, err := industry.NewPlanetTask(f.provider, f.schematic, 4)
	require.NoError(t, err)
	planet.SetMaterialMarket(f.water, market.Manual(30000142, decimal.NewFromInt(3)))
	reaction, err := industry.NewReactionTask(f.provider, f.reaction, 1)
	require.NoError(t, err)
	inner, err := industry.NewGroupTask(f.provider, reaction)
	require.NoError(t, err)
	outer, err := industry.NewGroupTask(f.provider, planet, inner)
	require.NoError(t, err)

	// Act
	restored, err := industry.Load(f.provider, industry.Save(outer))

	// Assert
	require.NoError(t, err)
	group := restored.(*industry.GroupTask)
	require.Len(t, group.Tasks(), 2)
	assert.Equal(t, outer.ProducedMaterials(), group.ProducedMaterials())
	assert.Equal(t, outer.RequiredMaterials(), group.RequiredMaterials())

	restoredPlanet := group.Tasks()[0]
	m, ok := restoredPlanet.MaterialMarket(f.water)
	require.True(t, ok)
	assert.True(t, m.IsManual())
	assert.True(t, decimal.NewFromInt(3).Equal(m.ManualPrice()))

	// restored children still drive the group
	require.NoError(t, restoredPlanet.(*industry.PlanetTask).SetRuns(1))
	assert.Zero(t, amountOf(group.ProducedMaterials(), f.coolant))
}

func TestLoad_GroupChildFailureAbortsLoad(t *testing.T) {
	f := newFixture()
	rec := record.New()
	rec.PutString("type", "group")
	bad := record.New()
	bad.PutString("type", "planet")
	bad.PutInt("schematic", 1)
	rec.PutObject("task", bad)

	task, err := industry.Load(f.provider, rec)

	assert.Nil(t, task)
	assert.True(t, industry.IsTaskLoad(err))
}
