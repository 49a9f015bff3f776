package industry

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/andrescamacho/eveindustry-go/internal/domain/catalog"
	"github.com/andrescamacho/eveindustry-go/internal/domain/record"
	"github.com/andrescamacho/eveindustry-go/internal/domain/shared"
	"github.com/andrescamacho/eveindustry-go/pkg/utils"
)

const (
	// MaxMaterialEfficiency is the highest blueprint ME level
	MaxMaterialEfficiency = 10

	// MaxTimeEfficiency is the highest blueprint TE level
	MaxTimeEfficiency = 20
)

// ManufacturingTask builds a blueprint's product for a number of runs
type ManufacturingTask struct {
	Core

	blueprint *catalog.Blueprint
	decryptor *catalog.Decryptor
	runs      int
	me        int
	te        int
	fee       decimal.Decimal // installation fee per run
}

func newManufacturingTask(p DataProvider) (*ManufacturingTask, error) {
	t := &ManufacturingTask{runs: 1, fee: decimal.Zero}
	if err := t.bind(p, KindManufacturing, t); err != nil {
		return nil, err
	}
	return t, nil
}

// NewManufacturingTask creates a task running blueprint runs times at ME 0 / TE 0
func NewManufacturingTask(p DataProvider, blueprint *catalog.Blueprint, runs int) (*ManufacturingTask, error) {
	t, err := newManufacturingTask(p)
	if err != nil {
		return nil, err
	}
	if blueprint == nil {
		return nil, shared.NewValidationError("blueprint", "is required")
	}
	if runs < 1 {
		return nil, shared.NewValidationError("runs", "must be at least 1")
	}
	t.blueprint = blueprint
	t.runs = runs
	t.updateMaterials()
	return t, nil
}

func (t *ManufacturingTask) Blueprint() *catalog.Blueprint { return t.blueprint }
func (t *ManufacturingTask) Decryptor() *catalog.Decryptor { return t.decryptor }
func (t *ManufacturingTask) Runs() int                     { return t.runs }
func (t *ManufacturingTask) MaterialEfficiency() int       { return t.me }
func (t *ManufacturingTask) TimeEfficiency() int           { return t.te }
func (t *ManufacturingTask) Fee() decimal.Decimal          { return t.fee }

// SetBlueprint replaces the blueprint
func (t *ManufacturingTask) SetBlueprint(blueprint *catalog.Blueprint) error {
	if blueprint == nil {
		return shared.NewValidationError("blueprint", "is required")
	}
	t.blueprint = blueprint
	t.updateMaterials()
	return nil
}

// SetRuns sets the number of runs
func (t *ManufacturingTask) SetRuns(runs int) error {
	if runs < 1 {
		return shared.NewValidationError("runs", "must be at least 1")
	}
	t.runs = runs
	t.updateMaterials()
	return nil
}

// SetMaterialEfficiency sets the blueprint ME level
func (t *ManufacturingTask) SetMaterialEfficiency(level int) error {
	if level < 0 || level > MaxMaterialEfficiency {
		return shared.NewValidationError("me", fmt.Sprintf("must be between 0 and %d", MaxMaterialEfficiency))
	}
	t.me = level
	t.updateMaterials()
	return nil
}

// SetTimeEfficiency sets the blueprint TE level
func (t *ManufacturingTask) SetTimeEfficiency(level int) error {
	if level < 0 || level > MaxTimeEfficiency {
		return shared.NewValidationError("te", fmt.Sprintf("must be between 0 and %d", MaxTimeEfficiency))
	}
	t.te = level
	t.updateMaterials()
	return nil
}

// SetDecryptor sets or clears (nil) the decryptor
func (t *ManufacturingTask) SetDecryptor(d *catalog.Decryptor) {
	t.decryptor = d
	t.updateMaterials()
}

// SetFee sets the installation fee charged per run
func (t *ManufacturingTask) SetFee(fee decimal.Decimal) error {
	if fee.IsNegative() {
		return shared.NewValidationError("fee", "cannot be negative")
	}
	t.fee = fee
	t.updateMaterials()
	return nil
}

// EffectiveMaterialEfficiency is the ME level after decryptor modifiers
func (t *ManufacturingTask) EffectiveMaterialEfficiency() int {
	me := t.me
	if t.decryptor != nil {
		me += t.decryptor.ME
	}
	return utils.Clamp(me, 0, MaxMaterialEfficiency)
}

// EffectiveTimeEfficiency is the TE level after decryptor modifiers
func (t *ManufacturingTask) EffectiveTimeEfficiency() int {
	te := t.te
	if t.decryptor != nil {
		te += t.decryptor.TE
	}
	return utils.Clamp(te, 0, MaxTimeEfficiency)
}

// Duration is the run time reduced by the time efficiency level
func (t *ManufacturingTask) Duration() int {
	if t.blueprint == nil {
		return 0
	}
	total := int64(t.blueprint.Time) * int64(t.runs)
	return int(total * int64(100-t.EffectiveTimeEfficiency()) / 100)
}

// ExtraExpense is the installation fee for every run
func (t *ManufacturingTask) ExtraExpense() decimal.Decimal {
	return t.fee.Mul(decimal.NewFromInt(int64(t.runs)))
}

func (t *ManufacturingTask) rawProducedMaterials() []shared.ItemStack {
	if t.blueprint == nil {
		return nil
	}
	product := t.blueprint.Product
	if stack, ok := resolveMaterial(t.provider, product, product.Amount*int64(t.runs)); ok {
		return []shared.ItemStack{stack}
	}
	return nil
}

// rawRequiredMaterials applies material efficiency per material, never
// dropping below one unit per run
func (t *ManufacturingTask) rawRequiredMaterials() []shared.ItemStack {
	if t.blueprint == nil {
		return nil
	}
	runs := int64(t.runs)
	factor := int64(100 - t.EffectiveMaterialEfficiency())

	out := make([]shared.ItemStack, 0, len(t.blueprint.Materials))
	for _, m := range t.blueprint.Materials {
		amount := utils.Max64(runs, utils.CeilDiv(m.Amount*runs*factor, 100))
		if stack, ok := resolveMaterial(t.provider, m, amount); ok {
			out = append(out, stack)
		}
	}
	return out
}

func (t *ManufacturingTask) loadRecord(rec *record.Object) error {
	id := rec.Int("blueprint", -1)
	bp, ok := t.provider.Blueprint(id)
	if !ok {
		return newTaskLoadError(KindManufacturing, fmt.Sprintf("blueprint %d not found", id), nil)
	}
	if _, ok := t.provider.Item(bp.Product.ItemID); !ok {
		return newTaskLoadError(KindManufacturing, fmt.Sprintf("blueprint %d product %d not found", id, bp.Product.ItemID), nil)
	}
	t.blueprint = bp

	t.runs = rec.Int("runs", 1)
	if t.runs < 1 {
		return shared.NewValidationError("runs", "must be at least 1")
	}
	t.me = rec.Int("me", 0)
	if t.me < 0 || t.me > MaxMaterialEfficiency {
		return shared.NewValidationError("me", "out of range")
	}
	t.te = rec.Int("te", 0)
	if t.te < 0 || t.te > MaxTimeEfficiency {
		return shared.NewValidationError("te", "out of range")
	}

	if rec.Has("decryptor") {
		did := rec.Int("decryptor", -1)
		d, ok := t.provider.Decryptor(did)
		if !ok {
			return newTaskLoadError(KindManufacturing, fmt.Sprintf("decryptor %d not found", did), nil)
		}
		t.decryptor = d
	}

	t.fee = rec.Decimal("fee", decimal.Zero)
	if t.fee.IsNegative() {
		return shared.NewValidationError("fee", "cannot be negative")
	}
	return nil
}

func (t *ManufacturingTask) writeFields(rec *record.Object) {
	if t.blueprint != nil {
		rec.PutInt("blueprint", int64(t.blueprint.ID))
	}
	rec.PutInt("runs", int64(t.runs))
	rec.PutInt("me", int64(t.me))
	rec.PutInt("te", int64(t.te))
	if t.decryptor != nil {
		rec.PutInt("decryptor", int64(t.decryptor.ID))
	}
	rec.PutDecimal("fee", t.fee)
}
