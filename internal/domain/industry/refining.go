package industry

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/andrescamacho/eveindustry-go/internal/domain/catalog"
	"github.com/andrescamacho/eveindustry-go/internal/domain/record"
	"github.com/andrescamacho/eveindustry-go/internal/domain/shared"
)

// RefiningTask reprocesses ore into its refined materials. Only whole
// portions are refined; leftover ore stays untouched.
type RefiningTask struct {
	Core

	refinable  *catalog.Refinable
	amount     int64
	efficiency decimal.Decimal // yield, 0 to 1
	tax        decimal.Decimal // fraction of the refined value, 0 to 1
}

func newRefiningTask(p DataProvider) (*RefiningTask, error) {
	t := &RefiningTask{efficiency: decimal.NewFromInt(1), tax: decimal.Zero}
	if err := t.bind(p, KindRefining, t); err != nil {
		return nil, err
	}
	return t, nil
}

// NewRefiningTask creates a task refining amount units of the refinable ore at full yield
func NewRefiningTask(p DataProvider, refinable *catalog.Refinable, amount int64) (*RefiningTask, error) {
	t, err := newRefiningTask(p)
	if err != nil {
		return nil, err
	}
	if refinable == nil {
		return nil, shared.NewValidationError("ore", "is required")
	}
	if amount < 0 {
		return nil, shared.NewValidationError("amount", "cannot be negative")
	}
	t.refinable = refinable
	t.amount = amount
	t.updateMaterials()
	return t, nil
}

func (t *RefiningTask) Refinable() *catalog.Refinable { return t.refinable }
func (t *RefiningTask) Amount() int64                 { return t.amount }
func (t *RefiningTask) Efficiency() decimal.Decimal   { return t.efficiency }
func (t *RefiningTask) Tax() decimal.Decimal          { return t.tax }

// SetAmount sets the amount of ore available for refining
func (t *RefiningTask) SetAmount(amount int64) error {
	if amount < 0 {
		return shared.NewValidationError("amount", "cannot be negative")
	}
	t.amount = amount
	t.updateMaterials()
	return nil
}

// SetEfficiency sets the refining yield
func (t *RefiningTask) SetEfficiency(efficiency decimal.Decimal) error {
	if err := validateFraction("efficiency", efficiency); err != nil {
		return err
	}
	t.efficiency = efficiency
	t.updateMaterials()
	return nil
}

// SetTax sets the refinery tax rate
func (t *RefiningTask) SetTax(tax decimal.Decimal) error {
	if err := validateFraction("tax", tax); err != nil {
		return err
	}
	t.tax = tax
	t.updateMaterials()
	return nil
}

// Batches is the number of whole portions refined
func (t *RefiningTask) Batches() int64 {
	if t.refinable == nil {
		return 0
	}
	return t.amount / t.refinable.Portion
}

// Duration is zero: refining completes instantly
func (t *RefiningTask) Duration() int {
	return 0
}

// ExtraExpense is the tax charged on the refined materials' value
func (t *RefiningTask) ExtraExpense() decimal.Decimal {
	return t.Income().Mul(t.tax)
}

func (t *RefiningTask) rawProducedMaterials() []shared.ItemStack {
	batches := t.Batches()
	if batches == 0 {
		return nil
	}
	out := make([]shared.ItemStack, 0, len(t.refinable.Outputs))
	for _, m := range t.refinable.Outputs {
		amount := decimal.NewFromInt(m.Amount * batches).Mul(t.efficiency).Floor().IntPart()
		if stack, ok := resolveMaterial(t.provider, m, amount); ok {
			out = append(out, stack)
		}
	}
	return out
}

func (t *RefiningTask) rawRequiredMaterials() []shared.ItemStack {
	batches := t.Batches()
	if batches == 0 {
		return nil
	}
	ore := catalog.Material{ItemID: t.refinable.ItemID, Amount: t.refinable.Portion}
	if stack, ok := resolveMaterial(t.provider, ore, batches*t.refinable.Portion); ok {
		return []shared.ItemStack{stack}
	}
	return nil
}

func (t *RefiningTask) loadRecord(rec *record.Object) error {
	id := rec.Int("ore", -1)
	r, ok := t.provider.Refinable(id)
	if !ok {
		return newTaskLoadError(KindRefining, fmt.Sprintf("refinable ore %d not found", id), nil)
	}
	if _, ok := t.provider.Item(r.ItemID); !ok {
		return newTaskLoadError(KindRefining, fmt.Sprintf("ore item %d not found", r.ItemID), nil)
	}
	t.refinable = r

	t.amount = rec.Int64("amount", 0)
	if t.amount < 0 {
		return shared.NewValidationError("amount", "cannot be negative")
	}
	t.efficiency = rec.Decimal("efficiency", decimal.NewFromInt(1))
	if err := validateFraction("efficiency", t.efficiency); err != nil {
		return err
	}
	t.tax = rec.Decimal("tax", decimal.Zero)
	return validateFraction("tax", t.tax)
}

func (t *RefiningTask) writeFields(rec *record.Object) {
	if t.refinable != nil {
		rec.PutInt("ore", int64(t.refinable.ItemID))
	}
	rec.PutInt("amount", t.amount)
	rec.PutDecimal("efficiency", t.efficiency)
	rec.PutDecimal("tax", t.tax)
}

func validateFraction(field string, v decimal.Decimal) error {
	if v.IsNegative() || v.GreaterThan(decimal.NewFromInt(1)) {
		return shared.NewValidationError(field, "must be between 0 and 1")
	}
	return nil
}
