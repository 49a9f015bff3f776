package industry

import (
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/eveindustry-go/internal/domain/market"
	"github.com/andrescamacho/eveindustry-go/internal/domain/shared"
	"github.com/andrescamacho/eveindustry-go/test/helpers/mockprovider"
)

func TestTask_IncomeExpenseProfit(t *testing.T) {
	// Arrange
	p := mockprovider.New()
	a := p.AddItem(1, "A")
	b := p.AddItem(2, "B")
	sell := market.Default(mockprovider.JitaSystemID)
	p.SetPrice(a.ID, sell, decimal.RequireFromString("12.5"))
	p.SetPrice(b.ID, sell, decimal.RequireFromString("3.1"))
	task := newStubTask(p)

	// Act
	task.setMaterials([]shared.ItemStack{stack(a, 4)}, []shared.ItemStack{stack(b, 10)})

	// Assert
	assert.True(t, decimal.NewFromInt(50).Equal(task.Income()))
	assert.True(t, decimal.NewFromInt(31).Equal(task.Expense()))
	assert.True(t, decimal.NewFromInt(19).Equal(task.Profit()))
}

func TestTask_ManualMarketUsesManualPrice(t *testing.T) {
	// Arrange
	p := mockprovider.New()
	a := p.AddItem(1, "A")
	task := newStubTask(p)
	task.setMaterials([]shared.ItemStack{stack(a, 3)}, nil)

	// Act
	task.SetMaterialMarket(a, market.Manual(mockprovider.JitaSystemID, decimal.RequireFromString("0.1")))

	// Assert
	assert.True(t, decimal.RequireFromString("0.1").Equal(task.MaterialUnitPrice(a)))
	assert.True(t, decimal.RequireFromString("0.3").Equal(task.Income()), "decimal arithmetic stays exact")
}

func TestTask_UnassignedMarketContributesZero(t *testing.T) {
	// Arrange
	p := mockprovider.New()
	a := p.AddItem(1, "A")
	b := p.AddItem(2, "B")
	p.SetPrice(b.ID, p.DefaultRequiredMarket(), decimal.NewFromInt(7))
	task := newStubTask(p)
	task.setMaterials(nil, []shared.ItemStack{stack(a, 5), stack(b, 1)})
	task.marketsMu.Lock()
	delete(task.markets, a.ID)
	task.marketsMu.Unlock()
	lookups := p.PriceLookups()

	// Act
	expense := task.Expense()

	// Assert
	assert.True(t, decimal.NewFromInt(7).Equal(expense))
	assert.True(t, task.MaterialPrice(stack(a, 5)).IsZero())
	assert.Equal(t, lookups+1, p.PriceLookups(), "no price lookup for an item without a market")
}

func TestTask_SetMaterialMarketDoesNotNotify(t *testing.T) {
	// Arrange
	p := mockprovider.New()
	a := p.AddItem(1, "A")
	task := newStubTask(p)
	task.setMaterials([]shared.ItemStack{stack(a, 1)}, nil)
	listener := &recordingListener{}
	task.RegisterListener(listener)

	// Act
	task.SetMaterialMarket(a, market.Manual(1, decimal.NewFromInt(1)))

	// Assert
	assert.Zero(t, listener.count())
}

func TestTask_RegisterListenerIsIdempotent(t *testing.T) {
	// Arrange
	p := mockprovider.New()
	task := newStubTask(p)
	listener := &recordingListener{}

	// Act
	task.RegisterListener(listener)
	task.RegisterListener(listener)
	task.RegisterListener(nil)
	task.updateMaterials()

	// Assert
	assert.Equal(t, 1, listener.count())
}

func TestTask_UnregisterListener(t *testing.T) {
	// Arrange
	p := mockprovider.New()
	task := newStubTask(p)
	kept := &recordingListener{}
	removed := &recordingListener{}
	task.RegisterListener(kept)
	task.RegisterListener(removed)

	// Act
	task.UnregisterListener(removed)
	task.UnregisterListener(&recordingListener{})
	task.UnregisterListener(nil)
	task.updateMaterials()

	// Assert
	assert.Equal(t, 1, kept.count())
	assert.Zero(t, removed.count())
}

func TestTask_IncomparableListenersAreIgnored(t *testing.T) {
	// Arrange
	p := mockprovider.New()
	task := newStubTask(p)
	kept := &recordingListener{}
	task.RegisterListener(kept)

	// Act
	assert.NotPanics(t, func() {
		task.RegisterListener(sliceListener{"a"})
		task.RegisterListener(sliceListener{"b"})
		task.RegisterListener(boxedListener{payload: []int{1}})
		task.UnregisterListener(sliceListener{"a"})
		task.UnregisterListener(boxedListener{payload: []int{1}})
		task.updateMaterials()
	})

	// Assert
	assert.Len(t, task.listeners, 1)
	assert.Equal(t, 1, kept.count())
}

func TestTask_ComparableValueListenersAreIdentifiedByValue(t *testing.T) {
	// Arrange
	p := mockprovider.New()
	task := newStubTask(p)

	// Act
	task.RegisterListener(boxedListener{payload: "metrics"})
	task.RegisterListener(boxedListener{payload: "metrics"})
	task.RegisterListener(boxedListener{payload: 7})
	task.UnregisterListener(boxedListener{payload: 7})

	// Assert
	assert.Equal(t, []Listener{boxedListener{payload: "metrics"}}, task.listeners)
}

func TestTask_ListenersNotifiedInRegistrationOrder(t *testing.T) {
	// Arrange
	p := mockprovider.New()
	task := newStubTask(p)
	var log []string
	for _, name := range []string{"first", "second", "third"} {
		task.RegisterListener(&orderListener{name: name, log: &log})
	}

	// Act
	task.updateMaterials()

	// Assert
	assert.Equal(t, []string{"first", "second", "third"}, log)
}

func TestTask_ConcurrentListenerRegistration(t *testing.T) {
	p := mockprovider.New()
	a := p.AddItem(1, "A")
	task := newStubTask(p)
	task.setMaterials([]shared.ItemStack{stack(a, 1)}, nil)

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l := &recordingListener{}
			for j := 0; j < 50; j++ {
				task.RegisterListener(l)
				_ = task.ProducedMaterials()
				_ = task.MaterialMarkets()
				task.UnregisterListener(l)
			}
		}()
	}
	for i := 0; i < 20; i++ {
		task.updateMaterials()
	}
	wg.Wait()

	assert.Equal(t, []shared.ItemStack{stack(a, 1)}, task.ProducedMaterials())
}

func TestTask_MaterialSetsAreCopies(t *testing.T) {
	// Arrange
	p := mockprovider.New()
	a := p.AddItem(1, "A")
	task := newStubTask(p)
	task.setMaterials([]shared.ItemStack{stack(a, 2)}, nil)

	// Act
	produced := task.ProducedMaterials()
	produced[0].Amount = 99
	markets := task.MaterialMarkets()
	delete(markets, a.ID)

	// Assert
	assert.Equal(t, int64(2), task.ProducedMaterials()[0].Amount)
	_, ok := task.MaterialMarket(a)
	assert.True(t, ok)
}

func TestTask_NilProviderIsRejected(t *testing.T) {
	cases := map[string]func() error{
		"manufacturing": func() error { _, err := NewManufacturingTask(nil, nil, 1); return err },
		"refining":      func() error { _, err := NewRefiningTask(nil, nil, 0); return err },
		"reaction":      func() error { _, err := NewReactionTask(nil, nil, 1); return err },
		"planet":        func() error { _, err := NewPlanetTask(nil, nil, 1); return err },
		"group":         func() error { _, err := NewGroupTask(nil); return err },
		"typed nil":     func() error { _, err := NewGroupTask((*mockprovider.Provider)(nil)); return err },
	}
	for name, build := range cases {
		t.Run(name, func(t *testing.T) {
			err := build()
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrIllegalState)
			assert.ErrorIs(t, err, ErrDataProviderMissing)
		})
	}
}
