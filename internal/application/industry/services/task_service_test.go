package services_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/andrescamacho/eveindustry-go/internal/adapters/persistence"
	"github.com/andrescamacho/eveindustry-go/internal/adapters/recordyaml"
	"github.com/andrescamacho/eveindustry-go/internal/application/industry/services"
	"github.com/andrescamacho/eveindustry-go/internal/domain/catalog"
	"github.com/andrescamacho/eveindustry-go/internal/domain/industry"
	"github.com/andrescamacho/eveindustry-go/internal/domain/market"
	"github.com/andrescamacho/eveindustry-go/test/helpers"
	"github.com/andrescamacho/eveindustry-go/test/helpers/mockprovider"
)

const manufacturingYAML = `task:
  type: manufacturing
  blueprint: 691
  runs: 10
`

type recordingObserver struct {
	mu      sync.Mutex
	loaded  []industry.Task
	changed int
}

func (o *recordingObserver) OnMaterialSetChanged(industry.Task) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.changed++
}

func (o *recordingObserver) RecordTaskLoaded(task industry.Task) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.loaded = append(o.loaded, task)
}

func newProvider() *mockprovider.Provider {
	p := mockprovider.New()
	p.AddItem(34, "Tritanium")
	p.AddItem(35, "Pyerite")
	p.AddItem(587, "Rifter")
	p.AddBlueprint(&catalog.Blueprint{
		ID:      691,
		Product: catalog.Material{ItemID: 587, Amount: 1},
		Materials: []catalog.Material{
			{ItemID: 34, Amount: 100},
			{ItemID: 35, Amount: 1},
		},
		Time: 3600,
	})
	jita := market.Default(mockprovider.JitaSystemID)
	p.SetPrice(587, jita, decimal.NewFromInt(500000))
	p.SetPrice(34, jita, decimal.NewFromInt(5))
	p.SetPrice(35, jita, decimal.NewFromInt(10))
	return p
}

func newService(t *testing.T, observers ...services.TaskObserver) *services.TaskService {
	t.Helper()
	repo := persistence.NewGormTaskDocumentRepository(helpers.NewTestDB(t))
	return services.NewTaskService(newProvider(), recordyaml.Codec{}, repo, observers...)
}

func TestTaskService_DecodeAttachesObservers(t *testing.T) {
	// Arrange
	observer := &recordingObserver{}
	svc := newService(t, observer)

	// Act
	task, err := svc.Decode(context.Background(), []byte(manufacturingYAML))

	// Assert
	require.NoError(t, err)
	assert.Equal(t, industry.KindManufacturing, task.Kind())
	require.Len(t, observer.loaded, 1)
	assert.Same(t, task, observer.loaded[0])

	require.NoError(t, task.(*industry.ManufacturingTask).SetRuns(2))
	assert.Equal(t, 1, observer.changed)
}

func TestTaskService_DecodeRejectsOtherRecords(t *testing.T) {
	svc := newService(t)

	_, err := svc.Decode(context.Background(), []byte("blueprint:\n  id: 691\n"))

	assert.ErrorIs(t, err, services.ErrUnexpectedRecord)
}

func TestTaskService_DecodeSurfacesLoadErrors(t *testing.T) {
	svc := newService(t)

	_, err := svc.Decode(context.Background(), []byte("task:\n  type: manufacturing\n  blueprint: 1\n"))

	require.Error(t, err)
	assert.True(t, industry.IsTaskLoad(err))
}

func TestTaskService_FileRoundTrip(t *testing.T) {
	// Arrange
	ctx := context.Background()
	svc := newService(t)
	dir := t.TempDir()
	in := filepath.Join(dir, "in.yaml")
	out := filepath.Join(dir, "out.yaml")
	require.NoError(t, os.WriteFile(in, []byte(manufacturingYAML), 0o644))

	// Act
	task, err := svc.ImportFile(ctx, in)
	require.NoError(t, err)
	require.NoError(t, svc.ExportFile(ctx, task, out))
	restored, err := svc.ImportFile(ctx, out)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, task.ProducedMaterials(), restored.ProducedMaterials())
	assert.Equal(t, task.RequiredMaterials(), restored.RequiredMaterials())
	restoredMarkets := restored.MaterialMarkets()
	require.Len(t, restoredMarkets, len(task.MaterialMarkets()))
	for id, m := range task.MaterialMarkets() {
		assert.True(t, m.Equal(restoredMarkets[id]), "market of item %d", id)
	}
}

func TestTaskService_ImportFileMissing(t *testing.T) {
	svc := newService(t)

	_, err := svc.ImportFile(context.Background(), filepath.Join(t.TempDir(), "missing.yaml"))

	assert.ErrorContains(t, err, "failed to read task file")
}

func TestTaskService_StoreRestoreListDelete(t *testing.T) {
	// Arrange
	ctx := context.Background()
	svc := newService(t)
	task, err := svc.Decode(ctx, []byte(manufacturingYAML))
	require.NoError(t, err)

	// Act
	doc, err := svc.Store(ctx, "rifters", task)
	require.NoError(t, err)
	restored, restoredDoc, err := svc.Restore(ctx, doc.ID)
	require.NoError(t, err)
	docs, err := svc.List(ctx)
	require.NoError(t, err)

	// Assert
	assert.NotEmpty(t, doc.ID)
	assert.Equal(t, industry.KindManufacturing, doc.Kind)
	assert.Equal(t, "rifters", restoredDoc.Name)
	assert.True(t, task.Profit().Equal(restored.Profit()))
	require.Len(t, docs, 1)
	assert.Equal(t, doc.ID, docs[0].ID)

	require.NoError(t, svc.Delete(ctx, doc.ID))
	_, _, err = svc.Restore(ctx, doc.ID)
	assert.ErrorIs(t, err, industry.ErrDocumentNotFound)
}

func TestTaskService_ReplaceUpdatesBody(t *testing.T) {
	// Arrange
	ctx := context.Background()
	svc := newService(t)
	task, err := svc.Decode(ctx, []byte(manufacturingYAML))
	require.NoError(t, err)
	doc, err := svc.Store(ctx, "rifters", task)
	require.NoError(t, err)

	// Act
	require.NoError(t, task.(*industry.ManufacturingTask).SetRuns(1))
	_, err = svc.Replace(ctx, doc.ID, task)
	require.NoError(t, err)
	restored, _, err := svc.Restore(ctx, doc.ID)

	// Assert
	require.NoError(t, err)
	assert.Equal(t, 1, restored.(*industry.ManufacturingTask).Runs())
}

func TestTaskService_WithoutRepository(t *testing.T) {
	svc := services.NewTaskService(newProvider(), recordyaml.Codec{}, nil)

	_, err := svc.List(context.Background())

	assert.ErrorIs(t, err, industry.ErrIllegalState)
}

func TestSummarize_PricesEveryLine(t *testing.T) {
	// Arrange
	svc := newService(t)
	task, err := svc.Decode(context.Background(), []byte(manufacturingYAML))
	require.NoError(t, err)

	// Act
	summary := svc.Summarize(task)

	// Assert
	assert.Equal(t, industry.KindManufacturing, summary.Kind)
	assert.Equal(t, 36000, summary.Duration)
	require.Len(t, summary.Produced, 1)
	assert.Equal(t, int64(10), summary.Produced[0].Amount)
	assert.True(t, summary.Produced[0].HasMarket)
	assert.True(t, decimal.NewFromInt(5000000).Equal(summary.Produced[0].Total))
	require.Len(t, summary.Required, 2)
	assert.Equal(t, 34, summary.Required[0].Item.ID)
	assert.True(t, decimal.NewFromInt(5).Equal(summary.Required[0].UnitPrice))
	assert.True(t, decimal.NewFromInt(5100).Equal(summary.Expense))
	assert.True(t, decimal.NewFromInt(4994900).Equal(summary.Profit))
}
