package industry

import (
	"sort"

	"github.com/andrescamacho/eveindustry-go/internal/domain/market"
	"github.com/andrescamacho/eveindustry-go/internal/domain/record"
)

// Kind is the type tag a task is persisted under
type Kind string

const (
	KindManufacturing Kind = "manufacturing"
	KindRefining      Kind = "refining"
	KindReaction      Kind = "reaction"
	KindPlanet        Kind = "planet"
	KindGroup         Kind = "group"
)

// constructor builds a default instance of a variant
type constructor func(p DataProvider) (variant, error)

// Used for loading/saving tasks from/to records. Populated once by init and
// never modified afterwards.
var (
	taskTypes = map[Kind]constructor{}
	taskNames = map[string]Kind{}
)

func registerTaskType(kind Kind, ctor constructor) {
	taskTypes[kind] = ctor
	taskNames[string(kind)] = kind
}

func init() {
	registerTaskType(KindManufacturing, func(p DataProvider) (variant, error) { return newManufacturingTask(p) })
	registerTaskType(KindRefining, func(p DataProvider) (variant, error) { return newRefiningTask(p) })
	registerTaskType(KindReaction, func(p DataProvider) (variant, error) { return newReactionTask(p) })
	registerTaskType(KindPlanet, func(p DataProvider) (variant, error) { return newPlanetTask(p) })
	registerTaskType(KindGroup, func(p DataProvider) (variant, error) { return newGroupTask(p) })
}

// ParseKind resolves a type tag
func ParseKind(tag string) (Kind, bool) {
	k, ok := taskNames[tag]
	return k, ok
}

// Kinds returns every registered type tag in sorted order
func Kinds() []Kind {
	out := make([]Kind, 0, len(taskTypes))
	for k := range taskTypes {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })
	return out
}

// Load builds a task from a record. Market overrides whose item the provider
// does not know are skipped. Any other failure aborts the load with a
// *TaskLoadError and no task is returned.
func Load(p DataProvider, rec *record.Object) (Task, error) {
	tag := rec.String("type", "")
	if p == nil {
		return nil, newTaskLoadError(Kind(tag), "data provider not set", ErrDataProviderMissing)
	}
	kind, ok := ParseKind(tag)
	if !ok {
		return nil, newTaskLoadError(Kind(tag), "unknown task type", nil)
	}

	task, err := taskTypes[kind](p)
	if err != nil {
		return nil, newTaskLoadError(kind, "cannot instantiate task", err)
	}

	c := task.core()
	for _, m := range rec.Objects("market") {
		item, ok := p.Item(m.Int("item", -1))
		if !ok {
			continue
		}
		c.SetMaterialMarket(item, market.FromRecord(m, p.DefaultSolarSystem()))
	}

	if err := task.loadRecord(rec); err != nil {
		if IsTaskLoad(err) {
			return nil, err
		}
		return nil, newTaskLoadError(kind, "invalid task attributes", err)
	}

	c.updateMaterials()
	return task, nil
}

// Save writes task into a new record
func Save(task Task) *record.Object {
	rec := record.New()
	task.WriteRecord(rec)
	return rec
}
