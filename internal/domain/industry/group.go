package industry

import (
	"errors"

	"github.com/shopspring/decimal"

	"github.com/andrescamacho/eveindustry-go/internal/domain/record"
	"github.com/andrescamacho/eveindustry-go/internal/domain/shared"
)

// ErrGroupCycle is returned when adding a task would make a group contain itself
var ErrGroupCycle = errors.New("group cannot contain itself")

// ErrDuplicateTask is returned when a task is added to a group that already holds it
var ErrDuplicateTask = errors.New("task is already in the group")

// GroupTask combines child tasks into a single production chain. Its raw
// materials are the children's netted materials, so intermediate goods one
// child produces and another consumes cancel out.
type GroupTask struct {
	Core

	tasks []Task
}

func newGroupTask(p DataProvider) (*GroupTask, error) {
	t := &GroupTask{}
	if err := t.bind(p, KindGroup, t); err != nil {
		return nil, err
	}
	return t, nil
}

// NewGroupTask creates a group of the given tasks
func NewGroupTask(p DataProvider, tasks ...Task) (*GroupTask, error) {
	t, err := newGroupTask(p)
	if err != nil {
		return nil, err
	}
	for _, child := range tasks {
		if err := t.attach(child); err != nil {
			t.detachAll()
			return nil, err
		}
	}
	t.updateMaterials()
	return t, nil
}

// Tasks returns the child tasks in order
func (t *GroupTask) Tasks() []Task {
	out := make([]Task, len(t.tasks))
	copy(out, t.tasks)
	return out
}

// AddTask appends a child task. A task can be a direct child only once.
func (t *GroupTask) AddTask(child Task) error {
	if err := t.attach(child); err != nil {
		return err
	}
	t.updateMaterials()
	return nil
}

// RemoveTask removes a child task. It reports whether the task was a child.
func (t *GroupTask) RemoveTask(child Task) bool {
	for i, existing := range t.tasks {
		if existing == child {
			child.UnregisterListener(t)
			t.tasks = append(t.tasks[:i:i], t.tasks[i+1:]...)
			t.updateMaterials()
			return true
		}
	}
	return false
}

// OnMaterialSetChanged re-nets the group whenever a child's materials change
func (t *GroupTask) OnMaterialSetChanged(Task) {
	t.updateMaterials()
}

// Duration is the longest child duration
func (t *GroupTask) Duration() int {
	longest := 0
	for _, child := range t.tasks {
		if d := child.Duration(); d > longest {
			longest = d
		}
	}
	return longest
}

// ExtraExpense is the sum of the children's extra expenses
func (t *GroupTask) ExtraExpense() decimal.Decimal {
	sum := decimal.Zero
	for _, child := range t.tasks {
		sum = sum.Add(child.ExtraExpense())
	}
	return sum
}

func (t *GroupTask) attach(child Task) error {
	if child == nil {
		return shared.NewValidationError("task", "is required")
	}
	if t.contains(child) {
		return ErrGroupCycle
	}
	for _, existing := range t.tasks {
		if existing == child {
			return ErrDuplicateTask
		}
	}
	child.RegisterListener(t)
	t.tasks = append(t.tasks, child)
	return nil
}

func (t *GroupTask) detachAll() {
	for _, child := range t.tasks {
		child.UnregisterListener(t)
	}
	t.tasks = nil
}

// contains reports whether child is t itself or a group t is nested in
func (t *GroupTask) contains(child Task) bool {
	g, ok := child.(*GroupTask)
	if !ok {
		return false
	}
	if g == t {
		return true
	}
	for _, c := range g.tasks {
		if t.contains(c) {
			return true
		}
	}
	return false
}

func (t *GroupTask) rawProducedMaterials() []shared.ItemStack {
	var out []shared.ItemStack
	for _, child := range t.tasks {
		out = append(out, child.ProducedMaterials()...)
	}
	return out
}

func (t *GroupTask) rawRequiredMaterials() []shared.ItemStack {
	var out []shared.ItemStack
	for _, child := range t.tasks {
		out = append(out, child.RequiredMaterials()...)
	}
	return out
}

func (t *GroupTask) loadRecord(rec *record.Object) error {
	for _, childRec := range rec.Objects("task") {
		child, err := Load(t.provider, childRec)
		if err != nil {
			t.detachAll()
			return err
		}
		if err := t.attach(child); err != nil {
			t.detachAll()
			return err
		}
	}
	return nil
}

func (t *GroupTask) writeFields(rec *record.Object) {
	for _, child := range t.tasks {
		rec.PutObject("task", Save(child))
	}
}
