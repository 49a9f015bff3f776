package industry

import (
	"sync"

	"github.com/andrescamacho/eveindustry-go/internal/domain/record"
	"github.com/andrescamacho/eveindustry-go/internal/domain/shared"
)

const kindStub Kind = "stub"

// stubTask exposes raw material lists directly so netting can be exercised
// without a catalog
type stubTask struct {
	Core

	produced []shared.ItemStack
	required []shared.ItemStack
	duration int
}

func newStubTask(p DataProvider) *stubTask {
	t := &stubTask{}
	if err := t.bind(p, kindStub, t); err != nil {
		panic(err)
	}
	return t
}

func (t *stubTask) setMaterials(produced, required []shared.ItemStack) {
	t.produced = produced
	t.required = required
	t.updateMaterials()
}

func (t *stubTask) Duration() int                            { return t.duration }
func (t *stubTask) rawProducedMaterials() []shared.ItemStack { return t.produced }
func (t *stubTask) rawRequiredMaterials() []shared.ItemStack { return t.required }
func (t *stubTask) loadRecord(*record.Object) error          { return nil }
func (t *stubTask) writeFields(*record.Object)               {}

type recordingListener struct {
	mu    sync.Mutex
	calls []Task
}

func (l *recordingListener) OnMaterialSetChanged(task Task) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.calls = append(l.calls, task)
}

func (l *recordingListener) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.calls)
}

// orderListener appends its name to a shared log when notified
type orderListener struct {
	name string
	log  *[]string
}

func (l *orderListener) OnMaterialSetChanged(Task) {
	*l.log = append(*l.log, l.name)
}

// sliceListener has an incomparable dynamic type
type sliceListener []string

func (sliceListener) OnMaterialSetChanged(Task) {}

// boxedListener is a comparable type whose value may hold an incomparable one
type boxedListener struct {
	payload interface{}
}

func (boxedListener) OnMaterialSetChanged(Task) {}
