package cli

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/andrescamacho/eveindustry-go/internal/domain/industry"
)

// TreeFormatter renders a task and, for groups, its children as a tree
type TreeFormatter struct {
	useColors bool
}

// NewTreeFormatter creates a new tree formatter
func NewTreeFormatter(useColors bool) *TreeFormatter {
	return &TreeFormatter{useColors: useColors}
}

// FormatTree renders task with one line per task
func (f *TreeFormatter) FormatTree(root industry.Task) string {
	if root == nil {
		return "(empty tree)"
	}

	var builder strings.Builder
	f.formatNode(&builder, root, "", true, true)
	return builder.String()
}

func (f *TreeFormatter) formatNode(builder *strings.Builder, task industry.Task, prefix string, isLast, isRoot bool) {
	var linePrefix string
	if isRoot {
		linePrefix = ""
	} else if isLast {
		linePrefix = prefix + "└── "
	} else {
		linePrefix = prefix + "├── "
	}

	fmt.Fprintf(builder, "%s%s %s [%s] profit %s%s%s\n",
		linePrefix,
		task.Kind(),
		describeTask(task),
		formatDuration(task.Duration()),
		f.profitColor(task),
		task.Profit().StringFixed(2),
		f.colorReset(),
	)

	children := childrenOf(task)
	if len(children) == 0 {
		return
	}

	var childPrefix string
	if isRoot {
		childPrefix = ""
	} else if isLast {
		childPrefix = prefix + "    "
	} else {
		childPrefix = prefix + "│   "
	}
	for i, child := range children {
		f.formatNode(builder, child, childPrefix, i == len(children)-1, false)
	}
}

func (f *TreeFormatter) profitColor(task industry.Task) string {
	if !f.useColors {
		return ""
	}
	if task.Profit().IsNegative() {
		return "\033[31m" // Red
	}
	return "\033[32m" // Green
}

func (f *TreeFormatter) colorReset() string {
	if !f.useColors {
		return ""
	}
	return "\033[0m"
}

// FormatTreeSummary counts the tasks of the tree by kind
func (f *TreeFormatter) FormatTreeSummary(root industry.Task) string {
	if root == nil {
		return "No task tree"
	}

	counts := make(map[industry.Kind]int)
	total, depth := countTasks(root, counts, 1)

	kinds := make([]string, 0, len(counts))
	for kind, n := range counts {
		kinds = append(kinds, fmt.Sprintf("%d %s", n, kind))
	}
	sort.Strings(kinds)

	return fmt.Sprintf("Tree: %d tasks (%s), depth=%d", total, strings.Join(kinds, ", "), depth)
}

func countTasks(task industry.Task, counts map[industry.Kind]int, level int) (total, depth int) {
	counts[task.Kind()]++
	total, depth = 1, level
	for _, child := range childrenOf(task) {
		n, d := countTasks(child, counts, level+1)
		total += n
		if d > depth {
			depth = d
		}
	}
	return total, depth
}

func childrenOf(task industry.Task) []industry.Task {
	if group, ok := task.(*industry.GroupTask); ok {
		return group.Tasks()
	}
	return nil
}

func describeTask(task industry.Task) string {
	switch t := task.(type) {
	case *industry.ManufacturingTask:
		return fmt.Sprintf("blueprint %d x%d (ME %d, TE %d)",
			t.Blueprint().ID, t.Runs(), t.EffectiveMaterialEfficiency(), t.EffectiveTimeEfficiency())
	case *industry.RefiningTask:
		return fmt.Sprintf("item %d x%d (%d batches)", t.Refinable().ItemID, t.Amount(), t.Batches())
	case *industry.ReactionTask:
		return fmt.Sprintf("reaction %d x%d", t.Reaction().ID, t.Runs())
	case *industry.PlanetTask:
		return fmt.Sprintf("schematic %d x%d", t.Schematic().ID, t.Runs())
	case *industry.GroupTask:
		return fmt.Sprintf("%d tasks", len(t.Tasks()))
	default:
		return ""
	}
}

func formatDuration(seconds int) string {
	return (time.Duration(seconds) * time.Second).String()
}
