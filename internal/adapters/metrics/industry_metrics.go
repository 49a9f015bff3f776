package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/andrescamacho/eveindustry-go/internal/domain/industry"
)

// IndustryMetricsCollector records task material set changes. It is an
// industry.Listener and is registered on every task the application loads.
type IndustryMetricsCollector struct {
	materialSetChangesTotal *prometheus.CounterVec
	tasksLoadedTotal        *prometheus.CounterVec
	producedMaterials       *prometheus.GaugeVec
	requiredMaterials       *prometheus.GaugeVec
	profitISK               *prometheus.GaugeVec
}

var _ industry.Listener = (*IndustryMetricsCollector)(nil)

// NewIndustryMetricsCollector creates a collector under namespace
func NewIndustryMetricsCollector(namespace string) *IndustryMetricsCollector {
	if namespace == "" {
		namespace = DefaultNamespace
	}
	return &IndustryMetricsCollector{
		materialSetChangesTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "material_set_changes_total",
				Help:      "Number of material set recomputations by task kind",
			},
			[]string{"kind"},
		),

		tasksLoadedTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "tasks_loaded_total",
				Help:      "Number of tasks restored from records by task kind",
			},
			[]string{"kind"},
		),

		producedMaterials: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "produced_materials",
				Help:      "Distinct produced materials after the latest netting",
			},
			[]string{"kind"},
		),

		requiredMaterials: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "required_materials",
				Help:      "Distinct required materials after the latest netting",
			},
			[]string{"kind"},
		),

		profitISK: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: namespace,
				Subsystem: subsystem,
				Name:      "profit_isk",
				Help:      "Profit of the most recently changed task in ISK",
			},
			[]string{"kind"},
		),
	}
}

// Register registers every metric with reg, or with the global Registry when
// reg is nil. It is a no-op when neither is set.
func (c *IndustryMetricsCollector) Register(reg prometheus.Registerer) error {
	if reg == nil {
		if Registry == nil {
			return nil // Metrics not enabled
		}
		reg = Registry
	}

	for _, metric := range []prometheus.Collector{
		c.materialSetChangesTotal,
		c.tasksLoadedTotal,
		c.producedMaterials,
		c.requiredMaterials,
		c.profitISK,
	} {
		if err := reg.Register(metric); err != nil {
			return err
		}
	}
	return nil
}

// OnMaterialSetChanged implements industry.Listener
func (c *IndustryMetricsCollector) OnMaterialSetChanged(task industry.Task) {
	kind := string(task.Kind())
	c.materialSetChangesTotal.WithLabelValues(kind).Inc()
	c.observe(kind, task)
}

// RecordTaskLoaded records a task restored from a record
func (c *IndustryMetricsCollector) RecordTaskLoaded(task industry.Task) {
	kind := string(task.Kind())
	c.tasksLoadedTotal.WithLabelValues(kind).Inc()
	c.observe(kind, task)
}

func (c *IndustryMetricsCollector) observe(kind string, task industry.Task) {
	c.producedMaterials.WithLabelValues(kind).Set(float64(len(task.ProducedMaterials())))
	c.requiredMaterials.WithLabelValues(kind).Set(float64(len(task.RequiredMaterials())))
	c.profitISK.WithLabelValues(kind).Set(task.Profit().InexactFloat64())
}

// MaterialSetChanges returns the change counter of a task kind
func (c *IndustryMetricsCollector) MaterialSetChanges(kind string) prometheus.Counter {
	return c.materialSetChangesTotal.WithLabelValues(kind)
}

// TasksLoaded returns the load counter of a task kind
func (c *IndustryMetricsCollector) TasksLoaded(kind string) prometheus.Counter {
	return c.tasksLoadedTotal.WithLabelValues(kind)
}

// Profit returns the profit gauge of a task kind
func (c *IndustryMetricsCollector) Profit(kind string) prometheus.Gauge {
	return c.profitISK.WithLabelValues(kind)
}
