// Package metrics exports A* search statistics as Prometheus collectors.
//
// A Recorder owns one private registry holding every collector, so a command
// can dump the results of a batch with WriteTextfile without touching the
// global registry. Register additionally exposes the same collectors on any
// other Registerer (for example an HTTP handler's registry).
//
// Collectors, all under the Recorder's namespace and the "search" subsystem:
//
//   - searches_total{open_set,closed_set,phase}          counter
//   - expanded{open_set,closed_set}                      histogram
//   - nodes{open_set,closed_set}                         histogram
//   - duration_seconds{open_set,closed_set}              histogram
//   - path_cost{open_set,closed_set}                     gauge (last found path)
//   - index_collisions_total{set}, index_resizes_total{set} counters
//   - stale_entries_total                                counter (heap frontier)
package metrics

import (
	"errors"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/katalvlaran/tilestar/astar"
)

const subsystem = "search"

// Labels identifies the solver configuration of one observation.
type Labels struct {
	OpenSet   string
	ClosedSet string
}

func (l Labels) values() []string {
	return []string{orUnknown(l.OpenSet), orUnknown(l.ClosedSet)}
}

func orUnknown(s string) string {
	if s == "" {
		return "unknown"
	}

	return s
}

// Recorder turns astar.Stats into Prometheus samples. It is safe for
// concurrent use.
type Recorder struct {
	reg *prometheus.Registry

	searches   *prometheus.CounterVec
	expanded   *prometheus.HistogramVec
	nodes      *prometheus.HistogramVec
	duration   *prometheus.HistogramVec
	pathCost   *prometheus.GaugeVec
	collisions *prometheus.CounterVec
	resizes    *prometheus.CounterVec
	stale      prometheus.Counter
}

// NewRecorder builds the collectors under namespace and registers them on a
// private registry.
func NewRecorder(namespace string) *Recorder {
	cfg := []string{"open_set", "closed_set"}
	r := &Recorder{
		reg: prometheus.NewRegistry(),
		searches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "searches_total",
			Help:      "Searches run, by set implementations and final phase.",
		}, append(cfg, "phase")),
		expanded: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "expanded",
			Help:      "Configurations expanded per search.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
		}, cfg),
		nodes: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "nodes",
			Help:      "Search nodes held by the arena at the end of a search.",
			Buckets:   prometheus.ExponentialBuckets(1, 4, 12),
		}, cfg),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "duration_seconds",
			Help:      "Wall time per search.",
			Buckets:   prometheus.ExponentialBuckets(0.0001, 4, 12),
		}, cfg),
		pathCost: prometheus.NewGaugeVec(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "path_cost",
			Help:      "Cost of the last path found.",
		}, cfg),
		collisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "index_collisions_total",
			Help:      "Probe collisions in the hash indexes, by set.",
		}, []string{"set"}),
		resizes: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "index_resizes_total",
			Help:      "Hash index growths, by set.",
		}, []string{"set"}),
		stale: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: subsystem,
			Name:      "stale_entries_total",
			Help:      "Outdated heap entries discarded by the frontier.",
		}),
	}
	// a fresh registry cannot hold conflicting collectors
	if err := r.Register(r.reg); err != nil {
		panic(err)
	}

	return r
}

func (r *Recorder) collectors() []prometheus.Collector {
	return []prometheus.Collector{
		r.searches, r.expanded, r.nodes, r.duration, r.pathCost,
		r.collisions, r.resizes, r.stale,
	}
}

// Register exposes every collector on reg. Collectors already registered
// there are kept.
func (r *Recorder) Register(reg prometheus.Registerer) error {
	for _, c := range r.collectors() {
		if err := reg.Register(c); err != nil {
			var are prometheus.AlreadyRegisteredError
			if errors.As(err, &are) {
				continue
			}

			return err
		}
	}

	return nil
}

// Gatherer returns the private registry.
func (r *Recorder) Gatherer() prometheus.Gatherer { return r.reg }

// Observe records one finished search. cost is only used when phase is
// astar.PhaseSucceeded. The index counters stay zero unless the solver ran
// with statistics enabled.
func (r *Recorder) Observe(l Labels, phase astar.Phase, st astar.Stats, cost int64, d time.Duration) {
	lv := l.values()
	r.searches.WithLabelValues(append(lv, phase.String())...).Inc()
	r.expanded.WithLabelValues(lv...).Observe(float64(st.ClosedSize))
	r.nodes.WithLabelValues(lv...).Observe(float64(st.Nodes))
	r.duration.WithLabelValues(lv...).Observe(d.Seconds())
	if phase == astar.PhaseSucceeded {
		r.pathCost.WithLabelValues(lv...).Set(float64(cost))
	}
	r.collisions.WithLabelValues("open").Add(float64(st.Open.Collisions))
	r.collisions.WithLabelValues("closed").Add(float64(st.Closed.Collisions))
	r.resizes.WithLabelValues("open").Add(float64(st.Open.Resizes))
	r.resizes.WithLabelValues("closed").Add(float64(st.Closed.Resizes))
	r.stale.Add(float64(st.Open.Stale))
}

// WriteTextfile writes the private registry to path in the Prometheus text
// exposition format, atomically.
func (r *Recorder) WriteTextfile(path string) error {
	return prometheus.WriteToTextfile(path, r.reg)
}

// PathCost returns the path cost gauge of l.
func (r *Recorder) PathCost(l Labels) prometheus.Gauge {
	return r.pathCost.WithLabelValues(l.values()...)
}
