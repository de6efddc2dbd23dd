// Package metrics counts what the engines do: committed operations per
// structure and AVL rotations per case. Engines depend on the Recorder
// interface only; the Prometheus implementation is wired by the CLI.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Rotation case labels.
const (
	RotationLL = "left-left"
	RotationRR = "right-right"
	RotationLR = "left-right"
	RotationRL = "right-left"
)

// Recorder receives engine events.
type Recorder interface {
	// Operation counts one committed command on a structure
	// ("avl", "list", "hash", "graph"); op is e.g. "insert", "undo".
	Operation(structure, op string)

	// Rotation counts one rebalancing case.
	Rotation(kind string)
}

// Nop discards every event.
type Nop struct{}

func (Nop) Operation(string, string) {}
func (Nop) Rotation(string)          {}

// Prometheus is a Recorder backed by two counter vectors.
type Prometheus struct {
	operations *prometheus.CounterVec
	rotations  *prometheus.CounterVec
}

// NewPrometheus creates the counters and registers them on reg.
// A nil reg leaves them unregistered, which is handy in tests.
func NewPrometheus(reg prometheus.Registerer) *Prometheus {
	p := &Prometheus{
		operations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dsviz",
			Name:      "operations_total",
			Help:      "Committed commands per data structure.",
		}, []string{"structure", "op"}),
		rotations: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "dsviz",
			Name:      "avl_rotations_total",
			Help:      "AVL rebalancing cases applied.",
		}, []string{"case"}),
	}
	if reg != nil {
		reg.MustRegister(p.operations, p.rotations)
	}

	return p
}

// Operation implements Recorder.
func (p *Prometheus) Operation(structure, op string) {
	p.operations.WithLabelValues(structure, op).Inc()
}

// Rotation implements Recorder.
func (p *Prometheus) Rotation(kind string) {
	p.rotations.WithLabelValues(kind).Inc()
}
