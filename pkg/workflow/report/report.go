package report

import (
	"fmt"
	"io"
	"sort"
	"sync"

	"github.com/haroldcampos/biztalk-migrator/pkg/registry"
)

// Collector receives mapping events. Implementations must be safe for
// concurrent use: one collector is typically shared by all runs of a batch.
type Collector interface {
	// RecordWorkflow is called once per mapping run.
	RecordWorkflow(name, classification string)
	// RecordAction is called for every action added to a produced tree.
	RecordAction(actionType string)
	// RecordComponent is called with the resolved mapping of every
	// dispatched component.
	RecordComponent(mapping registry.ComponentMapping)
}

// Summary is a point-in-time snapshot of collected statistics.
type Summary struct {
	Workflows        int
	Actions          int
	ActionsByType    map[string]int
	ByComplexity     map[registry.Complexity]int
	CustomCode       []string
	Unknown          []string
	RequiredServices []string
}

// Default is the standard Collector implementation.
type Default struct {
	mu               sync.Mutex
	workflows        int
	actions          int
	actionsByType    map[string]int
	byComplexity     map[registry.Complexity]int
	customCode       map[string]struct{}
	unknown          map[string]struct{}
	requiredServices map[string]struct{}
}

// NewDefault creates an empty collector.
func NewDefault() *Default {
	return &Default{
		actionsByType:    make(map[string]int),
		byComplexity:     make(map[registry.Complexity]int),
		customCode:       make(map[string]struct{}),
		unknown:          make(map[string]struct{}),
		requiredServices: make(map[string]struct{}),
	}
}

func (d *Default) RecordWorkflow(name, classification string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.workflows++
}

func (d *Default) RecordAction(actionType string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.actions++
	d.actionsByType[actionType]++
}

func (d *Default) RecordComponent(mapping registry.ComponentMapping) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.byComplexity[mapping.Complexity]++

	if mapping.CustomCodeRequired {
		d.customCode[mapping.DisplayName] = struct{}{}
	}
	if mapping.DisplayName == "Unknown Component" {
		d.unknown[mapping.Identity] = struct{}{}
	}
	for _, service := range mapping.RequiredResources {
		d.requiredServices[service] = struct{}{}
	}
}

// Summary snapshots the collected statistics.
func (d *Default) Summary() Summary {
	d.mu.Lock()
	defer d.mu.Unlock()

	s := Summary{
		Workflows:        d.workflows,
		Actions:          d.actions,
		ActionsByType:    make(map[string]int, len(d.actionsByType)),
		ByComplexity:     make(map[registry.Complexity]int, len(d.byComplexity)),
		CustomCode:       sortedKeys(d.customCode),
		Unknown:          sortedKeys(d.unknown),
		RequiredServices: sortedKeys(d.requiredServices),
	}
	for k, v := range d.actionsByType {
		s.ActionsByType[k] = v
	}
	for k, v := range d.byComplexity {
		s.ByComplexity[k] = v
	}

	return s
}

var _ Collector = (*Default)(nil)

func sortedKeys(set map[string]struct{}) []string {
	keys := make([]string, 0, len(set))
	for k := range set {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	return keys
}

// complexityOrder fixes the rendering order of complexity buckets.
var complexityOrder = []registry.Complexity{
	registry.ComplexityLow,
	registry.ComplexityMedium,
	registry.ComplexityHigh,
	registry.ComplexityVariable,
}

// Render writes a human-readable migration summary.
func (s Summary) Render(w io.Writer, reg *registry.Registry) error {
	if _, err := fmt.Fprintf(w, "Workflows mapped: %d\nActions produced: %d\n", s.Workflows, s.Actions); err != nil {
		return err
	}

	if len(s.ByComplexity) > 0 {
		fmt.Fprintln(w, "\nComponents by migration complexity:")
		for _, level := range complexityOrder {
			count, ok := s.ByComplexity[level]
			if !ok {
				continue
			}
			fmt.Fprintf(w, "  %-8s %3d  %s\n", level, count, reg.ComplexityDescription(level))
		}
	}

	if len(s.CustomCode) > 0 {
		fmt.Fprintln(w, "\nComponents requiring custom code:")
		for _, name := range s.CustomCode {
			fmt.Fprintf(w, "  - %s\n", name)
		}
	}

	if len(s.Unknown) > 0 {
		fmt.Fprintln(w, "\nUnmapped components (manual assessment required):")
		for _, identity := range s.Unknown {
			fmt.Fprintf(w, "  - %s\n", identity)
		}
	}

	if len(s.RequiredServices) > 0 {
		fmt.Fprintln(w, "\nRequired target services:")
		for _, service := range s.RequiredServices {
			fmt.Fprintf(w, "  - %s: %s\n", service, reg.ServiceDescription(service))
		}
	}

	return nil
}
