package benchmark

import (
	"fmt"
	"sort"
	"strings"

	"github.com/svwsudoku/sudokuengine/internal/domain"
)

// section tracks accumulated time and call count for one named phase.
type section struct {
	name        string
	totalTimeMs float64
	callCount   int
}

// Profiler is a section-based wall-clock profiler distinct from Benchmark:
// where Benchmark times whole solves for statistics, Profiler times named
// sub-phases (board construction, matrix build, search) that a caller
// wants broken out separately. Ported from original_source's Profiler.
type Profiler struct {
	sections      map[string]*section
	activeTimers  map[string]*domain.Timer
}

func NewProfiler() *Profiler {
	return &Profiler{
		sections:     make(map[string]*section),
		activeTimers: make(map[string]*domain.Timer),
	}
}

func (p *Profiler) BeginSection(name string) {
	if _, ok := p.sections[name]; !ok {
		p.sections[name] = &section{name: name}
	}
	t := &domain.Timer{}
	t.Start()
	p.activeTimers[name] = t
}

func (p *Profiler) EndSection(name string) {
	t, ok := p.activeTimers[name]
	if !ok {
		return
	}
	t.Stop()
	p.sections[name].totalTimeMs += t.ElapsedMs()
	p.sections[name].callCount++
}

func (p *Profiler) Reset() {
	p.sections = make(map[string]*section)
	p.activeTimers = make(map[string]*domain.Timer)
}

// GetReport renders every section's total time, call count, and average.
func (p *Profiler) GetReport() string {
	var b strings.Builder
	b.WriteString("=== Profile Report ===\n\n")
	fmt.Fprintf(&b, "%-30s%15s%10s%15s\n", "Section", "Total (ms)", "Calls", "Avg (ms)")
	b.WriteString(strings.Repeat("-", 70) + "\n")

	names := make([]string, 0, len(p.sections))
	for name := range p.sections {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		s := p.sections[name]
		avg := 0.0
		if s.callCount > 0 {
			avg = s.totalTimeMs / float64(s.callCount)
		}
		fmt.Fprintf(&b, "%-30s%15.6f%10d%15.6f\n", s.name, s.totalTimeMs, s.callCount, avg)
	}
	return b.String()
}

// ProfileScope closes over a Profiler section the way a defer'd Go closure
// replaces the original's RAII destructor: call Close (typically via
// defer) to end the section that Begin opened.
type ProfileScope struct {
	profiler *Profiler
	name     string
}

// Begin starts a section and returns a scope; defer scope.Close() to end
// it, mirroring original_source's ProfileScope constructor/destructor pair.
func Begin(p *Profiler, name string) *ProfileScope {
	p.BeginSection(name)
	return &ProfileScope{profiler: p, name: name}
}

func (s *ProfileScope) Close() {
	s.profiler.EndSection(s.name)
}
