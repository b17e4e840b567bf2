// Package loader provides the default project-loading collaborator and a
// progress tracker with scoped sub-ranges.
package loader

import (
	"context"

	"github.com/slnkit/slnkit/internal/solution"
)

// LoadedProject is the item produced for a loadable project entry. The
// project file itself is not opened or validated here.
type LoadedProject struct {
	Info *solution.ProjectInfo
}

// ItemName returns the project's display title.
func (p *LoadedProject) ItemName() string { return p.Info.Title }

// Loader wraps load-information records into LoadedProject items.
type Loader struct{}

// New returns the default loader.
func New() *Loader { return &Loader{} }

// LoadProject implements solution.ProjectLoader.
func (l *Loader) LoadProject(ctx context.Context, info *solution.ProjectInfo, progress solution.Progress) (solution.Item, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	progress.Step(1)
	return &LoadedProject{Info: info}, nil
}

// Tracker accumulates fractional progress across nested sub-ranges and
// reports the running total after every step. Loads are sequential, so the
// total needs no synchronization.
type Tracker struct {
	onAdvance func(completed float64)
	completed *float64
	share     float64
}

// NewTracker returns a tracker covering the full [0,1] range. onAdvance may
// be nil.
func NewTracker(onAdvance func(completed float64)) *Tracker {
	var completed float64
	return &Tracker{onAdvance: onAdvance, completed: &completed, share: 1}
}

// Step implements solution.Progress.
func (t *Tracker) Step(fraction float64) {
	*t.completed += fraction * t.share
	if t.onAdvance != nil {
		t.onAdvance(*t.completed)
	}
}

// Sub implements solution.Progress.
func (t *Tracker) Sub(share float64) solution.Progress {
	return &Tracker{onAdvance: t.onAdvance, completed: t.completed, share: share * t.share}
}
