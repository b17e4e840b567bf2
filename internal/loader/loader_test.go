package loader

import (
	"context"
	"math"
	"testing"

	"github.com/google/uuid"

	"github.com/slnkit/slnkit/internal/solution"
)

func TestLoadProjectWrapsInfo(t *testing.T) {
	info := &solution.ProjectInfo{
		ID:    uuid.New(),
		Title: "App",
	}

	var completed float64
	tracker := NewTracker(func(c float64) { completed = c })

	item, err := New().LoadProject(context.Background(), info, tracker)
	if err != nil {
		t.Fatalf("LoadProject returned error: %v", err)
	}
	loaded, ok := item.(*LoadedProject)
	if !ok {
		t.Fatalf("LoadProject returned %T, expected *LoadedProject", item)
	}
	if loaded.Info != info {
		t.Fatal("loaded item should reference the original load information")
	}
	if item.ItemName() != "App" {
		t.Fatalf("ItemName() = %q, expected %q", item.ItemName(), "App")
	}
	if completed != 1 {
		t.Fatalf("completed = %v, expected 1 after a full-range load", completed)
	}
}

func TestLoadProjectHonorsCancellation(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := New().LoadProject(ctx, &solution.ProjectInfo{}, NewTracker(nil)); err == nil {
		t.Fatal("LoadProject should fail on a cancelled context")
	}
}

func TestTrackerSubRanges(t *testing.T) {
	var reports []float64
	tracker := NewTracker(func(c float64) { reports = append(reports, c) })

	// Three projects, each with an equal share, stepped to completion.
	share := 1.0 / 3.0
	for i := 0; i < 3; i++ {
		tracker.Sub(share).Step(1)
	}

	if len(reports) != 3 {
		t.Fatalf("got %d reports, expected 3", len(reports))
	}
	if math.Abs(reports[len(reports)-1]-1.0) > 1e-9 {
		t.Fatalf("final completion = %v, expected 1.0", reports[len(reports)-1])
	}
	for i := 1; i < len(reports); i++ {
		if reports[i] <= reports[i-1] {
			t.Fatalf("progress must be monotonic, got %v", reports)
		}
	}
}

func TestTrackerNestedSub(t *testing.T) {
	tracker := NewTracker(nil)
	sub := tracker.Sub(0.5).Sub(0.5)
	sub.Step(1)
	if math.Abs(*tracker.completed-0.25) > 1e-9 {
		t.Fatalf("nested sub-range contributed %v, expected 0.25", *tracker.completed)
	}
}
