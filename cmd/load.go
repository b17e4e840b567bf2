package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/slnkit/slnkit/internal/loader"
	"github.com/slnkit/slnkit/internal/prefs"
	"github.com/slnkit/slnkit/internal/solution"
)

// loadSolution parses the solution at path with the default collaborators.
// In verbose mode load progress is printed to stderr.
func loadSolution(path string) (*solution.Solution, error) {
	var progress solution.Progress
	if IsVerbose() {
		progress = loader.NewTracker(func(completed float64) {
			fmt.Fprintf(os.Stderr, "loading: %3.0f%%\n", completed*100)
		})
	}
	p := solution.NewParser(loader.New(), prefs.New(), progress)
	sol, err := p.ParseFile(context.Background(), path)
	if err != nil {
		return nil, fmt.Errorf("parsing solution: %w", err)
	}
	return sol, nil
}
