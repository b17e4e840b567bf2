// Package solution parses Visual Studio solution documents into a fully
// resolved item tree.
//
// Parsing is a two-phase pipeline: a structural pass reads every project
// entry and the global block into indexed records, then a materialization
// pass applies the configuration and nesting data declared after the entries
// they describe and delegates project construction to a ProjectLoader.
package solution

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// ProjectLoader turns a resolved load-information record into a loaded
// solution item. Failures abort the whole load unchanged.
type ProjectLoader interface {
	LoadProject(ctx context.Context, info *ProjectInfo, progress Progress) (Item, error)
}

// PreferencesLoader populates the solution's user preferences, in particular
// its active configuration, after the global block is parsed and before any
// project is loaded.
type PreferencesLoader interface {
	LoadPreferences(sol *Solution) error
}

// Progress receives fractional completion reports during materialization.
type Progress interface {
	// Step advances this handle's range by the given fraction of it.
	Step(fraction float64)
	// Sub derives a handle covering the given share of this handle's range.
	Sub(share float64) Progress
}

type noProgress struct{}

func (noProgress) Step(float64) {}

func (n noProgress) Sub(float64) Progress { return n }

// Parser drives the two-phase read of a solution document.
type Parser struct {
	loader      ProjectLoader
	preferences PreferencesLoader // may be nil
	progress    Progress          // may be nil
}

// NewParser returns a parser delegating project construction to loader.
// Preferences and progress are optional; a nil preferences loader falls back
// to the first declared configuration, a nil progress handle discards
// reports.
func NewParser(loader ProjectLoader, preferences PreferencesLoader, progress Progress) *Parser {
	return &Parser{loader: loader, preferences: preferences, progress: progress}
}

// ParseFile opens and parses the solution document at path. The file is held
// open only for the duration of the structural pass and released
// unconditionally.
func (p *Parser) ParseFile(ctx context.Context, path string) (*Solution, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening solution file: %w", err)
	}
	defer f.Close()
	return p.Parse(ctx, f, path)
}

// Parse parses a solution document from src. path positions errors and
// anchors relative path resolution; it may be empty for in-memory input.
func (p *Parser) Parse(ctx context.Context, src io.Reader, path string) (*Solution, error) {
	sc, err := newLineScanner(src)
	if err != nil {
		return nil, err
	}
	r := &reader{path: path, dir: filepath.Dir(path), sc: sc}
	if path == "" {
		r.dir = ""
	}

	sol, st, err := p.structuralPass(r)
	if err != nil {
		return nil, err
	}

	if p.preferences != nil {
		if err := p.preferences.LoadPreferences(sol); err != nil {
			return nil, err
		}
	}
	if sol.ActiveConfiguration.IsZero() && len(sol.ConfigurationNames) > 0 && len(sol.PlatformNames) > 0 {
		sol.ActiveConfiguration = ConfigurationAndPlatform{
			Configuration: sol.ConfigurationNames[0],
			Platform:      sol.PlatformNames[0],
		}
	}

	// Single cancellation checkpoint: abort before any project is loaded so
	// there is no partially loaded state to unwind.
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	if err := p.materialize(ctx, r, sol, st); err != nil {
		return nil, err
	}
	return sol, nil
}

// reader owns the cursor and positional error construction for one pass.
type reader struct {
	path string
	dir  string
	sc   *lineScanner
}

func (r *reader) errorf(format string, args ...any) error {
	line, _ := r.sc.current()
	return &ParseError{
		Path:        r.path,
		Line:        r.sc.num,
		StartColumn: 1,
		EndColumn:   len(line) + 1,
		Message:     fmt.Sprintf(format, args...),
	}
}

func (r *reader) unexpectedEOF(expected string) error {
	return &ParseError{
		Path:        r.path,
		Line:        r.sc.num,
		StartColumn: 1,
		EndColumn:   1,
		Message:     fmt.Sprintf("unexpected end of file, expected %s", expected),
	}
}

var formatVersions = map[string]FormatVersion{
	"9.00":  VS2005,
	"10.00": VS2008,
	"11.00": VS2010,
	"12.00": VS2012,
}

func (r *reader) readHeader() (FormatVersion, error) {
	line, ok := r.sc.current()
	if !ok {
		return 0, r.unexpectedEOF("format header")
	}
	ver, matched := matchHeader(line)
	if !matched {
		return 0, r.errorf("missing solution file format header")
	}
	if ver == "7.00" || ver == "8.00" {
		return 0, r.errorf("solution file format version %s is no longer supported", ver)
	}
	v, known := formatVersions[ver]
	if !known {
		return 0, r.errorf("unrecognized solution file format version %q", ver)
	}
	if err := r.sc.advance(); err != nil {
		return 0, err
	}
	return v, nil
}

// state carries phase-1 results into materialization.
type state struct {
	byID     map[uuid.UUID]*ProjectInfo
	nested   map[uuid.UUID]*SolutionFolder
	loadable int
}

// structuralPass reads the whole document: header, project entries, global
// block, trailing-content check. It indexes entries by identity, repairing
// duplicates with freshly minted ids, and materializes folders immediately
// so later nesting entries can resolve against them.
func (p *Parser) structuralPass(r *reader) (*Solution, *state, error) {
	version, err := r.readHeader()
	if err != nil {
		return nil, nil, err
	}
	sol := &Solution{
		Path:    r.path,
		Dir:     r.dir,
		Version: version,
		folders: make(map[uuid.UUID]*SolutionFolder),
	}
	st := &state{
		byID:   make(map[uuid.UUID]*ProjectInfo),
		nested: make(map[uuid.UUID]*SolutionFolder),
	}

	for {
		info, err := r.readProject()
		if err != nil {
			return nil, nil, err
		}
		if info == nil {
			break
		}
		if _, taken := st.byID[info.ID]; taken {
			info.ID = uuid.New()
			sol.Dirty = true
		}
		st.byID[info.ID] = info
		sol.Projects = append(sol.Projects, info)
		if info.IsFolder() {
			sol.folders[info.ID] = &SolutionFolder{ID: info.ID, Name: info.Title}
		} else {
			st.loadable++
		}
	}

	line, ok := r.sc.current()
	if !ok {
		return nil, nil, r.unexpectedEOF("Global")
	}
	if line != "Global" {
		return nil, nil, r.errorf("expected Global, found %q", line)
	}
	if err := r.sc.advance(); err != nil {
		return nil, nil, err
	}

	var projectConfigs, nestedProjects *Section
	for {
		sec, err := r.readSection()
		if err != nil {
			return nil, nil, err
		}
		if sec == nil {
			break
		}
		switch sec.Name {
		case "SolutionConfigurationPlatforms":
			collectConfigurationNames(sec, sol)
		case "ProjectConfigurationPlatforms":
			projectConfigs = sec
		case "NestedProjects":
			nestedProjects = sec
		default:
			sol.GlobalSections = append(sol.GlobalSections, sec)
		}
	}

	line, ok = r.sc.current()
	if !ok {
		return nil, nil, r.unexpectedEOF("EndGlobal")
	}
	if line != "EndGlobal" {
		return nil, nil, r.errorf("expected EndGlobal, found %q", line)
	}
	if err := r.sc.advance(); err != nil {
		return nil, nil, err
	}
	if line, ok = r.sc.current(); ok {
		return nil, nil, r.errorf("unexpected content after EndGlobal: %q", line)
	}

	if projectConfigs != nil {
		applyProjectConfigurations(projectConfigs, st.byID)
	}
	if nestedProjects != nil {
		st.nested = resolveNesting(nestedProjects, sol.folders)
	}
	return sol, st, nil
}

// collectConfigurationNames derives the distinct configuration and platform
// name lists from a SolutionConfigurationPlatforms section, preserving
// first-seen order and spelling.
func collectConfigurationNames(sec *Section, sol *Solution) {
	seenConfig := make(map[string]bool)
	seenPlatform := make(map[string]bool)
	for _, e := range sec.Entries {
		c, ok := ParseConfigurationAndPlatform(e.Key)
		if !ok {
			continue
		}
		if k := fold(c.Configuration); !seenConfig[k] {
			seenConfig[k] = true
			sol.ConfigurationNames = append(sol.ConfigurationNames, c.Configuration)
		}
		if k := fold(c.Platform); !seenPlatform[k] {
			seenPlatform[k] = true
			sol.PlatformNames = append(sol.PlatformNames, c.Platform)
		}
	}
}

// materialize walks the phase-1 entries in arrival order, loading projects
// through the collaborator and attaching every resulting item to its nesting
// parent or to the solution's top level.
func (p *Parser) materialize(ctx context.Context, r *reader, sol *Solution, st *state) error {
	progress := p.progress
	if progress == nil {
		progress = noProgress{}
	}
	share := 0.0
	if st.loadable > 0 {
		share = 1.0 / float64(st.loadable)
	}

	for _, info := range sol.Projects {
		var item Item
		if info.IsFolder() {
			folder := sol.folders[info.ID]
			populateFolderItems(r, folder, info)
			item = folder
		} else {
			if pc, ok := info.Configurations.Get(sol.ActiveConfiguration); ok {
				info.ActiveConfiguration = pc.Configuration
			}
			loaded, err := p.loader.LoadProject(ctx, info, progress.Sub(share))
			if err != nil {
				return err
			}
			item = loaded
		}
		if parent, ok := st.nested[info.ID]; ok {
			parent.Items = append(parent.Items, item)
		} else {
			sol.Items = append(sol.Items, item)
		}
	}
	return nil
}

// populateFolderItems turns a folder's SolutionItems entries into file item
// children with paths resolved against the solution directory.
func populateFolderItems(r *reader, folder *SolutionFolder, info *ProjectInfo) {
	for _, sec := range info.Sections {
		if sec.Name != "SolutionItems" {
			continue
		}
		for _, e := range sec.Entries {
			folder.Items = append(folder.Items, &FileItem{Path: r.resolvePath(e.Key)})
		}
	}
}
