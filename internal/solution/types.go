package solution

import (
	"path/filepath"

	"github.com/google/uuid"
)

// FolderTypeID is the project type id reserved for solution folders.
// Entries with this type are grouping nodes, not loadable projects.
var FolderTypeID = uuid.MustParse("2150E333-8FDC-42A3-9474-1A3956D46DE8")

// SectionScope distinguishes the two textually similar section kinds.
type SectionScope int

const (
	// GlobalScope marks a GlobalSection(...) ... EndGlobalSection block.
	GlobalScope SectionScope = iota
	// ProjectScope marks a ProjectSection(...) ... EndProjectSection block.
	ProjectScope
)

// SectionEntry is one key = value line inside a section.
type SectionEntry struct {
	Key   string
	Value string
}

// Section is a named, ordered key/value multimap scoped to either the whole
// document or a single project entry. Duplicate keys are legal and preserved
// in order.
type Section struct {
	Name    string       // Section name (e.g. "NestedProjects")
	Scope   SectionScope // Which open keyword introduced it
	Kind    string       // Declared type tag (e.g. "preSolution")
	Entries []SectionEntry
}

// ProjectInfo is the load information parsed from one Project(...) block.
// It is created during the structural pass and completed during
// materialization, then handed to the project loader.
type ProjectInfo struct {
	TypeID       uuid.UUID // Project kind selector
	ID           uuid.UUID // Identity within the solution, unique after repair
	Title        string
	RelativePath string // Path exactly as written in the document
	Path         string // RelativePath resolved against the solution directory
	Sections     []*Section

	// Filled in during materialization.
	Configurations      *ConfigurationMapping
	ActiveConfiguration ConfigurationAndPlatform
}

// IsFolder reports whether this entry is a solution folder rather than a
// loadable project.
func (p *ProjectInfo) IsFolder() bool {
	return p.TypeID == FolderTypeID
}

// Item is a node of the resolved solution tree: a folder, a loaded project,
// or a plain file reference.
type Item interface {
	ItemName() string
}

// SolutionFolder is a grouping node. It is created during the structural pass
// so that nesting entries can resolve against it, and populated during
// materialization.
type SolutionFolder struct {
	ID    uuid.UUID
	Name  string
	Items []Item
}

// ItemName returns the folder's display name.
func (f *SolutionFolder) ItemName() string { return f.Name }

// FileItem is a leaf wrapping a non-project file referenced from a folder's
// SolutionItems section. Path is absolute.
type FileItem struct {
	Path string
}

// ItemName returns the file's base name.
func (f *FileItem) ItemName() string { return filepath.Base(f.Path) }

// Solution is the fully resolved result of parsing one solution document.
type Solution struct {
	Path    string // Source file path, empty for in-memory input
	Dir     string // Directory all relative paths resolve against
	Version FormatVersion

	Items               []Item         // Top-level items in arrival order
	Projects            []*ProjectInfo // All entries (folders included) in arrival order
	ConfigurationNames  []string       // Distinct configuration names, first-seen order
	PlatformNames       []string       // Distinct platform names, first-seen order
	GlobalSections      []*Section     // Global sections without special handling
	ActiveConfiguration ConfigurationAndPlatform

	// Dirty reports that at least one duplicate identity was repaired during
	// parsing, so the document no longer matches the in-memory model.
	Dirty bool

	folders map[uuid.UUID]*SolutionFolder
}

// Folder looks up a solution folder by its identity.
func (s *Solution) Folder(id uuid.UUID) (*SolutionFolder, bool) {
	f, ok := s.folders[id]
	return f, ok
}

// GlobalSection returns the first stored global section with the given name,
// or nil if none exists.
func (s *Solution) GlobalSection(name string) *Section {
	for _, sec := range s.GlobalSections {
		if sec.Name == name {
			return sec
		}
	}
	return nil
}

// HasConfiguration reports whether the configuration and platform names both
// appear in the solution's declared lists, compared case-insensitively.
func (s *Solution) HasConfiguration(c ConfigurationAndPlatform) bool {
	return containsFold(s.ConfigurationNames, c.Configuration) &&
		containsFold(s.PlatformNames, c.Platform)
}

func containsFold(list []string, s string) bool {
	folded := fold(s)
	for _, v := range list {
		if fold(v) == folded {
			return true
		}
	}
	return false
}
