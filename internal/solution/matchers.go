package solution

import "regexp"

var (
	// Format header: Microsoft Visual Studio Solution File, Format Version 12.00
	headerRe = regexp.MustCompile(`^Microsoft Visual Studio Solution File, Format Version (\S+)$`)

	// Project entry open: Project("{type-guid}") = "Title", "Rel\Path", "{guid}"
	projectOpenRe = regexp.MustCompile(`^Project\("([^"]*)"\)\s*=\s*"([^"]*)"\s*,\s*"([^"]*)"\s*,\s*"([^"]*)"$`)

	// Section open: GlobalSection(Name) = type / ProjectSection(Name) = type
	sectionOpenRe = regexp.MustCompile(`^(Global|Project)Section\(([^)]*)\)\s*=\s*(.*)$`)
)

// FormatVersion is the closed set of supported solution format generations.
type FormatVersion int

const (
	VS2005 FormatVersion = iota + 1 // Format Version 9.00
	VS2008                          // Format Version 10.00
	VS2010                          // Format Version 11.00
	VS2012                          // Format Version 12.00
)

// String returns the product name for the format generation.
func (v FormatVersion) String() string {
	switch v {
	case VS2005:
		return "Visual Studio 2005"
	case VS2008:
		return "Visual Studio 2008"
	case VS2010:
		return "Visual Studio 2010"
	case VS2012:
		return "Visual Studio 2012"
	}
	return "unknown"
}

func matchHeader(line string) (version string, ok bool) {
	m := headerRe.FindStringSubmatch(line)
	if m == nil {
		return "", false
	}
	return m[1], true
}

type projectOpen struct {
	TypeID       string
	Title        string
	RelativePath string
	ID           string
}

func matchProjectOpen(line string) (projectOpen, bool) {
	m := projectOpenRe.FindStringSubmatch(line)
	if m == nil {
		return projectOpen{}, false
	}
	return projectOpen{TypeID: m[1], Title: m[2], RelativePath: m[3], ID: m[4]}, true
}

type sectionOpen struct {
	Scope SectionScope
	Name  string
	Kind  string
}

func matchSectionOpen(line string) (sectionOpen, bool) {
	m := sectionOpenRe.FindStringSubmatch(line)
	if m == nil {
		return sectionOpen{}, false
	}
	scope := GlobalScope
	if m[1] == "Project" {
		scope = ProjectScope
	}
	return sectionOpen{Scope: scope, Name: m[2], Kind: m[3]}, true
}

// closeKeyword returns the keyword that must terminate a section of the given
// scope.
func closeKeyword(scope SectionScope) string {
	if scope == ProjectScope {
		return "EndProjectSection"
	}
	return "EndGlobalSection"
}
