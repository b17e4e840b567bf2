package solution

import "github.com/google/uuid"

// resolveNesting turns a NestedProjects section into a child-id to parent
// folder map. Entries with unparseable ids or parents that are not known
// folders are skipped, not rejected.
func resolveNesting(sec *Section, folders map[uuid.UUID]*SolutionFolder) map[uuid.UUID]*SolutionFolder {
	nested := make(map[uuid.UUID]*SolutionFolder)
	for _, e := range sec.Entries {
		child, err := uuid.Parse(e.Key)
		if err != nil {
			continue
		}
		parent, err := uuid.Parse(e.Value)
		if err != nil {
			continue
		}
		if folder, ok := folders[parent]; ok {
			nested[child] = folder
		}
	}
	return nested
}
