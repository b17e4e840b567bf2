package solution

import (
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// readProject parses one Project(...) ... EndProject block starting at the
// current line. A nil info with a nil error means the current line does not
// open a project entry.
func (r *reader) readProject() (*ProjectInfo, error) {
	line, ok := r.sc.current()
	if !ok {
		return nil, nil
	}
	open, matched := matchProjectOpen(line)
	if !matched {
		return nil, nil
	}
	typeID, err := uuid.Parse(open.TypeID)
	if err != nil {
		return nil, r.errorf("invalid project type id %q", open.TypeID)
	}
	id, err := uuid.Parse(open.ID)
	if err != nil {
		return nil, r.errorf("invalid project id %q", open.ID)
	}
	info := &ProjectInfo{
		TypeID:         typeID,
		ID:             id,
		Title:          open.Title,
		RelativePath:   open.RelativePath,
		Path:           r.resolvePath(open.RelativePath),
		Configurations: NewConfigurationMapping(),
	}
	if err := r.sc.advance(); err != nil {
		return nil, err
	}

	for {
		sec, err := r.readSection()
		if err != nil {
			return nil, err
		}
		if sec == nil {
			break
		}
		info.Sections = append(info.Sections, sec)
	}

	line, ok = r.sc.current()
	if !ok {
		return nil, r.unexpectedEOF("EndProject")
	}
	if line != "EndProject" {
		return nil, r.errorf("expected EndProject, found %q", line)
	}
	if err := r.sc.advance(); err != nil {
		return nil, err
	}
	return info, nil
}

// resolvePath joins a document-relative path with the solution directory.
// The format writes Windows separators regardless of host platform.
func (r *reader) resolvePath(rel string) string {
	rel = filepath.FromSlash(strings.ReplaceAll(rel, `\`, "/"))
	return filepath.Join(r.dir, rel)
}
