package solution

import "strings"

// readSection parses one section block starting at the current line. A nil
// section with a nil error means the current line does not open a section;
// callers use that to detect the end of a section run.
//
// Either open keyword is accepted wherever a section may appear; the scope is
// taken from the keyword that matched and the close keyword must agree with
// it.
func (r *reader) readSection() (*Section, error) {
	line, ok := r.sc.current()
	if !ok {
		return nil, nil
	}
	open, matched := matchSectionOpen(line)
	if !matched {
		return nil, nil
	}
	sec := &Section{
		Name:  strings.TrimSpace(open.Name),
		Scope: open.Scope,
		Kind:  strings.TrimSpace(open.Kind),
	}
	if err := r.sc.advance(); err != nil {
		return nil, err
	}

	// Every line containing '=' belongs to the section, split on the first
	// '=' with both sides trimmed. Duplicate keys are preserved in order.
	for {
		line, ok = r.sc.current()
		if !ok {
			return nil, r.unexpectedEOF(closeKeyword(open.Scope))
		}
		key, value, found := strings.Cut(line, "=")
		if !found {
			break
		}
		sec.Entries = append(sec.Entries, SectionEntry{
			Key:   strings.TrimSpace(key),
			Value: strings.TrimSpace(value),
		})
		if err := r.sc.advance(); err != nil {
			return nil, err
		}
	}

	if want := closeKeyword(open.Scope); line != want {
		return nil, r.errorf("expected %s, found %q", want, line)
	}
	if err := r.sc.advance(); err != nil {
		return nil, err
	}
	return sec, nil
}
