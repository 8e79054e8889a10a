package editor

// Surface ties content, selection and history together for callers that
// drive a sequence of operations, the way an editing session does.
type Surface struct {
	content string
	sel     Span
	history *History
}

func NewSurface(content string) *Surface {
	return &Surface{
		content: content,
		history: NewHistory(DefaultHistoryLimit),
	}
}

func (s *Surface) Content() string { return s.content }

func (s *Surface) Selection() Span { return s.sel }

// Select moves the selection, clamped to the current content.
func (s *Surface) Select(sel Span) {
	s.sel = sel.Clamp(s.content)
}

// Apply runs op against the current content and selection. It reports
// whether the operation changed anything; no-ops leave content, selection
// and history untouched.
func (s *Surface) Apply(op Op) bool {
	edit, ok := op(s.content, s.sel)
	if !ok {
		return false
	}

	next, err := Apply(s.content, edit)
	if err != nil {
		return false
	}

	s.history.Push(Command{
		Span:    edit.Span,
		Old:     s.content[edit.Span.Start:edit.Span.End],
		New:     edit.Text,
		PrevSel: s.sel,
		NextSel: edit.Sel,
	})
	s.content = next
	s.sel = edit.Sel
	return true
}

func (s *Surface) Undo() bool {
	content, sel, ok := s.history.Undo(s.content)
	if !ok {
		return false
	}
	s.content = content
	s.sel = sel
	return true
}

func (s *Surface) Redo() bool {
	content, sel, ok := s.history.Redo(s.content)
	if !ok {
		return false
	}
	s.content = content
	s.sel = sel
	return true
}
