package editor

// Command is an invertible record of an applied edit: Span is the replaced
// range in the pre-edit content, Old the markup it held, New the markup that
// replaced it. PrevSel and NextSel restore the selection on undo/redo.
type Command struct {
	Span    Span
	Old     string
	New     string
	PrevSel Span
	NextSel Span
}

// DefaultHistoryLimit bounds how many commands are retained for undo.
const DefaultHistoryLimit = 100

// History is a bounded undo/redo stack of formatting commands. Commands
// must be pushed in application order against a single content string;
// interleaving external edits invalidates the stack.
type History struct {
	limit int
	undo  []Command
	redo  []Command
}

func NewHistory(limit int) *History {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	return &History{limit: limit}
}

// Push records an applied command and clears the redo stack.
func (h *History) Push(cmd Command) {
	h.undo = append(h.undo, cmd)
	if len(h.undo) > h.limit {
		h.undo = h.undo[len(h.undo)-h.limit:]
	}
	h.redo = h.redo[:0]
}

// Undo reverts the most recent command against content, returning the
// restored content and selection. ok is false when there is nothing to undo.
func (h *History) Undo(content string) (string, Span, bool) {
	if len(h.undo) == 0 {
		return content, Span{}, false
	}
	cmd := h.undo[len(h.undo)-1]
	h.undo = h.undo[:len(h.undo)-1]

	restored, err := Apply(content, Edit{
		Span: Span{Start: cmd.Span.Start, End: cmd.Span.Start + len(cmd.New)},
		Text: cmd.Old,
	})
	if err != nil {
		// Content diverged from the recorded command; drop the stack.
		h.undo = h.undo[:0]
		return content, Span{}, false
	}
	h.redo = append(h.redo, cmd)
	return restored, cmd.PrevSel, true
}

// Redo reapplies the most recently undone command.
func (h *History) Redo(content string) (string, Span, bool) {
	if len(h.redo) == 0 {
		return content, Span{}, false
	}
	cmd := h.redo[len(h.redo)-1]
	h.redo = h.redo[:len(h.redo)-1]

	applied, err := Apply(content, Edit{Span: cmd.Span, Text: cmd.New})
	if err != nil {
		h.redo = h.redo[:0]
		return content, Span{}, false
	}
	h.undo = append(h.undo, cmd)
	return applied, cmd.NextSel, true
}

func (h *History) CanUndo() bool { return len(h.undo) > 0 }

func (h *History) CanRedo() bool { return len(h.redo) > 0 }
