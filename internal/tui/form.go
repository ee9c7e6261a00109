package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
)

// formField is one labelled input of a modal form. When opts is
// non-empty the field is a selector cycled with left/right instead of
// typed text.
type formField struct {
	label  string
	value  string
	opts   []string
	optIdx int
}

func textField(label string) formField       { return formField{label: label} }
func textFieldVal(label, v string) formField { return formField{label: label, value: v} }

func selectField(label string, opts []string) formField {
	return formField{label: label, opts: opts}
}

// form is a sequential modal form over rune-buffer inputs. submit
// receives the field values in order and returns a status line; a
// store validation error keeps the form open.
type form struct {
	title  string
	fields []formField
	focus  int
	submit func(values []string) (string, error)
}

func (f *form) values() []string {
	out := make([]string, len(f.fields))
	for i, fld := range f.fields {
		if len(fld.opts) > 0 {
			if fld.optIdx > 0 {
				out[i] = fld.opts[fld.optIdx-1]
			}
			continue
		}
		out[i] = fld.value
	}
	return out
}

// handleKey advances, edits or submits. Returns done=true when the
// form was submitted or cancelled.
func (f *form) handleKey(m tea.KeyMsg) (status string, done bool, err error) {
	switch m.Type {
	case tea.KeyEsc:
		return "", true, nil
	case tea.KeyTab, tea.KeyDown:
		f.focus = (f.focus + 1) % len(f.fields)
		return "", false, nil
	case tea.KeyShiftTab, tea.KeyUp:
		f.focus = (f.focus - 1 + len(f.fields)) % len(f.fields)
		return "", false, nil
	case tea.KeyEnter:
		if f.focus < len(f.fields)-1 {
			f.focus++
			return "", false, nil
		}
		status, err = f.submit(f.values())
		if err != nil {
			return "", false, err
		}
		return status, true, nil
	}

	fld := &f.fields[f.focus]
	if len(fld.opts) > 0 {
		switch m.String() {
		case "left", "h":
			if fld.optIdx > 0 {
				fld.optIdx--
			}
		case "right", "l", " ":
			if fld.optIdx < len(fld.opts) {
				fld.optIdx++
			}
		}
		return "", false, nil
	}

	switch m.Type {
	case tea.KeyBackspace, tea.KeyCtrlH, tea.KeyDelete:
		if len(fld.value) > 0 {
			fld.value = trimLastRune(fld.value)
		}
	case tea.KeySpace:
		fld.value += " "
	case tea.KeyRunes:
		fld.value += string(m.Runes)
	}
	return "", false, nil
}

func (f *form) render() string {
	out := titleStyle.Render(f.title) + "\n"
	for i, fld := range f.fields {
		marker := " "
		if i == f.focus {
			marker = "▶"
		}
		val := fld.value
		if len(fld.opts) > 0 {
			if fld.optIdx == 0 {
				val = "(none)"
			} else {
				val = fld.opts[fld.optIdx-1]
			}
			val = "◀ " + val + " ▶"
		}
		out += fmt.Sprintf("%s %-14s %s\n", marker, fld.label+":", val)
	}
	out += "[enter] Next/Save  [tab] Field  [esc] Cancel"
	return out
}

func trimLastRune(s string) string {
	r := []rune(s)
	return string(r[:len(r)-1])
}

// confirmPrompt asks before a destructive action. do runs on "y" and
// returns the status line.
type confirmPrompt struct {
	prompt string
	do     func() string
}

func (c *confirmPrompt) render() string {
	return titleStyle.Render(c.prompt) + "\n[y] Yes  [n] No"
}
