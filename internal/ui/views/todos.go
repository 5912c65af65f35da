package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rkeller/levelup/internal/records"
	"github.com/rkeller/levelup/internal/ui/keys"
	"github.com/rkeller/levelup/internal/ui/styles"
)

type todoMode int

const (
	todoNormal todoMode = iota
	todoAdding
	todoEditing
	todoConfirmDelete
)

// TodoView is a flat to-do list. The daily and misc tabs are two instances.
type TodoView struct {
	title  string
	store  *records.TaskStore
	styles *styles.Styles
	keys   keys.KeyMap

	width  int
	height int

	mode     todoMode
	cursor   int
	scrollY  int
	input    textinput.Model
	editID   string
	deleteID string
}

// NewTodoView creates a to-do list view over store
func NewTodoView(title string, store *records.TaskStore) *TodoView {
	input := textinput.New()
	input.Placeholder = "Task text..."
	input.CharLimit = 200

	return &TodoView{
		title:  title,
		store:  store,
		styles: styles.NewStyles(),
		keys:   keys.DefaultKeyMap(),
		input:  input,
	}
}

// SetSize updates the view dimensions
func (v *TodoView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// InputActive reports whether the view is capturing keystrokes for a form
// or modal, so global keys should stay out of the way
func (v *TodoView) InputActive() bool {
	return v.mode != todoNormal
}

// Update handles key messages for this tab
func (v *TodoView) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch v.mode {
	case todoAdding, todoEditing:
		return v.updateInput(keyMsg)
	case todoConfirmDelete:
		return v.updateConfirmDelete(keyMsg)
	}
	return v.updateNormal(keyMsg)
}

func (v *TodoView) updateNormal(msg tea.KeyMsg) tea.Cmd {
	items := v.store.Items()

	switch {
	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
			v.ensureVisible()
		}

	case key.Matches(msg, v.keys.Down):
		if v.cursor < len(items)-1 {
			v.cursor++
			v.ensureVisible()
		}

	case key.Matches(msg, v.keys.New):
		v.mode = todoAdding
		v.input.Reset()
		v.input.Placeholder = "Task text..."
		v.input.Focus()
		return textinput.Blink

	case key.Matches(msg, v.keys.Edit):
		if len(items) > 0 {
			v.mode = todoEditing
			v.editID = items[v.cursor].ID
			v.input.SetValue(items[v.cursor].Text)
			v.input.CursorEnd()
			v.input.Focus()
			return textinput.Blink
		}

	case key.Matches(msg, v.keys.ToggleDone):
		if len(items) > 0 {
			v.store.Toggle(items[v.cursor].ID)
		}

	case key.Matches(msg, v.keys.Delete):
		if len(items) > 0 {
			v.mode = todoConfirmDelete
			v.deleteID = items[v.cursor].ID
		}

	case key.Matches(msg, v.keys.ClearDone):
		v.store.ClearDone()
		v.clampCursor()
	}

	return nil
}

func (v *TodoView) updateInput(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.mode = todoNormal
		v.input.Blur()
		return nil

	case key.Matches(msg, v.keys.Enter):
		if v.mode == todoAdding {
			if v.store.Add(v.input.Value()) {
				v.cursor = 0
				v.scrollY = 0
			}
		} else {
			v.store.Edit(v.editID, v.input.Value())
		}
		v.mode = todoNormal
		v.input.Blur()
		return nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return cmd
}

func (v *TodoView) updateConfirmDelete(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		v.store.Remove(v.deleteID)
		v.clampCursor()
		v.mode = todoNormal
	case "n", "N", "esc":
		v.mode = todoNormal
	}
	return nil
}

func (v *TodoView) clampCursor() {
	if v.cursor >= v.store.Len() {
		v.cursor = max(0, v.store.Len()-1)
	}
	if v.scrollY > v.cursor {
		v.scrollY = v.cursor
	}
}

func (v *TodoView) ensureVisible() {
	visibleItems := v.visibleRows()
	if v.cursor < v.scrollY {
		v.scrollY = v.cursor
	} else if v.cursor >= v.scrollY+visibleItems {
		v.scrollY = v.cursor - visibleItems + 1
	}
}

func (v *TodoView) visibleRows() int {
	rows := v.height - 9
	if rows < 1 {
		rows = 1
	}
	return rows
}

// View renders the tab content (the app shell draws the tab bar)
func (v *TodoView) View() string {
	s := v.styles

	if v.mode == todoConfirmDelete {
		return renderDeleteConfirm(s, "Delete Task?", v.width, v.height)
	}

	var b strings.Builder

	title := fmt.Sprintf("%s (%d left)", v.title, v.store.Remaining())
	b.WriteString(s.Title.Render(title))
	b.WriteString("\n\n")

	if v.mode == todoAdding || v.mode == todoEditing {
		label := "New task:"
		if v.mode == todoEditing {
			label = "Edit task:"
		}
		inputWidth := clamp(styles.ContentWidth(v.width)-6, 20, 60)
		b.WriteString(label + "\n")
		b.WriteString(s.InputFocused.Width(inputWidth).Render(v.input.View()))
		b.WriteString("\n\n")
	}

	b.WriteString(v.renderList())
	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return styles.CenterView(b.String(), v.width, v.height)
}

func (v *TodoView) renderList() string {
	s := v.styles
	items := v.store.Items()

	if len(items) == 0 {
		return s.TitleMuted.Render("No tasks. Press 'n' to add one.")
	}

	width := max(styles.ContentWidth(v.width)-4, 20)
	endIdx := min(v.scrollY+v.visibleRows(), len(items))

	var lines []string
	for i := v.scrollY; i < endIdx; i++ {
		task := items[i]

		checkbox := "[ ]"
		if task.Done {
			checkbox = "[x]"
		}
		line := checkbox + " " + task.Text

		style := s.ListItem
		if i == v.cursor && v.mode == todoNormal {
			style = s.ListSelected
		} else if task.Done {
			style = s.ListDone
		}
		lines = append(lines, style.Width(width).Render(line))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (v *TodoView) renderHelp() string {
	s := v.styles
	if v.mode == todoAdding || v.mode == todoEditing {
		return s.Help.Render(
			fmt.Sprintf("%s save • %s cancel",
				s.HelpKey.Render("↵"),
				s.HelpKey.Render("esc"),
			),
		)
	}
	return s.Help.Render(
		fmt.Sprintf("%s toggle • %s new • %s edit • %s del • %s clear done",
			s.HelpKey.Render("space"),
			s.HelpKey.Render("n"),
			s.HelpKey.Render("e"),
			s.HelpKey.Render("d"),
			s.HelpKey.Render("c"),
		),
	)
}
