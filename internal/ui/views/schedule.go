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

type scheduleMode int

const (
	scheduleNormal scheduleMode = iota
	scheduleAdding
	scheduleEditing
	scheduleConfirmDelete
)

// ScheduleView renders the daily schedule in chronological order
type ScheduleView struct {
	store  *records.ScheduleStore
	styles *styles.Styles
	keys   keys.KeyMap

	width  int
	height int

	mode     scheduleMode
	cursor   int
	timeIn   textinput.Model
	actIn    textinput.Model
	focusIdx int // 0=time, 1=activity (adding only)
	editID   string
	deleteID string
}

// NewScheduleView creates the schedule tab view
func NewScheduleView(store *records.ScheduleStore) *ScheduleView {
	timeIn := textinput.New()
	timeIn.Placeholder = "HH:MM"
	timeIn.CharLimit = 5

	actIn := textinput.New()
	actIn.Placeholder = "Activity (e.g., Study, Workout)"
	actIn.CharLimit = 200

	return &ScheduleView{
		store:  store,
		styles: styles.NewStyles(),
		keys:   keys.DefaultKeyMap(),
		timeIn: timeIn,
		actIn:  actIn,
	}
}

// SetSize updates the view dimensions
func (v *ScheduleView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// InputActive reports whether the view is capturing keystrokes for a form
// or modal
func (v *ScheduleView) InputActive() bool {
	return v.mode != scheduleNormal
}

// Update handles key messages for this tab
func (v *ScheduleView) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch v.mode {
	case scheduleAdding:
		return v.updateAdding(keyMsg)
	case scheduleEditing:
		return v.updateEditing(keyMsg)
	case scheduleConfirmDelete:
		return v.updateConfirmDelete(keyMsg)
	}
	return v.updateNormal(keyMsg)
}

func (v *ScheduleView) updateNormal(msg tea.KeyMsg) tea.Cmd {
	items := v.store.Items()

	switch {
	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
		}

	case key.Matches(msg, v.keys.Down):
		if v.cursor < len(items)-1 {
			v.cursor++
		}

	case key.Matches(msg, v.keys.New):
		v.mode = scheduleAdding
		v.focusIdx = 0
		v.timeIn.SetValue("09:00")
		v.timeIn.CursorEnd()
		v.actIn.Reset()
		v.timeIn.Focus()
		v.actIn.Blur()
		return textinput.Blink

	case key.Matches(msg, v.keys.Edit):
		if len(items) > 0 {
			v.mode = scheduleEditing
			v.editID = items[v.cursor].ID
			v.actIn.SetValue(items[v.cursor].Activity)
			v.actIn.CursorEnd()
			v.actIn.Focus()
			return textinput.Blink
		}

	case key.Matches(msg, v.keys.Delete):
		if len(items) > 0 {
			v.mode = scheduleConfirmDelete
			v.deleteID = items[v.cursor].ID
		}
	}

	return nil
}

func (v *ScheduleView) updateAdding(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.mode = scheduleNormal
		v.timeIn.Blur()
		v.actIn.Blur()
		return nil

	case key.Matches(msg, v.keys.Tab), key.Matches(msg, v.keys.ShiftTab):
		v.focusIdx = (v.focusIdx + 1) % 2
		if v.focusIdx == 0 {
			v.timeIn.Focus()
			v.actIn.Blur()
		} else {
			v.actIn.Focus()
			v.timeIn.Blur()
		}
		return textinput.Blink

	case key.Matches(msg, v.keys.Enter):
		// Enter on time moves to activity; enter on activity saves
		if v.focusIdx == 0 {
			v.focusIdx = 1
			v.actIn.Focus()
			v.timeIn.Blur()
			return textinput.Blink
		}
		if v.store.Add(v.timeIn.Value(), v.actIn.Value()) {
			v.mode = scheduleNormal
			v.timeIn.Blur()
			v.actIn.Blur()
		}
		// Invalid drafts keep the form open
		return nil
	}

	var cmd tea.Cmd
	if v.focusIdx == 0 {
		v.timeIn, cmd = v.timeIn.Update(msg)
	} else {
		v.actIn, cmd = v.actIn.Update(msg)
	}
	return cmd
}

func (v *ScheduleView) updateEditing(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.mode = scheduleNormal
		v.actIn.Blur()
		return nil

	case key.Matches(msg, v.keys.Enter):
		v.store.Edit(v.editID, v.actIn.Value())
		v.mode = scheduleNormal
		v.actIn.Blur()
		return nil
	}

	var cmd tea.Cmd
	v.actIn, cmd = v.actIn.Update(msg)
	return cmd
}

func (v *ScheduleView) updateConfirmDelete(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		v.store.Remove(v.deleteID)
		if v.cursor >= v.store.Len() {
			v.cursor = max(0, v.store.Len()-1)
		}
		v.mode = scheduleNormal
	case "n", "N", "esc":
		v.mode = scheduleNormal
	}
	return nil
}

// View renders the tab content
func (v *ScheduleView) View() string {
	s := v.styles

	if v.mode == scheduleConfirmDelete {
		return renderDeleteConfirm(s, "Delete Block?", v.width, v.height)
	}

	var b strings.Builder

	b.WriteString(s.Title.Render("Today's Schedule"))
	b.WriteString("\n\n")

	if v.mode == scheduleAdding {
		b.WriteString(v.renderAddForm())
		b.WriteString("\n\n")
	} else if v.mode == scheduleEditing {
		inputWidth := clamp(styles.ContentWidth(v.width)-6, 20, 50)
		b.WriteString("Edit activity:\n")
		b.WriteString(s.InputFocused.Width(inputWidth).Render(v.actIn.View()))
		b.WriteString("\n\n")
	}

	b.WriteString(v.renderList())
	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return styles.CenterView(b.String(), v.width, v.height)
}

func (v *ScheduleView) renderAddForm() string {
	s := v.styles

	timeStyle := s.Input
	actStyle := s.Input
	if v.focusIdx == 0 {
		timeStyle = s.InputFocused
	} else {
		actStyle = s.InputFocused
	}

	actWidth := clamp(styles.ContentWidth(v.width)-22, 20, 40)
	return lipgloss.JoinVertical(lipgloss.Left,
		"New block:",
		lipgloss.JoinHorizontal(lipgloss.Center,
			timeStyle.Width(7).Render(v.timeIn.View()),
			" ",
			actStyle.Width(actWidth).Render(v.actIn.View()),
		),
	)
}

func (v *ScheduleView) renderList() string {
	s := v.styles
	items := v.store.Items()

	if len(items) == 0 {
		return s.TitleMuted.Render("No blocks yet. Press 'n' to add your first activity.")
	}

	width := max(styles.ContentWidth(v.width)-4, 20)

	var lines []string
	for i, block := range items {
		line := block.Time + "  " + block.Activity

		style := s.ListItem
		if i == v.cursor && v.mode == scheduleNormal {
			style = s.ListSelected
		}
		lines = append(lines, style.Width(width).Render(line))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (v *ScheduleView) renderHelp() string {
	s := v.styles
	if v.mode == scheduleAdding {
		return s.Help.Render(
			fmt.Sprintf("%s time/activity • %s save • %s cancel",
				s.HelpKey.Render("tab"),
				s.HelpKey.Render("↵"),
				s.HelpKey.Render("esc"),
			),
		)
	}
	if v.mode == scheduleEditing {
		return s.Help.Render(
			fmt.Sprintf("%s save • %s cancel",
				s.HelpKey.Render("↵"),
				s.HelpKey.Render("esc"),
			),
		)
	}
	return s.Help.Render(
		fmt.Sprintf("%s new • %s edit • %s del",
			s.HelpKey.Render("n"),
			s.HelpKey.Render("e"),
			s.HelpKey.Render("d"),
		),
	)
}
