package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rkeller/levelup/internal/models"
	"github.com/rkeller/levelup/internal/records"
	"github.com/rkeller/levelup/internal/ui/keys"
	"github.com/rkeller/levelup/internal/ui/styles"
)

// dayChoices are the selectable dayOfWeek values, aligned with models.DayLabels
var dayChoices = []string{models.DayAny, "0", "1", "2", "3", "4", "5", "6"}

type weeklyMode int

const (
	weeklyNormal weeklyMode = iota
	weeklyAdding
	weeklyEditing
	weeklyConfirmDelete
)

// WeeklyView renders the week planner grouped by day buckets
type WeeklyView struct {
	store  *records.WeeklyStore
	styles *styles.Styles
	keys   keys.KeyMap

	width  int
	height int

	mode     weeklyMode
	cursor   int
	input    textinput.Model
	focusIdx int // 0=text, 1=day selector (adding only)
	dayIdx   int
	editID   string
	deleteID string
}

// NewWeeklyView creates the weekly tab view
func NewWeeklyView(store *records.WeeklyStore) *WeeklyView {
	input := textinput.New()
	input.Placeholder = "Weekly task..."
	input.CharLimit = 200

	return &WeeklyView{
		store:  store,
		styles: styles.NewStyles(),
		keys:   keys.DefaultKeyMap(),
		input:  input,
	}
}

// SetSize updates the view dimensions
func (v *WeeklyView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// visibleTasks flattens the day buckets into display order
func (v *WeeklyView) visibleTasks() []models.WeeklyTask {
	groups := v.store.Groups()
	var flat []models.WeeklyTask
	for _, label := range models.DayLabels {
		flat = append(flat, groups[label]...)
	}
	return flat
}

// InputActive reports whether the view is capturing keystrokes for a form
// or modal
func (v *WeeklyView) InputActive() bool {
	return v.mode != weeklyNormal
}

// Update handles key messages for this tab
func (v *WeeklyView) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch v.mode {
	case weeklyAdding:
		return v.updateAdding(keyMsg)
	case weeklyEditing:
		return v.updateEditing(keyMsg)
	case weeklyConfirmDelete:
		return v.updateConfirmDelete(keyMsg)
	}
	return v.updateNormal(keyMsg)
}

func (v *WeeklyView) updateNormal(msg tea.KeyMsg) tea.Cmd {
	tasks := v.visibleTasks()

	switch {
	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
		}

	case key.Matches(msg, v.keys.Down):
		if v.cursor < len(tasks)-1 {
			v.cursor++
		}

	case key.Matches(msg, v.keys.New):
		v.mode = weeklyAdding
		v.focusIdx = 0
		v.dayIdx = 0
		v.input.Reset()
		v.input.Focus()
		return textinput.Blink

	case key.Matches(msg, v.keys.Edit):
		if len(tasks) > 0 {
			v.mode = weeklyEditing
			v.editID = tasks[v.cursor].ID
			v.input.SetValue(tasks[v.cursor].Text)
			v.input.CursorEnd()
			v.input.Focus()
			return textinput.Blink
		}

	case key.Matches(msg, v.keys.ToggleDone):
		if len(tasks) > 0 {
			v.store.Toggle(tasks[v.cursor].ID)
		}

	case key.Matches(msg, v.keys.Delete):
		if len(tasks) > 0 {
			v.mode = weeklyConfirmDelete
			v.deleteID = tasks[v.cursor].ID
		}

	case key.Matches(msg, v.keys.ClearDone):
		v.store.ClearDone()
		if v.cursor >= v.store.Len() {
			v.cursor = max(0, v.store.Len()-1)
		}
	}

	return nil
}

func (v *WeeklyView) updateAdding(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.mode = weeklyNormal
		v.input.Blur()
		return nil

	case key.Matches(msg, v.keys.Tab), key.Matches(msg, v.keys.ShiftTab):
		v.focusIdx = (v.focusIdx + 1) % 2
		if v.focusIdx == 0 {
			v.input.Focus()
			return textinput.Blink
		}
		v.input.Blur()
		return nil

	case key.Matches(msg, v.keys.Enter):
		if v.store.Add(v.input.Value(), dayChoices[v.dayIdx]) {
			v.cursor = 0
		}
		v.mode = weeklyNormal
		v.input.Blur()
		return nil
	}

	// Day selector cycles with left/right while focused
	if v.focusIdx == 1 {
		switch msg.String() {
		case "left", "h":
			v.dayIdx = (v.dayIdx + len(dayChoices) - 1) % len(dayChoices)
		case "right", "l":
			v.dayIdx = (v.dayIdx + 1) % len(dayChoices)
		}
		return nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return cmd
}

func (v *WeeklyView) updateEditing(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.mode = weeklyNormal
		v.input.Blur()
		return nil

	case key.Matches(msg, v.keys.Enter):
		v.store.Edit(v.editID, v.input.Value())
		v.mode = weeklyNormal
		v.input.Blur()
		return nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return cmd
}

func (v *WeeklyView) updateConfirmDelete(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		v.store.Remove(v.deleteID)
		if v.cursor >= v.store.Len() {
			v.cursor = max(0, v.store.Len()-1)
		}
		v.mode = weeklyNormal
	case "n", "N", "esc":
		v.mode = weeklyNormal
	}
	return nil
}

// View renders the tab content
func (v *WeeklyView) View() string {
	s := v.styles

	if v.mode == weeklyConfirmDelete {
		return renderDeleteConfirm(s, "Delete Task?", v.width, v.height)
	}

	var b strings.Builder

	title := fmt.Sprintf("Weekly (%d left)", v.store.Remaining())
	b.WriteString(s.Title.Render(title))
	b.WriteString("\n\n")

	if v.mode == weeklyAdding || v.mode == weeklyEditing {
		b.WriteString(v.renderForm())
		b.WriteString("\n\n")
	}

	b.WriteString(v.renderGroups())
	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return styles.CenterView(b.String(), v.width, v.height)
}

func (v *WeeklyView) renderForm() string {
	s := v.styles
	inputWidth := clamp(styles.ContentWidth(v.width)-20, 20, 50)

	inputStyle := s.Input
	dayStyle := s.Button
	if v.mode == weeklyEditing || v.focusIdx == 0 {
		inputStyle = s.InputFocused
	} else {
		dayStyle = s.ButtonFocused
	}

	box := inputStyle.Width(inputWidth).Render(v.input.View())
	if v.mode == weeklyEditing {
		return lipgloss.JoinVertical(lipgloss.Left, "Edit task:", box)
	}

	daySel := dayStyle.Render("◀ " + models.DayLabels[v.dayIdx] + " ▶")
	return lipgloss.JoinVertical(lipgloss.Left,
		"New task:",
		lipgloss.JoinHorizontal(lipgloss.Center, box, " ", daySel),
	)
}

func (v *WeeklyView) renderGroups() string {
	s := v.styles
	groups := v.store.Groups()

	if v.store.Len() == 0 {
		return s.TitleMuted.Render("No weekly tasks. Press 'n' to add one.")
	}

	width := max(styles.ContentWidth(v.width)-4, 20)

	var lines []string
	idx := 0
	for _, label := range models.DayLabels {
		bucket := groups[label]
		if len(bucket) == 0 {
			continue
		}
		lines = append(lines, s.TitleMuted.Render(label))
		for _, task := range bucket {
			checkbox := "[ ]"
			if task.Done {
				checkbox = "[x]"
			}
			line := checkbox + " " + task.Text

			style := s.ListItem
			if idx == v.cursor && v.mode == weeklyNormal {
				style = s.ListSelected
			} else if task.Done {
				style = s.ListDone
			}
			lines = append(lines, style.Width(width).Render(line))
			idx++
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (v *WeeklyView) renderHelp() string {
	s := v.styles
	switch v.mode {
	case weeklyAdding:
		return s.Help.Render(
			fmt.Sprintf("%s text/day • %s pick day • %s save • %s cancel",
				s.HelpKey.Render("tab"),
				s.HelpKey.Render("←→"),
				s.HelpKey.Render("↵"),
				s.HelpKey.Render("esc"),
			),
		)
	case weeklyEditing:
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
