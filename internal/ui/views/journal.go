package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/rkeller/levelup/internal/models"
	"github.com/rkeller/levelup/internal/records"
	"github.com/rkeller/levelup/internal/ui/keys"
	"github.com/rkeller/levelup/internal/ui/styles"
)

type journalMode int

const (
	journalNormal journalMode = iota
	journalSearching
	journalViewing
	journalEditing
	journalConfirmDelete
)

// JournalView renders the journal list, a read-only entry view, and the entry
// editor. Cancelling an edit discards the draft and leaves the record as it
// was.
type JournalView struct {
	store  *records.JournalStore
	styles *styles.Styles
	keys   keys.KeyMap

	width  int
	height int

	mode     journalMode
	cursor   int
	deleteID string

	searchIn textinput.Model

	// Editor state; editID is empty when composing a new entry
	editID    string
	titleIn   textinput.Model
	contentIn textarea.Model
	tagsIn    textinput.Model
	focusIdx  int // 0=title, 1=content, 2=tags, 3=save
}

// NewJournalView creates the journal tab view
func NewJournalView(store *records.JournalStore) *JournalView {
	searchIn := textinput.New()
	searchIn.Placeholder = "Search title/content/tags..."
	searchIn.CharLimit = 100

	titleIn := textinput.New()
	titleIn.Placeholder = "Title (blank = today's date)"
	titleIn.CharLimit = 200

	contentIn := textarea.New()
	contentIn.Placeholder = "Write your thoughts..."
	contentIn.CharLimit = 10000
	contentIn.SetWidth(50)
	contentIn.SetHeight(6)
	contentIn.ShowLineNumbers = false

	tagsIn := textinput.New()
	tagsIn.Placeholder = "Tags (comma-separated)"
	tagsIn.CharLimit = 200

	return &JournalView{
		store:     store,
		styles:    styles.NewStyles(),
		keys:      keys.DefaultKeyMap(),
		searchIn:  searchIn,
		titleIn:   titleIn,
		contentIn: contentIn,
		tagsIn:    tagsIn,
	}
}

// SetSize updates the view dimensions
func (v *JournalView) SetSize(width, height int) {
	v.width = width
	v.height = height
	v.contentIn.SetWidth(clamp(styles.ContentWidth(width)-10, 20, 60))
}

// InputActive reports whether the view is capturing keystrokes for a form
// or modal. The read-only entry view still owns esc/e/d but leaves the
// global keys alone.
func (v *JournalView) InputActive() bool {
	return v.mode != journalNormal && v.mode != journalViewing
}

// filtered returns the entries matching the current search query
func (v *JournalView) filtered() []models.JournalEntry {
	return v.store.Search(v.searchIn.Value())
}

// Update handles key messages for this tab
func (v *JournalView) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch v.mode {
	case journalSearching:
		return v.updateSearching(keyMsg)
	case journalViewing:
		return v.updateViewing(keyMsg)
	case journalEditing:
		return v.updateEditing(keyMsg)
	case journalConfirmDelete:
		return v.updateConfirmDelete(keyMsg)
	}
	return v.updateNormal(keyMsg)
}

func (v *JournalView) updateNormal(msg tea.KeyMsg) tea.Cmd {
	entries := v.filtered()

	switch {
	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
		}

	case key.Matches(msg, v.keys.Down):
		if v.cursor < len(entries)-1 {
			v.cursor++
		}

	case key.Matches(msg, v.keys.Enter):
		if len(entries) > 0 {
			v.mode = journalViewing
		}

	case key.Matches(msg, v.keys.Search):
		v.mode = journalSearching
		v.searchIn.Focus()
		return textinput.Blink

	case key.Matches(msg, v.keys.New):
		return v.startEditor(nil)

	case key.Matches(msg, v.keys.Edit):
		if len(entries) > 0 {
			entry := entries[v.cursor]
			return v.startEditor(&entry)
		}

	case key.Matches(msg, v.keys.Delete):
		if len(entries) > 0 {
			v.mode = journalConfirmDelete
			v.deleteID = entries[v.cursor].ID
		}
	}

	return nil
}

func (v *JournalView) updateSearching(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.searchIn.Reset()
		v.searchIn.Blur()
		v.mode = journalNormal
		v.cursor = 0
		return nil
	case key.Matches(msg, v.keys.Enter):
		v.searchIn.Blur()
		v.mode = journalNormal
		v.cursor = 0
		return nil
	}

	var cmd tea.Cmd
	v.searchIn, cmd = v.searchIn.Update(msg)
	v.cursor = 0
	return cmd
}

func (v *JournalView) updateViewing(msg tea.KeyMsg) tea.Cmd {
	entries := v.filtered()

	switch {
	case key.Matches(msg, v.keys.Back):
		v.mode = journalNormal

	case key.Matches(msg, v.keys.Edit):
		if len(entries) > 0 {
			entry := entries[v.cursor]
			return v.startEditor(&entry)
		}

	case key.Matches(msg, v.keys.Delete):
		if len(entries) > 0 {
			v.mode = journalConfirmDelete
			v.deleteID = entries[v.cursor].ID
		}
	}

	return nil
}

// startEditor opens the editor, prefilled when editing an existing entry
func (v *JournalView) startEditor(entry *models.JournalEntry) tea.Cmd {
	v.mode = journalEditing
	v.focusIdx = 0

	if entry == nil {
		v.editID = ""
		v.titleIn.Reset()
		v.contentIn.Reset()
		v.tagsIn.Reset()
	} else {
		v.editID = entry.ID
		v.titleIn.SetValue(entry.Title)
		v.contentIn.SetValue(entry.Content)
		v.tagsIn.SetValue(strings.Join(entry.Tags, ", "))
		v.titleIn.CursorEnd()
	}

	v.updateEditorFocus()
	return textinput.Blink
}

func (v *JournalView) updateEditorFocus() {
	v.titleIn.Blur()
	v.contentIn.Blur()
	v.tagsIn.Blur()

	switch v.focusIdx {
	case 0:
		v.titleIn.Focus()
	case 1:
		v.contentIn.Focus()
	case 2:
		v.tagsIn.Focus()
	}
}

func (v *JournalView) saveEntry() {
	if v.editID == "" {
		if v.store.Add(v.titleIn.Value(), v.contentIn.Value(), v.tagsIn.Value()) {
			v.mode = journalNormal
			v.cursor = 0
		}
		// An all-blank draft keeps the editor open
		return
	}
	v.store.Save(v.editID, v.titleIn.Value(), v.contentIn.Value(), v.tagsIn.Value())
	v.mode = journalViewing
}

func (v *JournalView) updateEditing(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, v.keys.Back):
		// Cancel discards the draft
		if v.editID == "" {
			v.mode = journalNormal
		} else {
			v.mode = journalViewing
		}
		return nil

	case msg.String() == "ctrl+s":
		v.saveEntry()
		return nil

	case key.Matches(msg, v.keys.Tab):
		v.focusIdx = (v.focusIdx + 1) % 4
		v.updateEditorFocus()
		return textinput.Blink

	case key.Matches(msg, v.keys.ShiftTab):
		v.focusIdx = (v.focusIdx + 3) % 4
		v.updateEditorFocus()
		return textinput.Blink

	case key.Matches(msg, v.keys.Enter):
		// Enter inside the content textarea inserts a newline
		if v.focusIdx == 0 || v.focusIdx == 2 {
			v.focusIdx++
			v.updateEditorFocus()
			return textinput.Blink
		}
		if v.focusIdx == 3 {
			v.saveEntry()
			return nil
		}
	}

	var cmd tea.Cmd
	switch v.focusIdx {
	case 0:
		v.titleIn, cmd = v.titleIn.Update(msg)
	case 1:
		v.contentIn, cmd = v.contentIn.Update(msg)
	case 2:
		v.tagsIn, cmd = v.tagsIn.Update(msg)
	}
	return cmd
}

func (v *JournalView) updateConfirmDelete(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		v.store.Remove(v.deleteID)
		if v.cursor >= len(v.filtered()) {
			v.cursor = max(0, len(v.filtered())-1)
		}
		v.mode = journalNormal
	case "n", "N", "esc":
		v.mode = journalNormal
	}
	return nil
}

// View renders the tab content
func (v *JournalView) View() string {
	s := v.styles

	switch v.mode {
	case journalConfirmDelete:
		return renderDeleteConfirm(s, "Delete Entry?", v.width, v.height)
	case journalEditing:
		return v.renderEditor()
	case journalViewing:
		return v.renderEntry()
	}

	var b strings.Builder

	b.WriteString(s.Title.Render("Journal"))
	b.WriteString("\n\n")

	searchStyle := s.Input
	if v.mode == journalSearching {
		searchStyle = s.InputFocused
	}
	searchWidth := clamp(styles.ContentWidth(v.width)-6, 20, 40)
	b.WriteString(searchStyle.Width(searchWidth).Render(v.searchIn.View()))
	b.WriteString("\n\n")

	b.WriteString(v.renderList())
	b.WriteString("\n")
	b.WriteString(v.renderHelp())

	return styles.CenterView(b.String(), v.width, v.height)
}

func (v *JournalView) renderList() string {
	s := v.styles
	entries := v.filtered()

	if len(entries) == 0 {
		if v.store.Len() == 0 {
			return s.TitleMuted.Render("No entries. Press 'n' to write one.")
		}
		return s.TitleMuted.Render("No matches.")
	}

	width := max(styles.ContentWidth(v.width)-4, 20)

	var lines []string
	for i, entry := range entries {
		stamp := entry.UpdatedAt.Format("Jan 2, 2006 3:04 PM")

		titleStyle := s.ListItem
		stampStyle := s.ListItem.Foreground(styles.Current.ForegroundDim)
		if i == v.cursor && v.mode == journalNormal {
			titleStyle = s.ListSelected
			stampStyle = s.ListSelected.Foreground(styles.Current.ForegroundDim)
		}

		lines = append(lines,
			titleStyle.Width(width).Render(entry.Title),
			stampStyle.Width(width).Render(stamp),
			"",
		)
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (v *JournalView) renderEntry() string {
	entries := v.filtered()
	if len(entries) == 0 || v.cursor >= len(entries) {
		return ""
	}

	s := v.styles
	entry := entries[v.cursor]
	textWidth := clamp(styles.ContentWidth(v.width)-10, 20, 70)

	tagsLine := "None"
	if len(entry.Tags) > 0 {
		var tagStrs []string
		for _, tag := range entry.Tags {
			tagStrs = append(tagStrs, s.Tag.Render("#"+tag))
		}
		tagsLine = strings.Join(tagStrs, " ")
	}

	contentText := entry.Content
	if contentText == "" {
		contentText = s.TitleMuted.Render("No content")
	}

	content := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.MarginBottom(1).Render(entry.Title),
		"",
		s.TitleMuted.Render("Updated "+entry.UpdatedAt.Format("Jan 2, 2006 3:04 PM")),
		"",
		lipgloss.NewStyle().Width(textWidth).Render(contentText),
		"",
		s.TitleMuted.Render("Tags"),
		tagsLine,
		"",
		s.Help.Render(
			fmt.Sprintf("%s edit • %s delete • %s back",
				s.HelpKey.Render("e"),
				s.HelpKey.Render("d"),
				s.HelpKey.Render("esc"),
			),
		),
	)

	padded := lipgloss.NewStyle().Padding(1, 2).Render(content)
	return styles.CenterView(padded, v.width, v.height)
}

func (v *JournalView) renderEditor() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	formTitle := "New Entry"
	if v.editID != "" {
		formTitle = "Edit Entry"
	}

	titleStyle := s.Input
	contentStyle := s.Input
	tagsStyle := s.Input
	btnStyle := s.Button

	switch v.focusIdx {
	case 0:
		titleStyle = s.InputFocused
	case 1:
		contentStyle = s.InputFocused
	case 2:
		tagsStyle = s.InputFocused
	case 3:
		btnStyle = s.ButtonFocused
	}

	inputWidth := clamp(contentWidth-6, 20, 60)

	form := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render(formTitle),
		"",
		"Title:",
		titleStyle.Width(inputWidth).Render(v.titleIn.View()),
		"",
		"Content:",
		contentStyle.Render(v.contentIn.View()),
		"",
		"Tags:",
		tagsStyle.Width(inputWidth).Render(v.tagsIn.View()),
		"",
		btnStyle.Render(" Save "),
		"",
		s.TitleMuted.Render("Tab: next • Ctrl+S: save • Esc: cancel"),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		form,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *JournalView) renderHelp() string {
	s := v.styles
	if v.mode == journalSearching {
		return s.Help.Render(
			fmt.Sprintf("%s done • %s clear",
				s.HelpKey.Render("↵"),
				s.HelpKey.Render("esc"),
			),
		)
	}
	return s.Help.Render(
		fmt.Sprintf("%s read • %s new • %s edit • %s del • %s search",
			s.HelpKey.Render("↵"),
			s.HelpKey.Render("n"),
			s.HelpKey.Render("e"),
			s.HelpKey.Render("d"),
			s.HelpKey.Render("/"),
		),
	)
}
