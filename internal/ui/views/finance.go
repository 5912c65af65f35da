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

type financeMode int

const (
	financeNormal financeMode = iota
	financeSearching
	financeAdding
	financeConfirmDelete
)

// FinanceView renders the transaction list with totals and search
type FinanceView struct {
	store  *records.FinanceStore
	styles *styles.Styles
	keys   keys.KeyMap

	width  int
	height int

	mode     financeMode
	cursor   int
	deleteID string

	searchIn textinput.Model

	// Add form
	typIdx     int // 0=expense, 1=income
	amountIn   textinput.Model
	categoryIn textinput.Model
	dateIn     textinput.Model
	noteIn     textinput.Model
	focusIdx   int // 0=type, 1=amount, 2=category, 3=date, 4=note, 5=save
}

// NewFinanceView creates the finances tab view
func NewFinanceView(store *records.FinanceStore) *FinanceView {
	searchIn := textinput.New()
	searchIn.Placeholder = "Search type/category/note..."
	searchIn.CharLimit = 100

	amountIn := textinput.New()
	amountIn.Placeholder = "Amount"
	amountIn.CharLimit = 20

	categoryIn := textinput.New()
	categoryIn.Placeholder = "Category (e.g., Food, Rent)"
	categoryIn.CharLimit = 100

	dateIn := textinput.New()
	dateIn.Placeholder = "YYYY-MM-DD (today)"
	dateIn.CharLimit = 10

	noteIn := textinput.New()
	noteIn.Placeholder = "Note (optional)"
	noteIn.CharLimit = 200

	return &FinanceView{
		store:      store,
		styles:     styles.NewStyles(),
		keys:       keys.DefaultKeyMap(),
		searchIn:   searchIn,
		amountIn:   amountIn,
		categoryIn: categoryIn,
		dateIn:     dateIn,
		noteIn:     noteIn,
	}
}

// SetSize updates the view dimensions
func (v *FinanceView) SetSize(width, height int) {
	v.width = width
	v.height = height
}

// filtered returns the transactions matching the current search query
func (v *FinanceView) filtered() []models.Transaction {
	return v.store.Search(v.searchIn.Value())
}

// InputActive reports whether the view is capturing keystrokes for a form
// or modal
func (v *FinanceView) InputActive() bool {
	return v.mode != financeNormal
}

// Update handles key messages for this tab
func (v *FinanceView) Update(msg tea.Msg) tea.Cmd {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch v.mode {
	case financeSearching:
		return v.updateSearching(keyMsg)
	case financeAdding:
		return v.updateAdding(keyMsg)
	case financeConfirmDelete:
		return v.updateConfirmDelete(keyMsg)
	}
	return v.updateNormal(keyMsg)
}

func (v *FinanceView) updateNormal(msg tea.KeyMsg) tea.Cmd {
	items := v.filtered()

	switch {
	case key.Matches(msg, v.keys.Up):
		if v.cursor > 0 {
			v.cursor--
		}

	case key.Matches(msg, v.keys.Down):
		if v.cursor < len(items)-1 {
			v.cursor++
		}

	case key.Matches(msg, v.keys.Search):
		v.mode = financeSearching
		v.searchIn.Focus()
		return textinput.Blink

	case key.Matches(msg, v.keys.New):
		v.startAdding()
		return textinput.Blink

	case key.Matches(msg, v.keys.Delete):
		if len(items) > 0 {
			v.mode = financeConfirmDelete
			v.deleteID = items[v.cursor].ID
		}
	}

	return nil
}

func (v *FinanceView) updateSearching(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.searchIn.Reset()
		v.searchIn.Blur()
		v.mode = financeNormal
		v.cursor = 0
		return nil
	case key.Matches(msg, v.keys.Enter):
		v.searchIn.Blur()
		v.mode = financeNormal
		v.cursor = 0
		return nil
	}

	var cmd tea.Cmd
	v.searchIn, cmd = v.searchIn.Update(msg)
	v.cursor = 0
	return cmd
}

func (v *FinanceView) startAdding() {
	v.mode = financeAdding
	v.typIdx = 0
	v.focusIdx = 1
	v.amountIn.Reset()
	v.categoryIn.Reset()
	v.dateIn.Reset()
	v.noteIn.Reset()
	v.updateFormFocus()
}

func (v *FinanceView) updateFormFocus() {
	v.amountIn.Blur()
	v.categoryIn.Blur()
	v.dateIn.Blur()
	v.noteIn.Blur()

	switch v.focusIdx {
	case 1:
		v.amountIn.Focus()
	case 2:
		v.categoryIn.Focus()
	case 3:
		v.dateIn.Focus()
	case 4:
		v.noteIn.Focus()
	}
}

func (v *FinanceView) submit() {
	typ := models.TypeExpense
	if v.typIdx == 1 {
		typ = models.TypeIncome
	}
	ok := v.store.Add(typ, v.amountIn.Value(), v.categoryIn.Value(), v.noteIn.Value(), v.dateIn.Value())
	if ok {
		v.mode = financeNormal
		v.cursor = 0
	}
	// Rejected drafts keep the form open for correction
}

func (v *FinanceView) updateAdding(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, v.keys.Back):
		v.mode = financeNormal
		return nil

	case msg.String() == "ctrl+s":
		v.submit()
		return nil

	case key.Matches(msg, v.keys.Tab):
		v.focusIdx = (v.focusIdx + 1) % 6
		v.updateFormFocus()
		return textinput.Blink

	case key.Matches(msg, v.keys.ShiftTab):
		v.focusIdx = (v.focusIdx + 5) % 6
		v.updateFormFocus()
		return textinput.Blink

	case key.Matches(msg, v.keys.Enter):
		if v.focusIdx == 5 {
			v.submit()
			return nil
		}
		v.focusIdx++
		v.updateFormFocus()
		return textinput.Blink
	}

	// Type selector cycles with left/right while focused
	if v.focusIdx == 0 {
		switch msg.String() {
		case "left", "right", "h", "l":
			v.typIdx = (v.typIdx + 1) % 2
		}
		return nil
	}

	var cmd tea.Cmd
	switch v.focusIdx {
	case 1:
		v.amountIn, cmd = v.amountIn.Update(msg)
	case 2:
		v.categoryIn, cmd = v.categoryIn.Update(msg)
	case 3:
		v.dateIn, cmd = v.dateIn.Update(msg)
	case 4:
		v.noteIn, cmd = v.noteIn.Update(msg)
	}
	return cmd
}

func (v *FinanceView) updateConfirmDelete(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "y", "Y":
		v.store.Remove(v.deleteID)
		if v.cursor >= len(v.filtered()) {
			v.cursor = max(0, len(v.filtered())-1)
		}
		v.mode = financeNormal
	case "n", "N", "esc":
		v.mode = financeNormal
	}
	return nil
}

// View renders the tab content
func (v *FinanceView) View() string {
	s := v.styles

	if v.mode == financeConfirmDelete {
		return renderDeleteConfirm(s, "Delete Transaction?", v.width, v.height)
	}

	if v.mode == financeAdding {
		return v.renderAddForm()
	}

	var b strings.Builder

	b.WriteString(s.Title.Render("Finances"))
	b.WriteString("\n\n")
	b.WriteString(v.renderTotals())
	b.WriteString("\n\n")

	searchStyle := s.Input
	if v.mode == financeSearching {
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

func (v *FinanceView) renderTotals() string {
	s := v.styles
	totals := v.store.Totals()

	return lipgloss.JoinHorizontal(lipgloss.Center,
		s.BoxIncome.Render("Income  $"+totals.Income.StringFixed(2)),
		" ",
		s.BoxExpense.Render("Expense  $"+totals.Expense.StringFixed(2)),
		" ",
		s.BoxNet.Render("Net  $"+totals.Net.StringFixed(2)),
	)
}

func (v *FinanceView) renderList() string {
	s := v.styles
	items := v.filtered()

	if len(items) == 0 {
		if v.store.Len() == 0 {
			return s.TitleMuted.Render("No transactions. Press 'n' to add one.")
		}
		return s.TitleMuted.Render("No matches.")
	}

	width := max(styles.ContentWidth(v.width)-4, 20)

	var lines []string
	for i, tx := range items {
		marker := "-"
		if tx.Type == models.TypeIncome {
			marker = "+"
		}
		line := fmt.Sprintf("%s $%s  %s • %s", marker, tx.Amount.StringFixed(2), tx.Category, tx.Date)
		if tx.Note != "" {
			line += "  " + tx.Note
		}

		style := s.ListItem
		if i == v.cursor && v.mode == financeNormal {
			style = s.ListSelected
		}
		lines = append(lines, style.Width(width).Render(line))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (v *FinanceView) renderAddForm() string {
	s := v.styles
	contentWidth := styles.ContentWidth(v.width)

	typLabel := "Expense"
	if v.typIdx == 1 {
		typLabel = "Income"
	}
	typStyle := s.Button
	amountStyle := s.Input
	categoryStyle := s.Input
	dateStyle := s.Input
	noteStyle := s.Input
	btnStyle := s.Button

	switch v.focusIdx {
	case 0:
		typStyle = s.ButtonFocused
	case 1:
		amountStyle = s.InputFocused
	case 2:
		categoryStyle = s.InputFocused
	case 3:
		dateStyle = s.InputFocused
	case 4:
		noteStyle = s.InputFocused
	case 5:
		btnStyle = s.ButtonFocused
	}

	inputWidth := clamp(contentWidth-6, 20, 40)

	form := lipgloss.JoinVertical(lipgloss.Left,
		s.Title.Render("New Transaction"),
		"",
		"Type:",
		typStyle.Render("◀ "+typLabel+" ▶"),
		"",
		"Amount:",
		amountStyle.Width(14).Render(v.amountIn.View()),
		"",
		"Category:",
		categoryStyle.Width(inputWidth).Render(v.categoryIn.View()),
		"",
		"Date:",
		dateStyle.Width(14).Render(v.dateIn.View()),
		"",
		"Note:",
		noteStyle.Width(inputWidth).Render(v.noteIn.View()),
		"",
		btnStyle.Render(" Add "),
		"",
		s.TitleMuted.Render("Tab: next • Ctrl+S: save • Esc: cancel"),
	)

	centered := lipgloss.Place(contentWidth, v.height,
		lipgloss.Center, lipgloss.Center,
		form,
	)
	return styles.CenterView(centered, v.width, v.height)
}

func (v *FinanceView) renderHelp() string {
	s := v.styles
	if v.mode == financeSearching {
		return s.Help.Render(
			fmt.Sprintf("%s done • %s clear",
				s.HelpKey.Render("↵"),
				s.HelpKey.Render("esc"),
			),
		)
	}
	return s.Help.Render(
		fmt.Sprintf("%s new • %s del • %s search",
			s.HelpKey.Render("n"),
			s.HelpKey.Render("d"),
			s.HelpKey.Render("/"),
		),
	)
}
