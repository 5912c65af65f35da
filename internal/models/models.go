package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// DayAny marks a weekly task that is not pinned to a weekday.
const DayAny = "any"

// DayLabels are the weekly grouping buckets in display order. Index 1..7
// corresponds to dayOfWeek values "0".."6".
var DayLabels = []string{"Any", "Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}

// Transaction types
const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Task is a single to-do item (daily and misc lists)
type Task struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"createdAt"`
}

func (t Task) RecordID() string { return t.ID }

// WeeklyTask is a to-do item pinned to a day of the week.
// DayOfWeek is "any" or "0".."6" (Sunday first).
type WeeklyTask struct {
	ID        string    `json:"id"`
	Text      string    `json:"text"`
	DayOfWeek string    `json:"dayOfWeek"`
	Done      bool      `json:"done"`
	CreatedAt time.Time `json:"createdAt"`
}

func (t WeeklyTask) RecordID() string { return t.ID }

// DayLabel returns the grouping bucket this task belongs to.
func (t WeeklyTask) DayLabel() string {
	if len(t.DayOfWeek) == 1 && t.DayOfWeek[0] >= '0' && t.DayOfWeek[0] <= '6' {
		return DayLabels[int(t.DayOfWeek[0]-'0')+1]
	}
	return DayLabels[0]
}

// ScheduleBlock is one activity in the daily schedule.
// Time is a zero-padded 24-hour "HH:MM" string, so lexicographic order is
// chronological order.
type ScheduleBlock struct {
	ID       string `json:"id"`
	Time     string `json:"time"`
	Activity string `json:"activity"`
}

func (b ScheduleBlock) RecordID() string { return b.ID }

// Transaction is a single income or expense record.
type Transaction struct {
	ID       string          `json:"id"`
	Type     string          `json:"type"`
	Amount   decimal.Decimal `json:"amount"`
	Category string          `json:"category"`
	Note     string          `json:"note"`
	Date     string          `json:"date"` // YYYY-MM-DD
}

func (t Transaction) RecordID() string { return t.ID }

// JournalEntry is one dated journal record.
type JournalEntry struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func (e JournalEntry) RecordID() string { return e.ID }
