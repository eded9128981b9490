// Package reports derives balances, totals and dashboard widgets from a
// set of transactions held in memory. Everything here is a pure function
// of its inputs; callers decide where the transactions come from.
package reports

import (
	"fintrack/models"
	"math"
	"sort"
	"time"
)

// Scope is the time window applied to the derivation: the whole record,
// one year, or one year+month.
type Scope struct {
	Lifetime bool
	Year     int
	Month    int // 0-11; -1 means the entire year
}

// LifetimeScope covers every transaction
func LifetimeScope() Scope {
	return Scope{Lifetime: true}
}

// YearScope covers a single calendar year
func YearScope(year int) Scope {
	return Scope{Year: year, Month: -1}
}

// MonthScope covers a single month of a year. Month is 0-11.
func MonthScope(year, month int) Scope {
	return Scope{Year: year, Month: month}
}

// Contains reports whether a transaction's date falls inside the scope
func (s Scope) Contains(t models.Transaction) bool {
	if s.Lifetime {
		return true
	}
	if t.Date.Year() != s.Year {
		return false
	}
	if s.Month < 0 {
		return true
	}
	return int(t.Date.Month())-1 == s.Month
}

// Filter returns the transactions inside the scope, in input order
func Filter(scope Scope, transactions []models.Transaction) []models.Transaction {
	var out []models.Transaction
	for _, t := range transactions {
		if scope.Contains(t) {
			out = append(out, t)
		}
	}
	return out
}

// Totals holds the headline numbers for a scope. Balance is the signed
// sum, Income the sum of positive amounts, Expense the absolute sum of
// negative amounts, so Balance == Income - Expense always holds.
type Totals struct {
	Balance float64 `json:"balance"`
	Income  float64 `json:"income"`
	Expense float64 `json:"expense"`
}

// Sum computes the totals over a set of transactions
func Sum(transactions []models.Transaction) Totals {
	var t Totals
	for _, tx := range transactions {
		t.Balance += tx.Amount
		if tx.Amount > 0 {
			t.Income += tx.Amount
		} else {
			t.Expense += math.Abs(tx.Amount)
		}
	}
	return t
}

// CategoryBreakdown groups expense-kind transactions by category, summing
// absolute amounts. The per-category sums add up to the scope's expense
// total for expense-kind entries.
func CategoryBreakdown(transactions []models.Transaction) map[string]float64 {
	categories := make(map[string]float64)
	for _, t := range transactions {
		if t.Kind != models.KindExpense {
			continue
		}
		categories[t.Category] += math.Abs(t.Amount)
	}
	return categories
}

// Stats holds the dashboard widget values. SavingsRate and
// BudgetUtilization are display values: the former is floored at 0, the
// latter capped at 100.
type Stats struct {
	SavingsRate       float64 `json:"savingsRate"`
	BudgetUtilization float64 `json:"budgetUtilization"`
	HighestExpense    float64 `json:"highestExpense"`
	AverageExpense    float64 `json:"averageExpense"`
}

// ComputeStats derives the widget values from a set of transactions,
// splitting by kind rather than by amount sign
func ComputeStats(transactions []models.Transaction) Stats {
	var income, expense, highest float64
	var expenseCount int

	for _, t := range transactions {
		switch t.Kind {
		case models.KindIncome:
			income += t.Amount
		case models.KindExpense:
			abs := math.Abs(t.Amount)
			expense += abs
			expenseCount++
			if abs > highest {
				highest = abs
			}
		}
	}

	var stats Stats
	stats.HighestExpense = highest

	if expenseCount > 0 {
		stats.AverageExpense = expense / float64(expenseCount)
	}

	if income > 0 {
		stats.SavingsRate = math.Max(0, (income-expense)/income*100)
		stats.BudgetUtilization = math.Min(100, expense/income*100)
	}

	return stats
}

// Recent returns the n most-recently-dated transactions, newest first.
// The input is not modified.
func Recent(transactions []models.Transaction, n int) []models.Transaction {
	sorted := make([]models.Transaction, len(transactions))
	copy(sorted, transactions)

	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date.After(sorted[j].Date)
	})

	if n > len(sorted) {
		n = len(sorted)
	}
	return sorted[:n]
}

// Calendar describes the current real-world month as a grid: weekday
// headers, leading blank cells before day 1, the day count, and which day
// is today.
type Calendar struct {
	Year     int      `json:"year"`
	Month    int      `json:"month"` // 0-11
	Weekdays []string `json:"weekdays"`
	Leading  int      `json:"leading"`
	Days     int      `json:"days"`
	Today    int      `json:"today"`
}

// BuildCalendar lays out the month containing now
func BuildCalendar(now time.Time) Calendar {
	year, month, day := now.Date()

	firstDay := time.Date(year, month, 1, 0, 0, 0, 0, now.Location())
	daysInMonth := firstDay.AddDate(0, 1, -1).Day()

	return Calendar{
		Year:     year,
		Month:    int(month) - 1,
		Weekdays: []string{"S", "M", "T", "W", "T", "F", "S"},
		Leading:  int(firstDay.Weekday()),
		Days:     daysInMonth,
		Today:    day,
	}
}
