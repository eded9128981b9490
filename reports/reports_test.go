package reports

import (
	"fintrack/models"
	"math"
	"testing"
	"time"
)

func tx(kind models.TransactionKind, amount float64, category string, date time.Time) models.Transaction {
	return models.Transaction{
		Kind:     kind,
		Amount:   amount,
		Category: category,
		Date:     date,
	}
}

func day(year, month, d int) time.Time {
	return time.Date(year, time.Month(month), d, 0, 0, 0, 0, time.Local)
}

func sample() []models.Transaction {
	return []models.Transaction{
		tx(models.KindIncome, 1000, "General", day(2024, 3, 1)),
		tx(models.KindExpense, -50, "Food", day(2024, 3, 5)),
		tx(models.KindExpense, -150, "Rent", day(2024, 3, 10)),
		tx(models.KindExpense, -30, "Food", day(2024, 4, 2)),
		tx(models.KindIncome, 500, "General", day(2023, 12, 20)),
	}
}

func TestFilterScopes(t *testing.T) {
	txs := sample()

	cases := []struct {
		name  string
		scope Scope
		want  int
	}{
		{"lifetime", LifetimeScope(), 5},
		{"year 2024", YearScope(2024), 4},
		{"year 2023", YearScope(2023), 1},
		{"march 2024", MonthScope(2024, 2), 3},
		{"april 2024", MonthScope(2024, 3), 1},
		{"empty month", MonthScope(2024, 7), 0},
	}

	for _, tc := range cases {
		if got := len(Filter(tc.scope, txs)); got != tc.want {
			t.Fatalf("%s: expected %d transactions, got %d", tc.name, tc.want, got)
		}
	}
}

func TestSumBalanceIdentity(t *testing.T) {
	scopes := []Scope{LifetimeScope(), YearScope(2024), MonthScope(2024, 2), MonthScope(2024, 7)}

	for _, scope := range scopes {
		totals := Sum(Filter(scope, sample()))
		if diff := math.Abs(totals.Balance - (totals.Income - totals.Expense)); diff > 1e-9 {
			t.Fatalf("scope %+v: balance %v != income %v - expense %v", scope, totals.Balance, totals.Income, totals.Expense)
		}
	}
}

func TestSumTotals(t *testing.T) {
	totals := Sum(Filter(MonthScope(2024, 2), sample()))

	if totals.Income != 1000 {
		t.Fatalf("expected income 1000, got %v", totals.Income)
	}
	if totals.Expense != 200 {
		t.Fatalf("expected expense 200, got %v", totals.Expense)
	}
	if totals.Balance != 800 {
		t.Fatalf("expected balance 800, got %v", totals.Balance)
	}
}

func TestCategoryBreakdown(t *testing.T) {
	scoped := Filter(YearScope(2024), sample())
	categories := CategoryBreakdown(scoped)

	if categories["Food"] != 80 {
		t.Fatalf("expected Food 80, got %v", categories["Food"])
	}
	if categories["Rent"] != 150 {
		t.Fatalf("expected Rent 150, got %v", categories["Rent"])
	}
	if _, ok := categories["General"]; ok {
		t.Fatalf("income categories must not appear in the breakdown")
	}

	// category sums must add up to the scope's expense total
	var sum float64
	for _, v := range categories {
		sum += v
	}
	if totals := Sum(scoped); math.Abs(sum-totals.Expense) > 1e-9 {
		t.Fatalf("breakdown sum %v != expense total %v", sum, totals.Expense)
	}
}

func TestComputeStats(t *testing.T) {
	stats := ComputeStats(Filter(MonthScope(2024, 2), sample()))

	if stats.HighestExpense != 150 {
		t.Fatalf("expected highest expense 150, got %v", stats.HighestExpense)
	}
	if stats.AverageExpense != 100 {
		t.Fatalf("expected average expense 100, got %v", stats.AverageExpense)
	}
	if stats.SavingsRate != 80 {
		t.Fatalf("expected savings rate 80, got %v", stats.SavingsRate)
	}
	if stats.BudgetUtilization != 20 {
		t.Fatalf("expected budget utilization 20, got %v", stats.BudgetUtilization)
	}
}

func TestComputeStatsClamps(t *testing.T) {
	overspent := []models.Transaction{
		tx(models.KindIncome, 100, "General", day(2024, 1, 1)),
		tx(models.KindExpense, -300, "Rent", day(2024, 1, 2)),
	}

	stats := ComputeStats(overspent)
	if stats.SavingsRate != 0 {
		t.Fatalf("savings rate must floor at 0, got %v", stats.SavingsRate)
	}
	if stats.BudgetUtilization != 100 {
		t.Fatalf("budget utilization must cap at 100, got %v", stats.BudgetUtilization)
	}
}

func TestComputeStatsNoIncome(t *testing.T) {
	stats := ComputeStats([]models.Transaction{
		tx(models.KindExpense, -40, "Food", day(2024, 1, 1)),
	})
	if stats.SavingsRate != 0 || stats.BudgetUtilization != 0 {
		t.Fatalf("rates must be 0 without income, got %+v", stats)
	}
}

func TestRecent(t *testing.T) {
	txs := sample()
	recent := Recent(txs, 3)

	if len(recent) != 3 {
		t.Fatalf("expected 3 recent entries, got %d", len(recent))
	}
	if !recent[0].Date.Equal(day(2024, 4, 2)) {
		t.Fatalf("expected newest first, got %v", recent[0].Date)
	}
	if !recent[0].Date.After(recent[1].Date) || !recent[1].Date.After(recent[2].Date) {
		t.Fatalf("recent entries out of order: %v %v %v", recent[0].Date, recent[1].Date, recent[2].Date)
	}

	// asking for more than exists returns everything
	if got := len(Recent(txs, 10)); got != 5 {
		t.Fatalf("expected 5 entries, got %d", got)
	}
}

func TestBuildCalendar(t *testing.T) {
	// March 2024 starts on a Friday and has 31 days
	cal := BuildCalendar(time.Date(2024, 3, 15, 12, 0, 0, 0, time.Local))

	if cal.Year != 2024 || cal.Month != 2 {
		t.Fatalf("expected March 2024 (month 2), got year %d month %d", cal.Year, cal.Month)
	}
	if cal.Leading != 5 {
		t.Fatalf("expected 5 leading blanks, got %d", cal.Leading)
	}
	if cal.Days != 31 {
		t.Fatalf("expected 31 days, got %d", cal.Days)
	}
	if cal.Today != 15 {
		t.Fatalf("expected today 15, got %d", cal.Today)
	}
	if len(cal.Weekdays) != 7 {
		t.Fatalf("expected 7 weekday headers, got %d", len(cal.Weekdays))
	}
}
