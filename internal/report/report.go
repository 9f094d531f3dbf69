// Package report computes derived financial figures from a user's
// transaction set. Everything here is side-effect free: handlers load a
// scoped slice of transactions and hand it over, so all sums over empty
// input yield zero and division guards return zero instead of failing.
package report

import (
	"sort"
	"time"

	"moneymap/internal/models"

	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// CategoryTotal is one row of a category breakdown. Name is empty for
// transactions whose category was deleted; the presentation layer labels
// that group "Uncategorized".
type CategoryTotal struct {
	Name  string
	Total decimal.Decimal
}

// TrendPoint is one bucket of the six-month trend chart.
type TrendPoint struct {
	Label   string // e.g. "Jan 2006"
	Year    int
	Month   time.Month
	Income  decimal.Decimal
	Expense decimal.Decimal
}

// GoalProgress describes spending against one budget goal for the
// current calendar month.
type GoalProgress struct {
	Spent      decimal.Decimal
	Remaining  decimal.Decimal // limit - spent, may be negative on overspend
	Percentage decimal.Decimal // capped at 100 for display
}

// TotalByType sums the amounts of all transactions of the given type.
func TotalByType(txs []models.Transaction, txType string) decimal.Decimal {
	total := decimal.Zero
	for i := range txs {
		if txs[i].Type == txType {
			total = total.Add(txs[i].Amount)
		}
	}
	return total
}

// MonthSubset returns the transactions whose date falls in the given
// calendar month.
func MonthSubset(txs []models.Transaction, year int, month time.Month) []models.Transaction {
	var out []models.Transaction
	for i := range txs {
		if txs[i].Date.Year() == year && txs[i].Date.Month() == month {
			out = append(out, txs[i])
		}
	}
	return out
}

// Balance is monthly income minus monthly expense. Not clamped; a
// negative balance means the user outspent the income baseline.
func Balance(monthlyIncome, monthlyExpense decimal.Decimal) decimal.Decimal {
	return monthlyIncome.Sub(monthlyExpense)
}

// ExpensePercentage is monthlyExpense / monthlyIncome * 100, rounded to
// two places. Zero when income is not positive.
func ExpensePercentage(monthlyExpense, monthlyIncome decimal.Decimal) decimal.Decimal {
	if !monthlyIncome.IsPositive() {
		return decimal.Zero
	}
	return monthlyExpense.Mul(hundred).DivRound(monthlyIncome, 2)
}

// CategoryBreakdown groups the expense transactions of txs by category
// name and sums each group, sorted descending by total (name ascending
// on ties, so output is deterministic). Transactions without a category
// form their own group with an empty name.
func CategoryBreakdown(txs []models.Transaction) []CategoryTotal {
	sums := make(map[string]decimal.Decimal)
	for i := range txs {
		t := &txs[i]
		if t.Type != models.TypeExpense {
			continue
		}
		name := ""
		if t.Category != nil {
			name = t.Category.Name
		}
		sums[name] = sums[name].Add(t.Amount)
	}

	out := make([]CategoryTotal, 0, len(sums))
	for name, total := range sums {
		out = append(out, CategoryTotal{Name: name, Total: total})
	}
	sort.Slice(out, func(i, j int) bool {
		if !out[i].Total.Equal(out[j].Total) {
			return out[i].Total.GreaterThan(out[j].Total)
		}
		return out[i].Name < out[j].Name
	})
	return out
}

// SixMonthTrend buckets income and expense sums for the last six chart
// points. Each anchor is now minus 30*i days and selects the anchor's
// calendar month; near month boundaries this rolling walk can skip or
// repeat a month, which matches the historical chart behavior.
func SixMonthTrend(txs []models.Transaction, now time.Time) []TrendPoint {
	points := make([]TrendPoint, 0, 6)
	for i := 5; i >= 0; i-- {
		anchor := now.AddDate(0, 0, -30*i)
		subset := MonthSubset(txs, anchor.Year(), anchor.Month())
		points = append(points, TrendPoint{
			Label:   anchor.Format("Jan 2006"),
			Year:    anchor.Year(),
			Month:   anchor.Month(),
			Income:  TotalByType(subset, models.TypeIncome),
			Expense: TotalByType(subset, models.TypeExpense),
		})
	}
	return points
}

// Progress computes spending against a monthly limit for one category in
// the calendar month of now. Remaining is not floored: it goes negative
// to signal overspend, while Percentage is capped at 100 for display and
// zero when the limit is not positive.
func Progress(limit decimal.Decimal, txs []models.Transaction, categoryID uint, now time.Time) GoalProgress {
	spent := decimal.Zero
	for i := range txs {
		t := &txs[i]
		if t.Type != models.TypeExpense || t.CategoryID == nil || *t.CategoryID != categoryID {
			continue
		}
		if t.Date.Year() != now.Year() || t.Date.Month() != now.Month() {
			continue
		}
		spent = spent.Add(t.Amount)
	}

	percentage := decimal.Zero
	if limit.IsPositive() {
		percentage = spent.Mul(hundred).DivRound(limit, 2)
		if percentage.GreaterThan(hundred) {
			percentage = hundred
		}
	}

	return GoalProgress{
		Spent:      spent,
		Remaining:  limit.Sub(spent),
		Percentage: percentage,
	}
}
