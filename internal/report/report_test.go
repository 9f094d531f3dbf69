package report

import (
	"testing"
	"time"

	"moneymap/internal/models"

	"github.com/shopspring/decimal"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

// tx builds a test transaction; catName == "" means no category.
func tx(txType, amount string, date time.Time, catName string) models.Transaction {
	t := models.Transaction{
		Type:   txType,
		Amount: d(amount),
		Date:   date,
	}
	if catName != "" {
		id := uint(len(catName)) // stable per name, value irrelevant
		t.CategoryID = &id
		t.Category = &models.Category{ID: id, Name: catName, Type: txType}
	}
	return t
}

func TestTotalByType_SumsRegardlessOfOrder(t *testing.T) {
	day := time.Date(2025, 3, 10, 0, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		tx(models.TypeExpense, "300.00", day, ""),
		tx(models.TypeIncome, "1000.00", day, ""),
		tx(models.TypeIncome, "250.50", day, ""),
		tx(models.TypeExpense, "99.99", day, ""),
	}
	reversed := []models.Transaction{txs[3], txs[2], txs[1], txs[0]}

	for _, set := range [][]models.Transaction{txs, reversed} {
		if got := TotalByType(set, models.TypeIncome); !got.Equal(d("1250.50")) {
			t.Errorf("TotalByType(income) = %s, want 1250.50", got)
		}
		if got := TotalByType(set, models.TypeExpense); !got.Equal(d("399.99")) {
			t.Errorf("TotalByType(expense) = %s, want 399.99", got)
		}
	}
}

func TestTotalByType_EmptyIsZero(t *testing.T) {
	if got := TotalByType(nil, models.TypeIncome); !got.IsZero() {
		t.Errorf("TotalByType(nil) = %s, want 0", got)
	}
}

func TestMonthSubset(t *testing.T) {
	txs := []models.Transaction{
		tx(models.TypeExpense, "10", time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), ""),
		tx(models.TypeExpense, "20", time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC), ""),
		tx(models.TypeExpense, "30", time.Date(2025, 3, 31, 0, 0, 0, 0, time.UTC), ""),
		tx(models.TypeExpense, "40", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), ""),
	}

	got := MonthSubset(txs, 2025, time.March)
	if len(got) != 2 {
		t.Fatalf("MonthSubset returned %d transactions, want 2", len(got))
	}
	if total := TotalByType(got, models.TypeExpense); !total.Equal(d("50")) {
		t.Errorf("month subset total = %s, want 50", total)
	}
}

func TestBalance(t *testing.T) {
	// monthly_income=5000, expenses 1200 + 300 -> balance 3500
	day := time.Now()
	txs := []models.Transaction{
		tx(models.TypeExpense, "1200", day, ""),
		tx(models.TypeExpense, "300", day, ""),
	}
	monthly := TotalByType(MonthSubset(txs, day.Year(), day.Month()), models.TypeExpense)
	if got := Balance(d("5000"), monthly); !got.Equal(d("3500")) {
		t.Errorf("Balance = %s, want 3500", got)
	}
}

func TestBalance_MayGoNegative(t *testing.T) {
	if got := Balance(d("100"), d("250")); !got.Equal(d("-150")) {
		t.Errorf("Balance = %s, want -150", got)
	}
}

func TestExpensePercentage(t *testing.T) {
	cases := []struct {
		expense, income, want string
	}{
		{"1500", "5000", "30"},
		{"0", "5000", "0"},
		{"6000", "5000", "120"}, // not capped here, only goal progress caps
		{"333.33", "1000", "33.33"},
	}
	for _, tc := range cases {
		if got := ExpensePercentage(d(tc.expense), d(tc.income)); !got.Equal(d(tc.want)) {
			t.Errorf("ExpensePercentage(%s, %s) = %s, want %s", tc.expense, tc.income, got, tc.want)
		}
	}
}

func TestExpensePercentage_ZeroIncome(t *testing.T) {
	// never a division error, always 0
	for _, expense := range []string{"0", "10", "99999.99"} {
		if got := ExpensePercentage(d(expense), decimal.Zero); !got.IsZero() {
			t.Errorf("ExpensePercentage(%s, 0) = %s, want 0", expense, got)
		}
	}
}

func TestCategoryBreakdown_GroupsAndSorts(t *testing.T) {
	day := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		tx(models.TypeExpense, "50", day, "Food"),
		tx(models.TypeExpense, "30", day, "Food"),
		tx(models.TypeExpense, "20", day, "Transport"),
		tx(models.TypeIncome, "900", day, "Salary"), // income rows are ignored
	}

	got := CategoryBreakdown(txs)
	if len(got) != 2 {
		t.Fatalf("breakdown has %d rows, want 2", len(got))
	}
	if got[0].Name != "Food" || !got[0].Total.Equal(d("80")) {
		t.Errorf("row 0 = %s %s, want Food 80", got[0].Name, got[0].Total)
	}
	if got[1].Name != "Transport" || !got[1].Total.Equal(d("20")) {
		t.Errorf("row 1 = %s %s, want Transport 20", got[1].Name, got[1].Total)
	}
}

func TestCategoryBreakdown_NilCategoryIsOwnGroup(t *testing.T) {
	day := time.Date(2025, 5, 10, 0, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		tx(models.TypeExpense, "15", day, ""),
		tx(models.TypeExpense, "5", day, ""),
		tx(models.TypeExpense, "10", day, "Rent"),
	}

	got := CategoryBreakdown(txs)
	if len(got) != 2 {
		t.Fatalf("breakdown has %d rows, want 2", len(got))
	}
	// category-less group sums 20 and sorts first; its name stays empty
	// for the presentation layer to label
	if got[0].Name != "" || !got[0].Total.Equal(d("20")) {
		t.Errorf("row 0 = %q %s, want \"\" 20", got[0].Name, got[0].Total)
	}
}

func TestSixMonthTrend_MidMonthAnchors(t *testing.T) {
	// mid-month "now" keeps each 30-day step inside a distinct month
	now := time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)
	txs := []models.Transaction{
		tx(models.TypeIncome, "100", time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC), ""),
		tx(models.TypeExpense, "40", time.Date(2025, 6, 2, 0, 0, 0, 0, time.UTC), ""),
		tx(models.TypeIncome, "70", time.Date(2025, 5, 20, 0, 0, 0, 0, time.UTC), ""),
		tx(models.TypeExpense, "10", time.Date(2025, 1, 17, 0, 0, 0, 0, time.UTC), ""),
	}

	points := SixMonthTrend(txs, now)
	if len(points) != 6 {
		t.Fatalf("trend has %d points, want 6", len(points))
	}

	last := points[5]
	if last.Label != "Jun 2025" || !last.Income.Equal(d("100")) || !last.Expense.Equal(d("40")) {
		t.Errorf("last point = %s %s/%s, want Jun 2025 100/40", last.Label, last.Income, last.Expense)
	}
	if points[4].Label != "May 2025" || !points[4].Income.Equal(d("70")) {
		t.Errorf("point 4 = %s %s, want May 2025 70", points[4].Label, points[4].Income)
	}
	// 150 days back from Jun 15 lands in January
	if points[0].Label != "Jan 2025" || !points[0].Expense.Equal(d("10")) {
		t.Errorf("point 0 = %s %s, want Jan 2025 10", points[0].Label, points[0].Expense)
	}
}

func TestSixMonthTrend_EmptyMonthsAreZero(t *testing.T) {
	now := time.Date(2025, 6, 15, 0, 0, 0, 0, time.UTC)
	for _, p := range SixMonthTrend(nil, now) {
		if !p.Income.IsZero() || !p.Expense.IsZero() {
			t.Errorf("bucket %s = %s/%s, want 0/0", p.Label, p.Income, p.Expense)
		}
	}
}

func TestProgress_Overspend(t *testing.T) {
	// limit=1000, spent=1200 -> remaining=-200, percentage capped at 100
	now := time.Now()
	catID := uint(7)
	spend := models.Transaction{
		Type:       models.TypeExpense,
		Amount:     d("1200"),
		Date:       now,
		CategoryID: &catID,
	}

	got := Progress(d("1000"), []models.Transaction{spend}, catID, now)
	if !got.Spent.Equal(d("1200")) {
		t.Errorf("Spent = %s, want 1200", got.Spent)
	}
	if !got.Remaining.Equal(d("-200")) {
		t.Errorf("Remaining = %s, want -200", got.Remaining)
	}
	if !got.Percentage.Equal(d("100")) {
		t.Errorf("Percentage = %s, want 100 (capped)", got.Percentage)
	}
}

func TestProgress_ScopesToCategoryAndMonth(t *testing.T) {
	now := time.Date(2025, 4, 10, 0, 0, 0, 0, time.UTC)
	goalCat, otherCat := uint(1), uint(2)
	txs := []models.Transaction{
		{Type: models.TypeExpense, Amount: d("100"), Date: now, CategoryID: &goalCat},
		{Type: models.TypeExpense, Amount: d("50"), Date: now, CategoryID: &otherCat},
		{Type: models.TypeExpense, Amount: d("75"), Date: now.AddDate(0, -1, 0), CategoryID: &goalCat},
		{Type: models.TypeIncome, Amount: d("20"), Date: now, CategoryID: &goalCat},
		{Type: models.TypeExpense, Amount: d("30"), Date: now}, // no category
	}

	got := Progress(d("400"), txs, goalCat, now)
	if !got.Spent.Equal(d("100")) {
		t.Errorf("Spent = %s, want 100", got.Spent)
	}
	if !got.Remaining.Equal(d("300")) {
		t.Errorf("Remaining = %s, want 300", got.Remaining)
	}
	if !got.Percentage.Equal(d("25")) {
		t.Errorf("Percentage = %s, want 25", got.Percentage)
	}
}

func TestProgress_ZeroLimit(t *testing.T) {
	now := time.Now()
	catID := uint(3)
	spend := models.Transaction{
		Type:       models.TypeExpense,
		Amount:     d("10"),
		Date:       now,
		CategoryID: &catID,
	}

	got := Progress(decimal.Zero, []models.Transaction{spend}, catID, now)
	if !got.Percentage.IsZero() {
		t.Errorf("Percentage with zero limit = %s, want 0", got.Percentage)
	}
	if !got.Remaining.Equal(d("-10")) {
		t.Errorf("Remaining = %s, want -10", got.Remaining)
	}
}
