package models

// DateLayout is the calendar date format used for Expense.Date and all date filters.
const DateLayout = "2006-01-02"

// Expense represents one recorded expense.
// Expenses are immutable once stored; the only mutation is a hard delete.
type Expense struct {
	// ID is assigned by the store on insert.
	ID int64 `json:"id"`

	// Amount is the positive amount spent.
	Amount float64 `json:"amount"`

	// Category is the category name given at write time (not a foreign key).
	Category string `json:"category"`

	// Description is an optional note, empty when omitted.
	Description string `json:"description"`

	// Date is the calendar date of the expense in DateLayout form.
	Date string `json:"date"`
}

// NewExpense holds the caller-supplied fields for a new expense.
// An empty Date means "today" according to the store's clock.
type NewExpense struct {
	Amount      float64
	Category    string
	Description string
	Date        string
}

// ExpenseFilter narrows ListExpenses results. Zero values mean "no filter".
// All set predicates are combined with AND.
type ExpenseFilter struct {
	// Category matches Expense.Category exactly.
	Category string

	// StartDate is an inclusive lower bound on Expense.Date.
	StartDate string

	// EndDate is an inclusive upper bound on Expense.Date.
	EndDate string

	// Limit caps the number of rows returned after sorting.
	Limit int
}

// CategoryTotal is the sum of expense amounts for one distinct category value.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}
