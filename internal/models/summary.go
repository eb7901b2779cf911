package models

import "github.com/shopspring/decimal"

// Summary is the running total of a department's transactions.
type Summary struct {
	Income  decimal.Decimal `json:"income" swaggertype:"string" example:"50000"`
	Expense decimal.Decimal `json:"expense" swaggertype:"string" example:"20000"`
	Balance decimal.Decimal `json:"balance" swaggertype:"string" example:"30000"`
}

// Summarize computes the summary of the transactions.
//
// It is always computed from the full list and never cached.
func Summarize(transactions []Transaction) Summary {
	income := decimal.Zero
	expense := decimal.Zero

	for _, t := range transactions {
		switch t.Kind {
		case KindIncome:
			income = income.Add(t.Amount)
		case KindExpense:
			expense = expense.Add(t.Amount)
		}
	}

	return Summary{
		Income:  income,
		Expense: expense,
		Balance: income.Sub(expense),
	}
}
