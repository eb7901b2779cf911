package models

import (
	"strings"
	"unicode/utf8"

	"github.com/UnimationKorea/finance-church-personal/internal/types"
	"github.com/shopspring/decimal"
)

// MaxDescriptionLength is the maximum number of characters in a transaction description.
const MaxDescriptionLength = 500

// Transaction is a single income or expense of a department.
type Transaction struct {
	Department Department `json:"department" gorm:"primaryKey;size:64" example:"Infant Ministry"`
	Model
	TransactionData
}

// TransactionData contains the mutable fields of a transaction.
type TransactionData struct {
	Date        types.Date      `json:"date" gorm:"not null" swaggertype:"string" format:"date" example:"2024-01-15"` // Day the money moved
	Kind        TransactionKind `json:"kind" gorm:"size:16;not null" example:"Income"`                                // Income or Expense
	Category    string          `json:"category" gorm:"size:32;not null" example:"Donation"`                          // Category, allowed values depend on the kind
	Description string          `json:"description" gorm:"size:2000;not null" example:"monthly gift"`                 // What the money was for
	Manager     string          `json:"manager" gorm:"size:200" example:"Kim"`                                        // Person responsible, optional
	Amount      decimal.Decimal `json:"amount" gorm:"type:DECIMAL(20,8)" swaggertype:"string" example:"50000"`        // Non-negative amount
}

// TransactionEditable is the payload for creating and updating transactions.
//
// The date is kept as text and the amount as a pointer so that missing or
// malformed values can be reported as validation errors instead of binding errors.
type TransactionEditable struct {
	Date        string           `json:"date" example:"2024-01-15"`
	Kind        TransactionKind  `json:"kind" example:"Income"`
	Category    string           `json:"category" example:"Donation"`
	Description string           `json:"description" example:"monthly gift"`
	Manager     string           `json:"manager" example:"Kim"`
	Amount      *decimal.Decimal `json:"amount" swaggertype:"string" example:"50000"`
}

// Validate checks the editable and returns the normalized transaction data.
// The first invalid field is reported as a ValidationError.
func (e TransactionEditable) Validate() (TransactionData, error) {
	if strings.TrimSpace(e.Date) == "" {
		return TransactionData{}, invalid("date", "date is required")
	}

	date, err := types.ParseDate(e.Date)
	if err != nil {
		return TransactionData{}, invalid("date", "date %q is not a valid date, use YYYY-MM-DD", strings.TrimSpace(e.Date))
	}

	kind := TransactionKind(strings.TrimSpace(string(e.Kind)))
	if kind == "" {
		return TransactionData{}, invalid("kind", "kind is required")
	}

	if !kind.Valid() {
		return TransactionData{}, invalid("kind", "kind %q is not valid, must be one of Income, Expense", kind)
	}

	category := strings.TrimSpace(e.Category)
	if category == "" {
		return TransactionData{}, invalid("category", "category is required")
	}

	if !ValidTransactionCategory(kind, category) {
		return TransactionData{}, invalid("category", "category %q is not valid for kind %s", category, kind)
	}

	description := strings.TrimSpace(e.Description)
	if description == "" {
		return TransactionData{}, invalid("description", "description is required")
	}

	if utf8.RuneCountInString(description) > MaxDescriptionLength {
		return TransactionData{}, invalid("description", "description must not be longer than %d characters", MaxDescriptionLength)
	}

	if e.Amount == nil {
		return TransactionData{}, invalid("amount", "amount is required")
	}

	if e.Amount.IsNegative() {
		return TransactionData{}, invalid("amount", "amount must not be negative")
	}

	return TransactionData{
		Date:        date,
		Kind:        kind,
		Category:    category,
		Description: description,
		Manager:     strings.TrimSpace(e.Manager),
		Amount:      *e.Amount,
	}, nil
}

// Validate checks transaction data that was not created from an editable.
func (d TransactionData) Validate() error {
	if d.Date.IsZero() {
		return invalid("date", "date is required")
	}

	_, err := d.Editable().Validate()
	return err
}

// Editable returns the transaction data as an editable, e.g. to populate a form.
func (d TransactionData) Editable() TransactionEditable {
	amount := d.Amount
	return TransactionEditable{
		Date:        d.Date.String(),
		Kind:        d.Kind,
		Category:    d.Category,
		Description: d.Description,
		Manager:     d.Manager,
		Amount:      &amount,
	}
}

// FilterTransactions returns the transactions of the given kind, keeping their order.
// An empty kind returns all transactions.
func FilterTransactions(transactions []Transaction, kind TransactionKind) []Transaction {
	filtered := make([]Transaction, 0, len(transactions))
	for _, t := range transactions {
		if kind == "" || t.Kind == kind {
			filtered = append(filtered, t)
		}
	}

	return filtered
}
