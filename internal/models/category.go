package models

import (
	"golang.org/x/exp/slices"
)

// TransactionKind is the direction of money for a transaction.
//
// swagger:enum TransactionKind
type TransactionKind string

const (
	KindIncome  TransactionKind = "Income"
	KindExpense TransactionKind = "Expense"
)

// MinistryKind separates ministry activities from prayer requests.
//
// swagger:enum MinistryKind
type MinistryKind string

const (
	KindMinistry      MinistryKind = "Ministry"
	KindPrayerRequest MinistryKind = "PrayerRequest"
)

var transactionCategories = map[TransactionKind][]string{
	KindIncome:  {"Budget", "Donation", "SpecialSupport", "Carryover", "Other"},
	KindExpense: {"Education", "Event", "Administration", "Evangelism", "Operations", "SuppliesCost", "Visitation", "Other"},
}

var ministryCategories = map[MinistryKind][]string{
	KindMinistry:      {"AnnualEvent", "Event", "Other"},
	KindPrayerRequest: {"PrayerRequest"},
}

// TransactionKinds returns all transaction kinds.
func TransactionKinds() []TransactionKind {
	return []TransactionKind{KindIncome, KindExpense}
}

// MinistryKinds returns all ministry kinds.
func MinistryKinds() []MinistryKind {
	return []MinistryKind{KindMinistry, KindPrayerRequest}
}

// Valid reports whether k is a known transaction kind.
func (k TransactionKind) Valid() bool {
	_, ok := transactionCategories[k]
	return ok
}

// Valid reports whether k is a known ministry kind.
func (k MinistryKind) Valid() bool {
	_, ok := ministryCategories[k]
	return ok
}

// TransactionCategories returns the categories allowed for the kind.
// Unknown kinds have no categories.
func TransactionCategories(kind TransactionKind) []string {
	return slices.Clone(transactionCategories[kind])
}

// MinistryCategories returns the categories allowed for the kind.
func MinistryCategories(kind MinistryKind) []string {
	return slices.Clone(ministryCategories[kind])
}

// ValidTransactionCategory reports whether the category may be used with the kind.
func ValidTransactionCategory(kind TransactionKind, category string) bool {
	return slices.Contains(transactionCategories[kind], category)
}

// ValidMinistryCategory reports whether the category may be used with the kind.
func ValidMinistryCategory(kind MinistryKind, category string) bool {
	return slices.Contains(ministryCategories[kind], category)
}
