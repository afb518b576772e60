package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// EntryType says which way money moved.
type EntryType string

const (
	Income  EntryType = "income"
	Expense EntryType = "expense"
)

// ParseEntryType converts a string to an EntryType.
func ParseEntryType(raw string) (EntryType, error) {
	t := EntryType(strings.ToLower(strings.TrimSpace(raw)))
	switch t {
	case Income, Expense:
		return t, nil
	}
	return "", fmt.Errorf("model: unknown entry type %q", raw)
}

var (
	expenseCategories = []string{"food", "transport", "shopping", "bills", "entertainment", "health", "other"}
	incomeCategories  = []string{"salary", "freelance", "investment", "gift", "other"}
)

// Categories returns the category vocabulary for the entry type.
func (t EntryType) Categories() []string {
	if t == Income {
		return append([]string(nil), incomeCategories...)
	}
	return append([]string(nil), expenseCategories...)
}

// LedgerEntry is a single income or expense record. Entries are immutable
// once created; the amount is always stored non-negative and the sign is
// implied by Type.
type LedgerEntry struct {
	ID          string          `json:"-"`
	Type        EntryType       `json:"type"`
	Amount      decimal.Decimal `json:"amount"`
	Category    string          `json:"category"`
	Description string          `json:"description,omitempty"`
	Date        Timestamp       `json:"date"`
	ProfileID   string          `json:"profileId"`
}

// Signed returns the amount with the sign implied by the entry type.
func (e LedgerEntry) Signed() decimal.Decimal {
	if e.Type == Expense {
		return e.Amount.Neg()
	}
	return e.Amount
}

// Validate checks the invariants a new entry must satisfy before it is sent
// to the remote store.
func (e LedgerEntry) Validate() error {
	if _, err := ParseEntryType(string(e.Type)); err != nil {
		return err
	}
	if e.Amount.IsNegative() {
		return fmt.Errorf("model: amount must not be negative, got %s", e.Amount)
	}
	for _, c := range e.Type.Categories() {
		if c == e.Category {
			return nil
		}
	}
	return fmt.Errorf("model: %q is not a %s category", e.Category, e.Type)
}
