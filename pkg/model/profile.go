// Package model defines the four entity kinds the hub keeps in sync with the
// remote document store: profiles, tasks, ledger entries, and reminders.
package model

// Profile is an identity that scopes ledger entries and reminders. At most
// one profile is active at a time; the store enforces this when switching.
type Profile struct {
	ID     string `json:"-"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
	Active bool   `json:"isActive"`
}
