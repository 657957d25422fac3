// Package entity defines the domain models for the savedfunds feature.
package entity

import "time"

// SavedFund is one scheme bookmarked by one user.
// (UserID, SchemeCode) is unique; a record is never updated, only created or removed.
type SavedFund struct {
	ID         uint
	UserID     uint      // owner
	SchemeCode string    // opaque provider code (e.g. "118834")
	SchemeName string    // display name at the time of saving
	FundHouse  string    // optional AMC label
	SavedAt    time.Time // set once on creation
}
