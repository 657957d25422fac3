// Package entity defines the domain models for the funds catalog.
package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// SchemeSummary is one search hit.
type SchemeSummary struct {
	SchemeCode string
	SchemeName string
}

// SchemeMeta describes a scheme as published by the provider.
type SchemeMeta struct {
	SchemeCode     string
	SchemeName     string
	FundHouse      string
	SchemeType     string
	SchemeCategory string
}

// NAVPoint is the net asset value published for one day.
type NAVPoint struct {
	Date time.Time
	NAV  decimal.Decimal
}

// Scheme is the detail view: metadata plus NAV history, newest first.
type Scheme struct {
	Meta SchemeMeta
	NAV  []NAVPoint
}

// Latest returns the most recent NAV point, if any.
func (s Scheme) Latest() (NAVPoint, bool) {
	if len(s.NAV) == 0 {
		return NAVPoint{}, false
	}
	return s.NAV[0], true
}
