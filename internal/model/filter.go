package model

import (
	"net/url"
	"strconv"
	"time"
)

// HistoryFilter narrows the transaction history. Nil fields are not sent.
type HistoryFilter struct {
	StartDate *time.Time
	EndDate   *time.Time
	MinAmount *int
	MaxAmount *int
	Minimal   *bool
}

// IsEmpty reports whether no criterion is set.
func (f HistoryFilter) IsEmpty() bool {
	return f.StartDate == nil && f.EndDate == nil &&
		f.MinAmount == nil && f.MaxAmount == nil && f.Minimal == nil
}

// Query encodes the filter as query parameters. Dates are sent in UTC.
func (f HistoryFilter) Query() url.Values {
	q := url.Values{}
	if f.StartDate != nil {
		q.Set("startDate", f.StartDate.UTC().Format(time.RFC3339))
	}
	if f.EndDate != nil {
		q.Set("endDate", f.EndDate.UTC().Format(time.RFC3339))
	}
	if f.MinAmount != nil {
		q.Set("minAmount", strconv.Itoa(*f.MinAmount))
	}
	if f.MaxAmount != nil {
		q.Set("maxAmount", strconv.Itoa(*f.MaxAmount))
	}
	if f.Minimal != nil {
		q.Set("minimal", strconv.FormatBool(*f.Minimal))
	}
	return q
}
