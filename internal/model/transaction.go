package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// timestampLayouts are the layouts accepted for transaction dates. The backend
// serializes a zone-less local date time, optionally with fractional seconds.
var timestampLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
}

// Timestamp is a time decoded from the backend's date format.
type Timestamp struct {
	time.Time
}

// ParseTimestamp parses any of the accepted timestamp layouts.
func ParseTimestamp(s string) (time.Time, error) {
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", s)
}

// UnmarshalJSON implements json.Unmarshaler.
func (t *Timestamp) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		t.Time = time.Time{}
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("timestamp must be a string: %w", err)
	}
	parsed, err := ParseTimestamp(s)
	if err != nil {
		return err
	}
	t.Time = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
func (t Timestamp) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(t.Format("2006-01-02T15:04:05"))
}

// Transaction is a persisted exchange as reported by the history endpoints.
type Transaction struct {
	TransactionDate Timestamp     `json:"transactionDate"`
	Change          CoinInventory `json:"change"`
	ID              int64         `json:"id"`
	Amount          int           `json:"amount"`
	Minimal         bool          `json:"minimal"`
}

// Strategy returns the change strategy used for the transaction.
func (t Transaction) Strategy() Strategy {
	return StrategyOf(t.Minimal)
}

// TransactionSummary is a condensed history row.
type TransactionSummary struct {
	Amount     int  `json:"amount"`
	Minimal    bool `json:"minimal"`
	TotalCoins int  `json:"totalCoins"`
}
