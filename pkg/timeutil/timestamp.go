// Package timeutil holds the timestamp representation shared by projects
// and entries.
package timeutil

import (
	"encoding/json"
	"fmt"
	"time"
)

const (
	// layoutStamp matches the millisecond ISO form the stored records use,
	// so serialized timestamps sort lexically.
	layoutStamp = "2006-01-02T15:04:05.000Z07:00"
	layoutDate  = "2006-01-02"
)

// ParseTime accepts any RFC 3339 timestamp, with or without fractional
// seconds.
func ParseTime(v string) (time.Time, error) {
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, err
	}
	return t, nil
}

// Timestamp wraps time.Time with the JSON string form used in storage.
type Timestamp struct {
	time.Time
}

// Now returns the current instant as a Timestamp.
func Now() Timestamp {
	return Timestamp{Time: time.Now()}
}

func (t *Timestamp) MarshalJSON() ([]byte, error) {
	if t == nil || t.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(fmt.Sprintf("%q", t)), nil
}

func (t *Timestamp) UnmarshalJSON(b []byte) error {
	var timestamp string
	if err := json.Unmarshal(b, &timestamp); err != nil {
		return err
	}
	if timestamp == "" {
		t.Time = time.Time{}
		return nil
	}
	var err error
	t.Time, err = ParseTime(timestamp)
	return err
}

func (t Timestamp) String() string {
	return t.UTC().Format(layoutStamp)
}

// Date truncates the timestamp to calendar-date granularity.
func (t Timestamp) Date() string {
	return t.UTC().Format(layoutDate)
}
