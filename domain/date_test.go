package domain

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "plain date", input: "2025-03-14", want: NewDate(2025, time.March, 14)},
		{name: "full timestamp truncates", input: "2025-03-14T23:59:59Z", want: NewDate(2025, time.March, 14)},
		{name: "garbage", input: "14/03/2025", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) succeeded, want error", tt.input)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) error: %v", tt.input, err)
			}
			if got != tt.want {
				t.Errorf("ParseDate(%q) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestDateOrdering(t *testing.T) {
	yesterday := NewDate(2025, time.June, 9)
	today := NewDate(2025, time.June, 10)

	if !yesterday.Before(today) {
		t.Error("yesterday.Before(today) = false")
	}
	if today.Before(today) {
		t.Error("a date is before itself")
	}
	if !today.After(yesterday) {
		t.Error("today.After(yesterday) = false")
	}
}

func TestWeekBounds(t *testing.T) {
	tests := []struct {
		name      string
		date      Date
		wantStart Date
		wantEnd   Date
	}{
		{
			name:      "midweek",
			date:      NewDate(2025, time.June, 11), // Wednesday
			wantStart: NewDate(2025, time.June, 9),
			wantEnd:   NewDate(2025, time.June, 15),
		},
		{
			name:      "monday is its own week start",
			date:      NewDate(2025, time.June, 9),
			wantStart: NewDate(2025, time.June, 9),
			wantEnd:   NewDate(2025, time.June, 15),
		},
		{
			name:      "sunday belongs to the preceding monday",
			date:      NewDate(2025, time.June, 15),
			wantStart: NewDate(2025, time.June, 9),
			wantEnd:   NewDate(2025, time.June, 15),
		},
		{
			name:      "week spanning a year boundary",
			date:      NewDate(2026, time.January, 1), // Thursday
			wantStart: NewDate(2025, time.December, 29),
			wantEnd:   NewDate(2026, time.January, 4),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.date.WeekStart(); got != tt.wantStart {
				t.Errorf("WeekStart() = %v, want %v", got, tt.wantStart)
			}
			if got := tt.date.WeekEnd(); got != tt.wantEnd {
				t.Errorf("WeekEnd() = %v, want %v", got, tt.wantEnd)
			}
		})
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	type payload struct {
		Due *Date `json:"due_date"`
	}

	var decoded payload
	if err := json.Unmarshal([]byte(`{"due_date":"2025-02-28"}`), &decoded); err != nil {
		t.Fatalf("unmarshal error: %v", err)
	}
	if decoded.Due == nil || *decoded.Due != NewDate(2025, time.February, 28) {
		t.Fatalf("decoded due date = %v", decoded.Due)
	}

	encoded, err := json.Marshal(decoded)
	if err != nil {
		t.Fatalf("marshal error: %v", err)
	}
	if string(encoded) != `{"due_date":"2025-02-28"}` {
		t.Errorf("encoded = %s", encoded)
	}
}

func TestDateOfUsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+13", 13*3600)
	// 23:30 local on Jan 2 is still Jan 2 10:30 UTC.
	instant := time.Date(2025, time.January, 2, 23, 30, 0, 0, loc)
	if got := DateOf(instant); got != NewDate(2025, time.January, 2) {
		t.Errorf("DateOf = %v, want 2025-01-02", got)
	}

	// 05:00 local on Jan 3 is Jan 2 16:00 UTC.
	instant = time.Date(2025, time.January, 3, 5, 0, 0, 0, loc)
	if got := DateOf(instant); got != NewDate(2025, time.January, 2) {
		t.Errorf("DateOf across midnight = %v, want 2025-01-02", got)
	}
}
