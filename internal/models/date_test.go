package models

import (
	"encoding/json"
	"testing"
	"time"
)

func TestDateJSON(t *testing.T) {
	t.Run("round_trip", func(t *testing.T) {
		in := NewDate(2024, time.March, 31)
		data, err := json.Marshal(in)
		if err != nil {
			t.Fatalf("marshal failed: %v", err)
		}
		if string(data) != `"2024-03-31"` {
			t.Errorf("unexpected encoding %s", data)
		}

		var out Date
		if err := json.Unmarshal(data, &out); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if out != in {
			t.Errorf("round trip mismatch: %s != %s", out, in)
		}
	})

	t.Run("accepts_timestamps_from_old_exports", func(t *testing.T) {
		var d Date
		if err := json.Unmarshal([]byte(`"2024-06-10T18:30:00Z"`), &d); err != nil {
			t.Fatalf("unmarshal failed: %v", err)
		}
		if d != NewDate(2024, time.June, 10) {
			t.Errorf("expected truncation to date, got %s", d)
		}
	})

	t.Run("rejects_garbage", func(t *testing.T) {
		var d Date
		if err := json.Unmarshal([]byte(`"10/06/2024"`), &d); err == nil {
			t.Fatal("expected error for non-ISO date")
		}
	})
}

func TestDaysUntil(t *testing.T) {
	cases := []struct {
		from, to Date
		want     int
	}{
		{NewDate(2024, time.June, 6), NewDate(2024, time.June, 10), 4},
		{NewDate(2024, time.June, 10), NewDate(2024, time.June, 10), 0},
		{NewDate(2024, time.June, 11), NewDate(2024, time.June, 10), -1},
		{NewDate(2024, time.February, 28), NewDate(2024, time.March, 1), 2}, // leap year
	}
	for _, tc := range cases {
		if got := tc.from.DaysUntil(tc.to); got != tc.want {
			t.Errorf("DaysUntil(%s, %s) = %d, want %d", tc.from, tc.to, got, tc.want)
		}
	}
}

func TestSameMonth(t *testing.T) {
	anchor := NewDate(2024, time.March, 15)
	if NewDate(2024, time.February, 29).SameMonth(anchor) {
		t.Error("Feb 29 should not match a March anchor")
	}
	if !NewDate(2024, time.March, 1).SameMonth(anchor) {
		t.Error("Mar 1 should match a March anchor")
	}
	if !NewDate(2024, time.March, 31).SameMonth(anchor) {
		t.Error("Mar 31 should match a March anchor")
	}
	if NewDate(2023, time.March, 15).SameMonth(anchor) {
		t.Error("same month of a different year should not match")
	}
}

func TestDaysIn(t *testing.T) {
	if got := DaysIn(2024, time.February); got != 29 {
		t.Errorf("expected 29 days in Feb 2024, got %d", got)
	}
	if got := DaysIn(2025, time.February); got != 28 {
		t.Errorf("expected 28 days in Feb 2025, got %d", got)
	}
	if got := DaysIn(2024, time.December); got != 31 {
		t.Errorf("expected 31 days in Dec, got %d", got)
	}
}
