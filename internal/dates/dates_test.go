package dates

import (
	"testing"
	"time"
)

func TestIsISO(t *testing.T) {
	tests := []struct {
		input string
		want  bool
	}{
		{"2020-01-01T00:00:00.000Z", true},
		{"2020-01-01T00:00:00Z", true},
		{"2020-01-01T00:00:00", true},
		{"2020-01-01T00:00:00+05:00", true},
		{"2020-01-01T00:00:00.123456Z", true},
		{"2020-01-01", false},
		{"not a date", false},
		{"", false},
		{"2020-01-01 00:00:00", false},
		{"20200101T000000Z", false},
	}

	for _, tt := range tests {
		if got := IsISO(tt.input); got != tt.want {
			t.Errorf("IsISO(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParse(t *testing.T) {
	got, err := Parse("2020-01-01T00:00:00.000Z")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want := time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Parse = %v, want %v", got, want)
	}

	// No zone suffix reads as UTC.
	got, err = Parse("2020-06-15T14:30:00")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	want = time.Date(2020, 6, 15, 14, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("Parse = %v, want %v", got, want)
	}

	if _, err := Parse(""); err == nil {
		t.Error("expected error for empty input")
	}
	if _, err := Parse("garbage"); err == nil {
		t.Error("expected error for garbage input")
	}
}

func TestFormatRoundTrip(t *testing.T) {
	orig := time.Date(2021, 3, 4, 5, 6, 7, 890000000, time.UTC)
	s := Format(orig)
	if s != "2021-03-04T05:06:07.890Z" {
		t.Errorf("Format = %q", s)
	}
	if !IsISO(s) {
		t.Errorf("Format output %q should satisfy IsISO", s)
	}
	back, err := Parse(s)
	if err != nil {
		t.Fatalf("Parse(Format(t)) failed: %v", err)
	}
	if !back.Equal(orig) {
		t.Errorf("round trip = %v, want %v", back, orig)
	}
}

func TestEpochMillis(t *testing.T) {
	epoch := time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	if ms := EpochMillis(epoch); ms != 0 {
		t.Errorf("EpochMillis(epoch) = %d, want 0", ms)
	}
	if ms := EpochMillis(epoch.Add(1500 * time.Millisecond)); ms != 1500 {
		t.Errorf("EpochMillis = %d, want 1500", ms)
	}
}
