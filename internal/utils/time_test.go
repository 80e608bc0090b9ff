package utils

import (
	"reflect"
	"testing"
	"time"
)

func TestLoadLocation(t *testing.T) {
	tests := []struct {
		name     string
		timezone string
		wantErr  bool
	}{
		{name: "empty string returns local", timezone: "", wantErr: false},
		{name: "Local returns local", timezone: "Local", wantErr: false},
		{name: "valid timezone UTC", timezone: "UTC", wantErr: false},
		{name: "valid timezone Europe/Brussels", timezone: "Europe/Brussels", wantErr: false},
		{name: "invalid timezone", timezone: "Invalid/Timezone", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loc, err := LoadLocation(tt.timezone)
			if (err != nil) != tt.wantErr {
				t.Errorf("LoadLocation() error = %v, wantErr %v", err, tt.wantErr)
				return
			}
			if !tt.wantErr && loc == nil {
				t.Errorf("LoadLocation() returned nil location without error")
			}
		})
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		name string
		date string
		n    int
		want string
	}{
		{name: "previous day", date: "2024-01-03", n: -1, want: "2024-01-02"},
		{name: "across month", date: "2024-03-01", n: -1, want: "2024-02-29"},
		{name: "across year", date: "2023-12-31", n: 1, want: "2024-01-01"},
		{name: "dst change in europe", date: "2024-03-31", n: 1, want: "2024-04-01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := AddDays(tt.date, tt.n)
			if err != nil {
				t.Fatalf("AddDays() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("AddDays(%q, %d) = %q, want %q", tt.date, tt.n, got, tt.want)
			}
		})
	}

	if _, err := AddDays("not-a-date", 1); err == nil {
		t.Error("expected error for malformed date")
	}
}

func TestDaysBetween(t *testing.T) {
	got, err := DaysBetween("2024-01-01", "2024-01-03")
	if err != nil {
		t.Fatalf("DaysBetween() error = %v", err)
	}
	if got != 2 {
		t.Errorf("DaysBetween() = %d, want 2", got)
	}
}

func TestLastNDays(t *testing.T) {
	got, err := LastNDays("2024-01-03", 3)
	if err != nil {
		t.Fatalf("LastNDays() error = %v", err)
	}
	want := []string{"2024-01-01", "2024-01-02", "2024-01-03"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("LastNDays() = %v, want %v", got, want)
	}
}

func TestWeekday(t *testing.T) {
	if got := Weekday("2024-01-01"); got != "Mon" {
		t.Errorf("Weekday() = %q, want Mon", got)
	}
	if got := Weekday("garbage"); got != "" {
		t.Errorf("Weekday() on bad input = %q, want empty", got)
	}
}

func TestCombineDateAndTime(t *testing.T) {
	got, err := CombineDateAndTime("2024-06-01", "04:15", time.UTC)
	if err != nil {
		t.Fatalf("CombineDateAndTime() error = %v", err)
	}
	want := time.Date(2024, 6, 1, 4, 15, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Errorf("CombineDateAndTime() = %v, want %v", got, want)
	}
}

func TestDateKeyUsesLocation(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*3600)
	instant := time.Date(2024, 1, 1, 22, 0, 0, 0, time.UTC)
	if got := DateKey(instant.In(loc)); got != "2024-01-02" {
		t.Errorf("DateKey() = %q, want 2024-01-02", got)
	}
}

func TestExpandPath(t *testing.T) {
	t.Setenv("HOME", "/home/tester")

	tests := []struct {
		in   string
		want string
	}{
		{in: "~/.config/ibadah/ibadah.db", want: "/home/tester/.config/ibadah/ibadah.db"},
		{in: "~", want: "/home/tester"},
		{in: "/var/lib/ibadah.db", want: "/var/lib/ibadah.db"},
		{in: "~other/file", want: "~other/file"},
	}

	for _, tt := range tests {
		if got := ExpandPath(tt.in); got != tt.want {
			t.Errorf("ExpandPath(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
