package date

import (
	"encoding/json"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	testCases := []struct {
		in      string
		want    Date
		wantErr bool
	}{
		{in: "2024-01-02", want: New(2024, time.January, 2)},
		{in: "2024-1-2", want: New(2024, time.January, 2)},
		{in: "2023-12-31", want: New(2023, time.December, 31)},
		{in: "02-01-2024", wantErr: true},
		{in: "not-a-date", wantErr: true},
		{in: "", wantErr: true},
	}
	for _, tc := range testCases {
		got, err := Parse(tc.in)
		if tc.wantErr {
			if err == nil {
				t.Errorf("Parse(%q) = %v, want error", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("Parse(%q) unexpected error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("Parse(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestAdd_Normalizes(t *testing.T) {
	got := New(2024, time.February, 28).Add(2)
	want := New(2024, time.March, 1) // 2024 is a leap year
	if got != want {
		t.Errorf("Add(2) = %v, want %v", got, want)
	}
	if got := New(2024, time.March, 1).Add(-1); got != New(2024, time.February, 29) {
		t.Errorf("Add(-1) = %v, want 2024-02-29", got)
	}
}

func TestRange_Days(t *testing.T) {
	r := Range{From: MustParse("2024-01-30"), To: MustParse("2024-02-02")}
	var got []string
	for day := range r.Days() {
		got = append(got, day.String())
	}
	want := []string{"2024-01-30", "2024-01-31", "2024-02-01", "2024-02-02"}
	if len(got) != len(want) {
		t.Fatalf("Days() yielded %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Days()[%d] = %q, want %q", i, got[i], want[i])
		}
	}

	inverted := Range{From: MustParse("2024-02-02"), To: MustParse("2024-01-30")}
	for day := range inverted.Days() {
		t.Errorf("inverted range yielded %v, want nothing", day)
	}
}

func TestDate_JSONRoundTrip(t *testing.T) {
	d := MustParse("2024-06-01")
	raw, err := json.Marshal(d)
	if err != nil {
		t.Fatalf("Marshal() error = %v", err)
	}
	if string(raw) != `"2024-06-01"` {
		t.Errorf("Marshal() = %s, want %q", raw, `"2024-06-01"`)
	}
	var back Date
	if err := json.Unmarshal(raw, &back); err != nil {
		t.Fatalf("Unmarshal() error = %v", err)
	}
	if back != d {
		t.Errorf("round trip = %v, want %v", back, d)
	}
}

func TestHistory_AsOfWithin(t *testing.T) {
	h := new(History)
	h.Append(MustParse("2024-01-10"), 50)
	h.Append(MustParse("2024-01-20"), 55)

	testCases := []struct {
		name     string
		day      string
		lookback int
		want     float64
		wantOK   bool
	}{
		{name: "exact day", day: "2024-01-10", lookback: 0, want: 50, wantOK: true},
		{name: "one day after within window", day: "2024-01-11", lookback: 10, want: 50, wantOK: true},
		{name: "edge of window", day: "2024-01-20", lookback: 10, want: 55, wantOK: true},
		{name: "beyond window", day: "2024-02-10", lookback: 10, wantOK: false},
		{name: "before first point", day: "2024-01-05", lookback: 10, wantOK: false},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := h.AsOfWithin(MustParse(tc.day), tc.lookback)
			if ok != tc.wantOK || got != tc.want {
				t.Errorf("AsOfWithin(%s, %d) = (%v, %v), want (%v, %v)", tc.day, tc.lookback, got, ok, tc.want, tc.wantOK)
			}
		})
	}
}

func TestHistory_AppendReplaces(t *testing.T) {
	h := new(History)
	h.Append(MustParse("2024-01-10"), 50)
	h.Append(MustParse("2024-01-10"), 51)
	if h.Len() != 1 {
		t.Fatalf("Len() = %d, want 1", h.Len())
	}
	if v, ok := h.Get(MustParse("2024-01-10")); !ok || v != 51 {
		t.Errorf("Get() = (%v, %v), want (51, true)", v, ok)
	}
}

func TestHistory_AppendKeepsOrder(t *testing.T) {
	h := new(History)
	h.Append(MustParse("2024-03-01"), 3)
	h.Append(MustParse("2024-01-01"), 1)
	h.Append(MustParse("2024-02-01"), 2)

	var prev Date
	for day := range h.Values() {
		if !prev.IsZero() && !day.After(prev) {
			t.Fatalf("history out of order: %v after %v", day, prev)
		}
		prev = day
	}
	if day, v := h.Latest(); day != MustParse("2024-03-01") || v != 3 {
		t.Errorf("Latest() = (%v, %v), want (2024-03-01, 3)", day, v)
	}
}
