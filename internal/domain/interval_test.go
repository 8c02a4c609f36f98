package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func ts(s string) time.Time {
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		panic(err)
	}
	return t
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name                       string
		aStart, aEnd, bStart, bEnd string
		want                       bool
	}{
		{
			name:   "disjoint",
			aStart: "2024-03-15T20:00:00Z", aEnd: "2024-03-16T06:00:00Z",
			bStart: "2024-03-18T00:00:00Z", bEnd: "2024-03-19T00:00:00Z",
			want: false,
		},
		{
			name:   "adjacent end equals start",
			aStart: "2024-03-15T20:00:00Z", aEnd: "2024-03-16T06:00:00Z",
			bStart: "2024-03-16T06:00:00Z", bEnd: "2024-03-17T00:00:00Z",
			want: false,
		},
		{
			name:   "adjacent start equals end",
			aStart: "2024-03-16T06:00:00Z", aEnd: "2024-03-17T00:00:00Z",
			bStart: "2024-03-15T20:00:00Z", bEnd: "2024-03-16T06:00:00Z",
			want: false,
		},
		{
			name:   "partial intersection",
			aStart: "2024-03-15T23:00:00Z", aEnd: "2024-03-16T08:00:00Z",
			bStart: "2024-03-15T20:00:00Z", bEnd: "2024-03-16T06:00:00Z",
			want: true,
		},
		{
			name:   "contained",
			aStart: "2024-03-15T23:00:00Z", aEnd: "2024-03-16T02:00:00Z",
			bStart: "2024-03-15T20:00:00Z", bEnd: "2024-03-16T06:00:00Z",
			want: true,
		},
		{
			name:   "containing",
			aStart: "2024-03-15T00:00:00Z", aEnd: "2024-03-17T00:00:00Z",
			bStart: "2024-03-15T20:00:00Z", bEnd: "2024-03-16T06:00:00Z",
			want: true,
		},
		{
			name:   "identical",
			aStart: "2024-03-15T20:00:00Z", aEnd: "2024-03-16T06:00:00Z",
			bStart: "2024-03-15T20:00:00Z", bEnd: "2024-03-16T06:00:00Z",
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Overlaps(ts(tt.aStart), ts(tt.aEnd), ts(tt.bStart), ts(tt.bEnd))
			require.Equal(t, tt.want, got)
		})
	}
}

func TestMonthEarlier(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "mid month", in: "2024-03-15T20:00:00Z", want: "2024-02-15T20:00:00Z"},
		{name: "clamped to leap February", in: "2024-03-31T10:30:00Z", want: "2024-02-29T10:30:00Z"},
		{name: "clamped to non-leap February", in: "2023-03-31T10:30:00Z", want: "2023-02-28T10:30:00Z"},
		{name: "january rolls into prior year", in: "2024-01-31T00:00:00Z", want: "2023-12-31T00:00:00Z"},
		{name: "thirty day month", in: "2024-07-31T08:00:00Z", want: "2024-06-30T08:00:00Z"},
		{name: "first of month", in: "2024-05-01T12:00:00Z", want: "2024-04-01T12:00:00Z"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, ts(tt.want), MonthEarlier(ts(tt.in)))
		})
	}
}

func TestWithinEnrollmentWindow(t *testing.T) {
	start := ts("2024-03-15T20:00:00Z")

	tests := []struct {
		name string
		now  string
		want bool
	}{
		{name: "exactly at open boundary", now: "2024-02-15T20:00:00Z", want: true},
		{name: "exactly at competition start", now: "2024-03-15T20:00:00Z", want: true},
		{name: "inside the window", now: "2024-03-01T00:00:00Z", want: true},
		{name: "one second before open", now: "2024-02-15T19:59:59Z", want: false},
		{name: "one second after start", now: "2024-03-15T20:00:01Z", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, WithinEnrollmentWindow(start, ts(tt.now)))
		})
	}
}
