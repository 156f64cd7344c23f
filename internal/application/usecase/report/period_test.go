package report

import (
	"errors"
	"testing"
	"time"

	domainerror "github.com/financeflow/backend/internal/domain/error"
)

func TestResolvePeriod(t *testing.T) {
	tests := []struct {
		name      string
		year      int
		month     int
		wantStart time.Time
		wantEnd   time.Time
		wantDays  int
	}{
		{
			name:      "mid-year month",
			year:      2023,
			month:     7,
			wantStart: time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2023, 8, 1, 0, 0, 0, 0, time.UTC),
			wantDays:  31,
		},
		{
			name:      "december rolls over to next year",
			year:      2023,
			month:     12,
			wantStart: time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
			wantDays:  31,
		},
		{
			name:      "february in a leap year",
			year:      2024,
			month:     2,
			wantStart: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
			wantDays:  29,
		},
		{
			name:      "february in a non-leap year",
			year:      2023,
			month:     2,
			wantStart: time.Date(2023, 2, 1, 0, 0, 0, 0, time.UTC),
			wantEnd:   time.Date(2023, 3, 1, 0, 0, 0, 0, time.UTC),
			wantDays:  28,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			interval, err := ResolvePeriod(tt.year, tt.month)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if !interval.Start.Equal(tt.wantStart) {
				t.Errorf("expected start %v, got %v", tt.wantStart, interval.Start)
			}
			if !interval.End.Equal(tt.wantEnd) {
				t.Errorf("expected end %v, got %v", tt.wantEnd, interval.End)
			}
			if interval.Days() != tt.wantDays {
				t.Errorf("expected %d days, got %d", tt.wantDays, interval.Days())
			}
		})
	}
}

func TestResolvePeriod_EndIsFirstDayOfNextMonth(t *testing.T) {
	for month := 1; month <= 12; month++ {
		interval, err := ResolvePeriod(2023, month)
		if err != nil {
			t.Fatalf("month %d: unexpected error: %v", month, err)
		}
		if interval.End.Day() != 1 {
			t.Errorf("month %d: end day = %d, want 1", month, interval.End.Day())
		}
		if !interval.Start.AddDate(0, 1, 0).Equal(interval.End) {
			t.Errorf("month %d: end %v is not one month after start %v", month, interval.End, interval.Start)
		}
	}
}

func TestResolvePeriod_InvalidMonth(t *testing.T) {
	tests := []struct {
		name  string
		month int
	}{
		{name: "zero", month: 0},
		{name: "negative", month: -3},
		{name: "thirteen", month: 13},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ResolvePeriod(2023, tt.month)
			if err == nil {
				t.Fatal("expected error for invalid month")
			}

			var reportErr *domainerror.ReportError
			if !errors.As(err, &reportErr) {
				t.Fatalf("expected *ReportError, got %T", err)
			}
			if reportErr.Code != domainerror.ErrCodeInvalidPeriod {
				t.Errorf("expected code %s, got %s", domainerror.ErrCodeInvalidPeriod, reportErr.Code)
			}
			if !errors.Is(err, domainerror.ErrInvalidPeriod) {
				t.Error("expected error to wrap ErrInvalidPeriod")
			}
		})
	}
}

func TestPeriodInterval_Contains(t *testing.T) {
	interval, err := ResolvePeriod(2023, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	tests := []struct {
		name string
		date time.Time
		want bool
	}{
		{name: "first day is inside", date: time.Date(2023, 7, 1, 0, 0, 0, 0, time.UTC), want: true},
		{name: "last day is inside", date: time.Date(2023, 7, 31, 0, 0, 0, 0, time.UTC), want: true},
		{name: "first day of next month is outside", date: time.Date(2023, 8, 1, 0, 0, 0, 0, time.UTC), want: false},
		{name: "previous month is outside", date: time.Date(2023, 6, 30, 0, 0, 0, 0, time.UTC), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := interval.Contains(tt.date); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.date, got, tt.want)
			}
		})
	}
}
