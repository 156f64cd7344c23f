package report

import (
	"fmt"
	"time"

	domainerror "github.com/financeflow/backend/internal/domain/error"
	"github.com/financeflow/backend/internal/domain/valueobject"
)

// ResolvePeriod converts a (year, month) pair into the half-open interval
// [first day of the month, first day of the next month). Dates are naive
// calendar dates in UTC; no timezone conversion is performed. time.Date
// normalizes month 13 to January of the following year, which handles the
// December rollover.
func ResolvePeriod(year, month int) (valueobject.PeriodInterval, error) {
	if month < 1 || month > 12 {
		return valueobject.PeriodInterval{}, domainerror.NewReportError(
			domainerror.ErrCodeInvalidPeriod,
			fmt.Sprintf("month must be between 1 and 12, got %d", month),
			domainerror.ErrInvalidPeriod,
		)
	}

	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(year, time.Month(month)+1, 1, 0, 0, 0, 0, time.UTC)

	return valueobject.PeriodInterval{Start: start, End: end}, nil
}
