package harvest

import (
	"fmt"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

// WireDateLayout is the date format the API expects, e.g. "Mon, 3 Jun 2024".
const WireDateLayout = "Mon, 2 Jan 2006"

// ParseDate converts v to a calendar date. v may be a time.Time, a
// *time.Time or a string in any common date format. The time of day is
// dropped; the date is the one observed in v's own location.
func ParseDate(v any) (time.Time, error) {
	switch d := v.(type) {
	case time.Time:
		return dateOnly(d), nil
	case *time.Time:
		if d == nil {
			return time.Time{}, fmt.Errorf("%w: nil time", ErrInvalidDate)
		}
		return dateOnly(*d), nil
	case string:
		s := strings.TrimSpace(d)
		if s == "" {
			return time.Time{}, fmt.Errorf("%w: empty string", ErrInvalidDate)
		}
		t, err := dateparse.ParseAny(s)
		if err != nil {
			return time.Time{}, fmt.Errorf("%w: %q: %w", ErrInvalidDate, d, err)
		}
		return dateOnly(t), nil
	default:
		return time.Time{}, fmt.Errorf("%w: unsupported type %T", ErrInvalidDate, v)
	}
}

// FormatDate converts v with ParseDate and renders it in WireDateLayout.
func FormatDate(v any) (string, error) {
	t, err := ParseDate(v)
	if err != nil {
		return "", err
	}
	return t.Format(WireDateLayout), nil
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
