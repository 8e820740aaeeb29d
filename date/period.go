package date

import (
	"fmt"
	"strings"
)

// Period is the kind of calendar window a goal or a report covers.
type Period int

const (
	Daily Period = iota
	Weekly
	Monthly
)

func (p Period) String() string {
	switch p {
	case Daily:
		return "daily"
	case Weekly:
		return "weekly"
	case Monthly:
		return "monthly"
	default:
		panic(fmt.Sprintf("unknown period %d", p))
	}
}

// Days is the fixed number of days a target of this period is worth when
// derived from a daily target.
func (p Period) Days() int {
	switch p {
	case Weekly:
		return 7
	case Monthly:
		return 30
	default:
		return 1
	}
}

// ParsePeriod accepts english and portuguese names.
func ParsePeriod(p string) (Period, error) {
	switch strings.ToLower(p) {
	case "daily", "day", "diaria", "diária":
		return Daily, nil
	case "weekly", "week", "semanal":
		return Weekly, nil
	case "monthly", "month", "mensal":
		return Monthly, nil
	default:
		return Daily, fmt.Errorf("unknown period %q", p)
	}
}

func (p Period) MarshalText() ([]byte, error) { return []byte(p.String()), nil }

func (p *Period) UnmarshalText(text []byte) error {
	v, err := ParsePeriod(string(text))
	if err != nil {
		return err
	}
	*p = v
	return nil
}
