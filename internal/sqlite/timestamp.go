package sqlite

import (
	"fmt"
	"time"
)

// timeLayout is fixed-width so text ordering in ORDER BY matches time ordering.
const timeLayout = "2006-01-02 15:04:05.000000000"

var parseLayouts = []string{
	timeLayout,
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999Z07:00",
	"2006-01-02 15:04:05",
}

func formatTime(t time.Time) string {
	return t.UTC().Format(timeLayout)
}

// timestamp scans DATETIME columns whether the driver decoded them or not.
type timestamp struct {
	time.Time
}

func (ts *timestamp) Scan(value any) error {
	switch v := value.(type) {
	case nil:
		ts.Time = time.Time{}
		return nil
	case time.Time:
		ts.Time = v.UTC()
		return nil
	case string:
		return ts.parse(v)
	case []byte:
		return ts.parse(string(v))
	case int64:
		ts.Time = time.Unix(v, 0).UTC()
		return nil
	default:
		return fmt.Errorf("unsupported timestamp type %T", value)
	}
}

func (ts *timestamp) parse(s string) error {
	for _, layout := range parseLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			ts.Time = t.UTC()
			return nil
		}
	}
	return fmt.Errorf("unrecognized timestamp %q", s)
}
