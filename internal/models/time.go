package models

import (
	"fmt"
	"strings"
	"time"
)

// timeLayouts covers the service's timestamp dialects. The backend emits
// naive local timestamps without a zone designator, so RFC 3339 alone does
// not decode them.
var timeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
}

// Time decodes the timestamp formats the service emits. It embeds time.Time
// so callers keep the usual accessors.
type Time struct {
	time.Time
}

func (t *Time) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "null" || s == "" {
		t.Time = time.Time{}
		return nil
	}
	for _, layout := range timeLayouts {
		parsed, err := time.Parse(layout, s)
		if err == nil {
			t.Time = parsed
			return nil
		}
	}
	return fmt.Errorf("unsupported timestamp %q", s)
}

func (t Time) MarshalJSON() ([]byte, error) {
	if t.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + t.Format(time.RFC3339Nano) + `"`), nil
}

// Display formats the timestamp for table rows. Nil and zero values render
// as a placeholder so a missing timestamp never blocks a row.
func (t *Time) Display() string {
	if t == nil || t.IsZero() {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}
