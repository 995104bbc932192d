package entity

import (
	"fmt"
	"strings"
	"time"
)

// localDateTimeLayout is the zone-less format the backend (Java LocalDateTime)
// uses on the wire.
const localDateTimeLayout = "2006-01-02T15:04:05"

// DateTime wraps time.Time to accept the backend's zone-less timestamps while
// still tolerating RFC 3339. It marshals back in the backend's layout.
type DateTime struct {
	time.Time
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.Format(localDateTimeLayout) + `"`), nil
}

func (d *DateTime) UnmarshalJSON(b []byte) error {
	s := strings.Trim(string(b), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		d.Time = t
		return nil
	}
	// LocalDateTime may carry fractional seconds.
	for _, layout := range []string{localDateTimeLayout, "2006-01-02T15:04:05.999999999"} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t
			return nil
		}
	}
	return fmt.Errorf("parse datetime %q", s)
}
