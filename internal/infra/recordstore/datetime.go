package recordstore

import (
	"strings"
	"time"
)

const wireTimeLayout = "2006-01-02 15:04:05.000Z"

// DateTime is the store's datetime wire format. The store emits
// "2006-01-02 15:04:05.000Z"; older records written by the terminals carry
// RFC3339, so unmarshalling accepts both.
type DateTime struct {
	time.Time
}

func NewDateTime(t time.Time) DateTime {
	return DateTime{Time: t.UTC()}
}

func (d DateTime) MarshalJSON() ([]byte, error) {
	if d.Time.IsZero() {
		return []byte(`""`), nil
	}
	return []byte(`"` + d.Time.UTC().Format(wireTimeLayout) + `"`), nil
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	s := strings.Trim(string(data), `"`)
	if s == "" || s == "null" {
		d.Time = time.Time{}
		return nil
	}
	for _, layout := range []string{wireTimeLayout, time.RFC3339Nano, time.RFC3339} {
		if t, err := time.Parse(layout, s); err == nil {
			d.Time = t.UTC()
			return nil
		}
	}
	t, err := time.Parse("2006-01-02 15:04:05Z", s)
	if err != nil {
		return err
	}
	d.Time = t.UTC()
	return nil
}
