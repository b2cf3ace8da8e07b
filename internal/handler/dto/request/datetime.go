package request

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/cockroachdb/errors"
)

// naiveLayout is an ISO-8601 datetime without an offset. Such values are
// read as UTC.
const naiveLayout = "2006-01-02T15:04:05.999999999"

// DateTime accepts RFC3339 timestamps as well as offset-less ones.
type DateTime struct {
	time.Time
}

func NewDateTime(t time.Time) *DateTime {
	return &DateTime{Time: t}
}

func (d *DateTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return errors.Wrap(err, "datetime must be a string")
	}
	if t, err := time.Parse(time.RFC3339Nano, raw); err == nil {
		d.Time = t
		return nil
	}
	t, err := time.ParseInLocation(naiveLayout, raw, time.UTC)
	if err != nil {
		return errors.Newf("invalid datetime %q", raw)
	}
	d.Time = t
	return nil
}

func (d *DateTime) value() time.Time {
	if d == nil {
		return time.Time{}
	}
	return d.Time
}
