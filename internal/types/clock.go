package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"strings"
	"time"
)

// Clock is a local wall clock time with minute precision, e.g. "14:30".
// It is only used to order transactions that share a date.
type Clock struct {
	hour   int
	minute int
}

var ErrClockFormat = errors.New("clock times must be in HH:MM format")

// NewClock returns a new Clock.
func NewClock(hour, minute int) Clock {
	return Clock{hour: hour, minute: minute}
}

// ParseClock parses an "HH:MM" string and returns the Clock it represents.
func ParseClock(s string) (Clock, error) {
	t, err := time.Parse("15:04", s)
	if err != nil {
		return Clock{}, fmt.Errorf("%w: %q", ErrClockFormat, s)
	}

	return Clock{hour: t.Hour(), minute: t.Minute()}, nil
}

// String returns the clock time formatted as HH:MM.
func (c Clock) String() string {
	return fmt.Sprintf("%02d:%02d", c.hour, c.minute)
}

// Minutes returns the number of minutes since midnight.
func (c Clock) Minutes() int {
	return c.hour*60 + c.minute
}

// Compare returns -1 if c is before d, 0 if they are equal
// and +1 if c is after d.
func (c Clock) Compare(d Clock) int {
	switch {
	case c.Minutes() < d.Minutes():
		return -1
	case c.Minutes() > d.Minutes():
		return 1
	}
	return 0
}

// MarshalJSON implements the json.Marshaler interface.
func (c Clock) MarshalJSON() ([]byte, error) {
	return []byte(fmt.Sprintf("%q", c.String())), nil
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (c *Clock) UnmarshalJSON(data []byte) error {
	value := strings.Trim(string(data), `"`)
	if value == "" || value == "null" {
		return nil
	}

	parsed, err := ParseClock(value)
	if err != nil {
		return err
	}

	*c = parsed
	return nil
}

// Scan reads the value from the database.
func (c *Clock) Scan(value interface{}) error {
	switch v := value.(type) {
	case string:
		parsed, err := ParseClock(v)
		if err != nil {
			return err
		}
		*c = parsed
		return nil
	case []byte:
		return c.Scan(string(v))
	case nil:
		*c = Clock{}
		return nil
	}

	return fmt.Errorf("cannot scan %T into Clock", value)
}

// Value returns the value for the SQL driver to write to the database.
func (c Clock) Value() (driver.Value, error) {
	return c.String(), nil
}

// GormDataType defines the data type used by gorm for the type.
func (Clock) GormDataType() string {
	return "text"
}
