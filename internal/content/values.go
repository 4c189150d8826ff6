package content

import (
	"bytes"
	"encoding/json"
	"strings"
	"time"
)

// StringList is a list-typed column. Any JSON value that is not an array
// decodes to an empty list; non-string and blank elements are dropped.
type StringList []string

// UnmarshalJSON implements json.Unmarshaler and never fails.
func (l *StringList) UnmarshalJSON(data []byte) error {
	*l = nil
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil
	}
	out := make(StringList, 0, len(raw))
	for _, item := range raw {
		var value string
		if err := json.Unmarshal(item, &value); err != nil {
			continue
		}
		if value = strings.TrimSpace(value); value != "" {
			out = append(out, value)
		}
	}
	*l = out
	return nil
}

// MarshalJSON always writes an array, never null.
func (l StringList) MarshalJSON() ([]byte, error) {
	if l == nil {
		return []byte("[]"), nil
	}
	return json.Marshal([]string(l))
}

// Head returns at most n items and the number left over.
func (l StringList) Head(n int) (StringList, int) {
	if n < 0 {
		n = 0
	}
	if len(l) <= n {
		return l, 0
	}
	return l[:n], len(l) - n
}

// ID is a row identifier that may arrive as a JSON string or number.
type ID string

// UnmarshalJSON implements json.Unmarshaler.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

func (id ID) String() string {
	return string(id)
}

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"2006-01",
}

// Date is a calendar column. Null or unparseable values decode to the zero
// Date, which renders as an empty string.
type Date struct {
	time.Time
}

// ParseDate reads value using the layouts the backends emit.
func ParseDate(value string) Date {
	value = strings.TrimSpace(value)
	if value == "" {
		return Date{}
	}
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return Date{Time: t.UTC()}
		}
	}
	return Date{}
}

// UnmarshalJSON implements json.Unmarshaler and never fails.
func (d *Date) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		*d = Date{}
		return nil
	}
	*d = ParseDate(s)
	return nil
}

// MarshalJSON writes null for the zero date and RFC 3339 otherwise.
func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(d.Format(time.RFC3339))
}

// Valid reports whether the date carried a value.
func (d Date) Valid() bool {
	return !d.IsZero()
}
