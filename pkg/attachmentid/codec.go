package attachmentid

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// MarshalText implements encoding.TextMarshaler. The zero ID encodes as
// empty text.
func (a ID) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. Empty text decodes to
// the zero ID, so zero-valued map keys survive encoding/json.
func (a *ID) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*a = ID{}
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// MarshalJSON implements json.Marshaler.
// IDs are serialized as their canonical string: "example.com/doc123".
func (a ID) MarshalJSON() ([]byte, error) {
	if a.IsZero() {
		return []byte("null"), nil
	}
	return json.Marshal(a.String())
}

// UnmarshalJSON implements json.Unmarshaler.
// Accepts the canonical string, null, or {"domain": "...", "id": "..."}.
func (a *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*a = ID{}
		return nil
	}

	if len(data) > 0 && data[0] == '{' {
		var obj struct {
			Domain *string `json:"domain"`
			ID     *string `json:"id"`
		}
		if err := json.Unmarshal(data, &obj); err != nil {
			return fmt.Errorf("invalid attachment ID JSON: %w", err)
		}
		if obj.ID == nil {
			return ErrMissingID
		}
		var domain string
		if obj.Domain != nil {
			domain = *obj.Domain
		}
		parsed, err := New(domain, *obj.ID)
		if err != nil {
			return err
		}
		*a = parsed
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("attachment ID must be a string or object: %w", err)
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// Scan implements sql.Scanner. NULL is rejected with ErrMissingInput; use
// *ID or sql.Null[ID] for nullable columns.
func (a *ID) Scan(value interface{}) error {
	var s string
	switch v := value.(type) {
	case nil:
		return ErrMissingInput
	case string:
		s = v
	case []byte:
		s = string(v)
	default:
		return fmt.Errorf("cannot scan %T into attachment ID", value)
	}

	parsed, err := Parse(s)
	if err != nil {
		return fmt.Errorf("cannot scan into attachment ID: %w", err)
	}
	*a = parsed
	return nil
}

// Value implements driver.Valuer. The zero ID is stored as NULL.
func (a ID) Value() (driver.Value, error) {
	if a.IsZero() {
		return nil, nil
	}
	return a.String(), nil
}
