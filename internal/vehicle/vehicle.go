// Package vehicle holds the vehicle record shared by the API client, the
// screen controllers and the terminal UI, plus the list helpers (ordering and
// search) the listing screen applies on top of what the remote store returns.
package vehicle

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// ID identifies a persisted vehicle. It is assigned by the remote store and
// never synthesized by the client. The store may emit numeric or string IDs;
// both decode into ID and numeric IDs are written back as JSON numbers.
type ID string

// IsZero reports whether the ID is absent.
func (id ID) IsZero() bool {
	return id == ""
}

func (id ID) String() string {
	return string(id)
}

// Int returns the numeric value of the ID and whether it is numeric.
func (id ID) Int() (int64, bool) {
	n, err := strconv.ParseInt(string(id), 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}

// MarshalJSON writes numeric IDs as numbers and everything else as strings.
func (id ID) MarshalJSON() ([]byte, error) {
	if n, ok := id.Int(); ok {
		return []byte(strconv.FormatInt(n, 10)), nil
	}
	return json.Marshal(string(id))
}

// UnmarshalJSON accepts a JSON number, string or null.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
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

// Vehicle is one registered vehicle. A Vehicle without ID is a draft that
// lives only in form state; with an ID it mirrors a record in the remote store.
type Vehicle struct {
	ID     ID     `json:"id,omitempty"`
	Placa  string `json:"placa" validate:"required"`
	Marca  string `json:"marca" validate:"required"`
	Modelo string `json:"modelo" validate:"required"`
	Ano    string `json:"ano" validate:"required"`
	Cor    string `json:"cor" validate:"required"`
}

// IsDraft reports whether the record has not been persisted yet.
func (v Vehicle) IsDraft() bool {
	return v.ID.IsZero()
}

// Fields returns the mutable fields, the payload sent on create and update.
func (v Vehicle) Fields() Vehicle {
	v.ID = ""
	return v
}
