package entity

import (
	"bytes"
	"encoding/json"
	"strconv"
	"strings"
)

// ID identificador opaco de un registro del backend.
// El backend mezcla ids numéricos y textuales; se compara por su forma en texto.
type ID string

// Empty indica si el id no fue informado.
func (id ID) Empty() bool { return strings.TrimSpace(string(id)) == "" }

// Equal compara dos ids por su representación textual.
func (id ID) Equal(other ID) bool {
	return strings.TrimSpace(string(id)) == strings.TrimSpace(string(other))
}

func (id ID) String() string { return string(id) }

// UnmarshalJSON acepta número, string o null.
func (id *ID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if len(b) == 0 || bytes.Equal(b, []byte("null")) {
		*id = ""
		return nil
	}
	if b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*id = ID(n.String())
	return nil
}

// MarshalJSON emite número cuando el id es un entero en forma canónica (el backend espera enteros).
// "07" o "+7" viajan como string.
func (id ID) MarshalJSON() ([]byte, error) {
	if id.Empty() {
		return []byte("null"), nil
	}
	if n, err := strconv.ParseInt(string(id), 10, 64); err == nil && strconv.FormatInt(n, 10) == string(id) {
		return []byte(string(id)), nil
	}
	return json.Marshal(string(id))
}
