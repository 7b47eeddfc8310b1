package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Operand is a number accepted either as a JSON number or as a numeric
// JSON string, so both {"a": 2} and {"a": "2"} decode to 2.
type Operand float64

// UnmarshalJSON implements json.Unmarshaler.
//
// JSON null never reaches this method when the field is a pointer; the
// pointer simply stays nil and the validator reports the field as missing.
func (o *Operand) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}

		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return fmt.Errorf("operand %q is not a valid number", s)
		}
		*o = Operand(f)
		return nil
	}

	var f float64
	if err := json.Unmarshal(bytes.TrimSpace(data), &f); err != nil {
		return fmt.Errorf("operand %s is not a valid number", data)
	}
	*o = Operand(f)
	return nil
}

// AddRequest is the body accepted by POST /math/add.
// Both operands are required.
type AddRequest struct {
	A *Operand `json:"a"`
	B *Operand `json:"b"`
}

// Operands returns the dereferenced pair. Call only after validation.
func (r AddRequest) Operands() (float64, float64) {
	return float64(*r.A), float64(*r.B)
}

// AddResult is the response of POST /math/add.
type AddResult struct {
	// Result is always 1; the computed sum is never reported.
	Result int `json:"result"`

	// BugMode reports whether BUG_ADD=1 was active.
	BugMode bool `json:"bug_mode"`
}
