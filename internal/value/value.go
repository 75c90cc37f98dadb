// Package value holds the typed scalar produced from EDGAR leaf text.
package value

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind names the active variant of a Value.
type Kind string

const (
	KindInt   Kind = "int"
	KindFloat Kind = "float"
	KindBool  Kind = "bool"
	KindText  Kind = "text"
)

// Value is a tagged union over int64, float64, bool and text. Exactly one
// variant is active; the zero Value is Text("").
type Value struct {
	kind Kind
	i    int64
	f    float64
	b    bool
	s    string
}

func Int(v int64) Value     { return Value{kind: KindInt, i: v} }
func Float(v float64) Value { return Value{kind: KindFloat, f: v} }
func Bool(v bool) Value     { return Value{kind: KindBool, b: v} }
func Text(v string) Value   { return Value{kind: KindText, s: v} }

// Coerce converts raw leaf text by trying, in order: signed 64-bit integer,
// decimal 64-bit float, the exact literals "true"/"false", and finally
// verbatim text. Input is never trimmed.
//
// The float step accepts exponents and the special forms Go's parser knows
// ("NaN", "Inf", "Infinity", any case, optionally signed) but rejects
// hexadecimal mantissas and digit-separating underscores. Values beyond the
// float64 range become ±Inf.
func Coerce(raw string) Value {
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return Int(i)
	}
	if decimalFloatSyntax(raw) {
		// Out-of-range magnitudes round to ±Inf or zero and still count.
		if f, err := strconv.ParseFloat(raw, 64); err == nil || errors.Is(err, strconv.ErrRange) {
			return Float(f)
		}
	}
	switch raw {
	case "true":
		return Bool(true)
	case "false":
		return Bool(false)
	}
	return Text(raw)
}

func decimalFloatSyntax(s string) bool {
	return !strings.ContainsAny(s, "xX_")
}

// Kind reports the active variant.
func (v Value) Kind() Kind {
	if v.kind == "" {
		return KindText
	}
	return v.kind
}

func (v Value) Int() (int64, bool)     { return v.i, v.kind == KindInt }
func (v Value) Float() (float64, bool) { return v.f, v.kind == KindFloat }
func (v Value) Bool() (bool, bool)     { return v.b, v.kind == KindBool }
func (v Value) Text() (string, bool)   { return v.s, v.Kind() == KindText }

// Equal compares variant and payload. NaN floats compare equal to each other
// so that reparsing a document yields equal values.
func (v Value) Equal(o Value) bool {
	if v.Kind() != o.Kind() {
		return false
	}
	switch v.Kind() {
	case KindInt:
		return v.i == o.i
	case KindFloat:
		if math.IsNaN(v.f) && math.IsNaN(o.f) {
			return true
		}
		return v.f == o.f
	case KindBool:
		return v.b == o.b
	}
	return v.s == o.s
}

// String renders the payload the way it would appear in a document.
func (v Value) String() string {
	switch v.Kind() {
	case KindInt:
		return strconv.FormatInt(v.i, 10)
	case KindFloat:
		return strconv.FormatFloat(v.f, 'g', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	}
	return v.s
}

type wire struct {
	Type  Kind `json:"type" yaml:"type"`
	Value any  `json:"value" yaml:"value"`
}

func (v Value) wire() wire {
	w := wire{Type: v.Kind()}
	switch v.Kind() {
	case KindInt:
		w.Value = v.i
	case KindFloat:
		switch {
		case math.IsNaN(v.f):
			w.Value = "NaN"
		case math.IsInf(v.f, 1):
			w.Value = "+Inf"
		case math.IsInf(v.f, -1):
			w.Value = "-Inf"
		default:
			w.Value = v.f
		}
	case KindBool:
		w.Value = v.b
	default:
		w.Value = v.s
	}
	return w
}

// MarshalJSON emits {"type": "...", "value": ...}. Non-finite floats carry
// their value as a string.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.wire())
}

// UnmarshalJSON accepts the form produced by MarshalJSON.
func (v *Value) UnmarshalJSON(data []byte) error {
	var w struct {
		Type  Kind            `json:"type"`
		Value json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &w); err != nil {
		return err
	}
	switch w.Type {
	case KindInt:
		var i int64
		if err := json.Unmarshal(w.Value, &i); err != nil {
			return fmt.Errorf("int value: %w", err)
		}
		*v = Int(i)
	case KindFloat:
		var s string
		if err := json.Unmarshal(w.Value, &s); err == nil {
			f, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return fmt.Errorf("float value: %w", err)
			}
			*v = Float(f)
			return nil
		}
		var f float64
		if err := json.Unmarshal(w.Value, &f); err != nil {
			return fmt.Errorf("float value: %w", err)
		}
		*v = Float(f)
	case KindBool:
		var b bool
		if err := json.Unmarshal(w.Value, &b); err != nil {
			return fmt.Errorf("bool value: %w", err)
		}
		*v = Bool(b)
	case KindText, "":
		var s string
		if err := json.Unmarshal(w.Value, &s); err != nil {
			return fmt.Errorf("text value: %w", err)
		}
		*v = Text(s)
	default:
		return fmt.Errorf("unknown value type %q", w.Type)
	}
	return nil
}

// MarshalYAML mirrors MarshalJSON.
func (v Value) MarshalYAML() (any, error) {
	return v.wire(), nil
}
