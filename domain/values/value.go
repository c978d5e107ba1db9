// Package values models run-time field values of mixed shape. Structured
// values carry their JSON form and are only ever written as a string.
package values

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"time"
)

type Kind int

const (
	KindNull Kind = iota
	KindString
	KindNumber
	KindBool
	KindDate
	KindStructured
)

type Value struct {
	kind Kind
	str  string
	num  float64
	b    bool
	date time.Time
	raw  json.RawMessage
}

func Null() Value { return Value{} }
func String(s string) Value { return Value{kind: KindString, str: s} }
func Number(n float64) Value { return Value{kind: KindNumber, num: n} }
func Bool(b bool) Value { return Value{kind: KindBool, b: b} }
func Date(t time.Time) Value { return Value{kind: KindDate, date: t} }
func Structured(raw []byte) Value { return Value{kind: KindStructured, raw: compact(raw)} }

// From converts a Go value into a Value. Maps, slices and structs become
// structured values.
func From(v any) (Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case Value:
		return x, nil
	case string:
		return String(x), nil
	case bool:
		return Bool(x), nil
	case int:
		return Number(float64(x)), nil
	case int64:
		return Number(float64(x)), nil
	case float32:
		return Number(float64(x)), nil
	case float64:
		return Number(x), nil
	case json.Number:
		f, err := x.Float64()
		if err != nil {
			return Value{}, err
		}
		return Number(f), nil
	case time.Time:
		return Date(x), nil
	default:
		raw, err := json.Marshal(x)
		if err != nil {
			return Value{}, fmt.Errorf("serialize structured value: %w", err)
		}
		return Structured(raw), nil
	}
}

func (v Value) Kind() Kind { return v.kind }
func (v Value) IsNull() bool { return v.kind == KindNull }

// CellValue returns what a spreadsheet cell should hold. Structured values
// come back as their JSON text.
func (v Value) CellValue() any {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		if v.num == math.Trunc(v.num) && math.Abs(v.num) < 1<<53 {
			return int64(v.num)
		}
		return v.num
	case KindBool:
		return v.b
	case KindDate:
		return v.date
	case KindStructured:
		return string(v.raw)
	default:
		return nil
	}
}

// String renders the value as text, as stored field values are kept.
func (v Value) String() string {
	switch v.kind {
	case KindString:
		return v.str
	case KindNumber:
		return strconv.FormatFloat(v.num, 'f', -1, 64)
	case KindBool:
		return strconv.FormatBool(v.b)
	case KindDate:
		return v.date.Format(time.RFC3339)
	case KindStructured:
		return string(v.raw)
	default:
		return ""
	}
}

func (v *Value) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		*v = Null()
		return nil
	}

	switch data[0] {
	case 'n':
		*v = Null()
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = String(s)
	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return err
		}
		*v = Bool(b)
	case '{', '[':
		if !json.Valid(data) {
			return fmt.Errorf("invalid structured value")
		}
		*v = Structured(data)
	default:
		var n float64
		if err := json.Unmarshal(data, &n); err != nil {
			return err
		}
		*v = Number(n)
	}
	return nil
}

func (v Value) MarshalJSON() ([]byte, error) {
	switch v.kind {
	case KindString:
		return json.Marshal(v.str)
	case KindNumber:
		return json.Marshal(v.num)
	case KindBool:
		return json.Marshal(v.b)
	case KindDate:
		return json.Marshal(v.date)
	case KindStructured:
		return v.raw, nil
	default:
		return []byte("null"), nil
	}
}

func compact(raw []byte) json.RawMessage {
	var buf bytes.Buffer
	if err := json.Compact(&buf, raw); err != nil {
		return json.RawMessage(raw)
	}
	return buf.Bytes()
}

// Set is a run-time field value set keyed by field key.
type Set map[string]Value

// Overlay returns a copy of s with every non-null entry of top applied.
func (s Set) Overlay(top Set) Set {
	out := make(Set, len(s)+len(top))
	for k, v := range s {
		out[k] = v
	}
	for k, v := range top {
		if v.IsNull() {
			if _, ok := out[k]; ok {
				continue
			}
		}
		out[k] = v
	}
	return out
}
