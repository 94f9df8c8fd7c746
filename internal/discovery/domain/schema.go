package domain

import (
	"encoding/json"
	"fmt"
	"math"
)

// FieldKind is the primitive type a schema field expects.
type FieldKind int

const (
	KindInt FieldKind = iota
	KindFloat
	KindString
	KindIntList
)

func (k FieldKind) String() string {
	switch k {
	case KindInt:
		return "int"
	case KindFloat:
		return "float"
	case KindString:
		return "string"
	case KindIntList:
		return "list[int]"
	default:
		return "unknown"
	}
}

// FieldSpec declares one field of a record schema.
type FieldSpec struct {
	Name     string
	Kind     FieldKind
	Required bool
}

// Schema is the minimal contract a raw provider record must meet. Required
// fields must be present and well typed; optional fields may be absent or
// null but must be well typed when set.
type Schema struct {
	Name   string
	Fields []FieldSpec
}

// Rejection explains why a raw record was dropped.
type Rejection struct {
	Schema string
	Index  int
	Field  string
	Reason string
}

func (r *Rejection) Error() string {
	if r.Field == "" {
		return fmt.Sprintf("%s[%d]: %s", r.Schema, r.Index, r.Reason)
	}
	return fmt.Sprintf("%s[%d].%s: %s", r.Schema, r.Index, r.Field, r.Reason)
}

// Record is a validated record. Values are stored under their field name with
// the Go type matching the field kind: int, float64, string or []int. Absent
// and null optional fields are not stored.
type Record map[string]any

// Int returns an integer field.
func (r Record) Int(name string) (int, bool) {
	v, ok := r[name].(int)
	return v, ok
}

// Float returns a float field.
func (r Record) Float(name string) (float64, bool) {
	v, ok := r[name].(float64)
	return v, ok
}

// String returns a string field.
func (r Record) String(name string) (string, bool) {
	v, ok := r[name].(string)
	return v, ok
}

// IntList returns an integer list field.
func (r Record) IntList(name string) ([]int, bool) {
	v, ok := r[name].([]int)
	return v, ok
}

// Validate checks one raw record against the schema.
func (s Schema) Validate(raw map[string]any) (Record, *Rejection) {
	rec := make(Record, len(s.Fields))
	for _, f := range s.Fields {
		v, present := raw[f.Name]
		if !present || v == nil {
			if f.Required {
				return nil, &Rejection{Schema: s.Name, Field: f.Name, Reason: "field required"}
			}
			continue
		}
		typed, ok := coerce(f.Kind, v)
		if !ok {
			return nil, &Rejection{
				Schema: s.Name,
				Field:  f.Name,
				Reason: fmt.Sprintf("expected %s, got %T", f.Kind, v),
			}
		}
		rec[f.Name] = typed
	}
	return rec, nil
}

// Filter validates each raw item in order and returns the survivors in input
// order. Items that are not objects or fail validation are dropped; the
// rejections are returned for diagnostics only.
func (s Schema) Filter(items []any) ([]Record, []*Rejection) {
	records := make([]Record, 0, len(items))
	var rejected []*Rejection
	for i, item := range items {
		raw, ok := item.(map[string]any)
		if !ok {
			rejected = append(rejected, &Rejection{Schema: s.Name, Index: i, Reason: fmt.Sprintf("expected object, got %T", item)})
			continue
		}
		rec, rej := s.Validate(raw)
		if rej != nil {
			rej.Index = i
			rejected = append(rejected, rej)
			continue
		}
		records = append(records, rec)
	}
	return records, rejected
}

func coerce(kind FieldKind, v any) (any, bool) {
	switch kind {
	case KindInt:
		return toInt(v)
	case KindFloat:
		return toFloat(v)
	case KindString:
		s, ok := v.(string)
		return s, ok
	case KindIntList:
		items, ok := v.([]any)
		if !ok {
			if ints, isInts := v.([]int); isInts {
				return append([]int{}, ints...), true
			}
			return nil, false
		}
		out := make([]int, 0, len(items))
		for _, item := range items {
			n, ok := toInt(item)
			if !ok {
				return nil, false
			}
			out = append(out, n)
		}
		return out, true
	}
	return nil, false
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		if n != math.Trunc(n) || math.IsInf(n, 0) {
			return 0, false
		}
		return int(n), true
	case json.Number:
		i, err := n.Int64()
		return int(i), err == nil
	}
	return 0, false
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case int:
		return float64(n), true
	case int64:
		return float64(n), true
	case json.Number:
		f, err := n.Float64()
		return f, err == nil
	}
	return 0, false
}
