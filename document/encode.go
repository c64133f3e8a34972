package document

import (
	"bytes"
	"math"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
)

// ToJSON renders a value tree as indented JSON. Table keys keep their
// source order.
func ToJSON(v Value) ([]byte, error) {
	return json.MarshalIndent(v, "", "  ")
}

// ToYAML renders a value tree as YAML. Table keys keep their source
// order.
func ToYAML(v Value) ([]byte, error) {
	return yaml.Marshal(yamlValue(v))
}

func (t *Table) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, k := range t.keys {
		if i > 0 {
			buf.WriteByte(',')
		}
		kb, err := json.Marshal(k)
		if err != nil {
			return nil, err
		}
		buf.Write(kb)
		buf.WriteByte(':')
		vb, err := json.Marshal(t.entries[k])
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

func (a *Array) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, v := range a.values {
		if i > 0 {
			buf.WriteByte(',')
		}
		vb, err := json.Marshal(v)
		if err != nil {
			return nil, err
		}
		buf.Write(vb)
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

func (v *Boolean) MarshalJSON() ([]byte, error) { return json.Marshal(v.Value) }

func (v *Integer) MarshalJSON() ([]byte, error) { return json.Marshal(v.Value) }

// MarshalJSON renders non-finite floats as strings since JSON has no
// representation for them.
func (v *Float) MarshalJSON() ([]byte, error) {
	if math.IsInf(v.Value, 0) || math.IsNaN(v.Value) {
		return json.Marshal(floatString(v.Value))
	}
	return json.Marshal(v.Value)
}

func (v *String) MarshalJSON() ([]byte, error) { return json.Marshal(v.Value) }

func (v *OffsetDateTime) MarshalJSON() ([]byte, error) { return json.Marshal(v.Value.String()) }

func (v *LocalDateTime) MarshalJSON() ([]byte, error) { return json.Marshal(v.Value.String()) }

func (v *LocalDate) MarshalJSON() ([]byte, error) { return json.Marshal(v.Value.String()) }

func (v *LocalTime) MarshalJSON() ([]byte, error) { return json.Marshal(v.Value.String()) }

func floatString(f float64) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	default:
		return "nan"
	}
}

// yamlValue lowers the value tree to the shapes the YAML encoder
// understands, using MapSlice to preserve key order.
func yamlValue(v Value) any {
	switch t := v.(type) {
	case *Table:
		out := make(yaml.MapSlice, 0, len(t.keys))
		for _, k := range t.keys {
			out = append(out, yaml.MapItem{Key: k, Value: yamlValue(t.entries[k])})
		}
		return out
	case *Array:
		out := make([]any, 0, len(t.values))
		for _, e := range t.values {
			out = append(out, yamlValue(e))
		}
		return out
	case *Boolean:
		return t.Value
	case *Integer:
		return t.Value
	case *Float:
		return t.Value
	case *String:
		return t.Value
	case *OffsetDateTime:
		return t.Value.String()
	case *LocalDateTime:
		return t.Value.String()
	case *LocalDate:
		return t.Value.String()
	case *LocalTime:
		return t.Value.String()
	default:
		return nil
	}
}
