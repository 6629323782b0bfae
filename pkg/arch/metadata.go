package arch

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Recognized metadata keys. Each gets a dedicated header line in the
// Markdown output instead of a generic summary row.
const (
	MetaTotalParams     = "total_params"
	MetaActivatedParams = "activated_params"
	MetaPaper           = "paper"
)

// MetaEntry is one metadata key with its value rendered as text.
type MetaEntry struct {
	Key   string
	Value string
}

// Metadata is an ordered string-keyed mapping of scalar values.
// Order follows the input document; a repeated key keeps its first position
// and takes the last value.
type Metadata []MetaEntry

// Get returns the value for key and whether the key is present.
func (m Metadata) Get(key string) (string, bool) {
	for _, e := range m {
		if e.Key == key {
			return e.Value, true
		}
	}
	return "", false
}

// Set adds key or replaces its value in place.
func (m *Metadata) Set(key, value string) {
	for i := range *m {
		if (*m)[i].Key == key {
			(*m)[i].Value = value
			return
		}
	}
	*m = append(*m, MetaEntry{Key: key, Value: value})
}

// UnmarshalJSON decodes a JSON object while keeping its key order.
// A JSON null leaves m untouched.
func (m *Metadata) UnmarshalJSON(data []byte) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return err
	}
	if tok == nil {
		return nil
	}
	if d, ok := tok.(json.Delim); !ok || d != '{' {
		return fmt.Errorf("metadata must be an object, got %v", tok)
	}

	out := Metadata{}
	for dec.More() {
		kt, err := dec.Token()
		if err != nil {
			return err
		}
		key, ok := kt.(string)
		if !ok {
			return fmt.Errorf("metadata key must be a string, got %v", kt)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return fmt.Errorf("metadata %q: %w", key, err)
		}
		value, err := valueText(raw)
		if err != nil {
			return fmt.Errorf("metadata %q: %w", key, err)
		}
		out.Set(key, value)
	}
	if _, err := dec.Token(); err != nil {
		return err
	}

	*m = out
	return nil
}

// MarshalJSON encodes m as a JSON object of strings in entry order.
func (m Metadata) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, e := range m {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(e.Key)
		if err != nil {
			return nil, err
		}
		v, err := json.Marshal(e.Value)
		if err != nil {
			return nil, err
		}
		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// valueText renders a raw JSON value as display text the way the
// Python tooling printed it: strings unquoted, integers verbatim, floats in
// repr form ("1000.0", "1e+16"), true/false/null as True/False/None and
// containers as compact JSON.
func valueText(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	switch {
	case len(trimmed) == 0:
		return "", nil
	case trimmed[0] == '"':
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", err
		}
		return s, nil
	case bytes.Equal(trimmed, []byte("null")):
		return "None", nil
	case bytes.Equal(trimmed, []byte("true")):
		return "True", nil
	case bytes.Equal(trimmed, []byte("false")):
		return "False", nil
	case trimmed[0] == '{' || trimmed[0] == '[':
		var buf bytes.Buffer
		if err := json.Compact(&buf, trimmed); err != nil {
			return "", err
		}
		return buf.String(), nil
	default:
		return numberText(string(trimmed)), nil
	}
}

// numberText keeps integer literals as written and prints floats like
// Python's float repr: plain decimals with at least one fractional digit
// between 1e-4 and 1e16, exponent form outside that range.
func numberText(lit string) string {
	if !strings.ContainsAny(lit, ".eE") {
		return lit
	}
	f, err := strconv.ParseFloat(lit, 64)
	if math.IsInf(f, 0) {
		if f > 0 {
			return "inf"
		}
		return "-inf"
	}
	if err != nil {
		return lit
	}
	if abs := math.Abs(f); f == 0 || (abs >= 1e-4 && abs < 1e16) {
		s := strconv.FormatFloat(f, 'f', -1, 64)
		if !strings.Contains(s, ".") {
			s += ".0"
		}
		return s
	}
	return strconv.FormatFloat(f, 'e', -1, 64)
}

// reorder sorts entries to follow keys; entries not named in keys keep
// their relative order after the named ones.
func (m Metadata) reorder(keys []string) Metadata {
	out := make(Metadata, 0, len(m))
	seen := make(map[string]bool, len(keys))
	for _, k := range keys {
		if seen[k] {
			continue
		}
		if v, ok := m.Get(k); ok {
			out = append(out, MetaEntry{Key: k, Value: v})
			seen[k] = true
		}
	}
	for _, e := range m {
		if !seen[e.Key] {
			out = append(out, e)
		}
	}
	return out
}
