package credentials

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"sort"
	"strconv"
)

// Credentials maps credential keys to decoded JSON values. Numbers are held
// as json.Number so their textual form is preserved.
type Credentials map[string]any

// Keys returns the credential keys in lexical order.
func (c Credentials) Keys() []string {
	keys := make([]string, 0, len(c))
	for k := range c {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// decodeObject decodes a single JSON object from data and also returns its
// top-level keys in document order. Repeated keys keep their first position
// and their last value.
func decodeObject(data []byte) (Credentials, []string, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return nil, nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, nil, fmt.Errorf("expected a JSON object, got %v", tok)
	}

	creds := make(Credentials)
	var order []string
	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return nil, nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, nil, fmt.Errorf("unexpected object key %v", tok)
		}

		var value any
		if err = dec.Decode(&value); err != nil {
			return nil, nil, err
		}

		if _, seen := creds[key]; !seen {
			order = append(order, key)
		}
		creds[key] = value
	}

	// closing '}'
	if _, err = dec.Token(); err != nil {
		return nil, nil, err
	}

	if _, err = dec.Token(); !errors.Is(err, io.EOF) {
		return nil, nil, errors.New("unexpected data after top-level JSON object")
	}

	return creds, order, nil
}

// truthy reports whether value counts as present for mirroring. nil, empty
// strings, false, numeric zero and empty collections are falsy.
func truthy(value any) bool {
	switch v := value.(type) {
	case nil:
		return false
	case string:
		return v != ""
	case bool:
		return v
	case json.Number:
		f, err := v.Float64()
		return err != nil || f != 0
	case float64:
		return v != 0
	case float32:
		return v != 0
	case int:
		return v != 0
	case int64:
		return v != 0
	case int32:
		return v != 0
	case uint:
		return v != 0
	case uint64:
		return v != 0
	case map[string]any:
		return len(v) > 0
	case []any:
		return len(v) > 0
	default:
		return true
	}
}

// stringify renders a decoded JSON value as text for the env file and the
// environment. Booleans are written as "true" and "false"; env files produced
// by the earlier Python loader carry "True" and "False" instead. Numbers keep
// their JSON literal and objects and arrays are written as compact JSON.
func stringify(value any) string {
	switch v := value.(type) {
	case nil:
		return ""
	case string:
		return v
	case json.Number:
		return v.String()
	case bool:
		return strconv.FormatBool(v)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case map[string]any, []any:
		b, err := json.Marshal(v)
		if err != nil {
			return fmt.Sprint(v)
		}
		return string(b)
	default:
		return fmt.Sprint(v)
	}
}
