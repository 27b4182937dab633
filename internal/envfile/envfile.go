// Package envfile reads and renders the persisted KEY=VALUE environment file.
//
// Only well-formed assignment lines are kept: blank lines, comment lines
// (starting with '#') and lines without '=' are dropped when parsing. Values
// are taken verbatim after the first '=', no quote or escape processing is
// applied, so parsing a rendered file yields the values written as long as
// they are single-line and carry no surrounding whitespace.
package envfile

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strings"
	"time"
)

// Header lines written at the top of every rendered file.
const (
	HeaderLine      = "# Auto-generated from JSON credential file"
	GeneratedPrefix = "# Generated on: "
)

// TimestampLayout is the layout of the "Generated on" line. It matches the
// default output of the POSIX date command.
const TimestampLayout = time.UnixDate

// Values is an insertion-ordered string map. Create it with [New].
// Setting an existing key replaces the value and keeps the original position.
type Values struct {
	keys   []string
	values map[string]string
}

// New returns an empty Values.
func New() *Values {
	return &Values{values: make(map[string]string)}
}

// Set assigns value to key.
func (v *Values) Set(key, value string) {
	if _, ok := v.values[key]; !ok {
		v.keys = append(v.keys, key)
	}
	v.values[key] = value
}

// Get returns the value stored under key.
func (v *Values) Get(key string) (string, bool) {
	value, ok := v.values[key]
	return value, ok
}

// Keys returns the keys in insertion order. The slice is a copy.
func (v *Values) Keys() []string {
	keys := make([]string, len(v.keys))
	copy(keys, v.keys)
	return keys
}

// Len returns the number of keys.
func (v *Values) Len() int {
	return len(v.keys)
}

// Map returns an unordered copy of the contents.
func (v *Values) Map() map[string]string {
	m := make(map[string]string, len(v.values))
	for k, val := range v.values {
		m[k] = val
	}
	return m
}

// Parse reads KEY=VALUE lines from r.
//
// Each line is trimmed of surrounding whitespace, then split on the first '='.
// When a key repeats, the later value wins and the first position is kept.
// Line length is not limited.
func Parse(r io.Reader) (*Values, error) {
	values := New()

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, bufio.MaxScanTokenSize), math.MaxInt)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		key, value, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		values.Set(key, value)
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("error scanning env file: %w", err)
	}

	return values, nil
}

// Render writes the header, the generation timestamp, a blank line and then
// every entry of values in order.
func Render(w io.Writer, values *Values, generatedAt time.Time) error {
	bw := bufio.NewWriter(w)

	fmt.Fprintln(bw, HeaderLine)
	fmt.Fprintf(bw, "%s%s\n\n", GeneratedPrefix, generatedAt.Format(TimestampLayout))

	for _, key := range values.keys {
		fmt.Fprintf(bw, "%s=%s\n", key, values.values[key])
	}

	if err := bw.Flush(); err != nil {
		return fmt.Errorf("error writing env file: %w", err)
	}

	return nil
}
