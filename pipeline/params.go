package pipeline

import (
	"fmt"
	"strconv"
	"strings"
)

// Params is the raw key/value bag of one configured module section.
// Getters return the supplied default when a key is absent and record a
// parse failure when a key is present but malformed; builders read all
// their keys first and then check Err once, so a single module reports
// its first broken parameter with both module context and key name.
type Params struct {
	kv  map[string]string
	err *error
}

// NewParams wraps a key/value map (typically an INI section) in a Params
// bag. The map is not copied; the config layer owns it.
func NewParams(kv map[string]string) Params {
	var err error

	return Params{kv: kv, err: &err}
}

// Err returns the first parse failure recorded by a getter, or nil.
func (p Params) Err() error {
	if p.err == nil {
		return nil
	}

	return *p.err
}

func (p Params) record(key, value, want string) {
	if p.err != nil && *p.err == nil {
		*p.err = fmt.Errorf("parameter %q=%q is not a valid %s: %w", key, value, want, ErrBadParam)
	}
}

// Float returns the key parsed as float64, or def when absent.
func (p Params) Float(key string, def float64) float64 {
	raw, ok := p.kv[key]
	if !ok {
		return def
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		p.record(key, raw, "number")

		return def
	}

	return v
}

// Int returns the key parsed as int, or def when absent.
func (p Params) Int(key string, def int) int {
	raw, ok := p.kv[key]
	if !ok {
		return def
	}
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		p.record(key, raw, "integer")

		return def
	}

	return v
}

// Bool returns the key parsed as bool, or def when absent. Accepted
// spellings follow INI conventions: true/false, yes/no, on/off, 1/0.
func (p Params) Bool(key string, def bool) bool {
	raw, ok := p.kv[key]
	if !ok {
		return def
	}
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "yes", "on", "1":
		return true
	case "false", "no", "off", "0":
		return false
	default:
		p.record(key, raw, "boolean")

		return def
	}
}

// String returns the key's trimmed value, or def when absent.
func (p Params) String(key, def string) string {
	raw, ok := p.kv[key]
	if !ok {
		return def
	}

	return strings.TrimSpace(raw)
}
