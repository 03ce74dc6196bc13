package getarg

import (
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/cagecoin-project/getarg/util"
	orderedmap "github.com/wk8/go-ordered-map"
)

func newFlagMap() *FlagMap {
	return &FlagMap{values: orderedmap.New()}
}

// Lookup returns the value of the flag and whether it is set
func (m *FlagMap) Lookup(name string) (string, bool) {
	if m == nil || m.values == nil {
		return "", false
	}
	v, ok := m.values.Get(name)
	if !ok {
		return "", false
	}

	return v.(string), true
}

// IsArgSet returns true when the flag was given, with or without a value
func (m *FlagMap) IsArgSet(name string) bool {
	_, ok := m.Lookup(name)
	return ok
}

// GetArg returns the value of the flag, or def when the flag is not set.
// A flag given without a value yields "".
func (m *FlagMap) GetArg(name, def string) string {
	if v, ok := m.Lookup(name); ok {
		return v
	}

	return def
}

// GetBoolArg returns def when the flag is not set. A set flag is true unless
// its value is exactly "0".
func (m *FlagMap) GetBoolArg(name string, def bool) bool {
	v, ok := m.Lookup(name)
	if !ok {
		return def
	}

	return v != "0"
}

// GetIntArg returns def when the flag is not set. A set flag yields the
// integer its value starts with (after optional whitespace and sign),
// saturated to the int64 range, or 0 when there is no such integer.
func (m *FlagMap) GetIntArg(name string, def int64) int64 {
	v, ok := m.Lookup(name)
	if !ok {
		return def
	}

	n := util.ParseLeadingInt(v)
	if !n.Valid {
		return 0
	}

	return n.Value
}

// GetTimeArg returns def when the flag is not set, the zero time when the value
// is not a recognizable date, and the parsed time otherwise.
func (m *FlagMap) GetTimeArg(name string, def time.Time) time.Time {
	v, ok := m.Lookup(name)
	if !ok {
		return def
	}

	t, err := dateparse.ParseAny(v)
	if err != nil {
		return time.Time{}
	}

	return t
}

// Len returns the number of flags
func (m *FlagMap) Len() int {
	if m == nil || m.values == nil {
		return 0
	}

	return m.values.Len()
}

// Names returns flag names in the order they were first seen
func (m *FlagMap) Names() []string {
	names := make([]string, 0, m.Len())
	m.each(func(name, _ string) {
		names = append(names, name)
	})

	return names
}

// Map returns a copy of the flags
func (m *FlagMap) Map() map[string]string {
	out := make(map[string]string, m.Len())
	m.each(func(name, value string) {
		out[name] = value
	})

	return out
}

// Equal reports whether both maps hold the same flags with the same values,
// regardless of order
func (m *FlagMap) Equal(other *FlagMap) bool {
	if m.Len() != other.Len() {
		return false
	}

	equal := true
	m.each(func(name, value string) {
		if v, ok := other.Lookup(name); !ok || v != value {
			equal = false
		}
	})

	return equal
}

// String renders the flags as "-a=1 -b=" in first-seen order
func (m *FlagMap) String() string {
	var sb strings.Builder
	m.each(func(name, value string) {
		if sb.Len() > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString(name)
		sb.WriteByte('=')
		sb.WriteString(value)
	})

	return sb.String()
}

// SoftSetArg returns a copy of the map with the flag set to value when the
// flag is not set yet, and whether it was added. The receiver is unchanged.
func (m *FlagMap) SoftSetArg(name, value string) (*FlagMap, bool) {
	if m.IsArgSet(name) {
		return m, false
	}

	out := m.clone()
	out.values.Set(name, value)

	return out, true
}

// SoftSetBoolArg is SoftSetArg with value rendered as "1" or "0"
func (m *FlagMap) SoftSetBoolArg(name string, value bool) (*FlagMap, bool) {
	if value {
		return m.SoftSetArg(name, "1")
	}

	return m.SoftSetArg(name, "0")
}

// Merge returns a map holding every flag of the receiver plus the flags of
// lower the receiver does not set
func (m *FlagMap) Merge(lower *FlagMap) *FlagMap {
	out := m.clone()
	lower.each(func(name, value string) {
		if _, ok := out.values.Get(name); !ok {
			out.values.Set(name, value)
		}
	})

	return out
}

func (m *FlagMap) clone() *FlagMap {
	out := newFlagMap()
	m.each(func(name, value string) {
		out.values.Set(name, value)
	})

	return out
}

func (m *FlagMap) each(fn func(name, value string)) {
	if m == nil || m.values == nil {
		return
	}
	for pair := m.values.Oldest(); pair != nil; pair = pair.Next() {
		fn(pair.Key.(string), pair.Value.(string))
	}
}
