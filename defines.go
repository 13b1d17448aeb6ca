package edgecontext

import (
	"encoding/json"
	"sort"
	"strings"
)

// DefineKind tags a DefineValue.
type DefineKind int

const (
	DefineBool DefineKind = iota
	DefineString
	DefineJSON
)

// DefineValue is a compile-time constant the engine substitutes for a
// reference, enabling dead-code elimination. Built-ins carry typed values;
// caller-supplied values are raw JSON expression text.
type DefineValue struct {
	Kind DefineKind
	Bool bool   // DefineBool
	Text string // DefineString: the string; DefineJSON: the literal expression
}

// BoolDefine returns a boolean-typed define value.
func BoolDefine(v bool) DefineValue {
	return DefineValue{Kind: DefineBool, Bool: v}
}

// StringDefine returns a string-typed define value.
func StringDefine(s string) DefineValue {
	return DefineValue{Kind: DefineString, Text: s}
}

// JSONDefine returns a define value whose literal text is substituted as a
// JSON expression, unquoted.
func JSONDefine(raw string) DefineValue {
	return DefineValue{Kind: DefineJSON, Text: raw}
}

// JSON returns the JavaScript expression text the engine splices in for this
// value.
func (v DefineValue) JSON() string {
	switch v.Kind {
	case DefineBool:
		if v.Bool {
			return "true"
		}
		return "false"
	case DefineString:
		b, _ := json.Marshal(v.Text)
		return string(b)
	case DefineJSON:
		return v.Text
	}
	return "undefined"
}

// Segments decomposes a define key into its ordered path segments. Two keys
// are the same define iff their segment sequences are equal; empty segments
// are kept as literal path components.
func Segments(key string) []string {
	return strings.Split(key, ".")
}

// DefineTable maps dot-separated constant paths to their values. Insertion
// order is preserved and the first insertion of a key wins, which is what
// makes built-ins authoritative over caller-supplied entries.
type DefineTable struct {
	keys   []string
	values map[string]DefineValue
}

func newDefineTable() *DefineTable {
	return &DefineTable{values: make(map[string]DefineValue)}
}

// add inserts the value under key unless the key is already present. It
// reports whether the insertion happened.
func (t *DefineTable) add(key string, v DefineValue) bool {
	if _, ok := t.values[key]; ok {
		return false
	}
	t.keys = append(t.keys, key)
	t.values[key] = v
	return true
}

// Get returns the value for key and whether it is present.
func (t *DefineTable) Get(key string) (DefineValue, bool) {
	v, ok := t.values[key]
	return v, ok
}

// Has reports whether key is present.
func (t *DefineTable) Has(key string) bool {
	_, ok := t.values[key]
	return ok
}

// Keys returns the keys in insertion order.
func (t *DefineTable) Keys() []string {
	return append([]string(nil), t.keys...)
}

// Len returns the number of entries.
func (t *DefineTable) Len() int {
	return len(t.keys)
}

// BuildDefines merges the built-in edge constants with caller-supplied
// environment variables into a define table. Built-ins are seeded first and
// always win; env entries are inserted in sorted key order so the result is
// independent of map iteration order. Pure: identical inputs yield
// structurally equal tables.
func BuildDefines(mode Mode, env map[string]string) *DefineTable {
	t := newDefineTable()
	t.add("process.turbopack", BoolDefine(true))
	t.add("process.env.NEXT_RUNTIME", StringDefine("edge"))
	t.add("process.env.NODE_ENV", StringDefine(mode.NodeEnv()))
	t.add("process.env.TURBOPACK", BoolDefine(true))

	keys := make([]string, 0, len(env))
	for k := range env {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		t.add(k, JSONDefine(env[k]))
	}
	return t
}
