package edgecontext

// FreeVarKind tags a FreeVarEntry.
type FreeVarKind int

const (
	// FreeVarDefine substitutes a compile-time constant, further narrowed by
	// the engine's property-access resolution.
	FreeVarDefine FreeVarKind = iota
	// FreeVarModule substitutes an export of a polyfill module.
	FreeVarModule
	// FreeVarError turns any reference into a compile-time diagnostic.
	FreeVarError
)

// FreeVarEntry describes how the engine rewrites references to one bare
// global identifier.
type FreeVarEntry struct {
	Kind FreeVarKind

	// FreeVarDefine
	Value DefineValue

	// FreeVarModule
	Request    string // module specifier of the polyfill
	LookupPath string // resolution root for Request; empty means engine default
	Export     string // export to substitute; "default" for the default export

	// FreeVarError
	Message string
}

// FreeVarTable maps bare global identifiers to their substitution rules.
// Later insertions overwrite earlier ones under the same identifier; the
// fixed builder steps rely on that to take precedence over defines-derived
// entries.
type FreeVarTable struct {
	names   []string
	entries map[string]FreeVarEntry
}

func newFreeVarTable() *FreeVarTable {
	return &FreeVarTable{entries: make(map[string]FreeVarEntry)}
}

// set inserts or overwrites the entry for name, keeping the position of the
// first insertion.
func (t *FreeVarTable) set(name string, e FreeVarEntry) {
	if _, ok := t.entries[name]; !ok {
		t.names = append(t.names, name)
	}
	t.entries[name] = e
}

// Get returns the entry for name and whether it is present.
func (t *FreeVarTable) Get(name string) (FreeVarEntry, bool) {
	e, ok := t.entries[name]
	return e, ok
}

// Names returns the identifiers in first-insertion order.
func (t *FreeVarTable) Names() []string {
	return append([]string(nil), t.names...)
}

// Len returns the number of entries.
func (t *FreeVarTable) Len() int {
	return len(t.names)
}

// edgeUnsupportedMessage is attached to every unsupported-API diagnostic.
const edgeUnsupportedMessage = "A Node.js API is used which is not supported in the Edge Runtime. Learn more: https://nextjs.org/docs/api-reference/edge-runtime"

// unsupportedRuntimeAPIs lists globals absent from the edge runtime. In build
// mode each becomes a FreeVarError entry so stray references fail the
// compile; in development they are left alone to keep iteration quiet.
var unsupportedRuntimeAPIs = []string{
	"clearImmediate",
	"setImmediate",
	"BroadcastChannel",
	"ByteLengthQueuingStrategy",
	"CompressionStream",
	"CountQueuingStrategy",
	"DecompressionStream",
	"DomException",
	"MessageChannel",
	"MessageEvent",
	"MessagePort",
	"ReadableByteStreamController",
	"ReadableStreamBYOBRequest",
	"ReadableStreamDefaultController",
	"TransformStreamDefaultController",
	"WritableStreamDefaultController",
}

// Polyfill module specifiers for globals the edge runtime lacks.
const (
	bufferPolyfillRequest  = "next/dist/compiled/buffer"
	processPolyfillRequest = "next/dist/build/polyfills/process"
)

// BuildFreeVars builds the global-identifier substitution table for the edge
// target. Defines are imported first, keyed by the first segment of their
// path (the engine narrows property chains itself); the fixed Buffer/process
// polyfill entries follow and win any collision; build mode then adds one
// error entry per unsupported runtime API. Pure.
func BuildFreeVars(mode Mode, projectPath string, env map[string]string) *FreeVarTable {
	t := newFreeVarTable()

	defines := BuildDefines(mode, env)
	for _, key := range defines.Keys() {
		v, _ := defines.Get(key)
		t.set(Segments(key)[0], FreeVarEntry{Kind: FreeVarDefine, Value: v})
	}

	t.set("Buffer", FreeVarEntry{
		Kind:       FreeVarModule,
		Request:    bufferPolyfillRequest,
		LookupPath: projectPath,
		Export:     "Buffer",
	})
	t.set("process", FreeVarEntry{
		Kind:       FreeVarModule,
		Request:    processPolyfillRequest,
		LookupPath: projectPath,
		Export:     "default",
	})

	switch mode {
	case ModeBuild:
		for _, name := range unsupportedRuntimeAPIs {
			t.set(name, FreeVarEntry{Kind: FreeVarError, Message: edgeUnsupportedMessage})
		}
	case ModeDevelopment:
		// Diagnostics are suppressed during development.
	}

	return t
}
