package edgecontext

import "path/filepath"

// DebugFlags is the read-only set of debug switches configured once at
// process start. Builders receive it explicitly so they stay pure and
// testable in isolation.
type DebugFlags map[string]bool

// IsEnabled reports whether the named debug flag is set.
func (f DebugFlags) IsEnabled(name string) bool {
	return f[name]
}

// ClientAssetsPathFunc maps the client output root to the directory client
// assets are emitted into. Implemented by the engine's client pipeline.
type ClientAssetsPathFunc func(clientRoot string) string

// ChunkLayout describes where the engine emits edge-targeted chunks.
type ChunkLayout struct {
	ProjectPath string
	// OutputRoot holds server-side edge output.
	OutputRoot string
	// ChunkRoot holds the emitted chunk files.
	ChunkRoot        string
	ClientAssetsPath string
	Environment      *Environment
	// ReferenceSourceMaps controls whether emitted chunks carry source-map
	// references.
	ReferenceSourceMaps bool
}

// BuildChunkLayout derives the output-directory scheme for edge chunks.
// Source-map references are gated on the "edge" debug flag.
func BuildChunkLayout(projectPath, nodeRoot, clientRoot string, environment *Environment, clientAssets ClientAssetsPathFunc, debug DebugFlags) ChunkLayout {
	return ChunkLayout{
		ProjectPath:         projectPath,
		OutputRoot:          filepath.Join(nodeRoot, "server", "edge"),
		ChunkRoot:           filepath.Join(nodeRoot, "server", "edge", "chunks"),
		ClientAssetsPath:    clientAssets(clientRoot),
		Environment:         environment,
		ReferenceSourceMaps: debug.IsEnabled("edge"),
	}
}
