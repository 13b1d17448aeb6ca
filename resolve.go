package edgecontext

import (
	"fmt"
	"path/filepath"
)

// ImportMap maps import specifiers to their edge-target replacements.
type ImportMap map[string]string

// ExecutionContext carries the paths and environment the engine needs to run
// project-local tooling while building import maps. Opaque to this package
// beyond being forwarded.
type ExecutionContext struct {
	ProjectPath string
	ChunkRoot   string
	Env         map[string]string
}

// Config is the caller's bundler configuration. Only the fields the policy
// builders read are modeled here.
type Config struct {
	// TranspilePackages lists npm packages compiled with the project's own
	// resolution semantics even though they live under node_modules.
	TranspilePackages []string
}

// ImportMapBuilder produces the edge import map for a project. Implemented by
// the engine.
type ImportMapBuilder interface {
	BuildImportMap(projectPath string, ty ServerContextType, mode Mode, config *Config, execution *ExecutionContext) (ImportMap, error)
}

// ModulePredicate reports whether a module path matches a rule condition.
type ModulePredicate func(modulePath string) bool

// ForeignCodeClassifier decides which module paths count as foreign
// (vendored/third-party) code for a project. DefaultForeignCode is the stock
// implementation; engines may inject their own.
type ForeignCodeClassifier interface {
	ForeignCode(config *Config, projectPath string) (ModulePredicate, error)
}

// ResolvePlugin is a named resolution hook the engine runs while resolving
// modules. This package selects and orders plugins; their behavior lives
// engine-side.
type ResolvePlugin interface {
	Name() string
	ProjectPath() string
}

type resolvePlugin struct {
	name        string
	projectPath string
}

func (p resolvePlugin) Name() string        { return p.name }
func (p resolvePlugin) ProjectPath() string { return p.projectPath }

// NewModuleFeatureReportPlugin reports usage of module-level features back to
// the engine's telemetry.
func NewModuleFeatureReportPlugin(projectPath string) ResolvePlugin {
	return resolvePlugin{name: "module-feature-report", projectPath: projectPath}
}

// NewUnsupportedModulesPlugin rejects imports of modules that cannot exist in
// the edge runtime.
func NewUnsupportedModulesPlugin(projectPath string) ResolvePlugin {
	return resolvePlugin{name: "unsupported-modules", projectPath: projectPath}
}

// NewSharedRuntimePlugin redirects shared-runtime internals to their
// edge-specific builds.
func NewSharedRuntimePlugin(projectPath string) ResolvePlugin {
	return resolvePlugin{name: "shared-runtime", projectPath: projectPath}
}

// ResolveRule overrides resolution options for module paths matched by its
// condition.
type ResolveRule struct {
	Condition ModulePredicate
	Options   *ResolveOptions
}

// ResolveOptions is the module-resolution policy handed to the engine.
type ResolveOptions struct {
	// NodeModulesRoot is the highest directory node_modules resolution may
	// climb to.
	NodeModulesRoot string
	// Conditions are package-export conditions, in match order.
	Conditions []string
	ImportMap  ImportMap
	Module     bool
	Browser    bool
	// EnableTypeScript and EnableReact turn on project-specific resolution
	// refinements. They are deliberately unset on the foreign-code override
	// layer.
	EnableTypeScript bool
	EnableReact      bool
	Plugins          []ResolvePlugin
	Rules            []ResolveRule
}

// BuildResolveOptions builds the edge module-resolution policy: the condition
// list for the mode and context type, the import map, the fixed plugin chain,
// and a single override rule that strips TypeScript/React refinements inside
// foreign code while keeping everything else identical. Collaborator failures
// are propagated; the merge logic itself cannot fail.
func BuildResolveOptions(projectPath string, ty ServerContextType, mode Mode, config *Config, execution *ExecutionContext, imports ImportMapBuilder, foreign ForeignCodeClassifier) (*ResolveOptions, error) {
	importMap, err := imports.BuildImportMap(projectPath, ty, mode, config, execution)
	if err != nil {
		return nil, fmt.Errorf("building edge import map: %w", err)
	}

	conditions := []string{mode.NodeEnv(), "edge-light", "worker"}
	switch ty {
	case ContextAppRSC:
		conditions = append(conditions, "react-server")
	case ContextPages, ContextPagesData, ContextAppSSR, ContextAppRoute, ContextMiddleware:
	default:
		return nil, fmt.Errorf("unknown server context type %d", int(ty))
	}

	root, err := filesystemRoot(projectPath)
	if err != nil {
		return nil, fmt.Errorf("resolving filesystem root of %s: %w", projectPath, err)
	}

	base := &ResolveOptions{
		NodeModulesRoot: root,
		Conditions:      conditions,
		ImportMap:       importMap,
		Module:          true,
		Browser:         true,
		Plugins: []ResolvePlugin{
			NewModuleFeatureReportPlugin(projectPath),
			NewUnsupportedModulesPlugin(projectPath),
			NewSharedRuntimePlugin(projectPath),
		},
	}

	isForeign, err := foreign.ForeignCode(config, projectPath)
	if err != nil {
		return nil, fmt.Errorf("classifying foreign code: %w", err)
	}

	outer := *base
	outer.EnableTypeScript = true
	outer.EnableReact = true
	outer.Rules = []ResolveRule{{Condition: isForeign, Options: base}}
	return &outer, nil
}

// filesystemRoot returns the root directory of the volume containing path.
func filesystemRoot(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", err
	}
	return filepath.VolumeName(abs) + string(filepath.Separator), nil
}
