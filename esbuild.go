package edgecontext

import (
	esbuild "github.com/evanw/esbuild/pkg/api"
)

// EngineOptions lowers the three edge artifacts onto esbuild build options
// for engines that drive esbuild directly. The mapping covers what esbuild
// can express declaratively: defines, export conditions, import-map aliases,
// polyfill injection, and the output layout. FreeVarError entries have no
// esbuild equivalent (plugins cannot hook identifier references); engines
// surface those via Defines/FreeVars on their own.
func EngineOptions(info *CompileTimeInfo, resolve *ResolveOptions, layout ChunkLayout) esbuild.BuildOptions {
	opts := esbuild.BuildOptions{
		AbsWorkingDir: layout.ProjectPath,
		Outdir:        layout.ChunkRoot,
		Bundle:        true,
		Write:         false,
		Format:        esbuild.FormatESModule,
		Platform:      esbuild.PlatformNeutral,
		Target:        esbuild.ES2022,
		Conditions:    append([]string(nil), resolve.Conditions...),
		MainFields:    mainFields(resolve),
		NodePaths:     []string{resolve.NodeModulesRoot},
	}

	if layout.ReferenceSourceMaps {
		opts.Sourcemap = esbuild.SourceMapLinked
	}

	opts.Define = make(map[string]string, info.Defines.Len())
	for _, key := range info.Defines.Keys() {
		v, _ := info.Defines.Get(key)
		opts.Define[key] = v.JSON()
	}

	if len(resolve.ImportMap) > 0 {
		opts.Alias = make(map[string]string, len(resolve.ImportMap))
		for from, to := range resolve.ImportMap {
			opts.Alias[from] = to
		}
	}

	// Module-substitution free vars map onto esbuild's inject mechanism: the
	// injected module's exports replace same-named globals.
	for _, name := range info.FreeVars.Names() {
		if e, _ := info.FreeVars.Get(name); e.Kind == FreeVarModule {
			opts.Inject = append(opts.Inject, e.Request)
		}
	}

	return opts
}

// mainFields orders package entry-point fields to match the module/browser
// flags of the resolution policy.
func mainFields(resolve *ResolveOptions) []string {
	var fields []string
	if resolve.Browser {
		fields = append(fields, "browser")
	}
	if resolve.Module {
		fields = append(fields, "module")
	}
	return append(fields, "main")
}
