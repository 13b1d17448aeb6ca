// Package edgecontext assembles the compile-time configuration a bundling
// engine uses to target the edge runtime: constant defines, free-variable
// substitutions, module-resolution policy, and the output chunk layout. The
// builders are pure functions shaped to sit inside the engine's memoizing
// scheduler; the engine itself (graph traversal, transformation, emission)
// stays external.
package edgecontext

import "fmt"

// ExecutionKind identifies the execution environment family a compilation
// targets. This package only produces edge worker environments; the engine
// owns the rest.
type ExecutionKind int

const (
	ExecutionEdgeWorker ExecutionKind = iota
)

func (k ExecutionKind) String() string {
	switch k {
	case ExecutionEdgeWorker:
		return "edge-worker"
	}
	return fmt.Sprintf("ExecutionKind(%d)", int(k))
}

// Environment tags the execution target the compile-time tables were built
// for.
type Environment struct {
	Execution ExecutionKind
	// ServerAddr is the address of the origin server the edge worker fronts.
	// Empty when not yet known (e.g. during a static build).
	ServerAddr string
}

// EdgeWorkerEnvironment returns the environment descriptor for an edge worker
// with an optional server address.
func EdgeWorkerEnvironment(serverAddr string) *Environment {
	return &Environment{Execution: ExecutionEdgeWorker, ServerAddr: serverAddr}
}

// CompileTimeInfo pairs the substitution tables with the environment they
// describe. It is handed to the engine as one opaque artifact.
type CompileTimeInfo struct {
	Environment *Environment
	Defines     *DefineTable
	FreeVars    *FreeVarTable
}

// BuildCompileTimeInfo builds the edge compile-time context for one
// project/mode pair. serverAddr may be empty.
func BuildCompileTimeInfo(mode Mode, projectPath, serverAddr string, env map[string]string) *CompileTimeInfo {
	return &CompileTimeInfo{
		Environment: EdgeWorkerEnvironment(serverAddr),
		Defines:     BuildDefines(mode, env),
		FreeVars:    BuildFreeVars(mode, projectPath, env),
	}
}
