package edgecontext

import "fmt"

// Mode selects the lifecycle a compilation targets: a production build or the
// development server. The set is closed; every switch over Mode enumerates
// all values so that adding one is a compile-visible change.
type Mode int

const (
	ModeDevelopment Mode = iota
	ModeBuild
)

// NodeEnv returns the process.env.NODE_ENV spelling the bundling engine
// expects for this mode.
func (m Mode) NodeEnv() string {
	switch m {
	case ModeDevelopment:
		return "development"
	case ModeBuild:
		return "production"
	}
	panic(fmt.Sprintf("unknown mode %d", int(m)))
}

func (m Mode) String() string {
	switch m {
	case ModeDevelopment:
		return "development"
	case ModeBuild:
		return "build"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}
