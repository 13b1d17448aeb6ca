package edgecontext

import "fmt"

// ServerContextType identifies which server-side entry kind a compilation
// serves. Only ContextAppRSC changes edge resolution policy (it adds the
// "react-server" condition); the other variants are listed so dispatch sites
// stay exhaustive as the set grows.
type ServerContextType int

const (
	ContextPages ServerContextType = iota
	ContextPagesData
	ContextAppRSC
	ContextAppSSR
	ContextAppRoute
	ContextMiddleware
)

func (t ServerContextType) String() string {
	switch t {
	case ContextPages:
		return "pages"
	case ContextPagesData:
		return "pages-data"
	case ContextAppRSC:
		return "app-rsc"
	case ContextAppSSR:
		return "app-ssr"
	case ContextAppRoute:
		return "app-route"
	case ContextMiddleware:
		return "middleware"
	}
	return fmt.Sprintf("ServerContextType(%d)", int(t))
}
