package edgecontext

import "strings"

// DefaultForeignCode classifies any module under a node_modules directory as
// foreign, except packages the config asks to transpile.
type DefaultForeignCode struct{}

func (DefaultForeignCode) ForeignCode(config *Config, projectPath string) (ModulePredicate, error) {
	transpiled := make(map[string]struct{})
	if config != nil {
		for _, pkg := range config.TranspilePackages {
			transpiled[pkg] = struct{}{}
		}
	}
	return func(modulePath string) bool {
		pkg, ok := nodeModulesPackage(modulePath)
		if !ok {
			return false
		}
		_, skip := transpiled[pkg]
		return !skip
	}, nil
}

// nodeModulesPackage returns the package name under the innermost
// node_modules segment of modulePath, handling "@scope/name" packages.
func nodeModulesPackage(modulePath string) (string, bool) {
	segs := strings.Split(strings.ReplaceAll(modulePath, "\\", "/"), "/")
	for i := len(segs) - 2; i >= 0; i-- {
		if segs[i] != "node_modules" {
			continue
		}
		name := segs[i+1]
		if name == "" {
			return "", false
		}
		if strings.HasPrefix(name, "@") {
			if i+2 >= len(segs) {
				return "", false
			}
			return name + "/" + segs[i+2], true
		}
		return name, true
	}
	return "", false
}
