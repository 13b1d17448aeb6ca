package edgecontext

import "testing"

func TestNodeModulesPackage(t *testing.T) {
	tests := []struct {
		name string
		path string
		pkg  string
		ok   bool
	}{
		{"plain package", "/app/node_modules/lodash/index.js", "lodash", true},
		{"scoped package", "/app/node_modules/@scope/pkg/lib.js", "@scope/pkg", true},
		{"nested node_modules", "/app/node_modules/a/node_modules/b/x.js", "b", true},
		{"project source", "/app/src/index.ts", "", false},
		{"windows separators", `C:\app\node_modules\lodash\index.js`, "lodash", true},
		{"trailing node_modules", "/app/node_modules", "", false},
		{"scoped without name", "/app/node_modules/@scope", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pkg, ok := nodeModulesPackage(tt.path)
			if pkg != tt.pkg || ok != tt.ok {
				t.Errorf("nodeModulesPackage(%q) = %q, %v, want %q, %v", tt.path, pkg, ok, tt.pkg, tt.ok)
			}
		})
	}
}

func TestDefaultForeignCode_TranspilePackagesExempt(t *testing.T) {
	config := &Config{TranspilePackages: []string{"ui-kit", "@scope/design"}}
	isForeign, err := DefaultForeignCode{}.ForeignCode(config, testProject)
	if err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		path string
		want bool
	}{
		{"/app/node_modules/lodash/index.js", true},
		{"/app/node_modules/ui-kit/button.tsx", false},
		{"/app/node_modules/@scope/design/tokens.ts", false},
		{"/app/node_modules/@scope/other/x.ts", true},
		{"/app/src/page.tsx", false},
	}
	for _, tt := range tests {
		if got := isForeign(tt.path); got != tt.want {
			t.Errorf("isForeign(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestDefaultForeignCode_NilConfig(t *testing.T) {
	isForeign, err := DefaultForeignCode{}.ForeignCode(nil, testProject)
	if err != nil {
		t.Fatal(err)
	}
	if !isForeign("/app/node_modules/react/index.js") {
		t.Error("nil config should still classify node_modules as foreign")
	}
}
