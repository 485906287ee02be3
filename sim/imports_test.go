package sim

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const modulePath = "github.com/Gllitch404/TrabalhoCG"

// windowImports need a display toolchain to build.
var windowImports = []string{
	"github.com/hajimehoshi/ebiten",
	"github.com/yohamta/donburi/ecs",
}

// moduleImports walks the in-module import graph from dir and returns every
// import path reached, keyed by the package that imports it.
func moduleImports(t *testing.T, root, dir string) map[string]string {
	t.Helper()
	seen := map[string]bool{}
	found := map[string]string{}

	var walk func(dir string)
	walk = func(dir string) {
		if seen[dir] {
			return
		}
		seen[dir] = true

		entries, err := os.ReadDir(filepath.Join(root, dir))
		require.NoError(t, err)
		for _, e := range entries {
			name := e.Name()
			if e.IsDir() || !strings.HasSuffix(name, ".go") || strings.HasSuffix(name, "_test.go") {
				continue
			}
			f, err := parser.ParseFile(token.NewFileSet(), filepath.Join(root, dir, name), nil, parser.ImportsOnly)
			require.NoError(t, err)
			for _, imp := range f.Imports {
				path, err := strconv.Unquote(imp.Path.Value)
				require.NoError(t, err)
				found[path] = dir
				if rest, ok := strings.CutPrefix(path, modulePath+"/"); ok {
					walk(filepath.FromSlash(rest))
				}
			}
		}
	}
	walk(dir)
	return found
}

func TestHeadlessPackagesAvoidWindowing(t *testing.T) {
	root := filepath.Join("..")
	for _, dir := range []string{"sim", filepath.Join("cmd", "trajview-tui")} {
		t.Run(dir, func(t *testing.T) {
			for path, importer := range moduleImports(t, root, dir) {
				for _, banned := range windowImports {
					assert.False(t, strings.HasPrefix(path, banned), "%s imports %s", importer, path)
				}
			}
		})
	}
}
