// Package gopkg implements the metadata provider over Go packages: it loads a
// source tree with go/packages and exposes its named types as meta.Type
// descriptors for declaration generation.
package gopkg

import (
	"fmt"
	"go/token"
	"go/types"
	"os"
	"path/filepath"

	"golang.org/x/mod/modfile"
	"golang.org/x/tools/go/packages"

	"github.com/tsbridge/tsbridge/pkg/meta"
)

// Load parses the Go packages rooted at dir and returns a Provider over them.
func Load(dir string) (*Provider, error) {
	abs, err := filepath.Abs(dir)
	if err != nil {
		return nil, err
	}

	cfg := &packages.Config{
		Mode: packages.NeedName | packages.NeedFiles | packages.NeedImports |
			packages.NeedDeps | packages.NeedTypes | packages.NeedSyntax | packages.NeedTypesInfo,
		Dir:  abs,
		Fset: token.NewFileSet(),
	}
	pkgs, err := packages.Load(cfg, "./...")
	if err != nil {
		return nil, fmt.Errorf("load packages in %s: %w", abs, err)
	}
	for _, pkg := range pkgs {
		for _, e := range pkg.Errors {
			return nil, fmt.Errorf("load package %s: %s", pkg.PkgPath, e.Msg)
		}
	}

	// The module path scopes root and enum discovery to the loaded tree.
	module, err := modulePath(abs)
	if err != nil {
		module = ""
	}

	p := &Provider{
		pkgs:   pkgs,
		module: module,
		cache:  make(map[string]meta.Type),
		enums:  make(map[*types.TypeName][]meta.EnumValue),
	}
	p.indexEnums()
	return p, nil
}

// modulePath walks up from dir until it finds go.mod and returns its module path.
func modulePath(dir string) (string, error) {
	from := dir
	for {
		data, err := os.ReadFile(filepath.Join(from, "go.mod"))
		if err == nil {
			mf, err := modfile.Parse("go.mod", data, nil)
			if err != nil {
				return "", fmt.Errorf("parse go.mod: %w", err)
			}
			return mf.Module.Mod.Path, nil
		}
		parent := filepath.Dir(from)
		if parent == from {
			return "", fmt.Errorf("no go.mod found above %s", dir)
		}
		from = parent
	}
}
