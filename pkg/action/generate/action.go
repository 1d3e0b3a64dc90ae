// Package generate wires the Go metadata provider, the declaration
// generator, and the renderer into the end-to-end generation action.
package generate

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/tsbridge/tsbridge/internal/gopkg"
	"github.com/tsbridge/tsbridge/pkg/gen"
	"github.com/tsbridge/tsbridge/pkg/meta"
)

// Params control one generation run.
//
// InDir        – Go source tree to load
// OutDir       – output directory
// OutFile      – output filename
// Types        – root type names; empty means every exported model type
// Skip         – display-name patterns excluded from generation
// TemplateFile – optional template overriding the default .d.ts layout
// UseDate      – map date/time primitives to Date instead of string
// Classes      – emit classes instead of interfaces
// Singularize  – singularize type names before emission
type Params struct {
	InDir        string   `json:"in_dir,omitempty" yaml:"in_dir,omitempty" mapstructure:"in_dir,omitempty"`
	OutDir       string   `json:"out_dir,omitempty" yaml:"out_dir,omitempty" mapstructure:"out_dir,omitempty"`
	OutFile      string   `json:"out_file,omitempty" yaml:"out_file,omitempty" mapstructure:"out_file,omitempty"`
	Types        []string `json:"types,omitempty" yaml:"types,omitempty" mapstructure:"types,omitempty"`
	Skip         []string `json:"skip,omitempty" yaml:"skip,omitempty" mapstructure:"skip,omitempty"`
	TemplateFile string   `json:"template,omitempty" yaml:"template,omitempty" mapstructure:"template,omitempty"`
	UseDate      bool     `json:"use_date,omitempty" yaml:"use_date,omitempty" mapstructure:"use_date,omitempty"`
	Classes      bool     `json:"classes,omitempty" yaml:"classes,omitempty" mapstructure:"classes,omitempty"`
	Singularize  bool     `json:"singularize,omitempty" yaml:"singularize,omitempty" mapstructure:"singularize,omitempty"`
}

// Normalize fills absent params with defaults.
func (p *Params) Normalize() {
	if p.InDir == "" {
		p.InDir = "."
	}
	if p.OutDir == "" {
		p.OutDir = "models"
	}
	if p.OutFile == "" {
		p.OutFile = "models.d.ts"
	}
}

// Options converts Params to generator options.
func (p *Params) Options() []gen.Option {
	opts := []gen.Option{gen.WithSkipTypes(p.Skip...)}
	if p.UseDate {
		opts = append(opts, gen.WithDateAsDate())
	}
	if !p.Classes {
		opts = append(opts, gen.WithInterfaceForClasses(func(meta.Type) bool { return true }))
	}
	if p.Singularize {
		opts = append(opts, gen.WithSingularizedNames())
	}
	return opts
}

// Run loads the source tree, walks the roots, renders the declarations, and
// writes the output file. It returns the written path.
func Run(p *Params) (string, error) {
	p.Normalize()

	prov, err := gopkg.Load(p.InDir)
	if err != nil {
		return "", err
	}

	roots := prov.Roots(p.Types)
	if len(roots) == 0 {
		return "", fmt.Errorf("no root types found in %s", p.InDir)
	}

	ctx := gen.New(p.Options()...).Generate(roots...)
	slog.Info("declarations generated",
		"module", prov.Module(),
		"roots", len(roots),
		"types", len(ctx.Types()),
		"enums", len(ctx.Enums()),
	)

	tmplText := ""
	if p.TemplateFile != "" {
		data, err := os.ReadFile(p.TemplateFile)
		if err != nil {
			return "", fmt.Errorf("read template: %w", err)
		}
		tmplText = string(data)
	}

	if err := os.MkdirAll(p.OutDir, 0o755); err != nil {
		return "", fmt.Errorf("create output directory: %w", err)
	}
	outPath := filepath.Clean(filepath.Join(p.OutDir, p.OutFile))
	f, err := os.OpenFile(outPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return "", fmt.Errorf("open output file: %w", err)
	}
	defer f.Close()

	if err := gen.Render(f, ctx, tmplText); err != nil {
		return "", err
	}
	return outPath, nil
}
