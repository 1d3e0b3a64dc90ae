package gen

import (
	"fmt"
	"io"
	"strings"
	"sync"
	"text/template"
)

// DefaultTemplate flattens a Context into a .d.ts body: enums first, then
// nominal declarations in registration order.
const DefaultTemplate = `{{range .Enums}}export enum {{.Name}} {
{{range .Values}}	{{.Name}} = {{.Value}},
{{end}}}

{{end}}{{range .Types}}{{.Header}} {
{{range .Members}}	{{range .Decorators}}{{.}} {{end}}{{.Name}}{{if .Nullable}}?{{end}}: {{.Type}};
{{end}}{{range .Methods}}	{{.Signature}}({{paramList .Params}}): any;
{{end}}{{if .Constructor}}	{{.Constructor}}
{{end}}}

{{end}}`

var (
	defaultTmpl     *template.Template
	defaultTmplOnce sync.Once
)

// renderFuncs are available to the default and caller-supplied templates.
var renderFuncs = template.FuncMap{
	"paramList": paramList,
}

// paramList flattens method parameters into a comma-separated clause.
func paramList(params []MemberDeclaration) string {
	parts := make([]string, len(params))
	for i, p := range params {
		name := p.Name
		if p.Nullable {
			name += "?"
		}
		parts[i] = name + ": " + p.Type
	}
	return strings.Join(parts, ", ")
}

// Render executes tmplText over the populated context and writes the result
// to w. An empty tmplText selects the default template, which is parsed once
// and shared read-only across calls.
func Render(w io.Writer, ctx *Context, tmplText string) error {
	var (
		tmpl *template.Template
		err  error
	)
	if tmplText == "" {
		defaultTmplOnce.Do(func() {
			defaultTmpl = template.Must(template.New("declarations").Funcs(renderFuncs).Parse(DefaultTemplate))
		})
		tmpl = defaultTmpl
	} else {
		tmpl, err = template.New("declarations").Funcs(renderFuncs).Parse(tmplText)
		if err != nil {
			return fmt.Errorf("parse template: %w", err)
		}
	}

	data := struct {
		Types []*TypeDeclaration
		Enums []*EnumDeclaration
	}{
		Types: ctx.Types(),
		Enums: ctx.Enums(),
	}
	if err := tmpl.Execute(w, data); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}
	return nil
}
