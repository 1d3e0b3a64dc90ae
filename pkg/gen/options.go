package gen

import (
	"strings"

	"github.com/jinzhu/inflection"

	"github.com/tsbridge/tsbridge/pkg/meta"
)

// Options control declaration generation.
//
// SkipTypePatterns       – display-name patterns (path.Match syntax) excluded
// from generation; references to matching types become "any".
// UseDateForDateTime     – map date/time primitives to "Date" instead of "string".
// UseInterfaceForClasses – predicate: emit this class as an interface.
// DefaultBaseType        – fallback base-type expression when the real base is
// excluded; empty result omits the clause.
// CtorGenerator          – optional constructor metadata for class emission.
// ShouldGenerateMember   – include/exclude predicate over a member and its
// draft declaration; ShouldGenerateMethod is the method counterpart.
// MemberRenamer          – member target-name policy (defaults to identity).
// UseDecorators          – ordered decorator strings for a member.
// TypeRenamer            – raw type-name rename, applied before collision
// resolution.
type Options struct {
	SkipTypePatterns   []string `json:"skip_type_patterns,omitempty" yaml:"skip_type_patterns,omitempty" mapstructure:"skip_type_patterns,omitempty"`
	UseDateForDateTime bool     `json:"use_date_for_date_time,omitempty" yaml:"use_date_for_date_time,omitempty" mapstructure:"use_date_for_date_time,omitempty"`

	UseInterfaceForClasses func(meta.Type) bool                            `json:"-" yaml:"-" mapstructure:"-"`
	DefaultBaseType        func(meta.Type) string                          `json:"-" yaml:"-" mapstructure:"-"`
	CtorGenerator          func(meta.Type) string                          `json:"-" yaml:"-" mapstructure:"-"`
	ShouldGenerateMember   func(meta.Field, *MemberDeclaration) bool       `json:"-" yaml:"-" mapstructure:"-"`
	ShouldGenerateMethod   func(meta.Method, *MethodDeclaration) bool      `json:"-" yaml:"-" mapstructure:"-"`
	MemberRenamer          func(meta.Field) string                         `json:"-" yaml:"-" mapstructure:"-"`
	UseDecorators          func(meta.Field) []string                       `json:"-" yaml:"-" mapstructure:"-"`
	TypeRenamer            func(string) string                             `json:"-" yaml:"-" mapstructure:"-"`
}

// NewOptions returns Options with every policy at its default.
func NewOptions() *Options {
	o := &Options{}
	o.Normalize()
	return o
}

// Normalize fills absent policies with their documented defaults.
func (o *Options) Normalize() {
	if o.MemberRenamer == nil {
		o.MemberRenamer = func(f meta.Field) string { return f.Name }
	}
	if o.ShouldGenerateMember == nil {
		o.ShouldGenerateMember = defaultMemberFilter
	}
	if o.ShouldGenerateMethod == nil {
		o.ShouldGenerateMethod = func(meta.Method, *MethodDeclaration) bool { return true }
	}
}

// defaultMemberFilter omits members whose source annotation carries a dash
// under the "ts" key, e.g. `ts:"-"`.
func defaultMemberFilter(f meta.Field, _ *MemberDeclaration) bool {
	if f.Tag == "" {
		return true
	}
	for _, part := range strings.Fields(f.Tag) {
		if part == `ts:"-"` {
			return false
		}
	}
	return true
}

// functional option pattern ---------------------------------------------------

type Option func(*Options)

func WithSkipTypes(patterns ...string) Option {
	return func(o *Options) { o.SkipTypePatterns = append(o.SkipTypePatterns, patterns...) }
}

func WithDateAsDate() Option {
	return func(o *Options) { o.UseDateForDateTime = true }
}

func WithInterfaceForClasses(pred func(meta.Type) bool) Option {
	return func(o *Options) { o.UseInterfaceForClasses = pred }
}

func WithDefaultBaseType(fn func(meta.Type) string) Option {
	return func(o *Options) { o.DefaultBaseType = fn }
}

func WithCtorGenerator(fn func(meta.Type) string) Option {
	return func(o *Options) { o.CtorGenerator = fn }
}

func WithMemberFilter(fn func(meta.Field, *MemberDeclaration) bool) Option {
	return func(o *Options) { o.ShouldGenerateMember = fn }
}

func WithMethodFilter(fn func(meta.Method, *MethodDeclaration) bool) Option {
	return func(o *Options) { o.ShouldGenerateMethod = fn }
}

func WithMemberRenamer(fn func(meta.Field) string) Option {
	return func(o *Options) { o.MemberRenamer = fn }
}

func WithDecorators(fn func(meta.Field) []string) Option {
	return func(o *Options) { o.UseDecorators = fn }
}

func WithTypeRenamer(fn func(string) string) Option {
	return func(o *Options) { o.TypeRenamer = fn }
}

// WithSingularizedNames renames types to their singular form, for models whose
// collection aliases carry plural names.
func WithSingularizedNames() Option {
	return func(o *Options) { o.TypeRenamer = inflection.Singular }
}
