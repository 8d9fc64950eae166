package gen

const headerTemplate = `{{define "header"}}{{.Header}}

package {{.Package}}
{{end}}`

const enumsTemplate = headerTemplate + `{{template "header" .}}
{{range .Groups}}
// {{.GoName}} {{if .Flags}}is a set of flags from{{else}}enumerates{{end}} the {{.Name}} group.
type {{.GoName}} {{.Base}}
{{$g := .}}
const (
{{- range .Members}}
	{{.Const}} {{$g.GoName}} = {{.Value}}
{{- end}}
)
{{end}}
{{- if .Ungrouped}}
// Tokens outside every group.
const (
{{- range .Ungrouped}}
	{{.Const}} = {{.Value}}
{{- end}}
)
{{end}}`

const stringsTemplate = headerTemplate + `{{template "header" .}}
{{- if .Groups}}
import "github.com/gopherjs/glenum/support"
{{end}}
{{- range .Groups}}{{$g := .}}
{{- if .Flags}}
var {{.FlagsVar}} = []support.Flag{
{{- range .Members}}
	{{"{"}}Value: {{.Value}}, Name: "{{.Token}}"{{"}"}},
{{- end}}
}

func (v {{.GoName}}) String() string {
	return support.FormatFlags(uint64(v), {{.FlagsVar}})
}

// Has reports whether every flag of f is set in v.
func (v {{.GoName}}) Has(f {{.GoName}}) bool {
	return support.HasFlags(v, f)
}
{{else}}
func (v {{.GoName}}) String() string {
	switch v {
{{- range .Cases}}
	case {{.Const}}:
		return "{{.Token}}"
{{- end}}
	}
	return support.FormatUnknown("{{$g.GoName}}", uint64(v))
}
{{end}}{{end}}`

const tokensTemplate = headerTemplate + `{{template "header" .}}
import (
	"sort"

	"github.com/gopherjs/glenum/support"
)

type token struct {
	name  string
	value uint64
	reqs  []support.Requirement
}

// tokens is sorted by name.
var tokens = []token{
{{- range .Tokens}}
	{{"{"}}"{{.Token}}", {{.Value}}, {{.Requirements}}{{"}"}},
{{- end}}
}

// Lookup returns the value of a token such as "GL_ALWAYS".
func Lookup(name string) (uint64, bool) {
	if t := find(name); t != nil {
		return t.value, true
	}
	return 0, false
}

// Requirements returns the core versions and extensions that define a token.
func Requirements(name string) []support.Requirement {
	if t := find(name); t != nil {
		return t.reqs
	}
	return nil
}

// Available reports whether ctx provides the token.
func Available(ctx support.Context, name string) bool {
	return ctx.Satisfies(Requirements(name))
}

// Tokens returns the names of every token in the package.
func Tokens() []string {
	names := make([]string, len(tokens))
	for i, t := range tokens {
		names[i] = t.name
	}
	return names
}

func find(name string) *token {
	i := sort.Search(len(tokens), func(i int) bool { return tokens[i].name >= name })
	if i < len(tokens) && tokens[i].name == name {
		return &tokens[i]
	}
	return nil
}
`
