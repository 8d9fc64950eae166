// Package gen emits the Go source of an enum catalog.
package gen

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"
	"text/template"

	"golang.org/x/tools/imports"

	"github.com/gopherjs/glenum/catalog"
)

// Generated file names.
const (
	EnumsFile   = "enums.go"
	StringsFile = "strings.go"
	TokensFile  = "tokens.go"
)

// Options control the emitted package.
type Options struct {
	// Package is the name of the generated package. Defaults to "gl".
	Package string
	// Source names the registry file in the generated header.
	Source string
}

type packageFile struct {
	Name     string
	Template *template.Template
}

var packageFiles = []packageFile{
	{Name: EnumsFile, Template: buildTemplate(EnumsFile, enumsTemplate)},
	{Name: StringsFile, Template: buildTemplate(StringsFile, stringsTemplate)},
	{Name: TokensFile, Template: buildTemplate(TokensFile, tokensTemplate)},
}

// Generate renders every file of the package for cat. The result maps file
// names to gofmt'ed source and is identical across runs for the same catalog.
func Generate(cat *catalog.Catalog, opts Options) (map[string][]byte, error) {
	if opts.Package == "" {
		opts.Package = "gl"
	}
	if opts.Source == "" {
		opts.Source = "gl.xml"
	}
	data := newPackageData(cat, opts)

	files := make(map[string][]byte, len(packageFiles))
	for _, pf := range packageFiles {
		var buf bytes.Buffer
		if err := pf.Template.Execute(&buf, data); err != nil {
			return nil, fmt.Errorf("cannot execute template %s: %w", pf.Name, err)
		}
		src, err := imports.Process(pf.Name, buf.Bytes(), &imports.Options{Comments: true, TabIndent: true, TabWidth: 8, FormatOnly: true})
		if err != nil {
			return nil, fmt.Errorf("cannot format generated %s: %w\n%s", pf.Name, err, buf.Bytes())
		}
		files[pf.Name] = src
	}
	return files, nil
}

type packageData struct {
	Package   string
	Header    string
	Groups    []groupData
	Ungrouped []constData
	Tokens    []tokenData
}

type groupData struct {
	Name     string
	GoName   string
	Base     string
	Flags    bool
	FlagsVar string
	Members  []constData
	// Cases holds the first member of every distinct value.
	Cases []constData
}

type constData struct {
	Const string
	Token string
	Value string
}

type tokenData struct {
	Token        string
	Value        string
	Requirements string
}

func newPackageData(cat *catalog.Catalog, opts Options) *packageData {
	apis := strings.Join(cat.APIs, ",")
	if cat.Profile != "" {
		apis += " " + cat.Profile
	}
	d := &packageData{
		Package: opts.Package,
		Header:  fmt.Sprintf("// Code generated by glenum from %s (registry %s, api %s). DO NOT EDIT.", opts.Source, cat.Source, apis),
	}
	for _, g := range cat.Groups {
		gd := groupData{
			Name:     g.Name,
			GoName:   g.GoName,
			Base:     "uint32",
			Flags:    g.Flags,
			FlagsVar: lowerFirst(g.GoName) + "Flags",
		}
		if g.Wide {
			gd.Base = "uint64"
		}
		seen := map[uint64]bool{}
		for _, m := range g.Members {
			c := constData{Const: g.ConstName(m), Token: m.Token, Value: hex(m.Value)}
			gd.Members = append(gd.Members, c)
			if !seen[m.Value] {
				seen[m.Value] = true
				gd.Cases = append(gd.Cases, c)
			}
		}
		d.Groups = append(d.Groups, gd)
	}
	for _, m := range cat.Ungrouped {
		d.Ungrouped = append(d.Ungrouped, constData{Const: m.GoName, Token: m.Token, Value: hex(m.Value)})
	}
	for _, m := range cat.Tokens() {
		d.Tokens = append(d.Tokens, tokenData{Token: m.Token, Value: hex(m.Value), Requirements: requirements(m.Availability)})
	}
	return d
}

// requirements renders annotations as support.Requirement constructors.
func requirements(anns []catalog.Annotation) string {
	exprs := make([]string, 0, len(anns))
	for _, a := range anns {
		var b strings.Builder
		if a.IsExtension() {
			fmt.Fprintf(&b, "support.Ext(%s, %s)", strconv.Quote(a.API), strconv.Quote(a.Extension))
		} else {
			fmt.Fprintf(&b, "support.Since(%s, %d, %d)", strconv.Quote(a.API), a.Version.Major, a.Version.Minor)
		}
		if a.Profile != "" {
			fmt.Fprintf(&b, ".Only(%s)", strconv.Quote(a.Profile))
		}
		if a.Removed() {
			fmt.Fprintf(&b, ".Removed(%d, %d, %s)", a.RemovedIn.Major, a.RemovedIn.Minor, strconv.Quote(a.RemovedProfile))
		}
		exprs = append(exprs, b.String())
	}
	return "[]support.Requirement{" + strings.Join(exprs, ", ") + "}"
}

func hex(v uint64) string { return fmt.Sprintf("0x%X", v) }

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}

func buildTemplate(name, content string) *template.Template {
	return template.Must(template.New(name).Parse(content))
}
