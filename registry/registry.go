// Package registry decodes the Khronos OpenGL XML API registry (gl.xml).
//
// Only the parts of the registry that describe enumerants are modelled:
// enum blocks, legacy enum groups, features (core versions) and extensions.
// Commands and C types are skipped by the decoder.
package registry

import (
	"encoding/xml"
	"sort"
	"strings"
)

// Well-known API names used in the "api" and "supported" attributes.
const (
	APIGL     = "gl"
	APIGLCore = "glcore"
	APIGLES1  = "gles1"
	APIGLES2  = "gles2"
	APIGLSC2  = "glsc2"
)

// Registry is the root of a decoded gl.xml document.
type Registry struct {
	XMLName    xml.Name    `xml:"registry"`
	Comment    string      `xml:"comment"`
	Groups     []Group     `xml:"groups>group"`
	Blocks     []EnumBlock `xml:"enums"`
	Features   []Feature   `xml:"feature"`
	Extensions []Extension `xml:"extensions>extension"`

	// Fingerprint identifies the exact registry snapshot the document was
	// decoded from. It is not part of the XML.
	Fingerprint string `xml:"-"`
}

// EnumBlock is a single <enums> element.
type EnumBlock struct {
	Namespace string `xml:"namespace,attr"`
	Group     string `xml:"group,attr"`
	Type      string `xml:"type,attr"`
	Vendor    string `xml:"vendor,attr"`
	Start     string `xml:"start,attr"`
	End       string `xml:"end,attr"`
	Comment   string `xml:"comment,attr"`
	Enums     []Enum `xml:"enum"`
}

// Bitmask reports whether the block declares bitmask tokens.
func (b EnumBlock) Bitmask() bool { return b.Type == "bitmask" }

// Enum is a token definition inside an <enums> block.
type Enum struct {
	Name    string `xml:"name,attr"`
	Value   string `xml:"value,attr"`
	API     string `xml:"api,attr"`
	Type    string `xml:"type,attr"`
	Group   string `xml:"group,attr"`
	Alias   string `xml:"alias,attr"`
	Comment string `xml:"comment,attr"`
}

// Groups returns the names listed in the comma separated group attribute.
func (e Enum) Groups() []string {
	if e.Group == "" {
		return nil
	}
	var groups []string
	for _, g := range strings.Split(e.Group, ",") {
		if g = strings.TrimSpace(g); g != "" {
			groups = append(groups, g)
		}
	}
	return groups
}

// Wide reports whether the token is declared as a 64-bit value.
func (e Enum) Wide() bool { return e.Type == "ull" }

// Uint64 parses the token value, honoring the declared width.
func (e Enum) Uint64() (uint64, error) {
	bits := 32
	if e.Wide() {
		bits = 64
	}
	return parseSized(e.Value, bits)
}

// Group is an entry of the legacy <groups> section.
type Group struct {
	Name    string `xml:"name,attr"`
	Comment string `xml:"comment,attr"`
	Enums   []Ref  `xml:"enum"`
}

// Ref refers to an enum, command or type by name.
type Ref struct {
	Name string `xml:"name,attr"`
}

// Feature is a core API version, for example GL_VERSION_4_3.
type Feature struct {
	API      string   `xml:"api,attr"`
	Name     string   `xml:"name,attr"`
	Number   string   `xml:"number,attr"`
	Requires []Change `xml:"require"`
	Removes  []Change `xml:"remove"`
}

// Version returns the parsed feature number. Invalid numbers yield the zero
// Version; Validate reports them.
func (f Feature) Version() Version {
	v, _ := ParseVersion(f.Number)
	return v
}

// Change is a <require> or <remove> element of a feature or extension.
type Change struct {
	Profile  string `xml:"profile,attr"`
	API      string `xml:"api,attr"`
	Comment  string `xml:"comment,attr"`
	Enums    []Ref  `xml:"enum"`
	Commands []Ref  `xml:"command"`
	Types    []Ref  `xml:"type"`
}

// Extension is an <extension> element.
type Extension struct {
	Name      string   `xml:"name,attr"`
	Supported string   `xml:"supported,attr"`
	Requires  []Change `xml:"require"`
}

// SupportedAPIs returns the API names of the pipe separated supported
// attribute.
func (x Extension) SupportedAPIs() []string {
	if x.Supported == "" {
		return nil
	}
	return strings.Split(x.Supported, "|")
}

// Supports reports whether the extension is supported by the given API.
func (x Extension) Supports(api string) bool {
	for _, a := range x.SupportedAPIs() {
		if a == api {
			return true
		}
	}
	return false
}

// FeaturesFor returns the features of one API ordered by version.
func (r *Registry) FeaturesFor(api string) []Feature {
	var features []Feature
	for _, f := range r.Features {
		if f.API == api {
			features = append(features, f)
		}
	}
	sort.SliceStable(features, func(i, j int) bool {
		return features[i].Version().Less(features[j].Version())
	})
	return features
}

// APIs returns every API name that has at least one feature, sorted.
func (r *Registry) APIs() []string {
	seen := map[string]bool{}
	var apis []string
	for _, f := range r.Features {
		if !seen[f.API] {
			seen[f.API] = true
			apis = append(apis, f.API)
		}
	}
	sort.Strings(apis)
	return apis
}

// Index returns the token definitions visible to the given API, keyed by
// token name. A definition restricted to the API takes precedence over a
// generic one; definitions restricted to other APIs are skipped.
//
// The returned map is freshly allocated and owned by the caller.
func (r *Registry) Index(api string) map[string]Enum {
	index := map[string]Enum{}
	for _, b := range r.Blocks {
		for _, e := range b.Enums {
			if e.API != "" && e.API != api {
				continue
			}
			if prev, ok := index[e.Name]; ok && prev.API != "" && e.API == "" {
				continue
			}
			index[e.Name] = e
		}
	}
	return index
}

// Find returns the block and enum defining the named token for the given API.
func (r *Registry) Find(name, api string) (EnumBlock, Enum, bool) {
	var (
		block EnumBlock
		found Enum
		ok    bool
	)
	for _, b := range r.Blocks {
		for _, e := range b.Enums {
			if e.Name != name || (e.API != "" && e.API != api) {
				continue
			}
			if ok && found.API != "" && e.API == "" {
				continue
			}
			block, found, ok = b, e, true
		}
	}
	return block, found, ok
}

// Write serializes the registry with the given encoder, as used by the
// registry cache.
func (r *Registry) Write(encode func(any) error) error { return encode(r) }

// Read deserializes a registry stored with Write.
func (r *Registry) Read(decode func(any) error) error { return decode(r) }
