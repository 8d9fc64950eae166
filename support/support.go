// Package support evaluates the availability requirements recorded in a
// generated enum catalog against a concrete GL context.
//
// A Context is usually filled from the strings a driver reports:
//
//	ctx, err := support.NewContext(glGetString(GL_VERSION), glGetString(GL_EXTENSIONS), support.ProfileCore)
//	if ctx.Satisfies(gl.Requirements("GL_COMPUTE_SHADER")) { ... }
package support

import (
	"fmt"
	"strconv"
	"strings"
)

// GL profiles.
const (
	ProfileCore          = "core"
	ProfileCompatibility = "compatibility"
)

// Version is an API version number.
type Version struct {
	Major int
	Minor int
}

// Less reports whether v precedes o.
func (v Version) Less(o Version) bool {
	if v.Major != o.Major {
		return v.Major < o.Major
	}
	return v.Minor < o.Minor
}

// IsZero reports whether v is unset.
func (v Version) IsZero() bool { return v == Version{} }

func (v Version) String() string { return fmt.Sprintf("%d.%d", v.Major, v.Minor) }

// Context describes what a GL implementation offers.
type Context struct {
	// API is the registry API name: gl, gles1, gles2 or glsc2.
	API string
	// Profile is the gl context profile. Empty means the profile is unknown
	// or doesn't apply, in which case profile-specific removals are ignored.
	Profile    string
	Version    Version
	Extensions map[string]bool
}

// NewContext builds a Context from the GL_VERSION string, the space separated
// GL_EXTENSIONS string and the context profile.
func NewContext(version, extensions, profile string) (Context, error) {
	api, v, err := ParseVersionString(version)
	if err != nil {
		return Context{}, err
	}
	return Context{API: api, Profile: profile, Version: v, Extensions: ParseExtensions(extensions)}, nil
}

// ParseVersionString parses a GL_VERSION string such as "4.6.0 NVIDIA 535.54"
// or "OpenGL ES 3.2 Mesa 23.0.4" and returns the API it names with its
// version.
func ParseVersionString(s string) (api string, v Version, err error) {
	api = "gl"
	rest := strings.TrimSpace(s)
	switch {
	case strings.HasPrefix(rest, "OpenGL ES-CM "), strings.HasPrefix(rest, "OpenGL ES-CL "):
		api, rest = "gles1", rest[len("OpenGL ES-CM "):]
	case strings.HasPrefix(rest, "OpenGL ES "):
		api, rest = "gles2", rest[len("OpenGL ES "):]
	case strings.HasPrefix(rest, "OpenGL SC "):
		api, rest = "glsc2", rest[len("OpenGL SC "):]
	}
	if i := strings.IndexAny(rest, " -"); i >= 0 {
		rest = rest[:i]
	}
	parts := strings.SplitN(rest, ".", 3)
	if len(parts) < 2 {
		return "", Version{}, fmt.Errorf("malformed GL version %q", s)
	}
	if v.Major, err = strconv.Atoi(parts[0]); err != nil {
		return "", Version{}, fmt.Errorf("malformed GL version %q: %w", s, err)
	}
	if v.Minor, err = strconv.Atoi(parts[1]); err != nil {
		return "", Version{}, fmt.Errorf("malformed GL version %q: %w", s, err)
	}
	return api, v, nil
}

// ParseExtensions splits a GL_EXTENSIONS string into a set.
func ParseExtensions(s string) map[string]bool {
	set := map[string]bool{}
	for _, name := range strings.Fields(s) {
		set[name] = true
	}
	return set
}

// Requirement is one way a token becomes available: a core version of an API,
// possibly limited to a profile and removed later, or an extension.
type Requirement struct {
	API       string
	Profile   string
	Version   Version
	Extension string

	RemovedIn      Version
	RemovedProfile string
}

// Since is a requirement on a core version of api.
func Since(api string, major, minor int) Requirement {
	return Requirement{API: api, Version: Version{Major: major, Minor: minor}}
}

// Ext is a requirement on an extension of api.
func Ext(api, name string) Requirement {
	return Requirement{API: api, Extension: name}
}

// Only limits r to one profile.
func (r Requirement) Only(profile string) Requirement {
	r.Profile = profile
	return r
}

// Removed records that a later version dropped the token from profile, or
// from every profile when profile is empty.
func (r Requirement) Removed(major, minor int, profile string) Requirement {
	r.RemovedIn = Version{Major: major, Minor: minor}
	r.RemovedProfile = profile
	return r
}

func (r Requirement) String() string {
	var b strings.Builder
	b.WriteString(r.API)
	if r.Extension != "" {
		b.WriteString(" " + r.Extension)
	} else {
		b.WriteString(" " + r.Version.String())
	}
	if r.Profile != "" {
		b.WriteString(" (" + r.Profile + ")")
	}
	if !r.RemovedIn.IsZero() {
		b.WriteString(", removed in " + r.RemovedIn.String())
		if r.RemovedProfile != "" {
			b.WriteString(" " + r.RemovedProfile)
		}
	}
	return b.String()
}

// Meets reports whether the context fulfils a single requirement.
func (c Context) Meets(r Requirement) bool {
	if r.API != c.API {
		return false
	}
	if r.Profile != "" && c.Profile != "" && r.Profile != c.Profile {
		return false
	}
	if r.Extension != "" {
		return c.Extensions[r.Extension]
	}
	if c.Version.Less(r.Version) {
		return false
	}
	if !r.RemovedIn.IsZero() && !c.Version.Less(r.RemovedIn) {
		if r.RemovedProfile == "" || (c.Profile != "" && r.RemovedProfile == c.Profile) {
			return false
		}
	}
	return true
}

// Satisfies reports whether any of the requirements is met.
func (c Context) Satisfies(reqs []Requirement) bool {
	for _, r := range reqs {
		if c.Meets(r) {
			return true
		}
	}
	return false
}
