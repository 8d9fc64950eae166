package catalog

import (
	"sort"

	"github.com/gopherjs/glenum/registry"
	"github.com/gopherjs/glenum/support"
)

// Profiles named by <require profile=...> and <remove profile=...>.
const (
	ProfileCore          = "core"
	ProfileCompatibility = "compatibility"
)

// Annotation records one way a token becomes available: either a core
// version of an API (optionally limited to a profile and possibly removed by
// a later version) or an extension.
//
// Annotations are descriptive metadata. They never influence member values.
type Annotation struct {
	API     string
	Profile string
	Version registry.Version

	Extension string

	RemovedIn      registry.Version
	RemovedProfile string
}

// IsExtension reports whether the annotation comes from an extension.
func (a Annotation) IsExtension() bool { return a.Extension != "" }

// Removed reports whether a later core version removed the token.
func (a Annotation) Removed() bool { return !a.RemovedIn.IsZero() }

// Requirement converts the annotation for evaluation against a
// support.Context.
func (a Annotation) Requirement() support.Requirement {
	return support.Requirement{
		API:            a.API,
		Profile:        a.Profile,
		Version:        support.Version{Major: a.Version.Major, Minor: a.Version.Minor},
		Extension:      a.Extension,
		RemovedIn:      support.Version{Major: a.RemovedIn.Major, Minor: a.RemovedIn.Minor},
		RemovedProfile: a.RemovedProfile,
	}
}

// Requirements converts every annotation of a member.
func (m Member) Requirements() []support.Requirement {
	reqs := make([]support.Requirement, len(m.Availability))
	for i, a := range m.Availability {
		reqs[i] = a.Requirement()
	}
	return reqs
}

// removedFor reports whether the removal applies to the given profile.
func (a Annotation) removedFor(profile string) bool {
	return a.Removed() && (a.RemovedProfile == "" || a.RemovedProfile == profile)
}

type availability map[string][]Annotation

func (av availability) require(token string, ann Annotation) {
	for _, a := range av[token] {
		if a.IsExtension() || a.API != ann.API || a.Removed() {
			continue
		}
		if a.Profile == "" || a.Profile == ann.Profile {
			return // Already available from an earlier version.
		}
	}
	av[token] = append(av[token], ann)
}

func (av availability) remove(token, api, profile string, v registry.Version) {
	anns := av[token]
	for i, a := range anns {
		if a.IsExtension() || a.API != api || a.Removed() {
			continue
		}
		if a.Profile == "" || profile == "" || a.Profile == profile {
			anns[i].RemovedIn = v
			anns[i].RemovedProfile = profile
		}
	}
}

func (av availability) extension(token string, ann Annotation) {
	for _, a := range av[token] {
		if a == ann {
			return
		}
	}
	av[token] = append(av[token], ann)
}

// collectAvailability walks every feature of the target APIs in version order,
// then every extension supported by them.
func collectAvailability(reg *registry.Registry, opts Options) availability {
	av := availability{}
	for _, api := range opts.APIs {
		for _, f := range reg.FeaturesFor(api) {
			v := f.Version()
			for _, req := range f.Requires {
				if !opts.accepts(api, req) {
					continue
				}
				for _, ref := range req.Enums {
					av.require(ref.Name, Annotation{API: api, Profile: req.Profile, Version: v})
				}
			}
			for _, rem := range f.Removes {
				if !opts.accepts(api, rem) {
					continue
				}
				for _, ref := range rem.Enums {
					av.remove(ref.Name, api, rem.Profile, v)
				}
			}
		}
		for _, x := range reg.Extensions {
			ann, ok := extensionAnnotation(x, api)
			if !ok || !opts.profileMatches(ann.Profile) {
				continue
			}
			for _, req := range x.Requires {
				if !opts.accepts(api, req) {
					continue
				}
				for _, ref := range req.Enums {
					av.extension(ref.Name, ann)
				}
			}
		}
	}
	for _, anns := range av {
		sortAnnotations(anns)
	}
	return av
}

// extensionAnnotation maps the supported attribute of an extension onto an
// annotation for api. The glcore pseudo-API is the core profile of gl.
func extensionAnnotation(x registry.Extension, api string) (Annotation, bool) {
	switch {
	case x.Supports(api):
		return Annotation{API: api, Extension: x.Name}, true
	case api == registry.APIGL && x.Supports(registry.APIGLCore):
		return Annotation{API: api, Profile: ProfileCore, Extension: x.Name}, true
	}
	return Annotation{}, false
}

func sortAnnotations(anns []Annotation) {
	sort.SliceStable(anns, func(i, j int) bool {
		a, b := anns[i], anns[j]
		if a.API != b.API {
			return a.API < b.API
		}
		if a.IsExtension() != b.IsExtension() {
			return !a.IsExtension()
		}
		if a.Version != b.Version {
			return a.Version.Less(b.Version)
		}
		if a.Profile != b.Profile {
			return a.Profile < b.Profile
		}
		return a.Extension < b.Extension
	})
}

// unavailableIn reports whether every annotation was removed from the given
// profile, leaving no core version or extension that provides the token.
func unavailableIn(anns []Annotation, profile string) bool {
	for _, a := range anns {
		if a.IsExtension() || !a.removedFor(profile) {
			return false
		}
	}
	return true
}
