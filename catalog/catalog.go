// Package catalog turns a decoded OpenGL registry into the enum catalog that
// is emitted as Go code: one integer-backed type per group, one constant per
// token, each token annotated with the versions and extensions defining it.
package catalog

import (
	"errors"
	"fmt"
	"sort"

	log "github.com/sirupsen/logrus"

	"github.com/gopherjs/glenum/internal/errorList"
	"github.com/gopherjs/glenum/registry"
)

var (
	// ErrDuplicateName is reported when two members would get the same Go
	// identifier.
	ErrDuplicateName = errors.New("duplicate name")
	// ErrUnknownGroup is reported when Options.Groups names a group the
	// registry doesn't define for the target APIs.
	ErrUnknownGroup = errors.New("unknown group")
	// ErrNoAPI is returned when Options.APIs is empty.
	ErrNoAPI = errors.New("no target API")
)

// Options select which part of the registry ends up in a catalog.
type Options struct {
	// APIs lists the feature APIs to include (gl, gles1, gles2, glsc2).
	APIs []string
	// Profile restricts the catalog to one gl profile ("core" or
	// "compatibility"). Empty keeps both and records removals as annotations.
	Profile string
	// Groups restricts the catalog to the named registry groups. Empty keeps
	// every group.
	Groups []string
	// FlagGroups names groups that are bitmasks even though the registry
	// doesn't declare them in a bitmask block.
	FlagGroups []string
	// IncludeUngrouped emits tokens that belong to no group as untyped
	// constants.
	IncludeUngrouped bool
}

func (o Options) profileMatches(profile string) bool {
	return o.Profile == "" || profile == "" || profile == o.Profile
}

func (o Options) accepts(api string, c registry.Change) bool {
	return (c.API == "" || c.API == api) && o.profileMatches(c.Profile)
}

// Catalog is the typed view of a registry for a set of target APIs.
type Catalog struct {
	// Source is the fingerprint of the registry the catalog was built from.
	Source    string
	APIs      []string
	Profile   string
	Groups    []*Group
	Ungrouped []Member
}

// Group is one enum group, emitted as one Go type.
type Group struct {
	// Name is the group name used by the registry.
	Name string
	// GoName is the Go type name.
	GoName string
	// Flags marks bitmask groups whose members are OR-ed together.
	Flags bool
	// Wide marks groups holding 64-bit tokens.
	Wide    bool
	Members []Member
}

// ConstName returns the Go constant name of m as a member of g.
func (g *Group) ConstName(m Member) string { return g.GoName + m.GoName }

// Member returns the member defined by the given token.
func (g *Group) Member(token string) (Member, bool) {
	for _, m := range g.Members {
		if m.Token == token {
			return m, true
		}
	}
	return Member{}, false
}

// Member is a token bound to its value.
type Member struct {
	Token        string
	GoName       string
	Value        uint64
	Wide         bool
	Availability []Annotation
}

// Group returns the group with the given registry or Go name.
func (c *Catalog) Group(name string) (*Group, bool) {
	for _, g := range c.Groups {
		if g.Name == name || g.GoName == name {
			return g, true
		}
	}
	return nil, false
}

// Tokens returns every distinct token of the catalog, sorted by name.
func (c *Catalog) Tokens() []Member {
	seen := map[string]bool{}
	var tokens []Member
	add := func(m Member) {
		if !seen[m.Token] {
			seen[m.Token] = true
			tokens = append(tokens, m)
		}
	}
	for _, g := range c.Groups {
		for _, m := range g.Members {
			add(m)
		}
	}
	for _, m := range c.Ungrouped {
		add(m)
	}
	sort.Slice(tokens, func(i, j int) bool { return tokens[i].Token < tokens[j].Token })
	return tokens
}

// Build creates the catalog of reg for the target APIs.
//
// Tokens not defined by any selected feature or extension are dropped. All
// problems found are returned together as an errorList.ErrorList.
func Build(reg *registry.Registry, opts Options) (*Catalog, error) {
	if len(opts.APIs) == 0 {
		return nil, ErrNoAPI
	}
	var errs errorList.ErrorList

	av := collectAvailability(reg, opts)
	if opts.Profile != "" {
		for token, anns := range av {
			if unavailableIn(anns, opts.Profile) {
				log.Debugf("Dropping %s: removed from the %s profile.", token, opts.Profile)
				delete(av, token)
			}
		}
	}

	members, err := resolveMembers(reg, opts.APIs, av)
	errs = errs.Append(err)

	b := newGroupBuilder()
	for _, blk := range reg.Blocks {
		for _, e := range blk.Enums {
			m, ok := members[e.Name]
			if !ok || !m.definedBy(e) {
				continue
			}
			groups := e.Groups()
			if len(groups) == 0 && blk.Group != "" {
				groups = []string{blk.Group}
			}
			for _, g := range groups {
				b.add(g, e.Name, blk.Bitmask())
			}
		}
	}
	for _, g := range reg.Groups {
		for _, ref := range g.Enums {
			if _, ok := members[ref.Name]; ok {
				b.add(g.Name, ref.Name, false)
			}
		}
	}
	for _, name := range opts.FlagGroups {
		if _, ok := b.tokens[name]; ok {
			b.flags[name] = true
		}
	}

	selected := b.order
	if len(opts.Groups) > 0 {
		selected = nil
		for _, name := range opts.Groups {
			if _, ok := b.tokens[name]; !ok {
				errs = errs.Append(fmt.Errorf("%w: %s", ErrUnknownGroup, name))
				continue
			}
			selected = append(selected, name)
		}
	}

	cat := &Catalog{
		Source:  reg.Fingerprint,
		APIs:    append([]string(nil), opts.APIs...),
		Profile: opts.Profile,
	}
	grouped := map[string]bool{}
	for _, name := range b.order {
		for token := range b.tokens[name] {
			grouped[token] = true
		}
	}
	for _, name := range selected {
		g := &Group{Name: name, GoName: TypeName(name), Flags: b.flags[name]}
		for token := range b.tokens[name] {
			m := members[token].Member
			g.Members = append(g.Members, m)
			g.Wide = g.Wide || m.Wide
		}
		sortMembers(g.Members)
		errs = errs.Append(checkGroupNames(g))
		if g.Flags {
			if err := ValidateFlags(g); err != nil {
				log.Warningf("Group %s has irregular flag values: %v", g.Name, err)
			}
		}
		cat.Groups = append(cat.Groups, g)
	}
	sort.Slice(cat.Groups, func(i, j int) bool { return cat.Groups[i].GoName < cat.Groups[j].GoName })

	if opts.IncludeUngrouped {
		for token, rm := range members {
			if !grouped[token] {
				cat.Ungrouped = append(cat.Ungrouped, rm.Member)
			}
		}
		sortMembers(cat.Ungrouped)
	}

	errs = errs.Append(checkPackageNames(cat))
	if err := errs.ErrOrNil(); err != nil {
		return nil, err
	}
	log.Infof("Built catalog for %v: %d groups, %d ungrouped tokens.", cat.APIs, len(cat.Groups), len(cat.Ungrouped))
	return cat, nil
}

type resolvedMember struct {
	Member
	def  registry.Enum
	apis []string
}

// definedBy reports whether e is the definition the member was resolved from.
func (rm resolvedMember) definedBy(e registry.Enum) bool {
	return e.Name == rm.def.Name && e.API == rm.def.API
}

// resolveMembers looks up the value of every available token. When the target
// APIs define a token differently, the first API wins and the annotations of
// the others are dropped from the member.
func resolveMembers(reg *registry.Registry, apis []string, av availability) (map[string]resolvedMember, error) {
	var errs errorList.ErrorList
	members := map[string]resolvedMember{}
	for _, api := range apis {
		index := reg.Index(api)
		for token, anns := range av {
			if !hasAPI(anns, api) {
				continue
			}
			e, ok := index[token]
			if !ok {
				log.Warningf("Token %s is required by %s but never defined.", token, api)
				continue
			}
			value, err := e.Uint64()
			if err != nil {
				errs = errs.AppendDistinct(fmt.Errorf("token %s: %w", token, err))
				continue
			}
			if prev, ok := members[token]; ok {
				if prev.Value != value {
					log.Warningf("Token %s is 0x%X for %v but 0x%X for %s, keeping the former.", token, prev.Value, prev.apis, value, api)
					prev.Availability = withoutAPI(prev.Availability, api)
				}
				prev.apis = append(prev.apis, api)
				members[token] = prev
				continue
			}
			members[token] = resolvedMember{
				Member: Member{
					Token:        token,
					GoName:       GoName(token),
					Value:        value,
					Wide:         e.Wide(),
					Availability: anns,
				},
				def:  e,
				apis: []string{api},
			}
		}
	}
	return members, errs.ErrOrNil()
}

func withoutAPI(anns []Annotation, api string) []Annotation {
	var kept []Annotation
	for _, a := range anns {
		if a.API != api {
			kept = append(kept, a)
		}
	}
	return kept
}

func hasAPI(anns []Annotation, api string) bool {
	for _, a := range anns {
		if a.API == api {
			return true
		}
	}
	return false
}

type groupBuilder struct {
	order  []string
	tokens map[string]map[string]bool
	flags  map[string]bool
}

func newGroupBuilder() *groupBuilder {
	return &groupBuilder{
		tokens: map[string]map[string]bool{},
		flags:  map[string]bool{},
	}
}

func (b *groupBuilder) add(group, token string, bitmask bool) {
	set, ok := b.tokens[group]
	if !ok {
		set = map[string]bool{}
		b.tokens[group] = set
		b.order = append(b.order, group)
	}
	set[token] = true
	if bitmask {
		b.flags[group] = true
	}
}

func sortMembers(members []Member) {
	sort.Slice(members, func(i, j int) bool {
		if members[i].Value != members[j].Value {
			return members[i].Value < members[j].Value
		}
		return members[i].Token < members[j].Token
	})
}

func checkGroupNames(g *Group) error {
	var errs errorList.ErrorList
	seen := map[string]string{}
	for _, m := range g.Members {
		if prev, ok := seen[m.GoName]; ok {
			errs = errs.Append(fmt.Errorf("%w: %s and %s are both %s.%s", ErrDuplicateName, prev, m.Token, g.GoName, m.GoName))
			continue
		}
		seen[m.GoName] = m.Token
	}
	return errs.ErrOrNil()
}

// Helpers lists the exported functions every generated package declares
// next to the catalog's own identifiers.
var Helpers = []string{"Lookup", "Requirements", "Available", "Tokens"}

// checkPackageNames ensures the Go identifiers of the whole catalog don't
// collide once emitted into a single package.
func checkPackageNames(c *Catalog) error {
	var errs errorList.ErrorList
	seen := map[string]string{}
	for _, name := range Helpers {
		seen[name] = "generated helper"
	}
	declare := func(ident, what string) {
		if prev, ok := seen[ident]; ok {
			errs = errs.AppendDistinct(fmt.Errorf("%w: %s declared by %s and %s", ErrDuplicateName, ident, prev, what))
			return
		}
		seen[ident] = what
	}
	for _, g := range c.Groups {
		declare(g.GoName, "group "+g.Name)
	}
	for _, g := range c.Groups {
		for _, m := range g.Members {
			declare(g.ConstName(m), m.Token+" in "+g.Name)
		}
	}
	for _, m := range c.Ungrouped {
		declare(m.GoName, m.Token)
	}
	return errs.ErrOrNil()
}
