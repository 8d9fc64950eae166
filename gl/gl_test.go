package gl

import (
	"fmt"
	"os"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gopherjs/glenum/catalog"
	"github.com/gopherjs/glenum/gen"
	"github.com/gopherjs/glenum/internal/testingx"
	"github.com/gopherjs/glenum/registry"
	"github.com/gopherjs/glenum/support"
)

const registryPath = "../registry/testdata/gl.xml"

func TestValuesMatchRegistry(t *testing.T) {
	reg := testingx.Must[*registry.Registry](t)(registry.ParseFile(registryPath))
	index := reg.Index(registry.APIGL)

	names := Tokens()
	if !sort.StringsAreSorted(names) {
		t.Fatalf("Got: unsorted token table. Want: sorted by name.")
	}
	for _, name := range names {
		e, ok := index[name]
		if !ok {
			t.Errorf("Got: %s not defined for gl. Want: every token from the registry.", name)
			continue
		}
		want := testingx.Must[uint64](t)(e.Uint64())
		if got, _ := Lookup(name); got != want {
			t.Errorf("Got: %s = 0x%X. Want: 0x%X.", name, got, want)
		}
		if len(Requirements(name)) == 0 {
			t.Errorf("Got: no requirements for %s. Want: at least one version or extension.", name)
		}
	}
}

func TestLookup(t *testing.T) {
	tests := []struct {
		token string
		want  uint64
		found bool
	}{
		{token: "GL_ALWAYS", want: 0x0207, found: true},
		{token: "GL_ACCUM_BUFFER_BIT", want: 0x0200, found: true},
		{token: "GL_TIMEOUT_IGNORED", want: 0xFFFFFFFFFFFFFFFF, found: true},
		{token: "GL_ZERO", want: 0, found: true},
		{token: "GL_COVERAGE_BUFFER_BIT_NV"},
		{token: "GL_ALWAYZ"},
		{token: ""},
	}
	for _, test := range tests {
		got, ok := Lookup(test.token)
		if got != test.want || ok != test.found {
			t.Errorf("Got: Lookup(%q) = 0x%X, %v. Want: 0x%X, %v.", test.token, got, ok, test.want, test.found)
		}
	}
}

func TestSharedTokens(t *testing.T) {
	if AlphaFunctionAlways != 0x0207 || uint32(StencilFunctionAlways) != uint32(AlphaFunctionAlways) || uint32(DepthFunctionAlways) != 0x0207 {
		t.Errorf("Got: GL_ALWAYS = %#x/%#x/%#x. Want: 0x207 in every group.", uint32(AlphaFunctionAlways), uint32(StencilFunctionAlways), uint32(DepthFunctionAlways))
	}
	if uint32(BufferTargetArrayBuffer) != 0x8892 || uint32(BufferTargetArbArrayBuffer) != 0x8892 || uint32(BufferTargetArbArrayBufferArb) != 0x8892 {
		t.Errorf("Got: GL_ARRAY_BUFFER = %#x/%#x/%#x. Want: 0x8892.", uint32(BufferTargetArrayBuffer), uint32(BufferTargetArbArrayBuffer), uint32(BufferTargetArbArrayBufferArb))
	}
	if BlendingFactorZero != 0 || BooleanFalse != 0 || ErrorCodeNoError != 0 || PrimitiveTypePoints != 0 {
		t.Errorf("Got: nonzero value for a token defined as 0. Want: 0.")
	}
	if InvalidIndex != 0xFFFFFFFF || TimeoutIgnored != uint64(0xFFFFFFFFFFFFFFFF) || ActiveProgramExt != 0x8B8D {
		t.Errorf("Got: wrong ungrouped token values. Want: registry values.")
	}
}

func TestFlags(t *testing.T) {
	mask := ClearBufferMaskColorBufferBit | ClearBufferMaskDepthBufferBit
	if mask == ClearBufferMaskColorBufferBit || mask == ClearBufferMaskDepthBufferBit || mask != 0x4100 {
		t.Errorf("Got: combined mask %#x. Want: 0x4100, distinct from its parts.", uint32(mask))
	}
	if !mask.Has(ClearBufferMaskColorBufferBit) || !mask.Has(ClearBufferMaskDepthBufferBit) || mask.Has(ClearBufferMaskStencilBufferBit) {
		t.Errorf("Got: wrong Has() results for %s. Want: color and depth only.", mask)
	}

	tests := []struct {
		descr string
		got   fmt.Stringer
		want  string
	}{
		{descr: "single", got: ClearBufferMaskColorBufferBit, want: "GL_COLOR_BUFFER_BIT"},
		{descr: "combined", got: mask, want: "GL_DEPTH_BUFFER_BIT|GL_COLOR_BUFFER_BIT"},
		{descr: "unnamed bit", got: ClearBufferMaskStencilBufferBit | 0x1, want: "GL_STENCIL_BUFFER_BIT|0x1"},
		{descr: "alias", got: ContextFlagMaskContextFlagNoErrorBitKhr, want: "GL_CONTEXT_FLAG_NO_ERROR_BIT"},
		{descr: "all bits", got: MemoryBarrierMaskAllBarrierBits, want: "GL_ALL_BARRIER_BITS"},
		{descr: "zero", got: MapBufferAccessMask(0), want: "0"},
	}
	for _, test := range tests {
		t.Run(test.descr, func(t *testing.T) {
			if got := test.got.String(); got != test.want {
				t.Errorf("Got: %q. Want: %q.", got, test.want)
			}
		})
	}
}

func TestString(t *testing.T) {
	tests := []struct {
		descr string
		got   fmt.Stringer
		want  string
	}{
		{descr: "member", got: BlendingFactorSrcAlpha, want: "GL_SRC_ALPHA"},
		{descr: "first alias wins", got: BufferTargetArbArrayBufferArb, want: "GL_ARRAY_BUFFER"},
		{descr: "zero", got: ErrorCodeNoError, want: "GL_NO_ERROR"},
		{descr: "legacy group", got: DepthFunctionLequal, want: "GL_LEQUAL"},
		{descr: "unknown", got: BlendingFactor(0xBEEF), want: "BlendingFactor(0xBEEF)"},
	}
	for _, test := range tests {
		t.Run(test.descr, func(t *testing.T) {
			if got := test.got.String(); got != test.want {
				t.Errorf("Got: %q. Want: %q.", got, test.want)
			}
		})
	}
}

func TestAvailable(t *testing.T) {
	core33 := support.Context{API: "gl", Profile: support.ProfileCore, Version: support.Version{Major: 3, Minor: 3}}
	compat33 := support.Context{API: "gl", Profile: support.ProfileCompatibility, Version: support.Version{Major: 3, Minor: 3}}
	gl42 := support.Context{API: "gl", Version: support.Version{Major: 4, Minor: 2}}
	gl42compute := gl42
	gl42compute.Extensions = support.ParseExtensions("GL_ARB_compute_shader")

	tests := []struct {
		descr string
		ctx   support.Context
		token string
		want  bool
	}{
		{descr: "removed from core", ctx: core33, token: "GL_ACCUM_BUFFER_BIT", want: false},
		{descr: "kept in compatibility", ctx: compat33, token: "GL_ACCUM_BUFFER_BIT", want: true},
		{descr: "quads removed from core", ctx: core33, token: "GL_QUADS", want: false},
		{descr: "core token", ctx: core33, token: "GL_COLOR_BUFFER_BIT", want: true},
		{descr: "compute through extension", ctx: gl42compute, token: "GL_COMPUTE_SHADER", want: true},
		{descr: "compute missing", ctx: gl42, token: "GL_COMPUTE_SHADER", want: false},
		{descr: "too old", ctx: core33, token: "GL_PATCHES", want: false},
		{descr: "other api", ctx: support.Context{API: "gles2", Version: support.Version{Major: 3, Minor: 2}}, token: "GL_ALWAYS", want: false},
		{descr: "unknown token", ctx: compat33, token: "GL_NOPE", want: false},
	}
	for _, test := range tests {
		t.Run(test.descr, func(t *testing.T) {
			if got := Available(test.ctx, test.token); got != test.want {
				t.Errorf("Got: Available(%+v, %s) = %v. Want: %v.", test.ctx, test.token, got, test.want)
			}
		})
	}
}

func TestRegenerate(t *testing.T) {
	reg := testingx.Must[*registry.Registry](t)(registry.ParseFile(registryPath))
	cat := testingx.Must[*catalog.Catalog](t)(catalog.Build(reg, catalog.Options{
		APIs:             []string{registry.APIGL},
		IncludeUngrouped: true,
	}))
	files := testingx.Must[map[string][]byte](t)(gen.Generate(cat, gen.Options{Package: "gl", Source: "gl.xml"}))

	for name, src := range files {
		t.Run(name, func(t *testing.T) {
			committed := testingx.Must[[]byte](t)(os.ReadFile(name))
			if diff := cmp.Diff(string(committed), string(src)); diff != "" {
				t.Errorf("%s is out of date, run go generate (-committed,+generated):\n%s", name, diff)
			}
		})
	}
}
