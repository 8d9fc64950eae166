package gen

import (
	"bytes"
	"go/ast"
	"go/parser"
	"go/token"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gopherjs/glenum/catalog"
	"github.com/gopherjs/glenum/internal/testingx"
	"github.com/gopherjs/glenum/registry"
)

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	reg := testingx.Must[*registry.Registry](t)(registry.ParseFile("../registry/testdata/gl.xml"))
	return testingx.Must[*catalog.Catalog](t)(catalog.Build(reg, catalog.Options{
		APIs:             []string{registry.APIGL},
		IncludeUngrouped: true,
	}))
}

func generate(t *testing.T, cat *catalog.Catalog) map[string][]byte {
	t.Helper()
	return testingx.Must[map[string][]byte](t)(Generate(cat, Options{}))
}

func TestGenerateDeterministic(t *testing.T) {
	first := generate(t, testCatalog(t))
	second := generate(t, testCatalog(t))
	if diff := cmp.Diff(first, second); diff != "" {
		t.Errorf("Generate() is not deterministic (-first,+second):\n%s", diff)
	}
}

func TestGenerateParses(t *testing.T) {
	files := generate(t, testCatalog(t))

	var names []string
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	want := []string{EnumsFile, StringsFile, TokensFile}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("Generate() files differ (-want,+got):\n%s", diff)
	}

	fset := token.NewFileSet()
	for name, src := range files {
		f, err := parser.ParseFile(fset, name, src, parser.ParseComments)
		if err != nil {
			t.Fatalf("Got: %s does not parse: %v. Want: valid Go.", name, err)
		}
		if f.Name.Name != "gl" {
			t.Errorf("Got: package %s in %s. Want: gl.", f.Name.Name, name)
		}
		if !ast.IsGenerated(f) {
			t.Errorf("Got: %s lacks the generated code header. Want: DO NOT EDIT marker.", name)
		}
	}
}

// squeeze collapses the alignment padding gofmt adds to every line.
func squeeze(src string) string {
	lines := strings.Split(src, "\n")
	for i, l := range lines {
		lines[i] = strings.Join(strings.Fields(l), " ")
	}
	return strings.Join(lines, "\n")
}

func TestGenerateEnums(t *testing.T) {
	src := squeeze(string(generate(t, testCatalog(t))[EnumsFile]))

	for _, want := range []string{
		"type ClearBufferMask uint32",
		"type BufferTargetArb uint32",
		"AlphaFunctionAlways AlphaFunction = 0x207",
		"BufferTargetArbArrayBufferArb BufferTargetArb = 0x8892",
		"TimeoutIgnored = 0xFFFFFFFFFFFFFFFF",
		"// ClearBufferMask is a set of flags from the ClearBufferMask group.",
		"// BlendingFactor enumerates the BlendingFactor group.",
	} {
		if !strings.Contains(src, want) {
			t.Errorf("Got: enums.go without %q. Want: present.", want)
		}
	}
	if strings.Contains(src, "CoverageBufferBitNv") {
		t.Errorf("Got: gles2-only token in a gl package. Want: omitted.")
	}
}

func TestGenerateStrings(t *testing.T) {
	src := string(generate(t, testCatalog(t))[StringsFile])

	if !strings.Contains(src, "case BufferTargetArbArrayBuffer:") {
		t.Errorf("Got: no case for the first token of 0x8892. Want: present.")
	}
	if strings.Contains(src, "case BufferTargetArbArrayBufferArb:") {
		t.Errorf("Got: a case for an alias value. Want: duplicate values skipped.")
	}
	if !strings.Contains(src, `{Value: 0x8, Name: "GL_CONTEXT_FLAG_NO_ERROR_BIT_KHR"},`) {
		t.Errorf("Got: aliased flag missing from the flag table. Want: every member listed.")
	}
	if !strings.Contains(src, "func (v ClearBufferMask) Has(f ClearBufferMask) bool {") {
		t.Errorf("Got: no Has method on a flags group. Want: present.")
	}
	if strings.Contains(src, "func (v BlendingFactor) Has(") {
		t.Errorf("Got: Has method on a plain enum. Want: flags groups only.")
	}
}

func TestGenerateTokens(t *testing.T) {
	src := string(generate(t, testCatalog(t))[TokensFile])

	for _, want := range []string{
		`{"GL_ACCUM_BUFFER_BIT", 0x200, []support.Requirement{support.Since("gl", 1, 0).Removed(3, 2, "core")}},`,
		`{"GL_COMPUTE_SHADER", 0x91B9, []support.Requirement{support.Since("gl", 4, 3), support.Ext("gl", "GL_ARB_compute_shader")}},`,
		`{"GL_TIMEOUT_IGNORED", 0xFFFFFFFFFFFFFFFF, []support.Requirement{support.Since("gl", 3, 2)}},`,
	} {
		if !strings.Contains(src, want) {
			t.Errorf("Got: tokens.go without %q. Want: present.", want)
		}
	}
	if i, j := strings.Index(src, `"GL_ALPHA"`), strings.Index(src, `"GL_ALWAYS"`); i < 0 || j < 0 || i > j {
		t.Errorf("Got: GL_ALPHA at %d, GL_ALWAYS at %d. Want: tokens sorted by name.", i, j)
	}
}

func TestGenerateOptions(t *testing.T) {
	cat := testCatalog(t)
	files := testingx.Must[map[string][]byte](t)(Generate(cat, Options{Package: "glcore", Source: "snapshot.xml"}))
	header := "// Code generated by glenum from snapshot.xml (registry " + cat.Source + ", api gl). DO NOT EDIT.\n\npackage glcore\n"
	for name, src := range files {
		if !bytes.HasPrefix(src, []byte(header)) {
			t.Errorf("Got: %s starting with %q. Want: %q.", name, src[:len(header)], header)
		}
	}
}

func TestGenerateEmpty(t *testing.T) {
	files := generate(t, &catalog.Catalog{APIs: []string{registry.APIGLSC2}})
	if bytes.Contains(files[StringsFile], []byte("import")) {
		t.Errorf("Got: imports in strings.go without groups. Want: none.\n%s", files[StringsFile])
	}
}
