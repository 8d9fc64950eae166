package registry

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/gopherjs/glenum/internal/errorList"
	"github.com/gopherjs/glenum/internal/testingx"
)

func loadTestRegistry(t *testing.T) *Registry {
	t.Helper()
	return testingx.Must[*Registry](t)(ParseFile("testdata/gl.xml"))
}

func TestParseFile(t *testing.T) {
	reg := loadTestRegistry(t)

	if got, want := reg.APIs(), []string{"gl", "gles1", "gles2", "glsc2"}; !cmp.Equal(got, want) {
		t.Errorf("Got: APIs() = %v. Want: %v.", got, want)
	}
	if len(reg.Groups) != 1 || reg.Groups[0].Name != "DepthFunction" || len(reg.Groups[0].Enums) != 8 {
		t.Errorf("Got: legacy groups %+v. Want: DepthFunction with 8 tokens.", reg.Groups)
	}
	if len(reg.Extensions) != 7 {
		t.Errorf("Got: %d extensions. Want: 7.", len(reg.Extensions))
	}
	if reg.Fingerprint == "" {
		t.Errorf("Got: empty fingerprint. Want: registry digest.")
	}
	if !strings.Contains(reg.Comment, "Khronos") {
		t.Errorf("Got: comment %q. Want: registry header comment.", reg.Comment)
	}
}

func TestFeaturesFor(t *testing.T) {
	reg := loadTestRegistry(t)

	var got []string
	for _, f := range reg.FeaturesFor(APIGLES2) {
		got = append(got, f.Number)
	}
	want := []string{"2.0", "3.0", "3.1"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("FeaturesFor(gles2) returned diff (-want,+got):\n%s", diff)
	}

	gl := reg.FeaturesFor(APIGL)
	for i := 1; i < len(gl); i++ {
		if !gl[i-1].Version().Less(gl[i].Version()) {
			t.Errorf("Got: %s before %s. Want: features ordered by version.", gl[i-1].Number, gl[i].Number)
		}
	}
	if removes := gl[10].Removes; gl[10].Number != "3.2" || len(removes) != 1 || removes[0].Profile != "core" {
		t.Errorf("Got: feature %s removes %+v. Want: 3.2 with a core profile removal.", gl[10].Number, removes)
	}
}

func TestIndex(t *testing.T) {
	reg := loadTestRegistry(t)

	tests := []struct {
		api   string
		token string
		want  string
		found bool
	}{
		{api: APIGL, token: "GL_ACTIVE_PROGRAM_EXT", want: "0x8B8D", found: true},
		{api: APIGLES2, token: "GL_ACTIVE_PROGRAM_EXT", want: "0x8259", found: true},
		{api: APIGL, token: "GL_ALWAYS", want: "0x0207", found: true},
		{api: APIGLES2, token: "GL_ALWAYS", want: "0x0207", found: true},
		{api: APIGL, token: "GL_NO_SUCH_TOKEN"},
	}
	for _, test := range tests {
		t.Run(test.api+"/"+test.token, func(t *testing.T) {
			e, ok := reg.Index(test.api)[test.token]
			if ok != test.found {
				t.Fatalf("Got: found = %v. Want: %v.", ok, test.found)
			}
			if e.Value != test.want {
				t.Errorf("Got: value %q. Want: %q.", e.Value, test.want)
			}
			_, fe, fok := reg.Find(test.token, test.api)
			if fok != ok || fe != e {
				t.Errorf("Got: Find() = %+v, %v. Want: same as Index(): %+v, %v.", fe, fok, e, ok)
			}
		})
	}
}

func TestEnumGroups(t *testing.T) {
	_, e, ok := loadTestRegistry(t).Find("GL_TEXTURE_BUFFER", APIGL)
	if !ok {
		t.Fatalf("Got: GL_TEXTURE_BUFFER not found. Want: token defined.")
	}
	want := []string{"TextureTarget", "BufferTargetARB", "BufferTarget"}
	if diff := cmp.Diff(want, e.Groups()); diff != "" {
		t.Errorf("Groups() returned diff (-want,+got):\n%s", diff)
	}
	if got := (Enum{Group: " A, ,B "}).Groups(); !cmp.Equal(got, []string{"A", "B"}) {
		t.Errorf("Got: %q. Want: [A B].", got)
	}
}

func TestEnumUint64(t *testing.T) {
	tests := []struct {
		descr   string
		enum    Enum
		want    uint64
		wantErr bool
	}{{
		descr: "hex",
		enum:  Enum{Value: "0x8892"},
		want:  0x8892,
	}, {
		descr: "decimal",
		enum:  Enum{Value: "1"},
		want:  1,
	}, {
		descr: "uint",
		enum:  Enum{Value: "0xFFFFFFFF", Type: "u"},
		want:  0xFFFFFFFF,
	}, {
		descr: "uint64",
		enum:  Enum{Value: "0xFFFFFFFFFFFFFFFF", Type: "ull"},
		want:  0xFFFFFFFFFFFFFFFF,
	}, {
		descr: "negative",
		enum:  Enum{Value: "-1"},
		want:  0xFFFFFFFF,
	}, {
		descr: "negative wide",
		enum:  Enum{Value: "-1", Type: "ull"},
		want:  0xFFFFFFFFFFFFFFFF,
	}, {
		descr:   "too wide",
		enum:    Enum{Value: "0x100000000"},
		wantErr: true,
	}, {
		descr:   "garbage",
		enum:    Enum{Value: "GL_ZERO"},
		wantErr: true,
	}, {
		descr:   "empty",
		enum:    Enum{},
		wantErr: true,
	}}
	for _, test := range tests {
		t.Run(test.descr, func(t *testing.T) {
			got, err := test.enum.Uint64()
			if test.wantErr {
				if !errors.Is(err, ErrInvalidValue) {
					t.Errorf("Got: %v. Want: ErrInvalidValue.", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Got: unexpected error %v. Want: no error.", err)
			}
			if got != test.want {
				t.Errorf("Got: 0x%X. Want: 0x%X.", got, test.want)
			}
		})
	}
}

func TestParseVersion(t *testing.T) {
	v, err := ParseVersion("4.3")
	if err != nil {
		t.Fatalf("Got: unexpected error %v. Want: no error.", err)
	}
	if v != (Version{Major: 4, Minor: 3}) || v.String() != "4.3" {
		t.Errorf("Got: %#v. Want: 4.3.", v)
	}
	for _, bad := range []string{"", "4", "a.b", "4.x"} {
		if _, err := ParseVersion(bad); err == nil {
			t.Errorf("Got: no error for %q. Want: malformed version error.", bad)
		}
	}
	if !(Version{1, 5}).Less(Version{2, 0}) || (Version{3, 2}).Less(Version{3, 1}) {
		t.Errorf("Got: wrong Less() ordering. Want: major first, then minor.")
	}
}

func TestValidate(t *testing.T) {
	const doc = `<registry>
	<enums namespace="GL">
		<enum value="0x1" name="GL_A"/>
		<enum value="0x2" name="GL_A"/>
		<enum value="bogus" name="GL_B"/>
		<enum value="0x3" name="GL_C" api="gl"/>
		<enum value="0x4" name="GL_C" api="gles2"/>
	</enums>
	<feature api="gl" name="GL_VERSION_X" number="x"/>
</registry>`

	reg, err := Parse(strings.NewReader(doc))
	if reg == nil {
		t.Fatalf("Got: nil registry. Want: decoded registry alongside validation errors.")
	}
	var errs errorList.ErrorList
	if !errors.As(err, &errs) {
		t.Fatalf("Got: %v. Want: errorList.ErrorList.", err)
	}
	if len(errs) != 3 {
		t.Errorf("Got: %d errors:\n%s\nWant: 3 (duplicate, bad value, bad version).", len(errs), errs.Detail())
	}
}

func TestParseMalformed(t *testing.T) {
	if _, err := Parse(strings.NewReader("<registry><enums>")); err == nil {
		t.Errorf("Got: no error. Want: decode error for truncated document.")
	}
}

func TestFingerprint(t *testing.T) {
	a := Fingerprint([]byte("<registry/>"))
	b := Fingerprint([]byte("<registry/>"))
	c := Fingerprint([]byte("<registry></registry>"))
	if a != b {
		t.Errorf("Got: %s != %s. Want: stable fingerprint.", a, b)
	}
	if a == c {
		t.Errorf("Got: %s for different documents. Want: distinct fingerprints.", a)
	}
	if len(a) != 32 {
		t.Errorf("Got: fingerprint length %d. Want: 32 hex digits.", len(a))
	}
}

func TestExtensionSupports(t *testing.T) {
	x := Extension{Name: "GL_KHR_no_error", Supported: "gl|glcore|gles2"}
	for _, api := range []string{APIGL, APIGLCore, APIGLES2} {
		if !x.Supports(api) {
			t.Errorf("Got: %s not supported. Want: supported.", api)
		}
	}
	if x.Supports(APIGLES1) {
		t.Errorf("Got: gles1 supported. Want: unsupported.")
	}
	if (Extension{}).SupportedAPIs() != nil {
		t.Errorf("Got: APIs for empty supported attribute. Want: nil.")
	}
}
