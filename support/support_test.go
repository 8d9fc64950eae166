package support

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseVersionString(t *testing.T) {
	tests := []struct {
		descr   string
		input   string
		api     string
		want    Version
		wantErr bool
	}{
		{descr: "vendor suffix", input: "4.6.0 NVIDIA 535.54", api: "gl", want: Version{4, 6}},
		{descr: "mesa compat", input: "3.3 (Compatibility Profile) Mesa 23.0.4", api: "gl", want: Version{3, 3}},
		{descr: "es", input: "OpenGL ES 3.2 Mesa 23.0.4", api: "gles2", want: Version{3, 2}},
		{descr: "es common", input: "OpenGL ES-CM 1.1", api: "gles1", want: Version{1, 1}},
		{descr: "bare", input: "2.1", api: "gl", want: Version{2, 1}},
		{descr: "build suffix", input: "4.5.0-Build.42", api: "gl", want: Version{4, 5}},
		{descr: "empty", input: "", wantErr: true},
		{descr: "garbage", input: "four.two", wantErr: true},
	}
	for _, test := range tests {
		t.Run(test.descr, func(t *testing.T) {
			api, v, err := ParseVersionString(test.input)
			if test.wantErr {
				if err == nil {
					t.Errorf("Got: %s %v. Want: error.", api, v)
				}
				return
			}
			if err != nil {
				t.Fatalf("Got: unexpected error %v. Want: no error.", err)
			}
			if api != test.api || v != test.want {
				t.Errorf("Got: %s %v. Want: %s %v.", api, v, test.api, test.want)
			}
		})
	}
}

func TestParseExtensions(t *testing.T) {
	got := ParseExtensions(" GL_ARB_compute_shader\tGL_KHR_no_error  GL_ARB_compute_shader ")
	want := map[string]bool{"GL_ARB_compute_shader": true, "GL_KHR_no_error": true}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("ParseExtensions() returned diff (-want,+got):\n%s", diff)
	}
}

func TestNewContext(t *testing.T) {
	ctx, err := NewContext("OpenGL ES 3.1 build 1.2", "GL_EXT_separate_shader_objects", "")
	if err != nil {
		t.Fatalf("Got: unexpected error %v. Want: no error.", err)
	}
	want := Context{
		API:        "gles2",
		Version:    Version{3, 1},
		Extensions: map[string]bool{"GL_EXT_separate_shader_objects": true},
	}
	if diff := cmp.Diff(want, ctx); diff != "" {
		t.Errorf("NewContext() returned diff (-want,+got):\n%s", diff)
	}
	if _, err := NewContext("unknown", "", ""); err == nil {
		t.Errorf("Got: no error. Want: malformed version error.")
	}
}

func TestSatisfies(t *testing.T) {
	accum := []Requirement{Since("gl", 1, 0).Removed(3, 2, ProfileCore)}
	compute := []Requirement{Since("gl", 4, 3), Ext("gl", "GL_ARB_compute_shader")}
	coreOnly := []Requirement{Since("gl", 3, 2).Only(ProfileCore)}

	tests := []struct {
		descr string
		ctx   Context
		reqs  []Requirement
		want  bool
	}{{
		descr: "removed from core",
		ctx:   Context{API: "gl", Profile: ProfileCore, Version: Version{3, 3}},
		reqs:  accum,
		want:  false,
	}, {
		descr: "kept in compatibility",
		ctx:   Context{API: "gl", Profile: ProfileCompatibility, Version: Version{3, 3}},
		reqs:  accum,
		want:  true,
	}, {
		descr: "before removal",
		ctx:   Context{API: "gl", Profile: ProfileCore, Version: Version{3, 1}},
		reqs:  accum,
		want:  true,
	}, {
		descr: "unknown profile keeps removed token",
		ctx:   Context{API: "gl", Version: Version{4, 6}},
		reqs:  accum,
		want:  true,
	}, {
		descr: "extension on older version",
		ctx:   Context{API: "gl", Version: Version{4, 2}, Extensions: ParseExtensions("GL_ARB_compute_shader")},
		reqs:  compute,
		want:  true,
	}, {
		descr: "neither version nor extension",
		ctx:   Context{API: "gl", Version: Version{4, 2}},
		reqs:  compute,
		want:  false,
	}, {
		descr: "core version",
		ctx:   Context{API: "gl", Version: Version{4, 3}},
		reqs:  compute,
		want:  true,
	}, {
		descr: "other api",
		ctx:   Context{API: "gles2", Version: Version{3, 2}},
		reqs:  compute,
		want:  false,
	}, {
		descr: "profile mismatch",
		ctx:   Context{API: "gl", Profile: ProfileCompatibility, Version: Version{4, 6}},
		reqs:  coreOnly,
		want:  false,
	}, {
		descr: "no requirements",
		ctx:   Context{API: "gl", Version: Version{4, 6}},
		want:  false,
	}}
	for _, test := range tests {
		t.Run(test.descr, func(t *testing.T) {
			if got := test.ctx.Satisfies(test.reqs); got != test.want {
				t.Errorf("Got: Satisfies(%v) = %v. Want: %v.", test.reqs, got, test.want)
			}
		})
	}
}

func TestRequirementString(t *testing.T) {
	tests := []struct {
		req  Requirement
		want string
	}{
		{req: Since("gl", 4, 3), want: "gl 4.3"},
		{req: Ext("gles2", "GL_NV_coverage_sample"), want: "gles2 GL_NV_coverage_sample"},
		{req: Since("gl", 1, 0).Removed(3, 2, ProfileCore), want: "gl 1.0, removed in 3.2 core"},
		{req: Ext("gl", "GL_ARB_x").Only(ProfileCore), want: "gl GL_ARB_x (core)"},
	}
	for _, test := range tests {
		if got := test.req.String(); got != test.want {
			t.Errorf("Got: %q. Want: %q.", got, test.want)
		}
	}
}
