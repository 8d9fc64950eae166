package errorList

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func messages(errs ErrorList) []string {
	var msgs []string
	for _, err := range errs {
		msgs = append(msgs, err.Error())
	}
	return msgs
}

func TestAppend(t *testing.T) {
	var errs ErrorList
	errs = errs.Append(nil)
	if errs.ErrOrNil() != nil {
		t.Fatalf("Got: %v. Want: nil error after appending nil.", errs.ErrOrNil())
	}

	errs = errs.Append(errors.New("token GL_A: bad value"))
	errs = errs.Append(ErrorList{errors.New("token GL_B: bad value"), errors.New("token GL_C: bad value")})
	want := []string{"token GL_A: bad value", "token GL_B: bad value", "token GL_C: bad value"}
	if diff := cmp.Diff(want, messages(errs)); diff != "" {
		t.Errorf("Append() returned diff (-want,+got):\n%s", diff)
	}

	wrapped := fmt.Errorf("gl.xml: %w", ErrorList{errors.New("token GL_D: bad value")})
	errs = errs.Append(wrapped)
	if got := errs[len(errs)-1].Error(); got != "token GL_D: bad value" {
		t.Errorf("Got: last error %q. Want: wrapped list flattened.", got)
	}
}

func TestAppendDistinct(t *testing.T) {
	var errs ErrorList
	errs = errs.AppendDistinct(errors.New("duplicate GL_ZERO"))
	errs = errs.AppendDistinct(errors.New("duplicate GL_ZERO"))
	errs = errs.AppendDistinct(errors.New("duplicate GL_ONE"))
	errs = errs.AppendDistinct(nil)
	want := []string{"duplicate GL_ZERO", "duplicate GL_ONE"}
	if diff := cmp.Diff(want, messages(errs)); diff != "" {
		t.Errorf("AppendDistinct() returned diff (-want,+got):\n%s", diff)
	}
}

func TestTrim(t *testing.T) {
	errs := ErrorList{errors.New("a"), errors.New("b"), errors.New("c")}
	if got := errs.Trim(5); len(got) != 3 {
		t.Errorf("Got: %d errors. Want: untouched list of 3.", len(got))
	}
	got := errs.Trim(2)
	if len(got) != 3 || !errors.Is(got[2], ErrTooManyErrors) {
		t.Errorf("Got: %v. Want: [a b too many errors].", messages(got))
	}
	if len(errs) != 3 || errs[2].Error() != "c" {
		t.Errorf("Got: original list modified to %v. Want: [a b c].", messages(errs))
	}
}

func TestError(t *testing.T) {
	tests := []struct {
		descr string
		errs  ErrorList
		want  string
	}{{
		descr: "empty",
		want:  "<no errors>",
	}, {
		descr: "single",
		errs:  ErrorList{errors.New("a")},
		want:  "a",
	}, {
		descr: "many",
		errs:  ErrorList{errors.New("a"), errors.New("b"), errors.New("c")},
		want:  "a (and 2 more errors)",
	}}
	for _, test := range tests {
		t.Run(test.descr, func(t *testing.T) {
			if got := test.errs.Error(); got != test.want {
				t.Errorf("Got: %q. Want: %q.", got, test.want)
			}
		})
	}
}
