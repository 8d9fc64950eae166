package main

import (
	"context"
	"errors"
	"fmt"
	"testing"

	gbuild "github.com/gopherjs/glenum/build"
	"github.com/gopherjs/glenum/internal/errorList"
	"github.com/gopherjs/glenum/support"
)

func TestHandleError(t *testing.T) {
	options := &gbuild.Options{Quiet: true}
	tests := []struct {
		descr string
		err   error
		want  int
	}{
		{descr: "success", err: nil, want: 0},
		{descr: "plain error", err: errors.New("boom"), want: 1},
		{descr: "error list", err: errorList.ErrorList{errors.New("a"), errors.New("b")}, want: 1},
		{descr: "stale", err: errStale, want: 1},
		{descr: "interrupted", err: fmt.Errorf("target gl: %w", context.Canceled), want: 130},
	}
	for _, test := range tests {
		t.Run(test.descr, func(t *testing.T) {
			if got := handleError(test.err, options); got != test.want {
				t.Errorf("Got: handleError(%v) = %d. Want: %d.", test.err, got, test.want)
			}
		})
	}
}

func TestDescribe(t *testing.T) {
	reqs := []support.Requirement{
		support.Since("gl", 1, 0).Removed(3, 2, "core"),
		support.Ext("gl", "GL_ARB_imaging"),
	}
	want := "gl 1.0, removed in 3.2 core; gl GL_ARB_imaging"
	if got := describe(reqs); got != want {
		t.Errorf("Got: %q. Want: %q.", got, want)
	}
}
