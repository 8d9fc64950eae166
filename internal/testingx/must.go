// Package testingx provides helpers for use with the testing package.
package testingx

import (
	"os"
	"testing"
)

// Must provides a concise way to handle returned errors in test setup that
// is presumed to be correct, such as loading a checked-in registry:
//
//	reg := testingx.Must[*registry.Registry](t)(registry.ParseFile("testdata/gl.xml"))
//
// It MUST NOT be used to check the condition under test, because the failure
// message is generic.
func Must[T any](t *testing.T) func(v T, err error) T {
	return func(v T, err error) T {
		t.Helper()
		if err != nil {
			t.Fatalf("Got: unexpected error: %s. Want: no error.", err)
		}
		return v
	}
}

// ReadFile returns the contents of a test fixture or fails the test.
func ReadFile(t *testing.T, path string) []byte {
	t.Helper()
	return Must[[]byte](t)(os.ReadFile(path))
}
