package registry

import (
	"bytes"
	"encoding/hex"
	"encoding/xml"
	"fmt"
	"io"
	"os"

	"golang.org/x/crypto/blake2b"

	"github.com/gopherjs/glenum/internal/errorList"
)

// Parse decodes a registry document and validates it.
//
// When the document is well-formed but fails validation, the decoded registry
// is returned together with an errorList.ErrorList describing every problem,
// so that callers may decide to proceed.
func Parse(r io.Reader) (*Registry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read registry: %w", err)
	}
	reg := &Registry{}
	d := xml.NewDecoder(bytes.NewReader(data))
	if err := d.Decode(reg); err != nil {
		return nil, fmt.Errorf("failed to decode registry: %w", err)
	}
	reg.Fingerprint = Fingerprint(data)
	return reg, reg.Validate()
}

// ParseFile decodes the registry stored at path.
func ParseFile(path string) (*Registry, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	reg, err := Parse(f)
	if err != nil {
		return reg, fmt.Errorf("%s: %w", path, err)
	}
	return reg, nil
}

// Fingerprint returns a stable digest of raw registry bytes.
func Fingerprint(data []byte) string {
	sum := blake2b.Sum256(data)
	return hex.EncodeToString(sum[:16])
}

// Validate checks that every token value parses, that no token is defined
// twice for the same API and that every feature number is well-formed.
func (r *Registry) Validate() error {
	var errs errorList.ErrorList
	type key struct{ name, api string }
	defined := map[key]bool{}
	for _, b := range r.Blocks {
		for _, e := range b.Enums {
			if e.Name == "" {
				errs = errs.Append(fmt.Errorf("enums block %q: token without a name", b.Comment))
				continue
			}
			if _, err := e.Uint64(); err != nil {
				errs = errs.Append(fmt.Errorf("token %s: %w", e.Name, err))
			}
			k := key{e.Name, e.API}
			if defined[k] {
				errs = errs.Append(fmt.Errorf("token %s defined more than once for api %q", e.Name, e.API))
			}
			defined[k] = true
		}
	}
	for _, f := range r.Features {
		if _, err := ParseVersion(f.Number); err != nil {
			errs = errs.Append(fmt.Errorf("feature %s: %w", f.Name, err))
		}
	}
	return errs.ErrOrNil()
}
