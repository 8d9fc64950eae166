// Package fetch downloads the OpenGL registry.
package fetch

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/cavaliercoder/grab"
	log "github.com/sirupsen/logrus"

	"github.com/gopherjs/glenum/registry"
)

// Result describes a downloaded registry.
type Result struct {
	Path        string
	Fingerprint string
	Size        int64
	Duration    time.Duration
}

// Registry downloads gl.xml from url into dest.
//
// The document is fetched into a temporary file next to dest and must decode
// as a registry before it replaces dest, so a failed download never clobbers
// a working copy. Validation problems are logged but don't fail the fetch;
// they are reported again when the registry is used.
func Registry(ctx context.Context, url, dest string) (*Result, error) {
	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return nil, fmt.Errorf("failed to create %s: %w", filepath.Dir(dest), err)
	}
	tmp := dest + ".download"
	defer os.Remove(tmp)

	req, err := grab.NewRequest(tmp, url)
	if err != nil {
		return nil, fmt.Errorf("couldn't make request for %s: %w", url, err)
	}
	req = req.WithContext(ctx)
	req.NoResume = true
	// The registry cache compares modification times with its own store time.
	req.IgnoreRemoteTime = true

	client := grab.NewClient()
	client.UserAgent = "glenum"

	log.Infof("Downloading %s...", url)
	resp := client.Do(req)
	if err := resp.Err(); err != nil {
		return nil, fmt.Errorf("download of %s failed: %w", url, err)
	}
	log.Infof("Downloaded [%v] %s in %v.", resp.HTTPResponse.Status, url, resp.Duration().Round(time.Millisecond))

	reg, err := registry.ParseFile(tmp)
	if reg == nil {
		return nil, fmt.Errorf("%s is not a registry: %w", url, err)
	}
	if err != nil {
		log.Warningf("Downloaded registry has problems: %v", err)
	}
	if err := os.Rename(tmp, dest); err != nil {
		return nil, fmt.Errorf("failed to move registry to %s: %w", dest, err)
	}
	return &Result{
		Path:        dest,
		Fingerprint: reg.Fingerprint,
		Size:        resp.BytesComplete(),
		Duration:    resp.Duration(),
	}, nil
}
