// Package cache keeps decoded registries between glenum runs, so that an
// unchanged gl.xml isn't decoded and validated again on every generate.
package cache

import (
	"compress/gzip"
	"crypto/sha256"
	"encoding/gob"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"
)

// Cacheable defines methods to serialize and deserialize cachable objects.
//
// The encode and decode functions are typically wrappers around gob.Encoder.Encode
// and gob.Decoder.Decode.
type Cacheable interface {
	Write(encode func(any) error) error
	Read(decode func(any) error) error
}

// Cache defines methods to store and load cacheable objects.
type Cache interface {

	// Store stores the object decoded from the given source file.
	// Any error inside this method will cause the cache not to be persisted.
	//
	// The passed in buildTime is used to determine if the entry is out-of-date
	// when reloaded. Typically it should be set to the source modification
	// time or time.Now().
	Store(c Cacheable, source string, buildTime time.Time) bool

	// Load reads a previously cached object for the given source file, if it
	// was stored with the same configuration and is newer than srcModTime.
	Load(c Cacheable, source string, srcModTime time.Time) bool
}

// cacheRoot is the base path for the registry cache.
var cacheRoot = func() string {
	path, err := os.UserCacheDir()
	if err == nil {
		return filepath.Join(path, "glenum", "registry_cache")
	}
	return filepath.Join(os.TempDir(), "glenum_registry_cache")
}()

// Root returns the directory holding the cache.
func Root() string { return cacheRoot }

// cachedPath returns a location inside the cache for a given set of key
// strings. The set of keys must uniquely identify cacheable object.
func cachedPath(keys ...string) string {
	key := path.Join(keys...)
	if key == "" {
		panic("cachedPath() must not be used with an empty string")
	}
	sum := fmt.Sprintf("%x", sha256.Sum256([]byte(key)))
	return filepath.Join(cacheRoot, sum[0:2], sum)
}

// Clear the cache. This will remove *all* cached registries of *all*
// configurations.
func Clear() error {
	return os.RemoveAll(cacheRoot)
}

var _ Cache = (*BuildCache)(nil)

// BuildCache manages decoded registries that are cached between runs.
//
// Cache is designed to be non-durable: any store and load errors are swallowed
// and simply lead to a cache miss. The caller must be able to handle cache
// misses. Nil pointer to BuildCache is valid and simply disables caching.
//
// BuildCache struct fields represent parameters which change invalidates the
// cache. A registry stored by one glenum version is never loaded by another.
//
// The cached files are gzip compressed, therefore each file uses the gzip
// checksum as a basic integrity check performed after reading the file.
type BuildCache struct {
	// Version should be set to the glenum version.
	Version string

	// Lenient is set when registries failing validation are accepted. Such
	// registries must not be served to strict runs.
	Lenient bool
}

func (bc BuildCache) String() string {
	return fmt.Sprintf("%#v", bc)
}

func (bc *BuildCache) Store(c Cacheable, source string, buildTime time.Time) bool {
	if bc == nil {
		return false // Caching is disabled.
	}

	start := time.Now()
	path := cachedPath(bc.sourceKey(source))
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		log.Warningf("Failed to create registry cache directory: %v", err)
		return false
	}
	// Write the entry in a temporary file first to avoid concurrency errors.
	f, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path))
	if err != nil {
		log.Warningf("Failed to create temporary registry cache file: %v", err)
		return false
	}
	defer f.Close()
	if err := bc.serialize(c, buildTime, f); err != nil {
		log.Warningf("Failed to write registry cache for %q: %v", source, err)
		os.Remove(f.Name())
		return false
	}
	f.Close()
	if err := os.Rename(f.Name(), path); err != nil {
		log.Warningf("Failed to rename registry cache for %q to %q: %v", source, path, err)
		return false
	}
	dur := time.Since(start).Round(time.Millisecond)
	log.Infof("Successfully stored registry %q as %q (%v).", source, path, dur)
	return true
}

func (bc *BuildCache) Load(c Cacheable, source string, srcModTime time.Time) bool {
	if bc == nil {
		return false // Caching is disabled.
	}

	start := time.Now()
	path := cachedPath(bc.sourceKey(source))
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Infof("No cached registry for %q at %q.", source, path)
		} else {
			log.Warningf("Failed to open cached registry for %q at %q: %v", source, path, err)
		}
		return false // Cache miss.
	}
	defer f.Close()
	buildTime, old, err := bc.deserialize(c, srcModTime, f)
	if err != nil {
		log.Warningf("Failed to read cached registry for %q at %q: %v", source, path, err)
		return false // Invalid/corrupted entry, cache miss.
	}
	if old {
		log.Infof("Found out-of-date registry for %q, stored at %v.", source, buildTime)
		return false
	}
	dur := time.Since(start).Round(time.Millisecond)
	log.Infof("Found cached registry for %q, stored at %v (%v).", source, buildTime, dur)
	return true
}

func (bc *BuildCache) serialize(c Cacheable, buildTime time.Time, w io.Writer) (err error) {
	zw := gzip.NewWriter(w)
	defer func() {
		// This close flushes the gzip but does not close the given writer.
		if closeErr := zw.Close(); err == nil {
			err = closeErr
		}
	}()

	ge := gob.NewEncoder(zw)
	if err := ge.Encode(buildTime); err != nil {
		return err
	}
	return c.Write(ge.Encode)
}

func (bc *BuildCache) deserialize(c Cacheable, srcModTime time.Time, r io.Reader) (buildTime time.Time, old bool, err error) {
	zr, err := gzip.NewReader(r)
	if err != nil {
		return buildTime, false, err
	}
	defer func() {
		// This close checks the gzip checksum but does not close the given reader.
		if closeErr := zr.Close(); err == nil {
			err = closeErr
		}
	}()

	gd := gob.NewDecoder(zr)
	if err := gd.Decode(&buildTime); err != nil {
		return buildTime, false, err
	}
	if srcModTime.After(buildTime) {
		return buildTime, true, nil // Source changed since, cache miss.
	}
	return buildTime, false, c.Read(gd.Decode)
}

// commonKey returns a part of the cache key common for all entries stored
// under a given BuildCache configuration.
func (bc *BuildCache) commonKey() string {
	return fmt.Sprintf("%#v", *bc)
}

// sourceKey returns a full cache key for a registry file. Relative paths are
// made absolute so that runs from different directories share entries.
func (bc *BuildCache) sourceKey(source string) string {
	if abs, err := filepath.Abs(source); err == nil {
		source = abs
	}
	return path.Join("registry", bc.commonKey(), source)
}
