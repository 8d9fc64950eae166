// Package build runs glenum generation: it loads a registry, builds a
// catalog for every configured target and writes the generated packages.
package build

import (
	"bytes"
	"context"
	"crypto/sha256"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/gofrs/flock"
	log "github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/gopherjs/glenum/build/cache"
	"github.com/gopherjs/glenum/catalog"
	"github.com/gopherjs/glenum/config"
	"github.com/gopherjs/glenum/gen"
	"github.com/gopherjs/glenum/internal/errorList"
	"github.com/gopherjs/glenum/internal/experiments"
	"github.com/gopherjs/glenum/registry"
)

// Options of a generation session.
type Options struct {
	// Registry is the path of gl.xml.
	Registry string
	Targets  []config.Target
	Verbose  bool
	Quiet    bool
	Watch    bool
	Color    bool
	NoCache  bool
	// Lenient accepts a registry that fails validation as long as it decodes.
	Lenient bool
	// Version of glenum, part of the cache key.
	Version string
}

// PrintError message to the terminal.
func (o *Options) PrintError(format string, a ...any) {
	if o.Color {
		format = "\x1B[31m" + format + "\x1B[39m"
	}
	fmt.Fprintf(os.Stderr, format, a...)
}

// PrintSuccess message to the terminal.
func (o *Options) PrintSuccess(format string, a ...any) {
	if o.Quiet {
		return
	}
	if o.Color {
		format = "\x1B[32m" + format + "\x1B[39m"
	}
	fmt.Fprintf(os.Stderr, format, a...)
}

// Result describes one generated target.
type Result struct {
	Target config.Target
	// Written lists files whose content changed.
	Written []string
	// Unchanged lists files that already had the generated content.
	Unchanged []string
	Groups    int
	Tokens    int
}

// Session holds the state of a generate run. In watch mode a session is
// reused across runs.
type Session struct {
	options *Options
	cache   *cache.BuildCache
	watched map[string]bool
	Watcher *fsnotify.Watcher
}

// NewSession validates options and prepares a session.
func NewSession(options *Options) (*Session, error) {
	if options.Registry == "" {
		return nil, errors.New("no registry file given")
	}
	options.Verbose = options.Verbose || options.Watch

	s := &Session{
		options: options,
		watched: map[string]bool{},
	}
	if !options.NoCache {
		s.cache = &cache.BuildCache{
			Version: options.Version,
			Lenient: options.Lenient,
		}
	}
	if options.Watch {
		var err error
		s.Watcher, err = fsnotify.NewWatcher()
		if err != nil {
			return nil, fmt.Errorf("failed to start watcher: %w", err)
		}
	}
	return s, nil
}

// Close releases the watcher, if any.
func (s *Session) Close() error {
	if s.Watcher == nil {
		return nil
	}
	return s.Watcher.Close()
}

// LoadRegistry returns the decoded registry, from the cache when it is up to
// date.
func (s *Session) LoadRegistry(ctx context.Context) (*registry.Registry, error) {
	path := s.options.Registry
	if err := s.watch(path); err != nil {
		return nil, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}

	reg := &registry.Registry{}
	if s.cache.Load(reg, path, info.ModTime()) {
		return reg, nil
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	reg, err = registry.ParseFile(path)
	if err != nil {
		var errs errorList.ErrorList
		if reg == nil || !s.options.Lenient || !errors.As(err, &errs) {
			return nil, err
		}
		log.Warningf("Registry %s has %d problem(s), continuing: %v", path, len(errs), errs.Trim(10))
	}
	log.Infof("Decoded registry %s (%s) in %v.", path, reg.Fingerprint, time.Since(start).Round(time.Millisecond))
	s.cache.Store(reg, path, time.Now())
	return reg, nil
}

// Catalog builds the catalog of one target.
func (s *Session) Catalog(reg *registry.Registry, t config.Target) (*catalog.Catalog, error) {
	cat, err := catalog.Build(reg, catalog.Options{
		APIs:             t.APIs,
		Profile:          t.Profile,
		Groups:           t.Groups,
		FlagGroups:       t.FlagGroups,
		IncludeUngrouped: t.Ungrouped,
	})
	if err != nil {
		return nil, err
	}
	if experiments.Env.StrictFlags {
		var errs errorList.ErrorList
		for _, g := range cat.Groups {
			if g.Flags {
				errs = errs.Append(catalog.ValidateFlags(g))
			}
		}
		if err := errs.ErrOrNil(); err != nil {
			return nil, err
		}
	}
	return cat, nil
}

// Render returns the generated files of one target without writing them.
func (s *Session) Render(reg *registry.Registry, t config.Target) (*catalog.Catalog, map[string][]byte, error) {
	cat, err := s.Catalog(reg, t)
	if err != nil {
		return nil, nil, err
	}
	files, err := gen.Generate(cat, gen.Options{
		Package: t.Package,
		Source:  filepath.Base(s.options.Registry),
	})
	if err != nil {
		return nil, nil, err
	}
	return cat, files, nil
}

// Generate loads the registry and writes every target. Targets are generated
// concurrently; each output directory is locked while it is written.
func (s *Session) Generate(ctx context.Context) ([]Result, error) {
	reg, err := s.LoadRegistry(ctx)
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(s.options.Targets))
	g, ctx := errgroup.WithContext(ctx)
	if experiments.Env.Serial {
		g.SetLimit(1)
	}
	for i, t := range s.options.Targets {
		i, t := i, t
		g.Go(func() error {
			res, err := s.generateTarget(ctx, reg, t)
			if err != nil {
				return fmt.Errorf("target %s: %w", t.Out, err)
			}
			results[i] = *res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

func (s *Session) generateTarget(ctx context.Context, reg *registry.Registry, t config.Target) (*Result, error) {
	cat, files, err := s.Render(reg, t)
	if err != nil {
		return nil, err
	}
	res := &Result{Target: t, Groups: len(cat.Groups), Tokens: len(cat.Tokens())}
	res.Written, res.Unchanged, err = writeFiles(ctx, t.Out, files)
	if err != nil {
		return nil, err
	}
	if s.options.Verbose {
		log.Infof("Generated %s: %d groups, %d tokens, %d file(s) updated.", t.Out, res.Groups, res.Tokens, len(res.Written))
	}
	return res, nil
}

// Check reports the generated files of every target that differ from the
// files on disk.
func (s *Session) Check(ctx context.Context) ([]string, error) {
	reg, err := s.LoadRegistry(ctx)
	if err != nil {
		return nil, err
	}
	var stale []string
	for _, t := range s.options.Targets {
		_, files, err := s.Render(reg, t)
		if err != nil {
			return nil, fmt.Errorf("target %s: %w", t.Out, err)
		}
		for name, src := range files {
			path := filepath.Join(t.Out, name)
			if old, err := os.ReadFile(path); err != nil || !bytes.Equal(old, src) {
				stale = append(stale, path)
			}
		}
	}
	sort.Strings(stale)
	return stale, nil
}

// lockPath returns the lock file guarding dir. The lock lives outside dir so
// that the generated package doesn't gain stray files.
func lockPath(dir string) string {
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	}
	sum := fmt.Sprintf("%x", sha256.Sum256([]byte(dir)))
	return filepath.Join(os.TempDir(), "glenum-"+sum[:16]+".lock")
}

// writeFiles writes files into dir while holding the directory lock. Files
// that already have the wanted content are left untouched.
func writeFiles(ctx context.Context, dir string, files map[string][]byte) (written, unchanged []string, err error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, nil, err
	}
	lock := flock.New(lockPath(dir))
	locked, err := lock.TryLockContext(ctx, 50*time.Millisecond)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to lock %s: %w", dir, err)
	}
	if !locked {
		return nil, nil, fmt.Errorf("failed to lock %s", dir)
	}
	defer lock.Unlock()

	names := make([]string, 0, len(files))
	for name := range files {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		path := filepath.Join(dir, name)
		if old, err := os.ReadFile(path); err == nil && bytes.Equal(old, files[name]) {
			unchanged = append(unchanged, path)
			continue
		}
		if err := writeFile(path, files[name]); err != nil {
			return written, unchanged, err
		}
		written = append(written, path)
	}
	return written, unchanged, nil
}

// writeFile replaces path through a temporary file in the same directory.
func writeFile(path string, data []byte) error {
	f, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	defer os.Remove(f.Name())
	if _, err := f.Write(data); err != nil {
		f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return err
	}
	if err := os.Chmod(f.Name(), 0o644); err != nil {
		return err
	}
	return os.Rename(f.Name(), path)
}

// watch adds the directory of path to the watcher. Editors often replace
// files instead of writing them, so events are filtered by name.
func (s *Session) watch(path string) error {
	if s.Watcher == nil {
		return nil
	}
	path = filepath.Clean(path)
	if s.watched[path] {
		return nil
	}
	if err := s.Watcher.Add(filepath.Dir(path)); err != nil {
		return fmt.Errorf("failed to watch %s: %w", path, err)
	}
	s.watched[path] = true
	return nil
}

// WaitForChange blocks until a watched file changes or ctx is done.
func (s *Session) WaitForChange(ctx context.Context) error {
	if s.Watcher == nil {
		return errors.New("watch mode is not enabled")
	}
	s.options.PrintSuccess("watching for changes...\n")
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-s.Watcher.Events:
			if !ok {
				return errors.New("watcher closed")
			}
			if !s.watched[filepath.Clean(ev.Name)] || ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			s.options.PrintSuccess("change detected: %s\n", ev.Name)
			return nil
		case err, ok := <-s.Watcher.Errors:
			if !ok {
				return errors.New("watcher closed")
			}
			s.options.PrintError("watcher error: %s\n", err.Error())
			return err
		}
	}
}
