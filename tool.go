package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"text/tabwriter"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"golang.org/x/term"

	gbuild "github.com/gopherjs/glenum/build"
	"github.com/gopherjs/glenum/build/cache"
	"github.com/gopherjs/glenum/catalog"
	"github.com/gopherjs/glenum/config"
	"github.com/gopherjs/glenum/fetch"
	"github.com/gopherjs/glenum/internal/errorList"
	"github.com/gopherjs/glenum/internal/experiments"
	"github.com/gopherjs/glenum/support"
)

// version of glenum. Cached registries are only shared between runs of the
// same version.
const version = "0.3.0"

// errStale is returned by `generate --check` when committed files are out of
// date.
var errStale = errors.New("generated files are out of date")

func main() {
	var (
		options    = &gbuild.Options{Version: version}
		configPath string
		target     config.Target
		checkOnly  bool
	)
	options.Color = term.IsTerminal(int(os.Stderr.Fd())) && os.Getenv("TERM") != "dumb"

	flagVerbose := pflag.NewFlagSet("", 0)
	flagVerbose.BoolVarP(&options.Verbose, "verbose", "v", false, "print the names of generated packages")
	flagQuiet := pflag.NewFlagSet("", 0)
	flagQuiet.BoolVarP(&options.Quiet, "quiet", "q", false, "suppress non-fatal messages")

	flagRegistry := pflag.NewFlagSet("", 0)
	flagRegistry.StringVar(&configPath, "config", "", "configuration file (default: glenum.yaml if present)")
	flagRegistry.StringVar(&options.Registry, "registry", "", "path of gl.xml")
	flagRegistry.BoolVar(&options.NoCache, "no_cache", false, "don't use the registry cache")
	flagRegistry.BoolVar(&options.Lenient, "lenient", false, "accept a registry that fails validation")

	flagTarget := pflag.NewFlagSet("", 0)
	flagTarget.StringVar(&target.Out, "out", "", "output directory; replaces the targets of the configuration file")
	flagTarget.StringVar(&target.Package, "package", "", "package name (default: base name of --out)")
	flagTarget.StringSliceVar(&target.APIs, "api", nil, "target APIs (gl, gles1, gles2, glsc2)")
	flagTarget.StringVar(&target.Profile, "profile", "", "keep only tokens available in this gl profile (core, compatibility)")
	flagTarget.StringSliceVar(&target.Groups, "groups", nil, "registry groups to include (default: all)")
	flagTarget.StringSliceVar(&target.FlagGroups, "flag_groups", nil, "groups to treat as bitmasks")
	flagTarget.BoolVar(&target.Ungrouped, "ungrouped", false, "emit tokens outside every group as untyped constants")

	// loadConfig merges the configuration file with command line flags.
	loadConfig := func(cmd *cobra.Command) (*config.Config, error) {
		cfg, err := config.Load(configPath)
		if err != nil {
			return nil, err
		}
		if cmd.Flags().Changed("registry") {
			cfg.Registry = options.Registry
		}
		options.Registry = cfg.Registry
		options.NoCache = options.NoCache || cfg.NoCache
		options.Lenient = options.Lenient || cfg.Lenient
		if target.Out != "" {
			cfg.Targets = []config.Target{target}
			cfg.ApplyDefaults()
		}
		options.Targets = cfg.Targets
		return cfg, nil
	}

	cmdGenerate := &cobra.Command{
		Use:   "generate",
		Short: "generate enum packages from gl.xml",
		Args:  cobra.NoArgs,
	}
	cmdGenerate.Flags().AddFlagSet(flagVerbose)
	cmdGenerate.Flags().AddFlagSet(flagQuiet)
	cmdGenerate.Flags().AddFlagSet(flagRegistry)
	cmdGenerate.Flags().AddFlagSet(flagTarget)
	cmdGenerate.Flags().BoolVarP(&options.Watch, "watch", "w", false, "watch the registry and regenerate on change")
	cmdGenerate.Flags().BoolVar(&checkOnly, "check", false, "report out of date files instead of writing them")
	cmdGenerate.Run = func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		cfg, err := loadConfig(cmd)
		if err == nil {
			err = cfg.Validate()
		}
		if err != nil {
			os.Exit(handleError(err, options))
		}
		s, err := gbuild.NewSession(options)
		if err != nil {
			options.PrintError("%s\n", err)
			os.Exit(1)
		}
		defer s.Close()
		for {
			err := func() error {
				if checkOnly {
					stale, err := s.Check(ctx)
					if err != nil {
						return err
					}
					for _, path := range stale {
						options.PrintError("%s\n", path)
					}
					if len(stale) > 0 {
						return errStale
					}
					return nil
				}
				results, err := s.Generate(ctx)
				if err != nil {
					return err
				}
				for _, res := range results {
					options.PrintSuccess("%s: %d groups, %d tokens, %d file(s) updated\n", res.Target.Out, res.Groups, res.Tokens, len(res.Written))
				}
				return nil
			}()
			exitCode := handleError(err, options)
			if s.Watcher == nil {
				os.Exit(exitCode)
			}
			if err := s.WaitForChange(ctx); err != nil {
				os.Exit(handleError(err, options))
			}
		}
	}

	var (
		fetchURL  string
		fetchDest string
	)
	cmdFetch := &cobra.Command{
		Use:   "fetch",
		Short: "download gl.xml from the Khronos registry",
		Args:  cobra.NoArgs,
	}
	cmdFetch.Flags().StringVar(&configPath, "config", "", "configuration file (default: glenum.yaml if present)")
	cmdFetch.Flags().StringVar(&fetchURL, "url", "", "registry URL (default: the Khronos OpenGL-Registry)")
	cmdFetch.Flags().StringVar(&fetchDest, "dest", "", "destination file (default: the configured registry path)")
	cmdFetch.Flags().AddFlagSet(flagQuiet)
	cmdFetch.Run = func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
		defer stop()

		err := func() error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if fetchURL == "" {
				fetchURL = cfg.RegistryURL
			}
			if fetchDest == "" {
				fetchDest = cfg.Registry
			}
			res, err := fetch.Registry(ctx, fetchURL, fetchDest)
			if err != nil {
				return err
			}
			options.PrintSuccess("fetched %s (%d bytes, registry %s)\n", res.Path, res.Size, res.Fingerprint)
			return nil
		}()
		os.Exit(handleError(err, options))
	}

	cmdGroups := &cobra.Command{
		Use:   "groups",
		Short: "list the enum groups of the registry",
		Args:  cobra.NoArgs,
	}
	cmdGroups.Flags().AddFlagSet(flagRegistry)
	cmdGroups.Flags().AddFlagSet(flagTarget)
	cmdGroups.Run = func(cmd *cobra.Command, args []string) {
		err := func() error {
			cat, err := loadCatalog(cmd, options, loadConfig, target)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
			fmt.Fprintln(w, "TYPE\tGROUP\tMEMBERS\tKIND")
			for _, g := range cat.Groups {
				kind := "enum"
				if g.Flags {
					kind = "flags"
				}
				if g.Wide {
					kind += ", 64-bit"
				}
				fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", g.GoName, g.Name, len(g.Members), kind)
			}
			if len(cat.Ungrouped) > 0 {
				fmt.Fprintf(w, "-\t(ungrouped)\t%d\t-\n", len(cat.Ungrouped))
			}
			return w.Flush()
		}()
		os.Exit(handleError(err, options))
	}

	var (
		glVersion    string
		glExtensions string
	)
	cmdCheck := &cobra.Command{
		Use:   "check [groups]",
		Short: "show which members of groups a GL context provides",
		Long:  "check evaluates the availability annotations of the named groups (or every group) against a GL_VERSION string, a GL_EXTENSIONS list and a profile.",
	}
	cmdCheck.Flags().AddFlagSet(flagRegistry)
	cmdCheck.Flags().StringVar(&glVersion, "gl_version", "", `GL_VERSION string, e.g. "4.6.0 NVIDIA 535.54" or "OpenGL ES 3.2 Mesa"`)
	cmdCheck.Flags().StringVar(&glExtensions, "extensions", "", "space separated GL_EXTENSIONS string")
	cmdCheck.Flags().StringVar(&target.Profile, "profile", "", "context profile (core, compatibility)")
	cmdCheck.MarkFlagRequired("gl_version")
	cmdCheck.Run = func(cmd *cobra.Command, args []string) {
		err := func() error {
			glctx, err := support.NewContext(glVersion, glExtensions, target.Profile)
			if err != nil {
				return err
			}
			// Annotations are kept for every profile so that removals show up.
			cat, err := loadCatalog(cmd, options, loadConfig, config.Target{APIs: []string{glctx.API}, Groups: args})
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
			for _, g := range cat.Groups {
				fmt.Fprintf(w, "%s (%s)\n", g.GoName, g.Name)
				for _, m := range g.Members {
					status := "no"
					if glctx.Satisfies(m.Requirements()) {
						status = "yes"
					}
					fmt.Fprintf(w, "  %s\t%s\t%s\n", m.Token, status, describe(m.Requirements()))
				}
			}
			return w.Flush()
		}()
		os.Exit(handleError(err, options))
	}

	cmdClean := &cobra.Command{
		Use:   "clean",
		Short: "clean the registry cache",
		Args:  cobra.NoArgs,
	}
	cmdClean.Run = func(cmd *cobra.Command, args []string) {
		if err := cache.Clear(); err != nil {
			os.Exit(handleError(err, options))
		}
		options.PrintSuccess("removed %s\n", cache.Root())
	}

	cmdVersion := &cobra.Command{
		Use:   "version",
		Short: "print glenum version",
		Args:  cobra.NoArgs,
	}
	cmdVersion.Run = func(cmd *cobra.Command, args []string) {
		fmt.Printf("glenum %s\n", version)
		if exps := experiments.Env.Enabled(); len(exps) > 0 {
			fmt.Printf("experiments: %s\n", strings.Join(exps, ","))
		}
	}

	rootCmd := &cobra.Command{
		Use:  "glenum",
		Long: "glenum generates typed Go catalogs of OpenGL enums from the Khronos gl.xml registry.",
	}
	rootCmd.AddCommand(cmdGenerate, cmdFetch, cmdGroups, cmdCheck, cmdClean, cmdVersion)

	{
		var logLevel string
		rootCmd.PersistentFlags().StringVar(&logLevel, "log_level", log.ErrorLevel.String(), "log level (debug, info, warn, error, fatal, panic)")
		rootCmd.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
			lvl, err := log.ParseLevel(logLevel)
			if err != nil {
				return fmt.Errorf("invalid --log_level value %q: %w", logLevel, err)
			}
			log.SetLevel(lvl)
			return nil
		}
	}

	if err := rootCmd.Execute(); err != nil {
		os.Exit(2)
	}
}

// loadCatalog builds the catalog described by the registry flags and t,
// falling back to the first configured target when t names no API.
func loadCatalog(cmd *cobra.Command, options *gbuild.Options, loadConfig func(*cobra.Command) (*config.Config, error), t config.Target) (*catalog.Catalog, error) {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return nil, err
	}
	if len(t.APIs) == 0 {
		t.APIs = []string{"gl"}
		if len(cfg.Targets) > 0 {
			t.APIs = cfg.Targets[0].APIs
		}
	}
	s, err := gbuild.NewSession(options)
	if err != nil {
		return nil, err
	}
	defer s.Close()
	reg, err := s.LoadRegistry(context.Background())
	if err != nil {
		return nil, err
	}
	return s.Catalog(reg, t)
}

func describe(reqs []support.Requirement) string {
	parts := make([]string, len(reqs))
	for i, r := range reqs {
		parts[i] = r.String()
	}
	return strings.Join(parts, "; ")
}

// handleError handles err and returns an appropriate exit code.
func handleError(err error, options *gbuild.Options) int {
	var errs errorList.ErrorList
	switch {
	case err == nil:
		return 0
	case errors.Is(err, context.Canceled):
		return 130
	case errors.Is(err, errStale):
		options.PrintError("%s\n", err)
		return 1
	case errors.As(err, &errs):
		for _, entry := range errs.Trim(10) {
			options.PrintError("%s\n", entry)
		}
		return 1
	default:
		options.PrintError("%s\n", err)
		return 1
	}
}
