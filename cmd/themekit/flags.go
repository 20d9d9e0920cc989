package main

import (
	"errors"
	"fmt"
	"io"

	flag "github.com/spf13/pflag"
)

// Sentinel errors for CLI operations.
var (
	ErrUsage   = errors.New("invalid usage")
	ErrOpenLog = errors.New("cannot open log file")
)

// commonFlags holds flags shared across commands.
type commonFlags struct {
	config    string
	themePath string
	themeURL  string
	logFile   string
	locale    string
	quiet     bool
	verbose   bool
}

// requestFlags describe the simulated request.
type requestFlags struct {
	admin           bool
	adminBar        bool
	singular        bool
	thumbnail       string
	thumbnailSrcset string
	title           string
}

// renderFlags holds flags for the render and head commands.
type renderFlags struct {
	common  commonFlags
	request requestFlags
}

// hooksFlags holds flags for the hooks command.
type hooksFlags struct {
	common commonFlags
	admin  bool
}

// addCommonFlags adds common flags to a FlagSet.
func addCommonFlags(fs *flag.FlagSet, f *commonFlags) {
	fs.StringVarP(&f.config, "config", "c", "", "config file name or path")
	fs.StringVar(&f.themePath, "theme-path", "", "theme directory (overrides theme.path)")
	fs.StringVar(&f.themeURL, "theme-url", "", "public theme URL (overrides theme.url)")
	fs.StringVar(&f.logFile, "log-file", "", "append JSON logs to this file")
	fs.StringVar(&f.locale, "locale", "", "translation locale (default en_US)")
	fs.BoolVarP(&f.quiet, "quiet", "q", false, "only show errors")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "show debug logs")
}

// addRequestFlags adds request simulation flags to a FlagSet.
func addRequestFlags(fs *flag.FlagSet, f *requestFlags) {
	fs.BoolVar(&f.admin, "admin", false, "render an admin screen")
	fs.BoolVar(&f.adminBar, "admin-bar", false, "simulate a logged-in user with the toolbar")
	fs.BoolVar(&f.singular, "singular", false, "render a single post or page")
	fs.StringVar(&f.thumbnail, "thumbnail", "", "featured image URL of the post")
	fs.StringVar(&f.thumbnailSrcset, "thumbnail-srcset", "", "srcset of the featured image")
	fs.StringVar(&f.title, "title", "", "document title (render only)")
}

// parseRenderFlags parses render/head flags. No positional arguments.
func parseRenderFlags(name string, args []string, stderr io.Writer) (*renderFlags, error) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &renderFlags{}
	addCommonFlags(fs, &f.common)
	addRequestFlags(fs, &f.request)
	fs.Usage = func() { printRenderUsage(stderr, name) }

	if err := parse(fs, args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: %s takes no arguments, got %q", ErrUsage, name, fs.Args())
	}
	applyEnv(loadEnvConfig(), &f.common)
	return f, nil
}

// parseHooksFlags parses hooks command flags.
func parseHooksFlags(args []string, stderr io.Writer) (*hooksFlags, error) {
	fs := flag.NewFlagSet("hooks", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &hooksFlags{}
	addCommonFlags(fs, &f.common)
	fs.BoolVar(&f.admin, "admin", false, "list the admin registrations")
	fs.Usage = func() { printHooksUsage(stderr) }

	if err := parse(fs, args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("%w: hooks takes no arguments", ErrUsage)
	}
	applyEnv(loadEnvConfig(), &f.common)
	return f, nil
}

// parseAssetInfoFlags parses asset-info flags and returns the slug.
func parseAssetInfoFlags(args []string, stderr io.Writer) (*commonFlags, string, error) {
	fs := flag.NewFlagSet("asset-info", flag.ContinueOnError)
	fs.SetOutput(stderr)
	f := &commonFlags{}
	addCommonFlags(fs, f)
	fs.Usage = func() { printAssetInfoUsage(stderr) }

	if err := parse(fs, args); err != nil {
		return nil, "", err
	}
	if fs.NArg() != 1 {
		return nil, "", fmt.Errorf("%w: asset-info takes exactly one slug", ErrUsage)
	}
	applyEnv(loadEnvConfig(), f)
	return f, fs.Arg(0), nil
}

// parse wraps flag errors as usage errors, keeping ErrHelp recognizable.
func parse(fs *flag.FlagSet, args []string) error {
	err := fs.Parse(args)
	if err == nil || errors.Is(err, flag.ErrHelp) {
		return err
	}
	return fmt.Errorf("%w: %v", ErrUsage, err)
}
