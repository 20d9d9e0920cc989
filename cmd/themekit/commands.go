package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/alnah/go-themekit"
	"github.com/alnah/go-themekit/internal/host"
	"github.com/alnah/go-themekit/internal/yamlutil"
)

// runRender prints a full page skeleton.
func runRender(ctx context.Context, args []string, env *Environment) error {
	flags, err := parseRenderFlags("render", args, env.Stderr)
	if err != nil {
		return err
	}
	h, s, err := bootTheme(flags, env)
	if err != nil {
		return err
	}
	defer s.Close()

	title := flags.request.title
	if title == "" {
		title = "themekit"
	}
	h.Render(ctx, env.Stdout, title)
	return ctx.Err()
}

// runHead prints the wp_head output.
func runHead(ctx context.Context, args []string, env *Environment) error {
	flags, err := parseRenderFlags("head", args, env.Stderr)
	if err != nil {
		return err
	}
	h, s, err := bootTheme(flags, env)
	if err != nil {
		return err
	}
	defer s.Close()

	h.Head(ctx, env.Stdout)
	fmt.Fprintln(env.Stdout)
	return ctx.Err()
}

// bootTheme loads the config and registers the theme on a fresh host.
func bootTheme(flags *renderFlags, env *Environment) (*host.Host, *session, error) {
	s, err := openSession(&flags.common, env)
	if err != nil {
		return nil, nil, err
	}
	h := newHost(flags.request, flags.common.locale, s.logger)
	theme, err := themekit.New(toThemeConfig(s.cfg), h, themekit.WithLogger(s.logger))
	if err != nil {
		s.Close()
		return nil, nil, err
	}
	theme.Setup(h)
	s.logger.Debug("theme registered", "admin", h.IsAdmin(), "hooks", len(h.Registrations("")))
	return h, s, nil
}

// runHooks lists the theme's registrations.
func runHooks(args []string, env *Environment) error {
	flags, err := parseHooksFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	s, err := openSession(&flags.common, env)
	if err != nil {
		return err
	}
	defer s.Close()

	h := newHost(requestFlags{admin: flags.admin}, flags.common.locale, s.logger)
	theme, err := themekit.New(toThemeConfig(s.cfg), h, themekit.WithLogger(s.logger))
	if err != nil {
		return err
	}

	fmt.Fprintf(env.Stdout, "%-7s %-22s %-31s %8s %4s\n", "KIND", "POINT", "NAME", "PRIORITY", "ARGS")
	for _, hk := range theme.Hooks(flags.admin) {
		accepted := ""
		if hk.Kind == themekit.KindFilter {
			accepted = fmt.Sprint(hk.AcceptedArgs)
		}
		fmt.Fprintf(env.Stdout, "%-7s %-22s %-31s %8d %4s\n", hk.Kind, hk.Point, hk.Name, hk.Priority, accepted)
	}
	return nil
}

// assetInfoOutput is the YAML shape printed by asset-info.
type assetInfoOutput struct {
	Slug         string   `yaml:"slug"`
	Version      string   `yaml:"version"`
	Dependencies []string `yaml:"dependencies"`
}

// runAssetInfo prints the metadata of one bundle as YAML.
func runAssetInfo(args []string, env *Environment) error {
	flags, slug, err := parseAssetInfoFlags(args, env.Stderr)
	if err != nil {
		return err
	}
	s, err := openSession(flags, env)
	if err != nil {
		return err
	}
	defer s.Close()

	if s.cfg.Theme.Path == "" {
		return fmt.Errorf("%w: asset-info needs a theme directory", themekit.ErrInvalidAssetPath)
	}
	loader, err := themekit.NewAssetInfoLoader(s.cfg.Theme.Path)
	if err != nil {
		return err
	}
	info, err := loader.LoadAssetInfo(slug)
	if err != nil {
		if errors.Is(err, themekit.ErrAssetInfoNotFound) {
			return &assetInfoError{themePath: s.cfg.Theme.Path, slug: slug, err: err}
		}
		return err
	}

	out, err := yamlutil.Marshal(assetInfoOutput{
		Slug:         slug,
		Version:      info.Version,
		Dependencies: info.Dependencies,
	})
	if err != nil {
		return fmt.Errorf("encoding asset info: %w", err)
	}
	fmt.Fprint(env.Stdout, strings.TrimRight(string(out), "\n")+"\n")
	return nil
}
