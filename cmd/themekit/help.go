package main

import (
	"fmt"
	"io"
)

// printUsage prints the main usage message.
func printUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: themekit <command> [flags] [args]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Commands:")
	fmt.Fprintln(w, "  render       Render a page skeleton with head and footer markup")
	fmt.Fprintln(w, "  head         Print the wp_head output only")
	fmt.Fprintln(w, "  hooks        List the theme's hook registrations")
	fmt.Fprintln(w, "  asset-info   Show the build metadata of a bundle")
	fmt.Fprintln(w, "  version      Show version information")
	fmt.Fprintln(w, "  help         Show help for a command")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Run 'themekit help <command>' for details on a specific command.")
}

func printCommonFlags(w io.Writer) {
	fmt.Fprintln(w, "Theme:")
	fmt.Fprintln(w, "  -c, --config <name>       Config file name or path")
	fmt.Fprintln(w, "      --theme-path <dir>    Theme directory (dist/, languages/)")
	fmt.Fprintln(w, "      --theme-url <url>     Public URL of the theme directory")
	fmt.Fprintln(w, "      --locale <s>          Translation locale (default en_US)")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Output Control:")
	fmt.Fprintln(w, "      --log-file <path>     Append JSON logs to a file")
	fmt.Fprintln(w, "  -q, --quiet               Only show errors")
	fmt.Fprintln(w, "  -v, --verbose             Show debug logs")
}

// printRenderUsage prints usage for the render and head commands.
func printRenderUsage(w io.Writer, name string) {
	fmt.Fprintf(w, "Usage: themekit %s [flags]\n", name)
	fmt.Fprintln(w)
	if name == "head" {
		fmt.Fprintln(w, "Print the markup the theme and host write into <head>.")
	} else {
		fmt.Fprintln(w, "Render a minimal page: head markup, then footer scripts.")
	}
	fmt.Fprintln(w)
	printCommonFlags(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Request:")
	fmt.Fprintln(w, "      --admin               Render an admin screen")
	fmt.Fprintln(w, "      --admin-bar           Simulate the logged-in toolbar")
	fmt.Fprintln(w, "      --singular            Render a single post or page")
	fmt.Fprintln(w, "      --thumbnail <url>     Featured image URL")
	fmt.Fprintln(w, "      --thumbnail-srcset <s> Featured image srcset")
	fmt.Fprintln(w, "      --title <s>           Document title (render only)")
}

// printHooksUsage prints usage for the hooks command.
func printHooksUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: themekit hooks [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "List the theme's registrations: kind, point, name, priority, args.")
	fmt.Fprintln(w)
	printCommonFlags(w)
	fmt.Fprintln(w)
	fmt.Fprintln(w, "      --admin               List the admin registrations")
}

// printAssetInfoUsage prints usage for the asset-info command.
func printAssetInfoUsage(w io.Writer) {
	fmt.Fprintln(w, "Usage: themekit asset-info <slug> [flags]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Show the version and dependencies recorded in")
	fmt.Fprintln(w, "dist/js/<slug>.asset.json or dist/css/<slug>.asset.json.")
	fmt.Fprintln(w)
	printCommonFlags(w)
}

// runHelp prints help for a specific command.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}

	switch args[0] {
	case "render", "head":
		printRenderUsage(env.Stdout, args[0])
	case "hooks":
		printHooksUsage(env.Stdout)
	case "asset-info":
		printAssetInfoUsage(env.Stdout)
	case "version":
		fmt.Fprintln(env.Stdout, "Usage: themekit version")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show version information.")
	case "help":
		fmt.Fprintln(env.Stdout, "Usage: themekit help [command]")
		fmt.Fprintln(env.Stdout)
		fmt.Fprintln(env.Stdout, "Show help for a command.")
	default:
		fmt.Fprintf(env.Stderr, "Unknown command: %s\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}
