package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/variantform/variantform"
	"github.com/variantform/variantform/cmd/variantform/commands"
)

// commandNames are the subcommands offered as suggestions for typos.
var commandNames = []string{
	"resolve", "diff", "status", "validate", "surfaces",
	"init", "create", "mcp", "version", "help",
}

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 1 {
		printUsage()
		return 1
	}

	command := args[0]
	var handler func([]string) error

	switch command {
	case "version", "--version":
		fmt.Printf("variantform v%s\n", variantform.Version())
		if len(args) > 1 && (args[1] == "-v" || args[1] == "--verbose") {
			fmt.Print(variantform.BuildInfo())
		}
		return 0
	case "help", "-h", "--help":
		printUsage()
		return 0
	case "resolve":
		handler = commands.HandleResolve
	case "diff":
		handler = commands.HandleDiff
	case "status":
		handler = commands.HandleStatus
	case "validate":
		handler = commands.HandleValidate
	case "surfaces":
		handler = commands.HandleSurfaces
	case "init":
		handler = commands.HandleInit
	case "create":
		handler = commands.HandleCreate
	case "mcp":
		handler = commands.HandleMCP
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if s := suggestCommand(command); s != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", s)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		return 1
	}

	if err := handler(args[1:]); err != nil {
		if !errors.Is(err, commands.ErrIssuesFound) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		return 1
	}
	return 0
}

// suggestCommand returns the closest known command within edit distance 2,
// or "" when nothing is close enough.
func suggestCommand(input string) string {
	best, bestDist := "", 3
	for _, name := range commandNames {
		if d := editDistance(input, name); d < bestDist {
			best, bestDist = name, d
		}
	}
	return best
}

func editDistance(a, b string) int {
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			cur[j] = min(prev[j]+1, cur[j-1]+1, prev[j-1]+cost)
		}
		prev, cur = cur, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`variantform - per-variant config overlays

Usage:
  variantform <command> [options]

Commands:
  resolve     Print the effective surfaces of a variant
  diff        List the surfaces and keys a variant overrides
  status      Summarize overrides and stray files for every variant
  validate    Check every variant for stale keys and malformed overrides
  surfaces    List the declared surfaces
  init        Create .variantform.yaml and variants/
  create      Add a variant
  mcp         Serve the Model Context Protocol over stdio
  version     Show version information (-v for build details)
  help        Show this help message

Global Flags:
  -C, --project dir   project root (default: current directory)
  -v, --verbose       log debug output to stderr

Examples:
  variantform init -s config/features.json:json -s theme/brand.css:css
  variantform create acme
  variantform resolve acme --surface config/features.json
  variantform diff acme --patch
  variantform validate -C ./app

Run 'variantform <command> --help' for more information on a command.`)
}
