package main

import (
	"context"
	"fmt"
	"os"

	"github.com/erraggy/nullscan"
	"github.com/erraggy/nullscan/cmd/nullscan/commands"
	"github.com/erraggy/nullscan/internal/mcpserver"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]

	switch command {
	case "version", "-v", "--version":
		fmt.Printf("nullscan v%s\n", nullscan.Version())
	case "help", "-h", "--help":
		printUsage()
	case "check":
		if err := commands.HandleCheck(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "parse":
		if err := commands.HandleParse(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "paths":
		if err := commands.HandlePaths(os.Args[2:]); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case "mcp":
		if err := mcpserver.Run(context.Background()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		if suggestion := suggestCommand(command); suggestion != "" {
			fmt.Fprintf(os.Stderr, "Did you mean '%s'?\n", suggestion)
		}
		fmt.Fprintln(os.Stderr)
		printUsage()
		os.Exit(1)
	}
}

// suggestCommand returns the closest known command within edit distance 2,
// or the empty string when nothing is close enough.
func suggestCommand(input string) string {
	commands := []string{"check", "parse", "paths", "mcp", "version", "help"}

	best := ""
	bestDistance := 3
	for _, cmd := range commands {
		if d := editDistance(input, cmd); d < bestDistance {
			best = cmd
			bestDistance = d
		}
	}
	return best
}

// editDistance computes the Levenshtein distance between two strings.
func editDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := 0; j <= len(b); j++ {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(prev[j]+1, curr[j-1]+1, prev[j-1]+cost)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func printUsage() {
	fmt.Println(`nullscan - null value checker for JSON and YAML documents

Usage:
  nullscan <command> [options]

Commands:
  check       Check a document for null values that are not permitted
  parse       Parse and display a document structure summary
  paths       List value paths in breadth-first order
  mcp         Run the MCP server over stdio
  version     Show version information
  help        Show this help message

Examples:
  nullscan check payload.json
  nullscan check --optional-paths user.profile.address.city payload.json
  nullscan check --paths-file optional.json https://example.com/api/payload.json
  nullscan parse payload.yaml
  nullscan paths --nulls-only payload.json
  cat payload.json | nullscan check -

Run 'nullscan <command> --help' for more information on a command.`)
}
