package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
)

var (
	version = "dev"
)

func main() {
	args := os.Args[1:]

	// Extract --profile before positional args
	profileTok := ""
	filteredArgs := make([]string, 0, len(args))
	for i := 0; i < len(args); i++ {
		if args[i] == "--profile" || args[i] == "-p" {
			if i+1 < len(args) {
				profileTok = args[i+1]
				i++
			}
			continue
		}
		filteredArgs = append(filteredArgs, args[i])
	}

	if len(filteredArgs) < 1 {
		printUsage()
		os.Exit(1)
	}

	if filteredArgs[0] == "--help" || filteredArgs[0] == "-h" {
		printHelp()
		os.Exit(0)
	}

	if filteredArgs[0] == "--version" || filteredArgs[0] == "-v" {
		fmt.Printf("confexplorer %s\n", version)
		os.Exit(0)
	}

	path := filteredArgs[0]

	if _, err := os.Stat(path); err != nil {
		fmt.Fprintf(os.Stderr, "Error: config file not found: %s\n", path)
		os.Exit(1)
	}

	p := tea.NewProgram(newModel(path, profileTok), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "Usage: confexplorer [--profile TOKEN] <config-file>")
	fmt.Fprintln(os.Stderr, "Try 'confexplorer --help' for more information.")
}

func printHelp() {
	fmt.Println(`confexplorer - interactive browser for structured config files

Usage:
  confexplorer [--profile TOKEN] <config-file>

Flags:
  -p, --profile TOKEN   Dialect override (ini, php, php-define,
                        php-unquoted, php-variable, conf, cnf);
                        default is sniffed from the file extension
  -h, --help            Show this help
  -v, --version         Show version

Keys:
  up/k, down/j          Move selection
  g, G                  Jump to first / last key
  tab                   Toggle between key view and raw file view
  r                     Reload the file from disk
  q, ctrl+c             Quit`)
}
