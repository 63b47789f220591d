package main

import (
	"fmt"
	"os"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/joshuapare/confkit/pkg/conf"
)

var (
	// Global flags
	verbose    bool
	quiet      bool
	jsonOut    bool
	force      bool
	profileTok string
	blockSpec  string
	occurrence int
)

var rootCmd = &cobra.Command{
	Use:   "confctl",
	Short: "Edit structured config files by key",
	Long: `confctl edits ini-style, Apache-style, MySQL option, and PHP
define()/variable configuration files by key, without a grammar-aware
parser. Edits can be scoped to a delimited region of the file with
--block "BEGIN,END", and duplicate keys are addressed by occurrence.`,
	Version: version,
}

func init() {
	// Global flags
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.PersistentFlags().
		BoolVarP(&quiet, "quiet", "q", false, "Suppress all output except errors")
	rootCmd.PersistentFlags().BoolVar(&jsonOut, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&force, "force", false, "Skip the modified-on-disk check on save")
	rootCmd.PersistentFlags().
		StringVar(&profileTok, "profile", "", "Dialect override (ini, php, php-define, php-unquoted, php-variable, conf, cnf)")
	rootCmd.PersistentFlags().
		StringVar(&blockSpec, "block", "", "Scope the operation to a delimited region: \"BEGIN,END\" marker lines")
	rootCmd.PersistentFlags().
		IntVar(&occurrence, "occurrence", 0, "Zero-based occurrence of the --block marker pair")
}

func execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Helper functions for output

// printInfo prints an info message if not in quiet mode
func printInfo(format string, args ...interface{}) {
	if !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printVerbose prints a verbose message if verbose mode is enabled
func printVerbose(format string, args ...interface{}) {
	if verbose && !quiet {
		fmt.Fprintf(os.Stdout, format, args...)
	}
}

// printJSON outputs data as JSON
func printJSON(v interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

// splitBlockSpec parses the --block flag value into its marker pair.
func splitBlockSpec(spec string) (begin, end string, err error) {
	begin, end, ok := strings.Cut(spec, ",")
	if !ok || begin == "" || end == "" {
		return "", "", fmt.Errorf("invalid --block %q: want \"BEGIN,END\"", spec)
	}
	return begin, end, nil
}

// openEditor opens path honoring --profile, --block, and --occurrence.
func openEditor(path string) (*conf.Editor, error) {
	printVerbose("Opening config: %s\n", path)
	ed, err := conf.Open(path, conf.OpenOptions{Profile: profileTok})
	if err != nil {
		return nil, err
	}
	if blockSpec != "" {
		begin, end, err := splitBlockSpec(blockSpec)
		if err != nil {
			return nil, err
		}
		for i := 0; i <= occurrence; i++ {
			if !ed.Isolate(begin, end) {
				return nil, fmt.Errorf(
					"block %q..%q occurrence %d not found in %s",
					begin, end, occurrence, path,
				)
			}
		}
	}
	return ed, nil
}

// saveEditor merges and writes the editor back to its source file.
func saveEditor(ed *conf.Editor) error {
	ed.Merge()
	if err := ed.Save(conf.SaveOptions{Force: force}); err != nil {
		return fmt.Errorf("failed to save %s: %w", ed.Path(), err)
	}
	return nil
}
