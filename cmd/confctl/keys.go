package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newKeysCmd())
}

func newKeysCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "keys <file>",
		Short: "List the key lines of a config file",
		Long: `The keys command enumerates every key-bearing line of the file (or
of the region selected with --block), with values and commented state.

Example:
  confctl keys my.cnf
  confctl keys sites.conf --block "# BEGIN site,# END site" --json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runKeys(args)
		},
	}
}

func runKeys(args []string) error {
	path := args[0]

	ed, err := openEditor(path)
	if err != nil {
		return err
	}
	keys := ed.Keys()

	if jsonOut {
		return printJSON(keys)
	}

	if len(keys) == 0 {
		printInfo("no key lines in %s\n", path)
		return nil
	}
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "KEY\tVALUE\tSTATE")
	for _, k := range keys {
		state := "active"
		if k.Commented {
			state = "commented"
		}
		fmt.Fprintf(w, "%s\t%s\t%s\n", k.Key, k.Value, state)
	}
	return w.Flush()
}
