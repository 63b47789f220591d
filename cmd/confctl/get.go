package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var getAll bool

func init() {
	cmd := newGetCmd()
	cmd.Flags().BoolVar(&getAll, "all", false, "Print every occurrence of a duplicate key")
	rootCmd.AddCommand(cmd)
}

func newGetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "get <file> <key>",
		Short: "Read a key's value",
		Long: `The get command prints the value stored for a key. With --all,
every occurrence of a duplicate key is printed in document order.

Example:
  confctl get my.cnf max_connections
  confctl get httpd.conf Alias --all
  confctl get config.inc.php DB_HOST --block "# BEGIN db,# END db"`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGet(args)
		},
	}
}

func runGet(args []string) error {
	path, key := args[0], args[1]

	ed, err := openEditor(path)
	if err != nil {
		return err
	}

	type entry struct {
		Key       string `json:"key"`
		Value     string `json:"value"`
		Commented bool   `json:"commented"`
	}
	var entries []entry
	for ed.Find(key) {
		v, ok := ed.Get()
		if !ok {
			break
		}
		entries = append(entries, entry{Key: key, Value: v, Commented: ed.IsCommented()})
		if !getAll {
			break
		}
	}
	if len(entries) == 0 {
		return fmt.Errorf("key %q not found in %s", key, path)
	}

	if jsonOut {
		if getAll {
			return printJSON(entries)
		}
		return printJSON(entries[0])
	}
	for _, e := range entries {
		fmt.Println(e.Value)
	}
	return nil
}
