package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var delAll bool

func init() {
	cmd := newDelCmd()
	cmd.Flags().BoolVar(&delAll, "all", false, "Delete every occurrence of a duplicate key")
	rootCmd.AddCommand(cmd)
}

func newDelCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "del <file> <key>",
		Short: "Delete a key's line",
		Long: `The del command removes the line carrying a key. By default only the
first occurrence is removed; --all removes every duplicate.

Example:
  confctl del my.cnf skip_networking
  confctl del httpd.conf Alias --all`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDel(args)
		},
	}
}

func runDel(args []string) error {
	path, key := args[0], args[1]

	ed, err := openEditor(path)
	if err != nil {
		return err
	}

	removed := 0
	if delAll {
		removed = ed.RemoveAll(key)
	} else if ed.Find(key) {
		ed.Remove()
		removed = 1
	}
	if removed == 0 {
		return fmt.Errorf("key %q not found in %s", key, path)
	}
	if err := saveEditor(ed); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":    path,
			"key":     key,
			"removed": removed,
		})
	}
	printInfo("%s: removed %d line(s) for %s\n", path, removed, key)
	return nil
}
