package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(newCommentCmd())
	rootCmd.AddCommand(newUncommentCmd())
}

func newCommentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "comment <file> <key>",
		Short: "Disable a key by commenting its line out",
		Long: `The comment command prepends the dialect comment prefix to the
line carrying a key. Already-commented lines are left alone.

Example:
  confctl comment my.cnf skip_networking
  confctl comment config.inc.php DEBUG`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToggle(args, true)
		},
	}
}

func newUncommentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "uncomment <file> <key>",
		Short: "Re-enable a commented-out key",
		Long: `The uncomment command removes the dialect comment prefix from the
line carrying a key, tolerating inconsistent spacing around the marker.

Example:
  confctl uncomment my.cnf skip_networking`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runToggle(args, false)
		},
	}
}

func runToggle(args []string, disable bool) error {
	path, key := args[0], args[1]

	ed, err := openEditor(path)
	if err != nil {
		return err
	}
	if !ed.Find(key) {
		return fmt.Errorf("key %q not found in %s", key, path)
	}
	if disable {
		ed.Comment()
	} else {
		ed.Uncomment()
	}
	if err := saveEditor(ed); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":      path,
			"key":       key,
			"commented": disable,
		})
	}
	if disable {
		printInfo("%s: commented out %s\n", path, key)
	} else {
		printInfo("%s: uncommented %s\n", path, key)
	}
	return nil
}
