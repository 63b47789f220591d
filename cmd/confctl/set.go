package main

import "github.com/spf13/cobra"

func init() {
	rootCmd.AddCommand(newSetCmd())
}

func newSetCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "set <file> <key> <value>",
		Short: "Create or update a key",
		Long: `The set command writes a value for a key, overwriting the existing
line in place or appending a newly synthesized line when the key is
absent. The line shape follows the file's dialect.

Example:
  confctl set my.cnf max_connections 512
  confctl set config.inc.php DB_HOST db.internal
  confctl set sites.conf ServerName example.org --block "# BEGIN site,# END site"`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSet(args)
		},
	}
}

func runSet(args []string) error {
	path, key, value := args[0], args[1], args[2]

	ed, err := openEditor(path)
	if err != nil {
		return err
	}
	ed.SetKey(key, value)
	if err := saveEditor(ed); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":    path,
			"key":     key,
			"value":   value,
			"success": true,
		})
	}
	printInfo("%s: %s = %s\n", path, key, value)
	return nil
}
