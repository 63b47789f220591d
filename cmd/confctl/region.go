package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func init() {
	cmd := &cobra.Command{
		Use:   "region",
		Short: "Manage delimited regions",
		Long: `Region subcommands create and delete delimited regions: runs of
lines enclosed by an exact-match begin marker line and end marker line.
Use the global --occurrence flag to address the Nth region with the same
markers.`,
	}
	cmd.AddCommand(newRegionCreateCmd())
	cmd.AddCommand(newRegionRemoveCmd())
	rootCmd.AddCommand(cmd)
}

func newRegionCreateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "create <file> <begin> <end>",
		Short: "Append a new delimited region to the file",
		Long: `Appends the begin marker line, an empty region body, and the end
marker line at the end of the file.

Example:
  confctl region create sites.conf "# BEGIN staging" "# END staging"`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegionCreate(args)
		},
	}
}

func runRegionCreate(args []string) error {
	path, begin, end := args[0], args[1], args[2]

	ed, err := openEditor(path)
	if err != nil {
		return err
	}
	ed.CreateRegion(begin, end)
	if err := saveEditor(ed); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":    path,
			"begin":   begin,
			"end":     end,
			"created": true,
		})
	}
	printInfo("%s: created region %s .. %s\n", path, begin, end)
	return nil
}

func newRegionRemoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "remove <file> <begin> <end>",
		Short: "Delete a delimited region, markers included",
		Long: `Removes the selected region and both of its marker lines from the
file. --occurrence picks between multiple regions with the same markers.

Example:
  confctl region remove sites.conf "# BEGIN staging" "# END staging"
  confctl region remove sites.conf BEGIN END --occurrence 1`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRegionRemove(args)
		},
	}
}

func runRegionRemove(args []string) error {
	path, begin, end := args[0], args[1], args[2]

	ed, err := openEditor(path)
	if err != nil {
		return err
	}
	for i := 0; i <= occurrence; i++ {
		if !ed.Isolate(begin, end) {
			return fmt.Errorf(
				"region %q..%q occurrence %d not found in %s",
				begin, end, occurrence, path,
			)
		}
	}
	ed.RemoveRegion()
	if err := saveEditor(ed); err != nil {
		return err
	}

	if jsonOut {
		return printJSON(map[string]interface{}{
			"file":    path,
			"begin":   begin,
			"end":     end,
			"removed": true,
		})
	}
	printInfo("%s: removed region %s .. %s\n", path, begin, end)
	return nil
}
