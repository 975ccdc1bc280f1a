package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/dojo/internal/workshop"
)

var validateCmd = &cobra.Command{
	Use:   "validate [workshop...]",
	Short: "Check installed workshops for layout and metadata problems",
	Long: `Check workshop trees against the layout the runner expects.

Without arguments every workshop under the root is checked. Problems
are printed per file; the command exits non-zero when any are found.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveWorkshopsRoot(cmd)
		if err != nil {
			return err
		}
		names := args
		if len(names) == 0 {
			entries, err := os.ReadDir(root)
			if err != nil {
				return fmt.Errorf("read workshops root: %w", err)
			}
			for _, e := range entries {
				if e.IsDir() {
					names = append(names, e.Name())
				}
			}
		}
		if len(names) == 0 {
			fmt.Println("no workshops under", root)
			return nil
		}

		total := 0
		for _, name := range names {
			issues, err := workshop.ValidateTree(root, name)
			if err != nil {
				return err
			}
			if len(issues) == 0 {
				fmt.Println("ok  ", name)
				continue
			}
			fmt.Println("FAIL", name)
			for _, issue := range issues {
				fmt.Println("    ", issue)
			}
			total += len(issues)
		}
		if total > 0 {
			return fmt.Errorf("%d problem(s) found", total)
		}
		return nil
	},
}
