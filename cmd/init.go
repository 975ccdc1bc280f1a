package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/abhisek/dojo/internal/workshop"
)

var initCmd = &cobra.Command{
	Use:   "init [workshop-dir]",
	Short: "Create a workshops root here, optionally installing a workshop into it",
	Long: `Create a ` + workshop.DirName + ` directory under the current directory.

With a workshop-dir argument, the workshop tree at that path is copied
into the new root under its base name. The runner picks up the nearest
` + workshop.DirName + ` directory on its way up from wherever it starts.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		wd, err := os.Getwd()
		if err != nil {
			return err
		}
		src := ""
		if len(args) == 1 {
			src = args[0]
		}
		root, err := workshop.Init(wd, src)
		if err != nil {
			return err
		}
		fmt.Println("workshops root ready at", root)
		if src != "" {
			fmt.Println("installed", src)
		}
		return nil
	},
}
