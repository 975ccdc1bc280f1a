package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/dojo/internal/workshop"
)

var rootCmd = &cobra.Command{
	Use:   "dojo",
	Short: "Hands-on workshops in your terminal",
	Long:  "Dojo — terminal runner for translated, hands-on programming workshops.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("workshops", "", "Path to the workshops directory (overrides DOJO_DATA_DIR and discovery)")

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveWorkshopsRoot returns the workshops root using the --workshops
// flag (highest priority), then the nearest .workshops directory up
// from the working directory, then the default under the data dir.
func resolveWorkshopsRoot(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("workshops"); p != "" {
		return p, nil
	}
	return workshop.DefaultRoot()
}
