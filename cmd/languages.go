package cmd

import (
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/abhisek/dojo/internal/languages/programming"
	"github.com/abhisek/dojo/internal/languages/spoken"
	"github.com/abhisek/dojo/internal/workshop"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "List supported languages and which ones installed workshops cover",
	RunE: func(cmd *cobra.Command, args []string) error {
		root, err := resolveWorkshopsRoot(cmd)
		if err != nil {
			return err
		}
		stores, err := workshop.LoadAll(root)
		if err != nil {
			return err
		}
		installedSpoken := workshop.AllSpokenLanguages(stores)
		installedProg := workshop.AllProgrammingLanguages(stores)

		fmt.Println("Spoken languages:")
		for _, code := range spoken.All() {
			mark := " "
			if slices.Contains(installedSpoken, code) {
				mark = "*"
			}
			native := ""
			if code.Native() != code.Name() {
				native = " (" + code.Native() + ")"
			}
			fmt.Printf("  %s %-3s %s%s\n", mark, code, code.Name(), native)
		}

		fmt.Println()
		fmt.Println("Programming languages:")
		for _, code := range programming.All() {
			mark := " "
			if slices.Contains(installedProg, code) {
				mark = "*"
			}
			fmt.Printf("  %s %-3s %s\n", mark, code, code.Name())
		}

		fmt.Println()
		fmt.Println("* covered by an installed workshop")
		return nil
	},
}
