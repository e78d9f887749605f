package main

import (
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pgavlin/procenv"
)

var whichCmd = &cobra.Command{
	Use:   "which NAME...",
	Short: "Locate executables on the PATH",
	Long: `Search the directories listed by the PATH variable for each named
executable and print the first match. Fails if any name is not found.`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		missing := 0
		for _, name := range args {
			path, ok := procenv.LookPath(name)
			if !ok {
				color.New(color.FgRed).Fprintf(rootCmd.ErrOrStderr(), "%s not found\n", name)
				missing++
				continue
			}
			fmt.Println(path)
		}
		if missing > 0 {
			return fmt.Errorf("%d executable(s) not found", missing)
		}
		return nil
	},
}
