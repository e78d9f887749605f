package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"github.com/sugawarayuuta/sonnet"

	"github.com/pgavlin/procenv"
)

type dirsDescription struct {
	Current    string `json:"current"`
	Home       string `json:"home,omitempty"`
	Temp       string `json:"temp"`
	Executable string `json:"executable,omitempty"`
}

var dirsCmd = &cobra.Command{
	Use:   "dirs",
	Short: "Print well-known directories",
	Long:  `Print the current, home, and temporary directories and the path of the running executable.`,
	Args:  cobra.NoArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		var dirs dirsDescription

		current, err := procenv.CurrentDir()
		if err != nil {
			return err
		}
		dirs.Current = current
		dirs.Home, _ = procenv.HomeDir()
		dirs.Temp = procenv.TempDir()
		dirs.Executable, _ = procenv.CurrentExe()

		if outputJSON {
			enc := sonnet.NewEncoder(os.Stdout)
			enc.SetIndent("", "    ")
			return enc.Encode(dirs)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 2, 1, ' ', 0)
		fmt.Fprintf(w, "current\t%s\n", dirs.Current)
		if dirs.Home != "" {
			fmt.Fprintf(w, "home\t%s\n", dirs.Home)
		}
		fmt.Fprintf(w, "temp\t%s\n", dirs.Temp)
		if dirs.Executable != "" {
			fmt.Fprintf(w, "executable\t%s\n", dirs.Executable)
		}
		return w.Flush()
	},
}
