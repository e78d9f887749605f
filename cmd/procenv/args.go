package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pgavlin/procenv"
	"github.com/pgavlin/procenv/osstr"
)

var argsReverse bool

var argsCmd = &cobra.Command{
	Use:   "args [--] [ARG...]",
	Short: "Print this process's arguments",
	Long: `Print the arguments the process was started with, one per line. The
first is traditionally the executable path. Extra arguments after -- appear
in the listing, which makes the command useful for checking how a shell
expands a command line.`,
	Args: cobra.ArbitraryArgs,
	RunE: func(_ *cobra.Command, _ []string) error {
		it := procenv.ArgsOs()
		for {
			var arg osstr.String
			var ok bool
			if argsReverse {
				arg, ok = it.NextBack()
			} else {
				arg, ok = it.Next()
			}
			if !ok {
				return nil
			}
			fmt.Println(arg.Lossy())
		}
	},
}

func init() {
	argsCmd.Flags().BoolVar(&argsReverse, "reverse", false, "print arguments last to first")
}
