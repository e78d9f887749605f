package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/pgavlin/procenv"
	"github.com/pgavlin/procenv/osstr"
	"github.com/pgavlin/procenv/pathlist"
)

var (
	pathPosix   bool
	pathWindows bool
)

var pathCmd = &cobra.Command{
	Use:   "path",
	Short: "Split and join PATH-style variables",
	Long: `Convert between a PATH-style list string and its path entries.

The host platform's convention is used unless --posix or --windows forces
one: POSIX separates entries with ':' and has no quoting; Windows separates
entries with ';' and allows an entry containing ';' to be double-quoted.`,
}

func pathConvention() (pathlist.Convention, error) {
	switch {
	case pathPosix && pathWindows:
		return pathlist.Convention{}, fmt.Errorf("--posix and --windows are mutually exclusive")
	case pathPosix:
		return pathlist.Posix(), nil
	case pathWindows:
		return pathlist.Windows(), nil
	case procenv.HostPlatform().Family == "windows":
		return pathlist.Windows(), nil
	default:
		return pathlist.Posix(), nil
	}
}

var pathSplitCmd = &cobra.Command{
	Use:   "split [LIST]",
	Short: "Print the entries of a PATH-style list, one per line",
	Long: `Print the entries of a PATH-style list, one per line.

With no argument, the PATH variable is split.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		conv, err := pathConvention()
		if err != nil {
			return err
		}

		var list osstr.String
		if len(args) > 0 {
			list = osstr.String(args[0])
		} else {
			value, ok := procenv.VarOs("PATH")
			if !ok {
				return fmt.Errorf("PATH is not set")
			}
			list = value
		}

		for _, entry := range conv.Split(list) {
			fmt.Println(entry.Lossy())
		}
		return nil
	},
}

var pathJoinCmd = &cobra.Command{
	Use:   "join PATH...",
	Short: "Encode paths as a single PATH-style list",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(_ *cobra.Command, args []string) error {
		conv, err := pathConvention()
		if err != nil {
			return err
		}

		paths := make([]osstr.String, len(args))
		for i, arg := range args {
			paths[i] = osstr.String(arg)
		}
		list, err := conv.Join(paths)
		if err != nil {
			return err
		}
		fmt.Println(list.Lossy())
		return nil
	},
}

func init() {
	pathCmd.PersistentFlags().BoolVar(&pathPosix, "posix", false, "use the POSIX convention")
	pathCmd.PersistentFlags().BoolVar(&pathWindows, "windows", false, "use the Windows convention")

	pathCmd.AddCommand(pathSplitCmd)
	pathCmd.AddCommand(pathJoinCmd)
}
