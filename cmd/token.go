package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// tokenCmd represents the token command
var tokenCmd = &cobra.Command{
	Use:   "token -- <command> [flags]",
	Short: "Encode a command line into a single @token argument",
	Long: `Encode a command line into one opaque argument that reproduces it. For example:
  lxmseq token -- replay --seed="some long seed" --iterations=100000
  lxmseq @<printed token>`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		s, err := encodeCmdline(args)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), prefix+s)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(tokenCmd)
}
