package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

// seedCmd represents the seed command
var seedCmd = &cobra.Command{
	Use:   "seed [seed]",
	Short: "Print the generator state derived from a seed",
	Long: `Print the generator state derived from a seed string. For example:
  lxmseq seed "the lazy sequence must replay the same bits"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 1 {
			if err := rootCmd.PersistentFlags().Set("seed", args[0]); err != nil {
				return err
			}
		}
		st, err := seedState()
		if err != nil {
			return err
		}
		a, s, x0, x1 := st.Fields()
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "a   %016x\n", a)
		fmt.Fprintf(out, "s   %016x\n", s)
		fmt.Fprintf(out, "x0  %016x\n", x0)
		fmt.Fprintf(out, "x1  %016x\n", x1)
		fmt.Fprintf(out, "mix %s\n", st.Mix())
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
