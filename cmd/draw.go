package cmd

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tutils/lxmseq"
	"github.com/tutils/lxmseq/lxm"
	"github.com/tutils/lxmseq/seq"
)

// drawCmd represents the draw command
var drawCmd = &cobra.Command{
	Use:   "draw",
	Short: "Draw a prefix of the output sequence",
	Long: `Draw the first values of the sequence seeded by --seed, as bits or words.
The prefix is read twice from the same sequence handle and the command fails
if the two reads disagree. For example:
  lxmseq draw --seed="the lazy sequence must replay the same bits" -n 10
  lxmseq draw --seed=abc --mix=murmur3 -n 4 --words`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := seedState()
		if err != nil {
			return err
		}
		n := viper.GetInt("count")
		if n < 0 {
			return fmt.Errorf("--count must not be negative")
		}

		words := lxmseq.FromState(st)
		first, _ := seq.Take(n, words)
		again, _ := seq.Take(n, words)
		if !slices.Equal(first, again) {
			return fmt.Errorf("re-reading the same sequence returned a different prefix")
		}

		out := cmd.OutOrStdout()
		if viper.GetBool("words") {
			for _, w := range first {
				fmt.Fprintf(out, "%016x\n", w)
			}
			return nil
		}
		fmt.Fprintln(out, formatBits(first))
		return nil
	},
}

func formatBits(words []uint64) string {
	var b strings.Builder
	b.Grow(len(words))
	for _, w := range words {
		if lxm.Bit(w) {
			b.WriteByte('1')
		} else {
			b.WriteByte('0')
		}
	}
	return b.String()
}

func init() {
	rootCmd.AddCommand(drawCmd)

	flags := drawCmd.Flags()
	flags.IntP("count", "n", 10, "number of values to draw")
	flags.Bool("words", false, "print 64-bit words in hex instead of bits")
	viper.BindPFlags(flags)
}
