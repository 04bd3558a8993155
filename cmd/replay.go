package cmd

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/tutils/lxmseq/config"
	"github.com/tutils/lxmseq/replay"
)

// replayCmd represents the replay command
var replayCmd = &cobra.Command{
	Use:   "replay",
	Short: "Re-read one sequence handle under GC pressure",
	Long: `Record the first --take bits of the sequence seeded by --seed, then read the
same handle --iterations more times while allocating garbage and forcing
collections, and report every read that disagrees. For example:
  lxmseq replay --seed="the lazy sequence must replay the same bits" --iterations=1000000 --gc-every=1000
  lxmseq replay --seed=abc --mode=cursor --iterations=10`,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := seedState()
		if err != nil {
			return err
		}
		mode, err := replay.ParseMode(viper.GetString("mode"))
		if err != nil {
			return err
		}

		opts := []replay.Option{
			replay.WithMode(mode),
			replay.WithIterations(viper.GetInt("iterations")),
			replay.WithTakeLen(viper.GetInt("take")),
			replay.WithGCEvery(viper.GetInt("gc-every")),
			replay.WithAllocPressure(viper.GetInt("alloc")),
			replay.WithWorkers(viper.GetInt("workers")),
		}
		switch p := viper.GetString("progress"); p {
		case "always":
			opts = append(opts, replay.WithProgress(os.Stderr))
		case "auto":
			if term.IsTerminal(int(os.Stderr.Fd())) {
				opts = append(opts, replay.WithProgress(os.Stderr))
			}
		case "never":
		default:
			return fmt.Errorf("--progress must be auto, always or never, got %q", p)
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		rep, err := replay.Run(ctx, st, opts...)
		if rep != nil {
			printReport(cmd.OutOrStdout(), rep)
		}
		if err != nil {
			return err
		}
		if !rep.OK() && mode == replay.ModeMemo {
			return fmt.Errorf("%d of %d re-reads diverged from the first read", rep.Mismatches, rep.Iterations)
		}
		return nil
	},
}

func printReport(w io.Writer, rep *replay.Report) {
	fmt.Fprintf(w, "run         %s\n", rep.RunID)
	fmt.Fprintf(w, "mode        %s\n", rep.Mode)
	fmt.Fprintf(w, "state       %s\n", rep.State)
	fmt.Fprintf(w, "golden      %s\n", boolString(rep.Golden))
	fmt.Fprintf(w, "iterations  %d\n", rep.Iterations)
	fmt.Fprintf(w, "mismatches  %d\n", rep.Mismatches)
	if rep.FirstMismatch >= 0 {
		fmt.Fprintf(w, "first       #%d %s\n", rep.FirstMismatch, boolString(rep.MismatchBits))
	}
	fmt.Fprintf(w, "steps       %d\n", rep.Steps)
	fmt.Fprintf(w, "elapsed     %s\n", rep.Elapsed)
}

func boolString(bits []bool) string {
	b := make([]byte, len(bits))
	for i, v := range bits {
		b[i] = '0'
		if v {
			b[i] = '1'
		}
	}
	return string(b)
}

func init() {
	rootCmd.AddCommand(replayCmd)

	stress, err := config.LoadStress()
	if err != nil {
		log.Println(err)
		stress = config.DefaultStress()
	}

	flags := replayCmd.Flags()
	flags.Int("iterations", stress.Iterations, "re-reads after the golden read")
	flags.Int("take", 10, "prefix length")
	flags.Int("gc-every", stress.GCEvery, "run the collector every N iterations per worker (0 disables)")
	flags.Int("alloc", stress.AllocBytes, "bytes of garbage allocated per iteration")
	flags.Int("workers", 1, "goroutines re-reading the same handle")
	flags.String("mode", string(replay.ModeMemo), "sequence representation: memo or cursor")
	flags.String("progress", "auto", "progress output: auto, always or never")
	viper.BindPFlags(flags)
}
