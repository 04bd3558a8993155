package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	homedir "github.com/mitchellh/go-homedir"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/tutils/lxmseq/lxm"
)

var (
	cfgFile string

	// Shared flags
	seedString string
	mixName    string
	minSeedLen int
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "lxmseq",
	Short: "LXM generator and lazy sequence diagnostics.",
	Long: `LXM generator and lazy sequence diagnostics.
Seed a generator from a string, draw bits from a memoized sequence, or
re-read one sequence handle many times under GC pressure. For example:
  lxmseq draw --seed="the lazy sequence must replay the same bits" -n 10
  lxmseq replay --seed="the lazy sequence must replay the same bits" --iterations=1000000 --gc-every=1000`,
	SilenceUsage: true,
}

const (
	prefix    = "@"
	envPrefix = "LXMSEQ"
)

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if len(os.Args) == 2 && strings.HasPrefix(os.Args[1], prefix) {
		args, err := decodeCmdline(os.Args[1][len(prefix):])
		if err != nil {
			log.Println(err)
			os.Exit(1)
		}
		rootCmd.SetArgs(args)
	}

	if err := rootCmd.Execute(); err != nil {
		log.Println(err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&cfgFile, "config", "", "config file (default is $HOME/.lxmseq.yaml)")
	flags.StringVarP(&seedString, "seed", "s", "", "seed string")
	flags.StringVarP(&mixName, "mix", "m", lxm.MixLea64.String(), "mix function (lea64, stafford13, murmur3)")
	flags.IntVar(&minSeedLen, "min-seed-len", 0, "reject seeds shorter than this many bytes")
	viper.BindPFlags(flags)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := homedir.Dir()
		if err != nil {
			log.Println(err)
			os.Exit(1)
		}

		// Search config in home directory with name ".lxmseq" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigName(".lxmseq")
	}

	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		log.Println("Using config file:", viper.ConfigFileUsed())
	} else if cfgFile != "" {
		log.Println(err)
		os.Exit(1)
	}
}

// seedState derives the generator state from the shared seed flags.
func seedState() (lxm.State, error) {
	s := viper.GetString("seed")
	if s == "" {
		return lxm.State{}, fmt.Errorf("--seed is required")
	}
	m, err := lxm.ParseMix(viper.GetString("mix"))
	if err != nil {
		return lxm.State{}, err
	}
	return lxm.Seed(s, lxm.WithMix(m), lxm.WithMinLength(viper.GetInt("min-seed-len")))
}
