package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/exonviz/exonviz/internal/draw"
	"github.com/exonviz/exonviz/internal/mane"
	"github.com/exonviz/exonviz/internal/mutalyzer"
)

// Version information (set at build time)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var (
	cfgFile      string
	verbose      bool
	outputFile   string
	maneFilePath string
)

var rootCmd = &cobra.Command{
	Use:   "exonviz <transcript>",
	Short: "Draw the exon structure of a transcript as SVG",
	Long: `exonviz fetches the exon and coding-region annotations of a transcript
and draws its exon structure as an SVG diagram. Reading-frame continuity
across exon boundaries is shown as notched exon edges, and any variants in
the transcript description are marked inside the exon they fall in.

The transcript can be given as a versioned transcript (NM_003002.4), a full
HGVS description (NM_003002.4:c.274G>T), or a gene symbol, which is
resolved to its MANE Select transcript (see "exonviz update-mane").`,
	Example: `  exonviz NM_003002.4
  exonviz "NM_003002.4:c.274G>T" -o sdhd.svg
  exonviz SDHD --scale 2`,
	Args:         cobra.ExactArgs(1),
	RunE:         runDraw,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("exonviz version %s (%s) built %s\n", version, commit, date)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: $HOME/.exonviz.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "output file (default: stdout)")
	rootCmd.Flags().StringVar(&maneFilePath, "mane", "", "MANE summary file (default: ~/.exonviz/MANE.summary.txt.gz)")

	// Drawing options double as flags and config keys.
	for _, opt := range draw.Options {
		switch def := opt.Default.(type) {
		case bool:
			rootCmd.Flags().Bool(opt.Name, def, opt.Description)
		case float64:
			rootCmd.Flags().Float64(opt.Name, def, opt.Description)
		case string:
			rootCmd.Flags().String(opt.Name, def, opt.Description)
		}
		viper.SetDefault(opt.Name, opt.Default)
		_ = viper.BindPFlag(opt.Name, rootCmd.Flags().Lookup(opt.Name))
	}

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(newUpdateManeCmd())
	rootCmd.AddCommand(newConfigCmd())
}

// initConfig reads in the config file and EXONVIZ_* environment variables.
func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else if home, err := os.UserHomeDir(); err == nil {
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".exonviz")
	}

	viper.SetEnvPrefix("EXONVIZ")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil && verbose {
		fmt.Fprintf(os.Stderr, "Using config file: %s\n", viper.ConfigFileUsed())
	}
}

func newLogger() *zap.Logger {
	if !verbose {
		return zap.NewNop()
	}
	logger, err := zap.NewDevelopment()
	if err != nil {
		return zap.NewNop()
	}
	return logger
}

func runDraw(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer logger.Sync()

	transcript := args[0]

	table := loadManeTable(logger)
	if resolved, ok := table.Resolve(transcript); ok {
		logger.Info("resolved gene symbol",
			zap.String("gene", transcript),
			zap.String("transcript", resolved))
		transcript = resolved
	}

	description, err := mutalyzer.CheckDescription(transcript)
	if err != nil {
		return err
	}

	client := mutalyzer.NewClient()
	client.SetLogger(logger)

	exonPairs, cdsPairs, err := client.FetchExons(description)
	if err != nil {
		return err
	}

	var views []mutalyzer.View
	if viper.GetBool("variants") {
		views, err = client.FetchVariants(description)
		if err != nil {
			return err
		}
	}

	exons, err := mutalyzer.BuildExons(exonPairs, cdsPairs, views)
	if err != nil {
		return err
	}

	for i, e := range exons {
		logger.Debug("exon",
			zap.Int("number", i+1),
			zap.Int("length", e.Length),
			zap.Int("start_phase", e.StartPhase()),
			zap.Int("end_phase", e.EndPhase()),
			zap.Int("variants", len(e.Variants)))
	}

	out := os.Stdout
	if outputFile != "" {
		out, err = os.Create(outputFile)
		if err != nil {
			return fmt.Errorf("create output file: %w", err)
		}
		defer out.Close()
	}

	return draw.Render(out, exons, drawConfig())
}

// drawConfig builds the drawing configuration from the effective settings.
func drawConfig() draw.Config {
	return draw.Config{
		Scale:    viper.GetFloat64("scale"),
		Height:   viper.GetFloat64("height"),
		Gap:      viper.GetFloat64("gap"),
		Color:    viper.GetString("color"),
		Variants: viper.GetBool("variants"),
	}
}

// loadManeTable loads the MANE summary table if it is available. Without
// the table, gene symbols simply do not resolve.
func loadManeTable(logger *zap.Logger) mane.Table {
	path := maneFilePath
	if path == "" {
		var err error
		path, err = mane.DefaultPath()
		if err != nil {
			logger.Warn("cannot locate MANE summary", zap.Error(err))
			return mane.Table{}
		}
	}

	table, err := mane.Load(path)
	if err != nil {
		logger.Warn("MANE table unavailable, gene symbols will not resolve; run 'exonviz update-mane'",
			zap.Error(err))
		return mane.Table{}
	}
	return table
}
