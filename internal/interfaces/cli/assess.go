package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/byestunting/byestunting/internal/assessment"
	"github.com/byestunting/byestunting/internal/infrastructure/storage/weights"
	"github.com/byestunting/byestunting/internal/intelligence/stuntnet"
)

// AssessOptions holds the flags of the assess command.
type AssessOptions struct {
	AgeMonths float64
	Sex       string
	WeightKg  float64
	HeightCm  float64
}

// NewAssessCommand creates the assess subcommand: one offline assessment
// straight from the command line, using the same pipeline as the API server.
func NewAssessCommand(root *RootOptions) *cobra.Command {
	opts := &AssessOptions{}

	cmd := &cobra.Command{
		Use:   "assess",
		Short: "Analisis satu pengukuran antropometri",
		Example: `  byestunting assess --usia 24 --jenis-kelamin laki-laki --berat 9.5 --tinggi 82
  byestunting assess --usia 36 --jenis-kelamin perempuan --berat 11 --tinggi 88 --json`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAssess(cmd, root, opts)
		},
	}

	f := cmd.Flags()
	f.Float64Var(&opts.AgeMonths, "usia", 0, "usia anak dalam bulan (0-60)")
	f.StringVar(&opts.Sex, "jenis-kelamin", "", "jenis kelamin: laki-laki | perempuan")
	f.Float64Var(&opts.WeightKg, "berat", 0, "berat badan dalam kg")
	f.Float64Var(&opts.HeightCm, "tinggi", 0, "tinggi badan dalam cm")

	_ = cmd.MarkFlagRequired("usia")
	_ = cmd.MarkFlagRequired("jenis-kelamin")
	_ = cmd.MarkFlagRequired("berat")
	_ = cmd.MarkFlagRequired("tinggi")

	return cmd
}

func runAssess(cmd *cobra.Command, root *RootOptions, opts *AssessOptions) error {
	cfg, err := loadConfig(root)
	if err != nil {
		return err
	}

	logger, err := newLogger(cfg)
	if err != nil {
		return err
	}

	source, err := weights.New(cfg, logger)
	if err != nil {
		return err
	}

	engine, err := stuntnet.NewCachedEngine(source, cfg.Model.Timeout, logger)
	if err != nil {
		return err
	}
	defer engine.Dispose()

	orchestrator := assessment.NewOrchestrator(engine, nil, logger)

	outcome, err := orchestrator.Assess(cmd.Context(), assessment.AnthropometricInput{
		AgeMonths: opts.AgeMonths,
		Sex:       opts.Sex,
		WeightKg:  opts.WeightKg,
		HeightCm:  opts.HeightCm,
	})
	if err != nil {
		return err
	}

	if root.JSONOutput {
		return printJSON(cmd, outcome)
	}
	printOutcome(cmd, outcome)
	return nil
}

func printJSON(cmd *cobra.Command, v interface{}) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printOutcome(cmd *cobra.Command, outcome *assessment.Outcome) {
	out := cmd.OutOrStdout()
	result := outcome.Result

	fmt.Fprintf(out, "Status : %s\n", result.Status)
	fmt.Fprintf(out, "Skor   : %d\n", result.Score)
	fmt.Fprintf(out, "Model  : %s\n\n", outcome.ModelUsed)
	fmt.Fprintln(out, result.Message)

	if len(result.Recommendations) > 0 {
		fmt.Fprintf(out, "\nRekomendasi:\n")
		for _, rec := range result.Recommendations {
			fmt.Fprintf(out, "  - %s\n", rec)
		}
	}
	if len(result.RecommendedArticles) > 0 {
		fmt.Fprintf(out, "\nArtikel terkait:\n")
		for _, a := range result.RecommendedArticles {
			fmt.Fprintf(out, "  - %s (%s)\n", a.Title, strings.ToLower(a.Category))
		}
	}
}
