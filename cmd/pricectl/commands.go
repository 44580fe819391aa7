package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/adapters/presenter"
	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/bootstrap"
	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/config"
	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/core/domain"
	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/observability/logging"
)

// globalFlags override the environment configuration.
type globalFlags struct {
	modelDir string
	artifact string
	backend  string
	strict   bool
	logLevel string
}

func (g *globalFlags) register(cmd *cobra.Command) {
	cmd.PersistentFlags().StringVar(&g.modelDir, "model-dir", "", "directory holding model artifacts (MODEL_DIR)")
	cmd.PersistentFlags().StringVar(&g.artifact, "artifact", "", "artifact file name inside the model dir (MODEL_ARTIFACT)")
	cmd.PersistentFlags().StringVar(&g.backend, "backend", "", "model backend: artifact or remote (MODEL_BACKEND)")
	cmd.PersistentFlags().BoolVar(&g.strict, "strict", true, "reject values outside the catalog (ENCODER_STRICT)")
	cmd.PersistentFlags().StringVar(&g.logLevel, "log-level", "warn", "log level")
}

func (g *globalFlags) config(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return config.Config{}, err
	}
	if g.modelDir != "" {
		cfg.ModelDir = g.modelDir
	}
	if g.artifact != "" {
		cfg.ModelArtifact = g.artifact
	}
	if g.backend != "" {
		cfg.ModelBackend = g.backend
	}
	if cmd.Flags().Changed("strict") {
		cfg.EncoderStrict = g.strict
	}
	slog.SetDefault(logging.NewJSONLogger(cmd.ErrOrStderr(), "pricectl", g.logLevel))
	return cfg, nil
}

type specFlags struct {
	company  string
	typeName string
	cpuBrand string
	ram      int
	memory   string
	gpuBrand string
	opSys    string
	weight   float64
	inches   float64
	touch    string
	ips      string
	pixels   string
}

func (s *specFlags) register(cmd *cobra.Command) {
	catalog := domain.DefaultCatalog()
	f := cmd.Flags()
	f.StringVar(&s.company, "company", catalog.Companies[0], "manufacturer")
	f.StringVar(&s.typeName, "type-name", catalog.TypeNames[0], "form factor")
	f.StringVar(&s.cpuBrand, "cpu-brand", catalog.CPUBrands[0], "processor family")
	f.IntVar(&s.ram, "ram", 0, "RAM in GB (required)")
	f.StringVar(&s.memory, "memory", catalog.Memories[0], `storage, e.g. "512GB SSD"`)
	f.StringVar(&s.gpuBrand, "gpu-brand", catalog.GPUBrands[0], "graphics vendor")
	f.StringVar(&s.opSys, "op-sys", catalog.OpSystems[0], "operating system")
	f.Float64Var(&s.weight, "weight", catalog.DefaultWeight, "weight in kg")
	f.Float64Var(&s.inches, "inches", 0, "screen diagonal in inches (required)")
	f.StringVar(&s.touch, "touch", "No", "touchscreen: Yes or No")
	f.StringVar(&s.ips, "ips", "No", "IPS panel: Yes or No")
	f.StringVar(&s.pixels, "pixels", catalog.Resolution[0], `resolution, e.g. "1920x1080"`)
}

// record leaves Ram and Inches unset unless their flags were given.
func (s *specFlags) record(cmd *cobra.Command) domain.SpecificationRecord {
	spec := domain.SpecificationRecord{
		Company:  s.company,
		TypeName: s.typeName,
		CPUBrand: s.cpuBrand,
		Memory:   s.memory,
		GPUBrand: s.gpuBrand,
		OpSys:    s.opSys,
		Weight:   s.weight,
		Touch:    s.touch,
		IPS:      s.ips,
		Pixels:   s.pixels,
	}
	if cmd.Flags().Changed("ram") {
		spec.Ram = domain.IntPtr(s.ram)
	}
	if cmd.Flags().Changed("inches") {
		spec.Inches = domain.FloatPtr(s.inches)
	}
	return spec
}

func newRootCommand() *cobra.Command {
	globals := &globalFlags{}
	root := &cobra.Command{
		Use:           "pricectl",
		Short:         "Estimate laptop prices from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	globals.register(root)
	root.AddCommand(
		newPredictCommand(globals),
		newEncodeCommand(globals),
		newSchemaCommand(globals),
	)
	return root
}

func newPredictCommand(globals *globalFlags) *cobra.Command {
	spec := &specFlags{}
	var asJSON bool
	cmd := &cobra.Command{
		Use:   "predict",
		Short: "Predict the price of one laptop",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := globals.config(cmd)
			if err != nil {
				return err
			}
			app, err := bootstrap.New(cmd.Context(), cfg, nil)
			if err != nil {
				return err
			}

			prediction, err := app.PredictUC.Predict(cmd.Context(), spec.record(cmd))
			if err != nil {
				if domain.IsKind(err, domain.ErrMissingSelection) {
					return fmt.Errorf("please select RAM and Screen Size: %w", err)
				}
				return fmt.Errorf("prediction failed: %w", err)
			}

			if asJSON {
				return writeJSON(cmd.OutOrStdout(), prediction)
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), presenter.NewPriceFormatter(cfg.DisplayCurrencySymbol).EstimatedPrice(prediction.Price))
			return err
		},
	}
	spec.register(cmd)
	cmd.Flags().BoolVar(&asJSON, "json", false, "print the full prediction as JSON")
	return cmd
}

func newEncodeCommand(globals *globalFlags) *cobra.Command {
	spec := &specFlags{}
	cmd := &cobra.Command{
		Use:   "encode",
		Short: "Print the feature row the model would receive",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := globals.config(cmd)
			if err != nil {
				return err
			}
			row, err := bootstrap.NewEncoder(cfg).Encode(spec.record(cmd))
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), row)
		},
	}
	spec.register(cmd)
	return cmd
}

func newSchemaCommand(globals *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "schema",
		Short: "Show the model schema and check it against the encoder",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := globals.config(cmd)
			if err != nil {
				return err
			}
			model, err := bootstrap.OpenModel(cmd.Context(), cfg)
			if err != nil {
				return err
			}

			info := model.Info()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "model: %s %s (%s)\n", info.Name, info.Version, info.Backend)
			tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "#\tCOLUMN\tKIND")
			for i, f := range model.Schema() {
				fmt.Fprintf(tw, "%d\t%s\t%s\n", i+1, f.Name, f.Kind)
			}
			if err := tw.Flush(); err != nil {
				return err
			}

			if err := domain.RowSchema.Compare(model.Schema()); err != nil {
				return domain.WrapError(domain.ErrSchemaMismatch, "check schema", err)
			}
			_, err = fmt.Fprintln(out, "schema matches encoder")
			return err
		},
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
