package cmd

import (
	"log/slog"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/tsbridge/tsbridge/pkg/action/generate"
)

func init() {
	rootCmd.AddCommand(NewGenerateCommand())
}

func NewGenerateCommand() *cobra.Command {
	params := &generate.Params{}

	// generateCmd represents the tsbridge generate command
	var generateCmd = &cobra.Command{
		Use:   "generate",
		Short: "generate declarations",
		Long:  "Generate TypeScript declaration files from the exported types of a Go source tree",
		Run: func(c *cobra.Command, args []string) {
			mergeGenerateConfig(c.PersistentFlags(), params)
			out, err := generate.Run(params)
			if err != nil {
				slog.With("error", err).Error("generation failed")
				panic(err)
			}
			slog.With("file", out).Info("declarations written")
		},
	}
	generateCmd.PersistentFlags().StringVarP(&params.InDir, "input-directory", "i", ".", "Go source directory to scan")
	generateCmd.PersistentFlags().StringVarP(&params.OutDir, "output-directory", "o", "models", "directory to write declarations")
	generateCmd.PersistentFlags().StringVarP(&params.OutFile, "output-file", "f", "models.d.ts", "output file where declarations will be written")
	generateCmd.PersistentFlags().StringSliceVarP(&params.Types, "types", "t", []string{}, "root type names to generate; empty generates every exported type")
	generateCmd.PersistentFlags().StringSliceVarP(&params.Skip, "skip-types", "S", []string{}, "type name patterns excluded from generation, ex: '*Internal'")
	generateCmd.PersistentFlags().StringVar(&params.TemplateFile, "template", "", "template file overriding the default declaration layout")
	generateCmd.PersistentFlags().BoolVarP(&params.UseDate, "use-date", "d", false, "emit Date for time values instead of string")
	generateCmd.PersistentFlags().BoolVarP(&params.Classes, "classes", "c", false, "emit classes instead of interfaces")
	generateCmd.PersistentFlags().BoolVarP(&params.Singularize, "singularize", "s", false, "singularize generated type names")

	return generateCmd
}

// mergeGenerateConfig fills params from the "generate" config section for
// flags the user did not set on the command line. Flags win over config.
func mergeGenerateConfig(flags *pflag.FlagSet, params *generate.Params) {
	if !viper.IsSet("generate") {
		return
	}
	var cfg generate.Params
	if err := viper.UnmarshalKey("generate", &cfg); err != nil {
		slog.With("error", err).Warn("invalid generate config section")
		return
	}
	if !flags.Changed("input-directory") && cfg.InDir != "" {
		params.InDir = cfg.InDir
	}
	if !flags.Changed("output-directory") && cfg.OutDir != "" {
		params.OutDir = cfg.OutDir
	}
	if !flags.Changed("output-file") && cfg.OutFile != "" {
		params.OutFile = cfg.OutFile
	}
	if !flags.Changed("types") && len(cfg.Types) > 0 {
		params.Types = cfg.Types
	}
	if !flags.Changed("skip-types") && len(cfg.Skip) > 0 {
		params.Skip = cfg.Skip
	}
	if !flags.Changed("template") && cfg.TemplateFile != "" {
		params.TemplateFile = cfg.TemplateFile
	}
	if !flags.Changed("use-date") {
		params.UseDate = params.UseDate || cfg.UseDate
	}
	if !flags.Changed("classes") {
		params.Classes = params.Classes || cfg.Classes
	}
	if !flags.Changed("singularize") {
		params.Singularize = params.Singularize || cfg.Singularize
	}
}
