package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/wall-breaker/internal/config"
)

var flagEffective bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the game configuration",
	Long: `Print the embedded default configuration as YAML.

Save the output to ~/.wallbreaker/configs/wallbreaker.yaml or pass it with
--config, keeping only the keys you want to change.

With --effective, prints the configuration the game would actually use
after applying --config, the search path and --fps.

Examples:
  wallbreaker config > wallbreaker.yaml
  wallbreaker config --effective --config ./wallbreaker.yaml`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagEffective, "effective", false, "Print the resolved configuration instead of the defaults")
}

func runConfig(cmd *cobra.Command, _ []string) error {
	out := cmd.OutOrStdout()

	if !flagEffective {
		_, err := out.Write(config.DefaultYAML())
		return err
	}

	cfg, source, err := config.Load(flagConfig)
	if err != nil {
		return err
	}
	if _, err := runtimeConfig(cmd, &cfg, 0, 0); err != nil {
		return err
	}

	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encode config: %w", err)
	}

	fmt.Fprintf(out, "# source: %s\n", source)
	_, err = out.Write(data)
	return err
}
