package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/spachava753/plugingroups/internal/app"
	"github.com/spachava753/plugingroups/internal/config"
)

var Version = "dev"

type rootFlags struct {
	configPath  string
	input       string
	output      string
	catalogURL  string
	catalogPath string
	name        string
	description string
	coreVersion string
	strictSCM   bool
	summary     bool
	logLevel    string
}

func newRootCommand(lookupEnv func(string) (string, bool)) *cobra.Command {
	var flags rootFlags

	cmd := &cobra.Command{
		Use:   "plugingroups",
		Short: "Build a repository group from a list of Jenkins plugins",
		Long: `plugingroups reads plugin ids (one per line) from PLUGINS_INPUT_FILE or --input,
looks each one up in the Jenkins update center, and writes the GitHub repositories
they are built from as a single JSON group document. Plugins without a default
branch or scm URL are listed on stdout and left out of the group.`,
		Version:       Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := buildConfig(cmd, flags, lookupEnv)
			if err != nil {
				return err
			}

			level, err := cfg.SlogLevel()
			if err != nil {
				return err
			}
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

			_, err = app.Run(cmd.Context(), cfg, app.Options{
				Stdout:  cmd.OutOrStdout(),
				Summary: flags.summary,
			})
			return err
		},
	}

	f := cmd.Flags()
	f.StringVarP(&flags.configPath, "config", "c", "", "configuration file (.yaml or .toml)")
	f.StringVarP(&flags.input, "input", "i", "", "plugin list file, one id per line (overrides "+config.EnvInputFile+")")
	f.StringVarP(&flags.output, "output", "o", "", "group document to write")
	f.StringVar(&flags.catalogURL, "catalog-url", "", "update center URL")
	f.StringVar(&flags.catalogPath, "catalog-path", "", "read the update center from a local file instead of fetching it")
	f.StringVar(&flags.name, "name", "", "group name")
	f.StringVar(&flags.description, "description", "", "group description")
	f.StringVar(&flags.coreVersion, "core-version", "", "warn about plugins requiring a newer Jenkins core")
	f.BoolVar(&flags.strictSCM, "strict-scm", false, "treat scm URLs outside github.com as missing")
	f.BoolVar(&flags.summary, "summary", false, "print a table of the resolved repositories")
	f.StringVar(&flags.logLevel, "log-level", "", "debug, info, warn or error")

	return cmd
}

// buildConfig layers defaults, the config file, the environment and finally
// explicitly set flags.
func buildConfig(cmd *cobra.Command, flags rootFlags, lookupEnv func(string) (string, bool)) (config.Config, error) {
	cfg := config.DefaultConfig()
	if flags.configPath != "" {
		var err error
		if cfg, err = config.Load(flags.configPath); err != nil {
			return cfg, err
		}
	}

	cfg.ApplyEnv(lookupEnv)

	f := cmd.Flags()
	if f.Changed("input") {
		cfg.InputFile = flags.input
	}
	if f.Changed("output") {
		cfg.OutputFile = flags.output
	}
	if f.Changed("catalog-url") {
		cfg.CatalogURL = flags.catalogURL
	}
	if f.Changed("catalog-path") {
		cfg.CatalogPath = flags.catalogPath
	}
	if f.Changed("name") {
		cfg.Group.Name = flags.name
	}
	if f.Changed("description") {
		cfg.Group.Description = flags.description
	}
	if f.Changed("core-version") {
		cfg.CoreVersion = flags.coreVersion
	}
	if f.Changed("strict-scm") {
		cfg.StrictSCM = flags.strictSCM
	}
	if f.Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}

	return cfg, nil
}
