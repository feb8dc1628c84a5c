package main

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/arthur-debert/nanounits/catalog"
	"github.com/arthur-debert/nanounits/dimension"
	"github.com/arthur-debert/nanounits/formats"
	"github.com/arthur-debert/nanounits/systems/si"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// CLI wires the dimension library to cobra commands configured through viper
type CLI struct {
	rootCmd   *cobra.Command
	viperInst *viper.Viper

	// set by PersistentPreRunE for the running command
	registry *dimension.Registry
	format   *formats.Format
}

// NewCLI creates the nanounits command tree
func NewCLI() *CLI {
	cli := &CLI{
		viperInst: viper.New(),
	}

	cli.setupViperConfig()
	cli.createRootCommand()
	cli.addCommands()

	return cli
}

// setupViperConfig configures Viper with environment variables and config files
func (cli *CLI) setupViperConfig() {
	// NANOUNITS_CONFIG points at a specific config file
	if configFile := os.Getenv("NANOUNITS_CONFIG"); configFile != "" {
		cli.viperInst.SetConfigFile(configFile)
	} else {
		// Use default config file discovery
		cli.viperInst.SetConfigName("nanounits")
		cli.viperInst.SetConfigType("yaml")
		cli.viperInst.AddConfigPath(".")
		cli.viperInst.AddConfigPath("$HOME/.nanounits")
		cli.viperInst.AddConfigPath("/etc/nanounits")
	}

	// Enable environment variable support
	cli.viperInst.AutomaticEnv()
	cli.viperInst.SetEnvPrefix("NANOUNITS")

	// Replace dash with underscore in env vars (e.g., --log-level -> NANOUNITS_LOG_LEVEL)
	cli.viperInst.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))

	cli.viperInst.SetDefault("system", si.System)
	cli.viperInst.SetDefault("format", formats.Unicode.Name)
	cli.viperInst.SetDefault("output", "table")
	cli.viperInst.SetDefault("log-level", "warn")
}

// createRootCommand creates the root Cobra command with Viper integration
func (cli *CLI) createRootCommand() {
	cli.rootCmd = &cobra.Command{
		Use:   "nanounits",
		Short: "Inspect and compare physical dimensions",
		Long: `nanounits evaluates dimension expressions against the SI dimensions
and any catalogs you load, and reports how dimensions relate.

Configuration Sources (in order of precedence):
1. Command line flags
2. Environment variables (NANOUNITS_*)
3. Configuration files (custom path or default locations)

Configuration File Discovery:
  NANOUNITS_CONFIG=/path/to/config.yaml  # Custom config file path
  ./nanounits.yaml                       # Current directory
  ~/.nanounits/nanounits.yaml            # User directory
  /etc/nanounits/nanounits.yaml          # System directory

Examples:
  nanounits eval "force / area"
  nanounits compare frequency "1/time"
  nanounits --catalog mechanics.yaml list
  NANOUNITS_FORMAT=ascii nanounits eval "energy"`,

		SilenceUsage:  true,
		SilenceErrors: true,

		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cli.loadConfig(cmd); err != nil {
				return err
			}
			if err := initLogging(cli.viperInst.GetString("log-level"), cli.viperInst.GetBool("verbose")); err != nil {
				return NewConfigError("initialize logging", err.Error())
			}
			return cli.prepare(cmd)
		},
	}

	cli.addGlobalFlags()
}

// addGlobalFlags adds persistent flags that apply to all commands
func (cli *CLI) addGlobalFlags() {
	flags := cli.rootCmd.PersistentFlags()

	flags.StringSliceP("catalog", "c", nil, "Catalog files to load on top of the system (YAML or JSON)")
	flags.StringP("system", "s", si.System, "Built-in system to start from (si|none)")
	flags.StringP("format", "f", formats.Unicode.Name, "Symbol format ("+strings.Join(formats.List(), "|")+")")
	flags.StringP("output", "o", "table", "Output format (table|json|yaml)")
	flags.String("log-level", "warn", "Log level (debug|info|warn|error)")
	flags.BoolP("verbose", "v", false, "Also write logs to stderr")
}

// loadConfig reads the config file and binds every flag to its viper key
// and NANOUNITS_* environment variable
func (cli *CLI) loadConfig(cmd *cobra.Command) error {
	if err := cli.viperInst.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return NewConfigError("read configuration", err.Error(),
				"Check the file named by NANOUNITS_CONFIG",
			)
		}
	}

	var bindErr error
	cmd.Flags().VisitAll(func(flag *pflag.Flag) {
		if err := cli.viperInst.BindPFlag(flag.Name, flag); err != nil && bindErr == nil {
			bindErr = err
		}
		envVar := "NANOUNITS_" + strings.ToUpper(strings.ReplaceAll(flag.Name, "-", "_"))
		_ = cli.viperInst.BindEnv(flag.Name, envVar)
	})
	return bindErr
}

// prepare builds the registry and resolves the symbol format
func (cli *CLI) prepare(cmd *cobra.Command) error {
	format, err := formats.Get(cli.viperInst.GetString("format"))
	if err != nil {
		return NewConfigError(cmd.Name(), err.Error(),
			"Available formats: "+strings.Join(formats.List(), ", "),
		)
	}
	cli.format = format

	reg, err := cli.newRegistry(cli.viperInst.GetStringSlice("catalog"))
	if err != nil {
		return err
	}
	cli.registry = reg
	return nil
}

// newRegistry creates a registry holding the configured system and catalogs.
// Every call declares fresh dimensions.
func (cli *CLI) newRegistry(catalogs []string) (*dimension.Registry, error) {
	var reg *dimension.Registry
	switch system := cli.viperInst.GetString("system"); system {
	case si.System:
		var err error
		if reg, err = si.New(); err != nil {
			return nil, NewConfigError("load system", err.Error())
		}
	case "none", "":
		reg = dimension.NewRegistry()
	default:
		return nil, NewConfigError("load system", fmt.Sprintf("unknown system %q", system),
			"Use --system si or --system none",
		)
	}

	for _, path := range catalogs {
		if err := catalog.LoadInto(path, reg); err != nil {
			return nil, NewCatalogError("load catalog", path, err,
				"Run 'nanounits check "+path+"' for details",
			)
		}
		slog.Info("catalog loaded", "path", path, "dimensions", reg.Len())
	}
	return reg, nil
}

// output writes result in the configured output format; table output is
// produced by writeTable
func (cli *CLI) output(w io.Writer, result interface{}, writeTable func(io.Writer) error) error {
	switch format := cli.viperInst.GetString("output"); format {
	case "json":
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		return encoder.Encode(result)
	case "yaml":
		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)
		if err := encoder.Encode(result); err != nil {
			return err
		}
		return encoder.Close()
	case "table", "":
		return writeTable(w)
	default:
		return NewConfigError("write output", fmt.Sprintf("unknown output format %q", format),
			"Use --output table, json or yaml",
		)
	}
}

// symbol renders d in the configured format; dimensionless renders as "1"
func (cli *CLI) symbol(d dimension.Dimension) string {
	s, err := cli.format.Render(d)
	if err != nil || s == "" {
		return "1"
	}
	return s
}

// Execute runs the root command
func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

// SetArgs overrides the command line arguments
func (cli *CLI) SetArgs(args []string) {
	cli.rootCmd.SetArgs(args)
}

// SetOutput redirects command output
func (cli *CLI) SetOutput(out, errOut io.Writer) {
	cli.rootCmd.SetOut(out)
	cli.rootCmd.SetErr(errOut)
}

// GetConfig returns the current Viper configuration
func (cli *CLI) GetConfig(key string) interface{} {
	return cli.viperInst.Get(key)
}
