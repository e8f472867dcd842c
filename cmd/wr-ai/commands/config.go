package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/woicw/wr-ai/internal/config"
	"github.com/woicw/wr-ai/internal/editor"
	"github.com/woicw/wr-ai/internal/errors"
	"github.com/woicw/wr-ai/internal/ui"
)

// openEditor is replaced in tests.
var openEditor = editor.Open

func init() {
	configCmd.AddCommand(configGetCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configListCmd)
	configCmd.AddCommand(configEditCmd)
	rootCmd.AddCommand(configCmd)
}

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage wr-ai configuration",
	Long: `Manage wr-ai configuration stored in <config dir>/wr-ai/config.yaml.

Without a subcommand, lists all configuration values. Environment variables
prefixed with WR_AI_ (e.g. WR_AI_ORIGIN) override the file.`,
	Example: `  # List all configuration
  wr-ai config

  # Get a specific value
  wr-ai config get origin

  # Set a value
  wr-ai config set fetch_timeout 1m

See Also: wr-ai set github`,
	RunE: runConfigList,
}

var configGetCmd = &cobra.Command{
	Use:   "get <key>",
	Short: "Get a configuration value",
	Long:  `Get a single configuration value by key, including environment overrides.`,
	Example: `  wr-ai config get origin

See Also: wr-ai config set, wr-ai config list`,
	Args:              cobra.ExactArgs(1),
	ValidArgsFunction: completeConfigKey,
	RunE:              runConfigGet,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Long: `Set a configuration value. Durations use Go syntax (30s, 2m).
Values are validated before the file is written.`,
	Example: `  wr-ai config set fetch_timeout 2m
  wr-ai config set origin https://github.com/acme/ai-config.git

See Also: wr-ai config get, wr-ai config list`,
	Args:              cobra.ExactArgs(2),
	ValidArgsFunction: completeConfigKey,
	RunE:              runConfigSet,
}

var configListCmd = &cobra.Command{
	Use:   "list",
	Short: "List all configuration",
	Long:  `List all configuration values in YAML format.`,
	Example: `  wr-ai config list

See Also: wr-ai config get, wr-ai config set`,
	RunE: runConfigList,
}

var configEditCmd = &cobra.Command{
	Use:   "edit",
	Short: "Open the configuration file in an editor",
	Long: `Open the configuration file in $EDITOR (falling back to $VISUAL, nano,
then vi). A missing file is created with defaults first. The file is
validated after the editor exits.`,
	Example: `  wr-ai config edit
  EDITOR="code --wait" wr-ai config edit

See Also: wr-ai config set, wr-ai config list`,
	Args: cobra.NoArgs,
	RunE: runConfigEdit,
}

// completeConfigKey completes the key argument only.
func completeConfigKey(_ *cobra.Command, args []string, _ string) ([]string, cobra.ShellCompDirective) {
	if len(args) > 0 {
		return nil, cobra.ShellCompDirectiveNoFileComp
	}
	return config.Keys, cobra.ShellCompDirectiveNoFileComp
}

func runConfigGet(cmd *cobra.Command, args []string) error {
	key := args[0]

	c, err := effectiveConfig()
	if err != nil {
		return err
	}
	val, ok := config.Get(c, key)
	if !ok {
		return errors.NewUserError(errors.Newf("unknown config key %q", key),
			fmt.Sprintf("Valid keys: %v", config.Keys))
	}
	fmt.Fprintln(cmd.OutOrStdout(), val)
	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key, value := args[0], args[1]

	store := newStore()
	if err := store.Set(key, value); err != nil {
		return errors.NewUserError(err, fmt.Sprintf("Valid keys: %v", config.Keys))
	}
	fmt.Fprintf(out(cmd), "Set %s = %s\n", key, value)
	return nil
}

func runConfigList(cmd *cobra.Command, _ []string) error {
	c, err := effectiveConfig()
	if err != nil {
		return err
	}

	data, err := yaml.Marshal(c)
	if err != nil {
		return errors.Wrap(err, "marshaling config")
	}
	fmt.Fprint(cmd.OutOrStdout(), string(data))
	return nil
}

// effectiveConfig returns the loaded config, environment overrides
// included. A broken file is reported here rather than in the root pre-run.
func effectiveConfig() (*config.Config, error) {
	if configLoadErr != nil {
		return nil, errors.NewConfigError(configLoadErr)
	}
	return currentConfig(), nil
}

func runConfigEdit(cmd *cobra.Command, _ []string) error {
	store := newStore()
	path := store.Path()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := store.Write(config.Default()); err != nil {
			return err
		}
	}

	fmt.Fprintln(out(cmd), ui.Info("Editing "+path))
	streams := editor.Streams{In: cmd.InOrStdin(), Out: cmd.OutOrStdout(), Err: cmd.ErrOrStderr()}
	if err := openEditor(cmd.Context(), path, streams); err != nil {
		return errors.NewSystemError(err, "Set EDITOR to your preferred editor")
	}

	cfg, err := store.Read()
	if err != nil {
		return errors.NewUserError(err, "Run 'wr-ai config edit' to fix the file")
	}
	if errs := config.Validate(cfg); len(errs) > 0 {
		return errors.NewUserError(errs[0], "Run 'wr-ai config edit' to fix the file")
	}
	fmt.Fprintln(out(cmd), ui.Success("Configuration is valid"))
	return nil
}
