package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/ado-client/internal/constants"
)

// configurableKeys may be stored in the config file.
var configurableKeys = []string{
	keyTenant, keyProject, keyRepository, keyUsername, keyIdentity, keyToken,
	keyStatusContext, keyNATSURL, keyRetryMax, keyTimeout, keyOutput,
}

// NewConfigCommand creates the config command group.
func NewConfigCommand(env *Environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Show and edit the ado CLI configuration file",
	}

	cmd.AddCommand(newConfigShowCommand(env))
	cmd.AddCommand(newConfigSetCommand(env))
	cmd.AddCommand(newConfigUnsetCommand(env))

	return cmd
}

func newConfigShowCommand(env *Environment) *cobra.Command {
	return &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the effective configuration from flags, environment, and config file",
		RunE: func(cmd *cobra.Command, args []string) error {
			values := make(map[string]string, len(configurableKeys))
			for _, key := range configurableKeys {
				values[key] = env.viper.GetString(key)
			}

			if values[keyToken] != "" {
				values[keyToken] = "********"
			}

			return env.render(values, func(table *tablewriter.Table) {
				table.Header("Key", "Value")

				for _, key := range configurableKeys {
					_ = table.Append(key, orNotAvailable(values[key]))
				}
			})
		},
	}
}

func newConfigSetCommand(env *Environment) *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value in the config file (" + strings.Join(configurableKeys, ", ") + ")",
		Args:  cobra.ExactArgs(2), //nolint:mnd
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.updateConfigFile(args[0], func(values map[string]interface{}) {
				values[args[0]] = args[1]
			})
		},
	}
}

func newConfigUnsetCommand(env *Environment) *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Remove a configuration value",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return env.updateConfigFile(args[0], func(values map[string]interface{}) {
				delete(values, args[0])
			})
		},
	}
}

// configFile returns the config file in use, or the default location.
func (e *Environment) configFile() (string, error) {
	configFile := e.viper.ConfigFileUsed()
	if configFile != "" {
		return configFile, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, ".ado", "config.yml"), nil
}

// updateConfigFile applies edit to the stored values of the config file.
func (e *Environment) updateConfigFile(key string, edit func(values map[string]interface{})) error {
	if !slices.Contains(configurableKeys, key) {
		return fmt.Errorf("%w: %q", constants.ErrUnknownKey, key)
	}

	configFile, err := e.configFile()
	if err != nil {
		return err
	}

	values := map[string]interface{}{}

	// configFile comes from the --config flag or the user's home directory
	// #nosec G304
	data, err := os.ReadFile(configFile)
	switch {
	case errors.Is(err, fs.ErrNotExist):
	case err != nil:
		return fmt.Errorf("failed to read config file: %w", err)
	default:
		err = yaml.Unmarshal(data, &values)
		if err != nil {
			return fmt.Errorf("failed to parse config file: %w", err)
		}

		if values == nil {
			values = map[string]interface{}{}
		}
	}

	edit(values)

	err = os.MkdirAll(filepath.Dir(configFile), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err = yaml.Marshal(values)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(configFile, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	_, _ = fmt.Fprintf(e.out, "Updated %s in %s\n", key, configFile)

	return nil
}
