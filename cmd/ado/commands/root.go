package commands

import (
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/ado-client/internal/constants"
)

// BuildInfo describes the running binary.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the ado command tree bound to env.
func NewRootCommand(env *Environment, info BuildInfo) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "ado",
		Short: "Azure DevOps REST API client",
		Long: `ado is a command line client for the Azure DevOps REST API.

It works with pull requests and agent pools, and can issue raw GET requests
against any API path.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return readConfig(env.viper)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			env.Close()
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.String(keyConfig, "", "config file (default is $HOME/.ado/config.yml)")
	flags.String(keyTenant, "", "organization host, e.g. contoso.visualstudio.com")
	flags.String(keyProject, "", "project identifier")
	flags.String(keyRepository, "", "repository identifier")
	flags.String(keyUsername, "", "user accessing the API")
	flags.String(keyIdentity, "", "basic auth identity (defaults to username)")
	flags.String(keyToken, "", "personal access token")
	flags.String(keyStatusContext, "", "context name for statuses")
	flags.String(keyNATSURL, "", "NATS server URL for change events")
	flags.Int(keyRetryMax, constants.DefaultRetryMax, "maximum retries for transient failures")
	flags.Duration(keyTimeout, constants.DefaultHTTPTimeout, "per-request timeout")
	flags.StringP(keyOutput, "o", constants.OutputFormatTable, "output format (table, json, yaml)")
	flags.BoolP(keyVerbose, "v", false, "verbose output")

	for _, key := range []string{
		keyConfig, keyTenant, keyProject, keyRepository, keyUsername, keyIdentity, keyToken,
		keyStatusContext, keyNATSURL, keyRetryMax, keyTimeout, keyOutput, keyVerbose,
	} {
		_ = env.viper.BindPFlag(key, flags.Lookup(key))
	}

	rootCmd.AddCommand(NewVersionCommand(env, info))
	rootCmd.AddCommand(NewVerifyCommand(env))
	rootCmd.AddCommand(NewPullRequestsCommand(env))
	rootCmd.AddCommand(NewPoolsCommand(env))
	rootCmd.AddCommand(NewGetCommand(env))
	rootCmd.AddCommand(NewConfigCommand(env))

	return rootCmd
}
