package commands

import (
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/ado-client/pkg/ado"
)

// NewVerifyCommand creates the verify command.
func NewVerifyCommand(env *Environment) *cobra.Command {
	return &cobra.Command{
		Use:   "verify",
		Short: "Check that the configured credentials can reach the project",
		Long:  "List the project's repositories to check that the tenant, project, and credentials are usable",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := env.Client()
			if err != nil {
				return err
			}

			if !client.VerifyAccess(cmd.Context()) {
				return ado.ErrAccessDenied
			}

			result := map[string]interface{}{
				"tenant":   env.viper.GetString(keyTenant),
				"project":  env.viper.GetString(keyProject),
				"verified": true,
			}

			return env.render(result, func(table *tablewriter.Table) {
				table.Header("Tenant", "Project", "Access")
				_ = table.Append(result["tenant"], result["project"], "verified")
			})
		},
	}
}
