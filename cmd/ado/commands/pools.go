package commands

import (
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/ado-client/internal/constants"
	"github.com/fivetwenty-io/ado-client/pkg/ado"
)

type poolSummary struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Size     int    `json:"size"`
	IsHosted bool   `json:"isHosted"`
	PoolType string `json:"poolType"`
}

type agentSummary struct {
	ID      int    `json:"id"`
	Name    string `json:"name"`
	Version string `json:"version"`
	Status  string `json:"status"`
	Enabled bool   `json:"enabled"`
}

// NewPoolsCommand creates the agent pools command group.
func NewPoolsCommand(env *Environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "pools",
		Short: "Inspect agent pools",
		Long:  "List organization agent pools and the agents registered in them",
	}

	cmd.AddCommand(newPoolsListCommand(env))
	cmd.AddCommand(newPoolsAgentsCommand(env))

	return cmd
}

func newPoolsListCommand(env *Environment) *cobra.Command {
	var (
		name         string
		actionFilter string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List agent pools",
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				poolName *string
				filter   *ado.TaskAgentPoolActionFilter
			)

			if name != "" {
				poolName = &name
			}

			switch value := ado.TaskAgentPoolActionFilter(actionFilter); value {
			case "":
			case ado.PoolActionFilterManage, ado.PoolActionFilterNone, ado.PoolActionFilterUse:
				filter = &value
			default:
				return fmt.Errorf("%w: %q", ErrInvalidActionFilter, actionFilter)
			}

			client, err := env.Client()
			if err != nil {
				return err
			}

			payload, err := client.Pools().GetPools(cmd.Context(), poolName, filter)
			if err != nil {
				return fmt.Errorf("failed to list pools: %w", err)
			}

			var pools []poolSummary

			err = payload.Decode(&pools)
			if err != nil {
				return fmt.Errorf("failed to parse pools: %w", err)
			}

			return env.render(payload, func(table *tablewriter.Table) {
				table.Header("ID", "Name", "Size", "Hosted", "Type")

				for _, pool := range pools {
					_ = table.Append(strconv.Itoa(pool.ID), pool.Name, strconv.Itoa(pool.Size),
						boolText(pool.IsHosted), orNotAvailable(pool.PoolType))
				}
			})
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "only pools with this name")
	cmd.Flags().StringVar(&actionFilter, "action-filter", "", "permission filter (manage, none, use)")

	return cmd
}

func newPoolsAgentsCommand(env *Environment) *cobra.Command {
	var (
		poolID int
		name   string
	)

	cmd := &cobra.Command{
		Use:   "agents",
		Short: "List the agents of a pool",
		RunE: func(cmd *cobra.Command, args []string) error {
			if poolID <= 0 {
				return fmt.Errorf("%w: %d", constants.ErrInvalidPoolID, poolID)
			}

			client, err := env.Client()
			if err != nil {
				return err
			}

			opts := ado.DefaultAgentListOptions()
			if name != "" {
				opts.AgentName = &name
			}

			payload, err := client.Pools().GetAgents(cmd.Context(), poolID, opts)
			if err != nil {
				return fmt.Errorf("failed to list agents: %w", err)
			}

			var agents []agentSummary

			err = payload.Decode(&agents)
			if err != nil {
				return fmt.Errorf("failed to parse agents: %w", err)
			}

			return env.render(payload, func(table *tablewriter.Table) {
				table.Header("ID", "Name", "Version", "Status", "Enabled")

				for _, agent := range agents {
					_ = table.Append(strconv.Itoa(agent.ID), agent.Name, orNotAvailable(agent.Version),
						orNotAvailable(agent.Status), boolText(agent.Enabled))
				}
			})
		},
	}

	cmd.Flags().IntVar(&poolID, "pool", 0, "pool id")
	cmd.Flags().StringVar(&name, "name", "", "only agents with this name")

	return cmd
}
