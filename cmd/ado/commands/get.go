package commands

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/ado-client/pkg/ado"
)

// NewGetCommand creates the raw GET command.
func NewGetCommand(env *Environment) *cobra.Command {
	var (
		params       []string
		noCollection bool
		noProject    bool
		internal     bool
	)

	cmd := &cobra.Command{
		Use:   "get <path>",
		Short: "Issue a GET request against an API path",
		Long: `Issue a GET request against a path below the API root and print the response.

The path is appended to the base URL, e.g. "git/repositories". A non-2xx
response is printed and the command fails.`,
		Example: `  ado get git/repositories --param api-version=5.1
  ado get distributedtask/pools --no-collection --no-project`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			parsed, err := parseParams(params)
			if err != nil {
				return err
			}

			query := url.Values{}
			for key, value := range parsed {
				query.Set(key, value)
			}

			scope := ado.URLScope{
				SkipDefaultCollection: noCollection,
				SkipProject:           noProject,
				Internal:              internal,
			}

			client, err := env.Client()
			if err != nil {
				return err
			}

			resp, err := client.CustomGet(cmd.Context(), args[0], query, scope)
			if err != nil {
				return fmt.Errorf("failed to get %s: %w", args[0], err)
			}

			var body interface{} = string(resp.Body)
			if json.Valid(resp.Body) {
				body = json.RawMessage(resp.Body)
			}

			result := map[string]interface{}{
				"status": resp.StatusCode,
				"body":   body,
			}

			err = env.render(result, func(table *tablewriter.Table) {
				table.Header("Status", "Body")
				_ = table.Append(strconv.Itoa(resp.StatusCode), string(resp.Body))
			})
			if err != nil {
				return err
			}

			if !resp.IsSuccess() {
				return fmt.Errorf("%w: %d", ado.ErrUnexpectedStatus, resp.StatusCode)
			}

			return nil
		},
	}

	cmd.Flags().StringArrayVar(&params, "param", nil, "query parameter key=value (repeatable)")
	cmd.Flags().BoolVar(&noCollection, "no-collection", false, "omit the DefaultCollection segment")
	cmd.Flags().BoolVar(&noProject, "no-project", false, "omit the project segment")
	cmd.Flags().BoolVar(&internal, "internal", false, "use the internal _api segment")

	return cmd
}
