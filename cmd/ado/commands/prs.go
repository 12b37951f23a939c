package commands

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/ado-client/internal/notify"
	"github.com/fivetwenty-io/ado-client/pkg/ado"
)

// pullRequestSummary is the subset of a pull request shown in tables.
type pullRequestSummary struct {
	PullRequestID int    `json:"pullRequestId"`
	Title         string `json:"title"`
	Status        string `json:"status"`
	SourceRefName string `json:"sourceRefName"`
	TargetRefName string `json:"targetRefName"`
	CreatedBy     struct {
		DisplayName string `json:"displayName"`
	} `json:"createdBy"`
}

func (s pullRequestSummary) row() []interface{} {
	return []interface{}{
		strconv.Itoa(s.PullRequestID),
		orNotAvailable(s.Title),
		orNotAvailable(s.Status),
		shortRef(s.SourceRefName),
		shortRef(s.TargetRefName),
		orNotAvailable(s.CreatedBy.DisplayName),
	}
}

var pullRequestHeader = []interface{}{"ID", "Title", "Status", "Source", "Target", "Created By"}

// NewPullRequestsCommand creates the pull requests command group.
func NewPullRequestsCommand(env *Environment) *cobra.Command {
	cmd := &cobra.Command{
		Use:     "prs",
		Aliases: []string{"pull-requests", "pr"},
		Short:   "Manage pull requests",
		Long:    "List and create pull requests in the configured repository",
	}

	cmd.AddCommand(newPullRequestsListCommand(env))
	cmd.AddCommand(newPullRequestsCreateCommand(env))

	return cmd
}

func newPullRequestsListCommand(env *Environment) *cobra.Command {
	var branch string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List all pull requests",
		Long:  "List every pull request in the repository, optionally only those from one source branch",
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := env.Client()
			if err != nil {
				return err
			}

			pullRequests, err := client.ListAllPullRequests(cmd.Context(), branch)
			if err != nil {
				return fmt.Errorf("failed to list pull requests: %w", err)
			}

			summaries := make([]pullRequestSummary, 0, len(pullRequests))
			for _, raw := range pullRequests {
				var summary pullRequestSummary

				err := json.Unmarshal(raw, &summary)
				if err != nil {
					return fmt.Errorf("failed to parse pull request: %w", err)
				}

				summaries = append(summaries, summary)
			}

			return env.render(pullRequests, func(table *tablewriter.Table) {
				table.Header(pullRequestHeader...)

				for _, summary := range summaries {
					_ = table.Append(summary.row()...)
				}
			})
		},
	}

	cmd.Flags().StringVar(&branch, "branch", "", "only pull requests from this source branch")

	return cmd
}

func newPullRequestsCreateCommand(env *Environment) *cobra.Command {
	var (
		source      string
		target      string
		title       string
		description string
		reviewers   []string
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a pull request",
		Long:  "Open a pull request from --source into --target and publish a creation event when NATS is configured",
		RunE: func(cmd *cobra.Command, args []string) error {
			if source == "" {
				return ErrSourceBranchRequired
			}

			if target == "" {
				return ErrTargetBranchRequired
			}

			client, err := env.Client()
			if err != nil {
				return err
			}

			opts := &ado.PullRequestOptions{ReviewerIDs: reviewers}
			if cmd.Flags().Changed("title") {
				opts.Title = &title
			}

			if cmd.Flags().Changed("description") {
				opts.Description = &description
			}

			created, err := client.CreatePullRequest(cmd.Context(), source, target, opts)
			if err != nil {
				return fmt.Errorf("failed to create pull request: %w", err)
			}

			err = env.publish(cmd, notify.SubjectPullRequestCreated, created)
			if err != nil {
				env.logger.WithError(err).Warn("Pull request created but the creation event was not published")
			}

			var summary pullRequestSummary

			err = created.Decode(&summary)
			if err != nil {
				return fmt.Errorf("failed to parse pull request: %w", err)
			}

			return env.render(created, func(table *tablewriter.Table) {
				table.Header(pullRequestHeader...)
				_ = table.Append(summary.row()...)
			})
		},
	}

	cmd.Flags().StringVar(&source, "source", "", "source branch")
	cmd.Flags().StringVar(&target, "target", "", "target branch")
	cmd.Flags().StringVar(&title, "title", "", "pull request title")
	cmd.Flags().StringVar(&description, "description", "", "pull request description")
	cmd.Flags().StringArrayVar(&reviewers, "reviewer", nil, "reviewer identity id (repeatable)")

	return cmd
}

// publish sends payload to subject through the configured publisher.
func (e *Environment) publish(cmd *cobra.Command, subject string, payload ado.Payload) error {
	publisher, err := e.Publisher()
	if err != nil {
		return fmt.Errorf("failed to connect publisher: %w", err)
	}

	event, err := e.newEvent(subject, payload)
	if err != nil {
		return err
	}

	err = publisher.Publish(cmd.Context(), event)
	if err != nil {
		return fmt.Errorf("failed to publish %s: %w", subject, err)
	}

	return nil
}
