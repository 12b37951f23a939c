package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/dig"

	"github.com/fivetwenty-io/ado-client/cmd/ado/commands"
)

func injectRootCommand(info commands.BuildInfo) *cobra.Command {
	container := dig.New()

	if err := container.Provide(func() commands.BuildInfo { return info }); err != nil {
		panic(err)
	}

	// Register all providers
	if err := commands.RegisterProviders(container); err != nil {
		panic(err)
	}

	var rootCmd *cobra.Command
	if err := container.Invoke(func(cmd *cobra.Command) {
		rootCmd = cmd
	}); err != nil {
		panic(err)
	}

	return rootCmd
}
