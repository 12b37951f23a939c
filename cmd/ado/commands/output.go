package commands

import (
	"encoding/json"
	"fmt"

	"github.com/olekukonko/tablewriter"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/ado-client/internal/constants"
)

// render writes data in the configured output format. fillTable populates
// the table used for the default format.
func (e *Environment) render(data interface{}, fillTable func(table *tablewriter.Table)) error {
	output := e.viper.GetString(keyOutput)
	switch output {
	case constants.OutputFormatJSON:
		encoder := json.NewEncoder(e.out)
		encoder.SetIndent("", "  ")

		return encoder.Encode(data)
	case constants.OutputFormatYAML:
		generic, err := toGeneric(data)
		if err != nil {
			return err
		}

		encoder := yaml.NewEncoder(e.out)
		encoder.SetIndent(defaultIndent)

		err = encoder.Encode(generic)
		if err != nil {
			return fmt.Errorf("failed to encode yaml: %w", err)
		}

		return encoder.Close()
	case constants.OutputFormatTable, "":
		table := tablewriter.NewWriter(e.out)
		fillTable(table)

		err := table.Render()
		if err != nil {
			return fmt.Errorf("failed to render table: %w", err)
		}

		return nil
	default:
		return fmt.Errorf("%w: %q", errInvalidOutput, output)
	}
}

// toGeneric round-trips data through JSON so raw API payloads encode as
// YAML maps instead of byte slices.
func toGeneric(data interface{}) (interface{}, error) {
	encoded, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("failed to encode output: %w", err)
	}

	var generic interface{}

	err = json.Unmarshal(encoded, &generic)
	if err != nil {
		return nil, fmt.Errorf("failed to encode output: %w", err)
	}

	return generic, nil
}
