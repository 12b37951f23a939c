package commands

import (
	"errors"
	"fmt"
	"strings"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"
	Yes          = "yes"
	No           = "no"

	// YAML indentation.
	defaultIndent = 2
)

// Common static errors used throughout the commands package.
var (
	ErrSourceBranchRequired = errors.New("source branch is required (--source)")
	ErrTargetBranchRequired = errors.New("target branch is required (--target)")
	ErrInvalidActionFilter  = errors.New("action filter must be one of manage, none, use")
	ErrSecretPromptFailed   = errors.New("failed to read personal access token")
)

// parseParams turns repeated key=value flags into a map. Later keys win.
func parseParams(pairs []string) (map[string]string, error) {
	params := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		key, value, found := strings.Cut(pair, "=")
		if !found || key == "" {
			return nil, fmt.Errorf("%w: %q", errInvalidParam, pair)
		}

		params[key] = value
	}

	return params, nil
}

func boolText(value bool) string {
	if value {
		return Yes
	}

	return No
}

func orNotAvailable(value string) string {
	if value == "" {
		return NotAvailable
	}

	return value
}

// shortRef strips the branch namespace for display.
func shortRef(ref string) string {
	return strings.TrimPrefix(ref, "refs/heads/")
}
