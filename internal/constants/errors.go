package constants

import "errors"

// Configuration errors.
var (
	ErrNoTenant      = errors.New("no tenant configured, set --tenant or ADO_TENANT")
	ErrNoProject     = errors.New("no project configured, set --project or ADO_PROJECT")
	ErrNoRepository  = errors.New("no repository configured, set --repository or ADO_REPOSITORY")
	ErrNoSecret      = errors.New("no personal access token configured, set --token or ADO_TOKEN")
	ErrInvalidParam  = errors.New("invalid parameter, expected key=value")
	ErrInvalidOutput = errors.New("invalid output format")
	ErrInvalidPoolID = errors.New("invalid pool ID")
	ErrUnknownKey    = errors.New("unknown configuration key")
)
