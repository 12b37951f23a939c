package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/viper"

	"github.com/fivetwenty-io/ado-client/internal/constants"
	"github.com/fivetwenty-io/ado-client/pkg/ado"
)

var (
	errInvalidParam  = constants.ErrInvalidParam
	errInvalidOutput = constants.ErrInvalidOutput
)

// Viper keys. Flags share the same names.
const (
	keyConfig        = "config"
	keyTenant        = "tenant"
	keyProject       = "project"
	keyRepository    = "repository"
	keyUsername      = "username"
	keyIdentity      = "identity"
	keyToken         = "token"
	keyStatusContext = "status-context"
	keyHeaders       = "headers"
	keyNATSURL       = "nats-url"
	keyRetryMax      = "retry-max"
	keyTimeout       = "timeout"
	keyOutput        = "output"
	keyVerbose       = "verbose"
)

// Settings is the resolved CLI configuration.
type Settings struct {
	Username      string
	Tenant        string
	Project       string
	Repository    string
	Identity      string
	Token         string
	StatusContext string
	Headers       map[string]string
	RetryMax      int
	Timeout       time.Duration
	Verbose       bool
}

// readConfig loads the config file and environment into v. A missing config
// file is not an error.
func readConfig(v *viper.Viper) error {
	v.SetEnvPrefix("ADO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cfgFile := v.GetString(keyConfig)
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)

		err := v.ReadInConfig()
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("reading config file %s: %w", cfgFile, err)
		}

		return nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil //nolint:nilerr // no home directory means no default config
	}

	v.AddConfigPath(filepath.Join(home, ".ado"))
	v.SetConfigType("yml")
	v.SetConfigName("config")

	_ = v.ReadInConfig()

	return nil
}

// LoadSettings resolves settings from v. The token may still be empty.
func LoadSettings(v *viper.Viper) (*Settings, error) {
	settings := &Settings{
		Username:      v.GetString(keyUsername),
		Tenant:        v.GetString(keyTenant),
		Project:       v.GetString(keyProject),
		Repository:    v.GetString(keyRepository),
		Identity:      v.GetString(keyIdentity),
		Token:         v.GetString(keyToken),
		StatusContext: v.GetString(keyStatusContext),
		Headers:       v.GetStringMapString(keyHeaders),
		RetryMax:      v.GetInt(keyRetryMax),
		Timeout:       v.GetDuration(keyTimeout),
		Verbose:       v.GetBool(keyVerbose),
	}

	switch {
	case settings.Tenant == "":
		return nil, constants.ErrNoTenant
	case settings.Project == "":
		return nil, constants.ErrNoProject
	case settings.Repository == "":
		return nil, constants.ErrNoRepository
	}

	if settings.Identity == "" {
		settings.Identity = settings.Username
	}

	return settings, nil
}

// Config converts settings into a client configuration.
func (s *Settings) Config(logger ado.Logger) *ado.Config {
	return &ado.Config{
		Username:      s.Username,
		Tenant:        s.Tenant,
		ProjectID:     s.Project,
		RepositoryID:  s.Repository,
		Credentials:   ado.Credentials{Identity: s.Identity, Secret: s.Token},
		StatusContext: s.StatusContext,
		ExtraHeaders:  s.Headers,
		Logger:        logger,
		HTTPTimeout:   s.Timeout,
		RetryMax:      s.RetryMax,
		Debug:         s.Verbose,
	}
}
