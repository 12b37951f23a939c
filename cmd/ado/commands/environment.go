package commands

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"syscall"

	"github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/fivetwenty-io/ado-client/internal/constants"
	"github.com/fivetwenty-io/ado-client/internal/notify"
	"github.com/fivetwenty-io/ado-client/pkg/ado"
	"github.com/fivetwenty-io/ado-client/pkg/adoclient"
)

// Environment holds the state shared by commands. Clients are built on first
// use.
type Environment struct {
	viper      *viper.Viper
	logger     *logrus.Logger
	out        io.Writer
	httpClient *http.Client
	prompt     func() (string, error)

	client    ado.Client
	publisher notify.Publisher
}

// NewEnvironment creates an environment writing to stdout.
func NewEnvironment(v *viper.Viper, logger *logrus.Logger) *Environment {
	return &Environment{
		viper:  v,
		logger: logger,
		out:    os.Stdout,
		prompt: promptSecret,
	}
}

// SetOutput redirects command output.
func (e *Environment) SetOutput(out io.Writer) {
	e.out = out
}

// SetHTTPClient overrides the transport used by the API client.
func (e *Environment) SetHTTPClient(httpClient *http.Client) {
	e.httpClient = httpClient
}

// SetSecretPrompt replaces the terminal token prompt.
func (e *Environment) SetSecretPrompt(prompt func() (string, error)) {
	e.prompt = prompt
}

// Settings resolves the current settings, prompting for a token when none is
// configured and stdin is a terminal.
func (e *Environment) Settings() (*Settings, error) {
	settings, err := LoadSettings(e.viper)
	if err != nil {
		return nil, err
	}

	if settings.Token == "" {
		settings.Token, err = e.prompt()
		if err != nil {
			return nil, err
		}
	}

	return settings, nil
}

// Client returns the API client, creating it on first use.
func (e *Environment) Client() (ado.Client, error) {
	if e.client != nil {
		return e.client, nil
	}

	settings, err := e.Settings()
	if err != nil {
		return nil, err
	}

	if settings.Verbose {
		e.logger.SetLevel(logrus.DebugLevel)
	}

	config := settings.Config(ado.NewLogrusLogger(logrus.NewEntry(e.logger)))
	config.HTTPClient = e.httpClient

	adoClient, err := adoclient.New(config)
	if err != nil {
		return nil, err
	}

	e.client = adoClient

	return adoClient, nil
}

// Publisher returns the event publisher. Without a NATS URL events are
// discarded.
func (e *Environment) Publisher() (notify.Publisher, error) {
	if e.publisher != nil {
		return e.publisher, nil
	}

	natsURL := e.viper.GetString(keyNATSURL)
	if natsURL == "" {
		e.publisher = notify.NopPublisher{}

		return e.publisher, nil
	}

	publisher, err := notify.Connect(natsURL, ado.NewLogrusLogger(logrus.NewEntry(e.logger)))
	if err != nil {
		return nil, err
	}

	e.publisher = publisher

	return publisher, nil
}

// Close releases the publisher connection, if any.
func (e *Environment) Close() {
	if e.publisher != nil {
		e.publisher.Close()
		e.publisher = nil
	}
}

// newEvent builds an event stamped with the current settings.
func (e *Environment) newEvent(subject string, payload ado.Payload) (*notify.Event, error) {
	data, err := payload.MarshalJSON()
	if err != nil {
		return nil, fmt.Errorf("encoding event payload: %w", err)
	}

	return &notify.Event{
		Subject:    subject,
		Tenant:     e.viper.GetString(keyTenant),
		Project:    e.viper.GetString(keyProject),
		Repository: e.viper.GetString(keyRepository),
		Username:   e.viper.GetString(keyUsername),
		Payload:    data,
	}, nil
}

func promptSecret() (string, error) {
	if !term.IsTerminal(int(syscall.Stdin)) {
		return "", constants.ErrNoSecret
	}

	_, _ = fmt.Fprint(os.Stderr, "Personal access token: ")

	secret, err := term.ReadPassword(int(syscall.Stdin))

	_, _ = fmt.Fprintln(os.Stderr)

	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrSecretPromptFailed, err)
	}

	if len(secret) == 0 {
		return "", constants.ErrNoSecret
	}

	return string(secret), nil
}
