//go:build integration

package integration

import (
	"bytes"
	"os"
	"os/exec"
	"strings"
	"testing"
)

// TestConfig holds configuration for integration tests
type TestConfig struct {
	Tenant     string
	Project    string
	Repository string
	Username   string
	Token      string
	Branch     string
	AdoPath    string
	Verbose    bool
}

// LoadTestConfig loads configuration from environment variables
func LoadTestConfig() *TestConfig {
	return &TestConfig{
		Tenant:     os.Getenv("ADO_TENANT"),
		Project:    os.Getenv("ADO_PROJECT"),
		Repository: os.Getenv("ADO_REPOSITORY"),
		Username:   os.Getenv("ADO_USERNAME"),
		Token:      os.Getenv("ADO_TOKEN"),
		Branch:     os.Getenv("ADO_TEST_BRANCH"),
		AdoPath:    getAdoPath(),
		Verbose:    os.Getenv("ADO_VERBOSE") == "true",
	}
}

// getAdoPath determines the path to the ado binary
func getAdoPath() string {
	if path := os.Getenv("ADO_BINARY_PATH"); path != "" {
		return path
	}

	// Try common locations
	candidates := []string{
		"../../ado",
		"./ado",
		"../ado",
	}

	for _, candidate := range candidates {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "ado" // Fallback to PATH
}

// SkipIfMissingConfig skips test if required config is missing
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.Tenant == "" || config.Project == "" || config.Repository == "" || config.Token == "" {
		t.Skip("ADO_TENANT, ADO_PROJECT, ADO_REPOSITORY and ADO_TOKEN must be set, skipping integration test")
	}
}

// SkipIfMissingBinary skips test if the ado binary cannot be found
func (config *TestConfig) SkipIfMissingBinary(t *testing.T) {
	t.Helper()

	if _, err := exec.LookPath(config.AdoPath); err != nil {
		t.Skipf("ado binary not found at %s, skipping integration test", config.AdoPath)
	}
}

// CommandRunner provides utilities for running ado commands
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{
		config: config,
		t:      t,
	}
}

// Run executes an ado command and returns output. Connection settings reach
// the binary through its environment.
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	cmd := exec.Command(runner.config.AdoPath, args...)
	cmd.Env = append(os.Environ(),
		"ADO_TENANT="+runner.config.Tenant,
		"ADO_PROJECT="+runner.config.Project,
		"ADO_REPOSITORY="+runner.config.Repository,
		"ADO_USERNAME="+runner.config.Username,
		"ADO_TOKEN="+runner.config.Token,
	)

	var stdoutBuf, stderrBuf bytes.Buffer
	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.AdoPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// AssertJSONOutput verifies command output is valid JSON
func AssertJSONOutput(t *testing.T, output string) {
	t.Helper()

	output = strings.TrimSpace(output)
	if !strings.HasPrefix(output, "{") && !strings.HasPrefix(output, "[") {
		t.Errorf("Output does not appear to be JSON: %s", output)
	}
}

// AssertYAMLOutput verifies command output is valid YAML
func AssertYAMLOutput(t *testing.T, output string) {
	t.Helper()

	output = strings.TrimSpace(output)
	if strings.Contains(output, "---") || strings.Contains(output, ":") {
		return // Looks like YAML
	}

	t.Errorf("Output does not appear to be YAML: %s", output)
}
