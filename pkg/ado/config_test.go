package ado

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfig_Validate(t *testing.T) {
	t.Parallel()

	var nilConfig *Config

	require.ErrorIs(t, nilConfig.Validate(), ErrConfigRequired)
	require.ErrorIs(t, (&Config{}).Validate(), ErrTenantRequired)
	require.ErrorIs(t, (&Config{Tenant: "t"}).Validate(), ErrProjectIDRequired)
	require.ErrorIs(t, (&Config{Tenant: "t", ProjectID: "p"}).Validate(), ErrRepositoryIDRequired)
	require.ErrorIs(t, (&Config{Tenant: "t", ProjectID: "p", RepositoryID: "r"}).Validate(), ErrCredentialsRequired)

	config := &Config{Tenant: "t", ProjectID: "p", RepositoryID: "r", Credentials: Credentials{Secret: "s"}}
	assert.NoError(t, config.Validate())
}

func TestCredentials_SecretNotSerialized(t *testing.T) {
	t.Parallel()

	encoded, err := json.Marshal(Credentials{Identity: "jdoe", Secret: "pat"})
	require.NoError(t, err)
	assert.JSONEq(t, `{"identity": "jdoe"}`, string(encoded))
}

func TestContext(t *testing.T) {
	t.Parallel()

	adoContext := NewContext("jdoe", "repo-1", "ci/checks")
	assert.Equal(t, "jdoe", adoContext.Username())
	assert.Equal(t, "repo-1", adoContext.RepositoryID())
	assert.Equal(t, "ci/checks", adoContext.StatusContext())
}
