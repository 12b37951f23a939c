package auth_test

import (
	"encoding/base64"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/ado-client/internal/auth"
	"github.com/fivetwenty-io/ado-client/pkg/ado"
)

func TestBasicAuthorizer_Authorize(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		credentials ado.Credentials
		expected    string
	}{
		{
			name:        "identity and secret",
			credentials: ado.Credentials{Identity: "build-bot", Secret: "s3cret"},
			expected:    "build-bot:s3cret",
		},
		{
			name:        "personal access token without identity",
			credentials: ado.Credentials{Secret: "pat"},
			expected:    ":pat",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req, err := http.NewRequest(http.MethodGet, "https://contoso/_apis", nil)
			require.NoError(t, err)

			auth.NewBasicAuthorizer(tt.credentials).Authorize(req)

			expected := "Basic " + base64.StdEncoding.EncodeToString([]byte(tt.expected))
			assert.Equal(t, expected, req.Header.Get("Authorization"))
		})
	}
}

func TestBasicAuthorizer_Identity(t *testing.T) {
	t.Parallel()

	authorizer := auth.NewBasicAuthorizer(ado.Credentials{Identity: "me", Secret: "x"})
	assert.Equal(t, "me", authorizer.Identity())
}
