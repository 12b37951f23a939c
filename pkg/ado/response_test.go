package ado

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResponse_IsSuccess(t *testing.T) {
	t.Parallel()

	for status, expected := range map[int]bool{
		http.StatusOK:                  true,
		http.StatusCreated:             true,
		http.StatusNoContent:           true,
		http.StatusMultipleChoices:     false,
		http.StatusNotFound:            false,
		http.StatusInternalServerError: false,
	} {
		assert.Equal(t, expected, (&Response{StatusCode: status}).IsSuccess(), status)
	}
}

//nolint:funlen // Test functions can be longer for comprehensive testing
func TestParseEnvelope(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name          string
		body          string
		wantErr       bool
		hasValue      bool
		count         *int
		payload       string
		payloadSource PayloadSource
	}{
		{
			name:          "value and count",
			body:          `{"count": 2, "value": [{"id": 1}, {"id": 2}]}`,
			hasValue:      true,
			count:         intPointer(2),
			payload:       `[{"id": 1}, {"id": 2}]`,
			payloadSource: PayloadFromValue,
		},
		{
			name:          "plain object",
			body:          `{"id": 7, "name": "repo"}`,
			payload:       `{"id": 7, "name": "repo"}`,
			payloadSource: PayloadFromBody,
		},
		{
			name:          "value null is still a value",
			body:          `{"value": null}`,
			hasValue:      true,
			payload:       `null`,
			payloadSource: PayloadFromValue,
		},
		{
			name:          "scalar value",
			body:          `{"value": "text", "count": 1}`,
			hasValue:      true,
			count:         intPointer(1),
			payload:       `"text"`,
			payloadSource: PayloadFromValue,
		},
		{
			name:          "top level array",
			body:          "  [1, 2]\n",
			payload:       `[1, 2]`,
			payloadSource: PayloadFromBody,
		},
		{
			name:    "not JSON",
			body:    "<html>",
			wantErr: true,
		},
		{
			name:    "empty",
			body:    "",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			envelope, err := ParseEnvelope([]byte(tt.body))
			if tt.wantErr {
				require.ErrorIs(t, err, ErrInvalidBody)
				assert.Nil(t, envelope)

				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.hasValue, envelope.HasValue())
			assert.Equal(t, tt.count, envelope.Count)

			payload := envelope.Payload()
			assert.Equal(t, tt.payloadSource, payload.Source)
			assert.JSONEq(t, tt.payload, string(payload.Data))
		})
	}
}

func TestPayload(t *testing.T) {
	t.Parallel()

	t.Run("list", func(t *testing.T) {
		t.Parallel()

		payload := Payload{Data: json.RawMessage(`[{"id": 1}, {"id": 2}, {"id": 3}]`), Source: PayloadFromValue}

		items, err := payload.Items()
		require.NoError(t, err)
		assert.Len(t, items, 3)
		assert.JSONEq(t, `{"id": 2}`, string(items[1]))

		length, err := payload.Len()
		require.NoError(t, err)
		assert.Equal(t, 3, length)

		var decoded []struct {
			ID int `json:"id"`
		}

		require.NoError(t, payload.Decode(&decoded))
		assert.Equal(t, 3, decoded[2].ID)
	})

	t.Run("object", func(t *testing.T) {
		t.Parallel()

		payload := Payload{Data: json.RawMessage(`{"id": 1}`)}

		_, err := payload.Items()
		require.ErrorIs(t, err, ErrPayloadNotList)

		_, err = payload.Len()
		require.ErrorIs(t, err, ErrPayloadNotList)

		encoded, err := json.Marshal(map[string]interface{}{"result": payload})
		require.NoError(t, err)
		assert.JSONEq(t, `{"result": {"id": 1}}`, string(encoded))
	})

	t.Run("empty", func(t *testing.T) {
		t.Parallel()

		encoded, err := json.Marshal(Payload{})
		require.NoError(t, err)
		assert.Equal(t, "null", string(encoded))
	})

	assert.Equal(t, "value", PayloadFromValue.String())
	assert.Equal(t, "body", PayloadFromBody.String())
}

func intPointer(i int) *int {
	return &i
}
