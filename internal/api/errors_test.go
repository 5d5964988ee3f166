package api

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/linhqtruong/productcatalogmanager/pkg/httpclient"
)

func TestNormalizeStatus(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		kind    Kind
		message string
	}{
		{
			name:    "bad request with server message",
			status:  400,
			body:    `{"message":"Invalid product key: abc"}`,
			kind:    KindClient,
			message: "Bad Request: Invalid product key: abc",
		},
		{
			name:    "bad request without body",
			status:  400,
			kind:    KindClient,
			message: "Bad Request: Invalid request data",
		},
		{
			name:    "unauthorized ignores server message",
			status:  401,
			body:    `{"message":"token expired"}`,
			kind:    KindClient,
			message: "Unauthorized: Please log in again",
		},
		{
			name:    "forbidden",
			status:  403,
			kind:    KindClient,
			message: "Forbidden: You do not have permission to access this resource",
		},
		{
			name:    "not found with server message",
			status:  404,
			body:    `{"message":"Product not found with key: 9"}`,
			kind:    KindClient,
			message: "Not Found: Product not found with key: 9",
		},
		{
			name:    "not found without body",
			status:  404,
			kind:    KindClient,
			message: "Not Found: The requested resource was not found",
		},
		{
			name:    "unprocessable entity",
			status:  422,
			body:    `{"message":"price out of range"}`,
			kind:    KindClient,
			message: "Validation Error: price out of range",
		},
		{
			name:    "internal server error ignores server message",
			status:  500,
			body:    `{"message":"stack trace here"}`,
			kind:    KindServer,
			message: "Server Error: Please try again later",
		},
		{
			name:    "other 4xx",
			status:  418,
			kind:    KindClient,
			message: "HTTP Error 418: An unexpected error occurred",
		},
		{
			name:    "other 5xx",
			status:  503,
			body:    `{"message":"maintenance"}`,
			kind:    KindServer,
			message: "HTTP Error 503: maintenance",
		},
		{
			name:    "non-error status through the generic path",
			status:  302,
			kind:    KindUnknownHTTP,
			message: "HTTP Error 302: An unexpected error occurred",
		},
		{
			name:    "unparseable body falls back",
			status:  404,
			body:    `<html>not json</html>`,
			kind:    KindClient,
			message: "Not Found: The requested resource was not found",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := normalizeStatus(tt.status, []byte(tt.body))
			assert.Equal(t, tt.kind, err.Kind)
			assert.Equal(t, tt.status, err.StatusCode)
			assert.Equal(t, tt.message, err.Message)
			assert.Equal(t, tt.message, err.Error())
		})
	}
}

func TestNormalizeTransport(t *testing.T) {
	t.Run("plain transport failure", func(t *testing.T) {
		err := normalizeTransport(errors.New("dial tcp: connection refused"))
		assert.Equal(t, KindNetwork, err.Kind)
		assert.Equal(t, "Network Error: Please check your internet connection", err.Message)
	})

	t.Run("breaker-consumed 5xx maps by status", func(t *testing.T) {
		err := normalizeTransport(&httpclient.ServerStatusError{StatusCode: 500, Body: []byte(`{}`)})
		assert.Equal(t, KindServer, err.Kind)
		assert.Equal(t, "Server Error: Please try again later", err.Message)
	})

	t.Run("open breaker reads as a network failure", func(t *testing.T) {
		err := normalizeTransport(httpclient.ErrCircuitOpen)
		assert.Equal(t, KindNetwork, err.Kind)
	})
}

func TestNormalizeLocal(t *testing.T) {
	err := normalizeLocal(errors.New("unexpected end of JSON input"))
	assert.Equal(t, KindLocal, err.Kind)
	assert.Equal(t, "Request Error: unexpected end of JSON input", err.Message)
}
