package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseServerURL(t *testing.T) {
	tests := []struct {
		name         string
		input        string
		expected     ServerURL
		wantString   string
		wantEndpoint string
		expectError  bool
	}{
		{
			name:         "default",
			input:        "http://localhost:8000",
			expected:     ServerURL{Protocol: "http", Host: "localhost", Port: "8000"},
			wantString:   "http://localhost:8000",
			wantEndpoint: "http://localhost:8000/mcp",
		},
		{
			name:         "https without port",
			input:        "https://db.example.com",
			expected:     ServerURL{Protocol: "https", Host: "db.example.com"},
			wantString:   "https://db.example.com",
			wantEndpoint: "https://db.example.com/mcp",
		},
		{
			name:         "path and query are ignored",
			input:        "http://127.0.0.1:9000/mcp?x=1",
			expected:     ServerURL{Protocol: "http", Host: "127.0.0.1", Port: "9000"},
			wantString:   "http://127.0.0.1:9000",
			wantEndpoint: "http://127.0.0.1:9000/mcp",
		},
		{
			name:         "IPv6 address",
			input:        "http://[::1]:8000",
			expected:     ServerURL{Protocol: "http", Host: "::1", Port: "8000"},
			wantString:   "http://[::1]:8000",
			wantEndpoint: "http://[::1]:8000/mcp",
		},
		{
			name:        "empty",
			input:       "",
			expectError: true,
		},
		{
			name:        "no protocol",
			input:       "localhost:8000",
			expectError: true,
		},
		{
			name:        "missing protocol",
			input:       "://localhost:8000",
			expectError: true,
		},
		{
			name:        "invalid protocol",
			input:       "tcp://localhost:8000",
			expectError: true,
		},
		{
			name:        "missing host",
			input:       "http://:8000",
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := ParseServerURL(tt.input)
			if tt.expectError {
				assert.Error(t, err)
				return
			}

			assert.NoError(t, err)
			assert.Equal(t, tt.expected, result)
			assert.Equal(t, tt.wantString, result.String())
			assert.Equal(t, tt.wantEndpoint, result.Endpoint())
		})
	}
}
