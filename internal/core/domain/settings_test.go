package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, 350*time.Millisecond, s.Assistant.ReplyDelay)
	assert.Equal(t, "tel:19725550134", s.SupervisorContact)
	assert.Equal(t, DefaultTechnicianName, s.Technician.Name)
	assert.Equal(t, DefaultTechnicianEmail, s.Technician.Email)
	assert.Equal(t, 5*time.Minute, s.Sync.RetryInterval)
	assert.False(t, s.Backend.IsConfigured())
	assert.Equal(t, 5.0, s.Backend.RequestsPerSecond)
	assert.Equal(t, 10, s.Backend.Burst)
}

func TestBackendSettings_IsConfigured(t *testing.T) {
	tests := []struct {
		name     string
		url      string
		expected bool
	}{
		{"empty", "", false},
		{"whitespace", "   ", false},
		{"set", "https://backend.example.com", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, BackendSettings{URL: tt.url}.IsConfigured())
		})
	}
}

func TestBackendSettings_UsesOAuth(t *testing.T) {
	assert.False(t, BackendSettings{}.UsesOAuth())
	assert.False(t, BackendSettings{ClientID: "id"}.UsesOAuth())
	assert.True(t, BackendSettings{ClientID: "id", TokenURL: "https://auth/token"}.UsesOAuth())
}
