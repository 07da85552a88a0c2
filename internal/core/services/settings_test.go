package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/anirvinkotaru/techassist/internal/adapters/driven/storage/memory"
	"github.com/anirvinkotaru/techassist/internal/core/domain"
)

func TestSettingsService_Get_ReturnsDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	settings, err := service.Get()
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultAppSettings(), *settings)
	assert.Equal(t, 350*time.Millisecond, settings.Assistant.ReplyDelay)
	assert.Equal(t, "tel:19725550134", settings.SupervisorContact)
	assert.False(t, settings.Backend.IsConfigured())
}

func TestSettingsService_Get_ReturnsStoredValues(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set(KeyReplyDelayMS, int64(0))
	_ = store.Set(KeyBackendURL, "https://fieldops.example.com/api")
	_ = store.Set(KeyBackendRate, 2.5)
	_ = store.Set(KeyBackendBurst, int64(4))
	_ = store.Set(KeyRetryIntervalSecs, int64(30))
	_ = store.Set(KeySupervisorContact, "")
	_ = store.Set(KeyTechnicianName, "Dana Ortiz")

	settings, err := NewSettingsService(store).Get()
	require.NoError(t, err)

	assert.Zero(t, settings.Assistant.ReplyDelay, "explicit zero delay is honoured")
	assert.Equal(t, "https://fieldops.example.com/api", settings.Backend.URL)
	assert.True(t, settings.Backend.IsConfigured())
	assert.InDelta(t, 2.5, settings.Backend.RequestsPerSecond, 0.0001)
	assert.Equal(t, 4, settings.Backend.Burst)
	assert.Equal(t, 30*time.Second, settings.Sync.RetryInterval)
	assert.Empty(t, settings.SupervisorContact, "explicitly cleared contact stays empty")
	assert.Equal(t, "Dana Ortiz", settings.Technician.Name)
	assert.Equal(t, domain.DefaultTechnicianEmail, settings.Technician.Email)
}

func TestSettingsService_Get_InvalidValuesReturnDefaults(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set(KeyReplyDelayMS, int64(-5))
	_ = store.Set(KeyBackendRate, "fast")
	_ = store.Set(KeyBackendBurst, int64(0))

	settings, err := NewSettingsService(store).Get()
	require.NoError(t, err)

	defaults := domain.DefaultAppSettings()
	assert.Equal(t, defaults.Assistant.ReplyDelay, settings.Assistant.ReplyDelay)
	assert.InDelta(t, defaults.Backend.RequestsPerSecond, settings.Backend.RequestsPerSecond, 0.0001)
	assert.Equal(t, defaults.Backend.Burst, settings.Backend.Burst)
}

func TestSettingsService_SaveRoundTrip(t *testing.T) {
	store := memory.NewConfigStore()
	service := NewSettingsService(store)

	settings := domain.DefaultAppSettings()
	settings.Assistant.ReplyDelay = 500 * time.Millisecond
	settings.Backend.URL = "https://fieldops.example.com"
	settings.Backend.ClientID = "techassist"
	settings.Backend.ClientSecret = "s3cret"
	settings.Sync.RetryInterval = 2 * time.Minute
	settings.Technician.Email = "dana@example.com"

	require.NoError(t, service.Save(&settings))

	loaded, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, settings, *loaded)
}

func TestSettingsService_SaveKeepsSecretWhenEmpty(t *testing.T) {
	store := memory.NewConfigStore()
	_ = store.Set(KeyBackendSecret, "existing")
	service := NewSettingsService(store)

	settings := domain.DefaultAppSettings()
	require.NoError(t, service.Save(&settings))

	assert.Equal(t, "existing", store.GetString(KeyBackendSecret))
}

func TestSettingsService_Set(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		value   string
		wantErr bool
	}{
		{"delay", KeyReplyDelayMS, "250", false},
		{"zero delay", KeyReplyDelayMS, "0", false},
		{"negative delay", KeyReplyDelayMS, "-1", true},
		{"non-numeric delay", KeyReplyDelayMS, "soon", true},
		{"burst", KeyBackendBurst, "3", false},
		{"zero burst", KeyBackendBurst, "0", true},
		{"zero retry interval", KeyRetryIntervalSecs, "0", true},
		{"rate", KeyBackendRate, "0.5", false},
		{"zero rate", KeyBackendRate, "0", true},
		{"tel contact", KeySupervisorContact, "tel:15551234567", false},
		{"cleared contact", KeySupervisorContact, "", false},
		{"mailto contact", KeySupervisorContact, "mailto:boss@example.com", true},
		{"https url", KeyBackendURL, "https://fieldops.example.com", false},
		{"ftp url", KeyBackendURL, "ftp://fieldops.example.com", true},
		{"token url", KeyBackendTokenURL, "http://localhost:9000/token", false},
		{"client id", KeyBackendClientID, "techassist", false},
		{"technician", KeyTechnicianName, "Dana Ortiz", false},
		{"unknown key", "search.mode", "hybrid", true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service := NewSettingsService(memory.NewConfigStore())
			err := service.Set(tt.key, tt.value)
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidInput)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestSettingsService_SetThenGet(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())

	require.NoError(t, service.Set(KeyReplyDelayMS, " 120 "))
	require.NoError(t, service.Set(KeyBackendRate, "7"))

	settings, err := service.Get()
	require.NoError(t, err)
	assert.Equal(t, 120*time.Millisecond, settings.Assistant.ReplyDelay)
	assert.InDelta(t, 7.0, settings.Backend.RequestsPerSecond, 0.0001)
}

func TestSettingsService_Keys(t *testing.T) {
	keys := NewSettingsService(memory.NewConfigStore()).Keys()

	assert.Len(t, keys, 11)
	assert.IsIncreasing(t, keys)
	assert.Contains(t, keys, KeySupervisorContact)
}

func TestSettingsService_GetDefaults(t *testing.T) {
	service := NewSettingsService(memory.NewConfigStore())
	assert.Equal(t, domain.DefaultAppSettings(), service.GetDefaults())
}
