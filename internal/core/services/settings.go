package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/anirvinkotaru/techassist/internal/core/domain"
	"github.com/anirvinkotaru/techassist/internal/core/ports/driven"
	"github.com/anirvinkotaru/techassist/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
//
//nolint:gosec // G101: These are config key names, not actual credentials.
const (
	KeyReplyDelayMS      = "assistant.reply_delay_ms"
	KeyBackendURL        = "backend.url"
	KeyBackendTokenURL   = "backend.token_url"
	KeyBackendClientID   = "backend.client_id"
	KeyBackendSecret     = "backend.client_secret"
	KeyBackendRate       = "backend.requests_per_second"
	KeyBackendBurst      = "backend.burst"
	KeyRetryIntervalSecs = "sync.retry_interval_seconds"
	KeySupervisorContact = "supervisor.contact"
	KeyTechnicianName    = "technician.name"
	KeyTechnicianEmail   = "technician.email"
)

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{
		configStore: configStore,
	}
}

// Get retrieves current application settings, falling back to defaults.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		Assistant: domain.AssistantSettings{
			ReplyDelay: s.getMillis(KeyReplyDelayMS, defaults.Assistant.ReplyDelay),
		},
		Backend: domain.BackendSettings{
			URL:               s.configStore.GetString(KeyBackendURL),
			TokenURL:          s.configStore.GetString(KeyBackendTokenURL),
			ClientID:          s.configStore.GetString(KeyBackendClientID),
			ClientSecret:      s.configStore.GetString(KeyBackendSecret),
			RequestsPerSecond: s.getFloat(KeyBackendRate, defaults.Backend.RequestsPerSecond),
			Burst:             s.getInt(KeyBackendBurst, defaults.Backend.Burst),
		},
		Sync: domain.SyncSettings{
			RetryInterval: time.Duration(s.getInt(
				KeyRetryIntervalSecs, int(defaults.Sync.RetryInterval.Seconds()),
			)) * time.Second,
		},
		SupervisorContact: s.getStringAllowEmpty(KeySupervisorContact, defaults.SupervisorContact),
		Technician: domain.TechnicianProfile{
			Name:  s.getString(KeyTechnicianName, defaults.Technician.Name),
			Email: s.getString(KeyTechnicianEmail, defaults.Technician.Email),
		},
	}

	return settings, nil
}

// Save persists application settings.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	if err := s.configStore.Set(KeyReplyDelayMS, settings.Assistant.ReplyDelay.Milliseconds()); err != nil {
		return fmt.Errorf("save reply delay: %w", err)
	}

	if err := s.configStore.Set(KeyBackendURL, settings.Backend.URL); err != nil {
		return fmt.Errorf("save backend url: %w", err)
	}
	if err := s.configStore.Set(KeyBackendTokenURL, settings.Backend.TokenURL); err != nil {
		return fmt.Errorf("save backend token_url: %w", err)
	}
	if err := s.configStore.Set(KeyBackendClientID, settings.Backend.ClientID); err != nil {
		return fmt.Errorf("save backend client_id: %w", err)
	}
	if settings.Backend.ClientSecret != "" {
		if err := s.configStore.Set(KeyBackendSecret, settings.Backend.ClientSecret); err != nil {
			return fmt.Errorf("save backend client_secret: %w", err)
		}
	}
	if err := s.configStore.Set(KeyBackendRate, settings.Backend.RequestsPerSecond); err != nil {
		return fmt.Errorf("save backend rate: %w", err)
	}
	if err := s.configStore.Set(KeyBackendBurst, int64(settings.Backend.Burst)); err != nil {
		return fmt.Errorf("save backend burst: %w", err)
	}

	if err := s.configStore.Set(KeyRetryIntervalSecs, int64(settings.Sync.RetryInterval.Seconds())); err != nil {
		return fmt.Errorf("save retry interval: %w", err)
	}
	if err := s.configStore.Set(KeySupervisorContact, settings.SupervisorContact); err != nil {
		return fmt.Errorf("save supervisor contact: %w", err)
	}
	if err := s.configStore.Set(KeyTechnicianName, settings.Technician.Name); err != nil {
		return fmt.Errorf("save technician name: %w", err)
	}
	if err := s.configStore.Set(KeyTechnicianEmail, settings.Technician.Email); err != nil {
		return fmt.Errorf("save technician email: %w", err)
	}

	return nil
}

// Set validates and stores a single setting given as text.
func (s *SettingsService) Set(key, value string) error {
	value = strings.TrimSpace(value)

	switch key {
	case KeyReplyDelayMS, KeyBackendBurst, KeyRetryIntervalSecs:
		n, err := strconv.Atoi(value)
		if err != nil || n < 0 {
			return fmt.Errorf("%s must be a non-negative integer: %w", key, domain.ErrInvalidInput)
		}
		if key != KeyReplyDelayMS && n == 0 {
			return fmt.Errorf("%s must be positive: %w", key, domain.ErrInvalidInput)
		}
		return s.configStore.Set(key, int64(n))

	case KeyBackendRate:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			return fmt.Errorf("%s must be a positive number: %w", key, domain.ErrInvalidInput)
		}
		return s.configStore.Set(key, f)

	case KeySupervisorContact:
		if value != "" && !strings.HasPrefix(value, "tel:") {
			return fmt.Errorf("%s must be a tel: URI: %w", key, domain.ErrInvalidInput)
		}
		return s.configStore.Set(key, value)

	case KeyBackendURL, KeyBackendTokenURL:
		if value != "" && !strings.HasPrefix(value, "http://") && !strings.HasPrefix(value, "https://") {
			return fmt.Errorf("%s must be an http(s) URL: %w", key, domain.ErrInvalidInput)
		}
		return s.configStore.Set(key, value)

	case KeyBackendClientID, KeyBackendSecret, KeyTechnicianName, KeyTechnicianEmail:
		return s.configStore.Set(key, value)
	}

	return fmt.Errorf("unknown setting %q: %w", key, domain.ErrInvalidInput)
}

// Keys returns the recognised setting keys, sorted.
func (s *SettingsService) Keys() []string {
	keys := []string{
		KeyReplyDelayMS,
		KeyBackendURL,
		KeyBackendTokenURL,
		KeyBackendClientID,
		KeyBackendSecret,
		KeyBackendRate,
		KeyBackendBurst,
		KeyRetryIntervalSecs,
		KeySupervisorContact,
		KeyTechnicianName,
		KeyTechnicianEmail,
	}
	sort.Strings(keys)
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

// getStringAllowEmpty returns the stored value even when empty,
// so a key can be explicitly cleared.
func (s *SettingsService) getStringAllowEmpty(key, defaultVal string) string {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetString(key)
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

// getMillis treats an explicit zero as a valid value.
func (s *SettingsService) getMillis(key string, defaultVal time.Duration) time.Duration {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	ms := s.configStore.GetInt(key)
	if ms < 0 {
		return defaultVal
	}
	return time.Duration(ms) * time.Millisecond
}

func (s *SettingsService) getFloat(key string, defaultVal float64) float64 {
	val := s.configStore.GetFloat(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}
