package domain

import (
	"strings"
	"time"
)

// Defaults taken from the field dashboard.
const (
	DefaultReplyDelay          = 350 * time.Millisecond
	DefaultSupervisorContact   = "tel:19725550134"
	DefaultTechnicianName      = "MICHAEL BERNANDO"
	DefaultTechnicianEmail     = "michael.bernando@nmc2.com"
	DefaultRetryInterval       = 5 * time.Minute
	DefaultBackendRequestsRate = 5.0
	DefaultBackendBurst        = 10
)

// AssistantSettings holds conversation behaviour configuration.
type AssistantSettings struct {
	// ReplyDelay is the simulated thinking time before a reply is appended.
	ReplyDelay time.Duration
}

// BackendSettings holds remote work order backend configuration.
type BackendSettings struct {
	// URL is the base URL of the backend REST API. Empty disables remote sync.
	URL string

	// TokenURL is the OAuth2 client-credentials token endpoint.
	TokenURL string

	// ClientID and ClientSecret authenticate against TokenURL.
	ClientID     string
	ClientSecret string

	// RequestsPerSecond is the sustained request rate.
	RequestsPerSecond float64

	// Burst is the maximum request burst.
	Burst int
}

// IsConfigured returns true if a backend URL is set.
func (b BackendSettings) IsConfigured() bool {
	return strings.TrimSpace(b.URL) != ""
}

// UsesOAuth returns true if client credentials are configured.
func (b BackendSettings) UsesOAuth() bool {
	return b.ClientID != "" && b.TokenURL != ""
}

// SyncSettings holds background retry configuration.
type SyncSettings struct {
	// RetryInterval is how often queued local changes are re-pushed.
	RetryInterval time.Duration
}

// TechnicianProfile is the fixed signed-in technician.
type TechnicianProfile struct {
	Name  string
	Email string
}

// AppSettings holds all application settings.
type AppSettings struct {
	Assistant AssistantSettings
	Backend   BackendSettings
	Sync      SyncSettings

	// SupervisorContact is a tel: URI used for escalation calls.
	SupervisorContact string

	Technician TechnicianProfile
}

// DefaultAppSettings returns settings with sensible defaults.
// The backend is left unconfigured; work orders stay local until it is set.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		Assistant: AssistantSettings{
			ReplyDelay: DefaultReplyDelay,
		},
		Backend: BackendSettings{
			RequestsPerSecond: DefaultBackendRequestsRate,
			Burst:             DefaultBackendBurst,
		},
		Sync: SyncSettings{
			RetryInterval: DefaultRetryInterval,
		},
		SupervisorContact: DefaultSupervisorContact,
		Technician: TechnicianProfile{
			Name:  DefaultTechnicianName,
			Email: DefaultTechnicianEmail,
		},
	}
}
