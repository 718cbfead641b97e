package models

// AccessToken is the short-lived credential returned by the platform token
// endpoint. It is fetched fresh on every run and never cached.
type AccessToken struct {
	// Value is the opaque token passed as the access_token query parameter.
	Value string `json:"access_token"`

	// ExpiresIn is the lifetime in seconds as reported by the platform.
	// Informational only.
	ExpiresIn int `json:"expires_in,omitempty"`
}

