package models

// ValidateRequest is the body of the session validation endpoint.
type ValidateRequest struct {
	// InitData is the raw session string issued by the host platform.
	InitData string `json:"initData"`
}

// ValidateResponse is returned by the session validation endpoint.
type ValidateResponse struct {
	// Valid reports whether the session string carries a genuine signature.
	Valid bool `json:"valid"`

	// Error is a short human-readable reason, set only on 4xx/5xx responses.
	Error string `json:"error,omitempty"`
}

// VersionResponse is returned by the version endpoint.
type VersionResponse struct {
	Version string `json:"version"`
}
