package auth

// LoginRequest represents a login request.
type LoginRequest struct {
	NationalID string `json:"national_id"`
	Password   string `json:"password"`
}

// LoginResponse represents a login response with the issued token.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expires_in"`
}

// ValidateTokenRequest represents a token validation request. Header is
// the full Authorization header value.
type ValidateTokenRequest struct {
	Header string `json:"header"`
}

// ValidateTokenResponse represents a token validation response.
// Verification failures are reported in-band through Valid and Error.
type ValidateTokenResponse struct {
	Valid   bool   `json:"valid"`
	Subject string `json:"subject,omitempty"`
	IsAdmin bool   `json:"is_admin,omitempty"`
	Error   string `json:"error,omitempty"`
}
