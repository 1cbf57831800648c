package dto

// TokenRequest is the claims payload a caller exchanges for a signed
// credential. Email becomes the token subject; anything else in Claims is
// carried through as custom claims.
type TokenRequest struct {
	Email  string         `json:"email" binding:"required,email"`
	Claims map[string]any `json:"claims,omitempty"`
}

// TokenResponse carries the signed, time-limited credential.
type TokenResponse struct {
	Token     string `json:"token"`
	ExpiresIn int64  `json:"expiresIn"` // seconds
}
