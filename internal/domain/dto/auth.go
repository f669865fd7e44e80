package dto

// TokenResponse is returned by the token endpoint.
//
// @Description Bearer token for the admin identity
// @Example {"access_token": "eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9...", "token_type": "Bearer", "expires_in": 28800}
type TokenResponse struct {
	// AccessToken is the signed JWT.
	AccessToken string `json:"access_token" example:"eyJhbGciOiJIUzI1NiIsInR5cCI6IkpXVCJ9..."`
	// TokenType is always Bearer.
	TokenType string `json:"token_type" example:"Bearer"`
	// ExpiresIn is the token lifetime in seconds.
	ExpiresIn int64 `json:"expires_in" example:"28800"`
} // @name TokenResponse

// Claims carries the identity extracted from a valid token.
type Claims struct {
	Subject string `json:"sub"`
}

// MessageResponse carries a human readable confirmation.
//
// @Description Confirmation message
type MessageResponse struct {
	Message string `json:"message" example:"Content from Experience with id 1 has been deleted"`
} // @name MessageResponse
