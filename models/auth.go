package models

// LoginRequest is the body accepted by POST /login.
//
// Fields are pointers so that a missing key can be told apart from an empty
// string; both are required and checked by the request validator.
type LoginRequest struct {
	// Username is the account name looked up in the credential table.
	Username *string `json:"username"`

	// Password is compared with the stored password by exact equality.
	Password *string `json:"password"`
}

// Credentials returns the dereferenced username/password pair.
// It must only be called after the request passed validation.
func (r LoginRequest) Credentials() Credentials {
	return Credentials{
		Username: *r.Username,
		Password: *r.Password,
	}
}

// Credentials is a validated username/password pair handed to the auth service.
type Credentials struct {
	Username string `json:"username"`

	// Password is never written to logs or responses.
	Password string `json:"-"`
}

// TokenResponse is returned by a successful login.
type TokenResponse struct {
	// AccessToken is the opaque bearer token, "tok_<username>".
	AccessToken string `json:"access_token"`

	// TokenType is always "bearer".
	TokenType string `json:"token_type"`
}
