package token

// Claim is the JWT body the API gateway forwards after authenticating
// the caller. The service trusts the gateway and only decodes it.
type Claim struct {
	Iss      string   `json:"iss"`
	Metadata Metadata `json:"metadata"`
	Aud      string   `json:"aud"`
	Exp      string   `json:"exp"`
}

// Metadata identifies the authenticated account. Role gates access to
// the admin surface.
type Metadata struct {
	UserID   string `json:"user_id"`
	FullName string `json:"full_name"`
	Role     string `json:"role"`
}
