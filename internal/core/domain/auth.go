package domain

// GoogleUserInfo mirrors the fields of interest from Google's userinfo
// endpoint / ID token payload.
type GoogleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}
