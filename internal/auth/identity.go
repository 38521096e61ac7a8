package auth

import "strings"

// Identity is the provider-agnostic result of a successful token
// verification. Email is the stable identity key; Subject is the provider's
// own user id and is informational only.
type Identity struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
	Subject string `json:"sub"`
}

// fills the display name from the email local part when the provider did not
// report one
func (id *Identity) normalize() {
	if id.Name == "" {
		id.Name = localPart(id.Email)
	}
}

func localPart(email string) string {
	if at := strings.Index(email, "@"); at > 0 {
		return email[:at]
	}

	return email
}

// returns the picture as a nullable column value
func (id *Identity) picturePtr() *string {
	if id.Picture == "" {
		return nil
	}

	p := id.Picture
	return &p
}
