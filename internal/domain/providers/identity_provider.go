package providers

import "context"

// Identity is the verified caller identity for one request.
type Identity struct {
	ID        string
	Email     string
	FullName  string
	ShortName string
	AvatarURL string
}

// DisplayName resolves the name shown on authored content: full name, then
// short name, then email, then Anonymous.
func (i Identity) DisplayName() string {
	switch {
	case i.FullName != "":
		return i.FullName
	case i.ShortName != "":
		return i.ShortName
	case i.Email != "":
		return i.Email
	}
	return "Anonymous"
}

// IdentityProvider verifies a bearer credential and yields the caller's
// identity. Implementations treat the issuing service as a black box.
type IdentityProvider interface {
	Verify(ctx context.Context, credential string) (*Identity, error)
}
