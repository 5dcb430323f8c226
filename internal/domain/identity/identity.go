package identity

import "errors"

type Role string

const (
	RoleClient       Role = "client"
	RoleProfessional Role = "professional"
)

func (r Role) Valid() bool {
	return r == RoleClient || r == RoleProfessional
}

var (
	ErrNotSignedIn     = errors.New("not signed in")
	ErrProfileNotFound = errors.New("profile not found")
)

// Identity is the authenticated caller. It is built once per request by the
// auth middleware and passed to every operation.
type Identity struct {
	UserID   string
	Email    string
	RoleHint Role
}

// Require turns a missing identity into ErrNotSignedIn.
func Require(id *Identity) (*Identity, error) {
	if id == nil || id.UserID == "" {
		return nil, ErrNotSignedIn
	}
	return id, nil
}
