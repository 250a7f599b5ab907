// Package auth resolves bearer credentials into principals and decides
// whether a principal may open an establishment's realtime order feed.
// Both steps are explicit-argument functions: the credential, the target
// establishment and the current time are always passed in, never read from
// ambient request state.
package auth

// Principal is an authenticated identity. The zero value is Anonymous and
// represents every failed or absent credential.
type Principal struct {
	ID   uint64 // users.id of the authenticated user
	Role string // role claim carried by the credential
}

// Anonymous is the sentinel identity for missing, malformed or expired
// credentials. It never passes any admission check.
var Anonymous = Principal{}

// IsAnonymous reports whether the principal is the anonymous sentinel.
func (p Principal) IsAnonymous() bool { return p.ID == 0 }
