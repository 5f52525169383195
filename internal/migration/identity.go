// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

package migration

import "strings"

// IdentityKind tells how a user identifier addresses a user.
type IdentityKind string

const (
	IdentityEmail IdentityKind = "email"
	IdentityLogin IdentityKind = "login"
)

// Identity is a classified user identifier.
type Identity struct {
	Kind  IdentityKind
	Value string
}

// ClassifyIdentity returns nil for an empty identifier, an email identity when
// the identifier contains '@', and a login identity otherwise.
func ClassifyIdentity(id string) *Identity {
	if id == "" {
		return nil
	}
	if strings.Contains(id, "@") {
		return &Identity{Kind: IdentityEmail, Value: id}
	}
	return &Identity{Kind: IdentityLogin, Value: id}
}

// Ref shapes the identity as a target user reference. A nil identity yields nil.
func (i *Identity) Ref() *UserRef {
	if i == nil {
		return nil
	}
	if i.Kind == IdentityEmail {
		return &UserRef{Email: i.Value}
	}
	return &UserRef{Login: i.Value}
}

func userRef(id string) *UserRef {
	return ClassifyIdentity(id).Ref()
}
