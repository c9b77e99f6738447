package service

import "github.com/aussiebroadwan/gymtrack/internal/gym/store"

// Actor is the authenticated caller of a training or catalog operation.
type Actor struct {
	UserID    string
	Staff     bool
	Superuser bool
}

// scope limits store queries to the actor's rows. Superusers see everything.
func (a Actor) scope() store.Scope {
	if a.Superuser {
		return store.Scope{}
	}
	return store.OwnedBy(a.UserID)
}
