package singleton

import (
	"time"

	"github.com/google/uuid"
)

// identity marks an instance so tests and logs can tell instances apart.
type identity struct {
	id        string
	createdAt time.Time
}

func newIdentity() identity {
	return identity{id: uuid.NewString(), createdAt: time.Now()}
}

// ID returns the unique identity marker of the instance.
func (i identity) ID() string { return i.id }

// CreatedAt returns when the instance was constructed.
func (i identity) CreatedAt() time.Time { return i.createdAt }
