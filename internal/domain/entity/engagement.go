package entity

import (
	"time"

	"github.com/google/uuid"
)

// Like marks that an account liked a pairing. Existence is the whole payload;
// the (UserID, PairingID) pair is unique at the store level.
type Like struct {
	UserID    uuid.UUID
	PairingID uuid.UUID
	CreatedAt time.Time
}

// Comment is an append-only remark on a pairing. There is no edit or delete.
type Comment struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	PairingID uuid.UUID
	Content   string
	CreatedAt time.Time

	Author *Profile // Read-side expansion.
}
