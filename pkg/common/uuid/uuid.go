package uuid

import (
	guuid "github.com/gofrs/uuid/v5"
)

// UUID aliases gofrs/uuid so that repo models and API types share a single
// import point. Zero value marshals as the nil uuid.
type UUID = guuid.UUID

var Nil = guuid.Nil

// New returns a time-ordered (v7) uuid.
func New() UUID {
	return guuid.Must(guuid.NewV7())
}
