package genealogy

import "github.com/google/uuid"

// newID allocates a collision-free opaque identifier.
func newID() string {
	return uuid.New().String()
}
