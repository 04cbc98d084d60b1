package spotifyauth

import "github.com/google/uuid"

// NewState returns a fresh opaque value for the state parameter, for
// callers that don't carry their own. The caller is expected to compare it
// against the state echoed back by the authorization response.
func NewState() string {
	return uuid.NewString()
}
