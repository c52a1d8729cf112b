package obs

import "github.com/google/uuid"

// NewRequestID returns a random UUID used for request correlation and as the
// stored prediction id.
func NewRequestID() string {
	return uuid.NewString()
}
