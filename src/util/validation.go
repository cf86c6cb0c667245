package util

import (
	"errors"
	"net/http"

	"spendsense-server/src/models"
)

var (
	ErrMissingUID      = errors.New("uid is required")
	ErrMissingMessages = errors.New("messages are required")
)

type contextKey string

// UIDKey is the context key the auth middleware stores the verified uid
// under.
const UIDKey contextKey = "uid"

func ValidateIngestRequest(uid string, messages []models.RawMessage) error {
	if uid == "" {
		return ErrMissingUID
	}
	if len(messages) == 0 {
		return ErrMissingMessages
	}
	return nil
}

// RequestUID resolves the effective uid for a request. A uid set by the
// auth middleware always wins over one supplied by the client.
func RequestUID(r *http.Request, bodyUID string) string {
	if uid, ok := r.Context().Value(UIDKey).(string); ok && uid != "" {
		return uid
	}
	return bodyUID
}
