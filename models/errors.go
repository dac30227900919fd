package models

import (
	"github.com/cockroachdb/errors"
)

// Base errors, related to default API status codes
var (
	// BadParameterError is rendered with the http status code 400
	BadParameterError = errors.New("bad parameter")

	// NotFoundError is rendered with the http status code 404
	NotFoundError = errors.New("not found")

	// ConflictError is rendered with the http status code 409
	ConflictError = errors.New("duplicate value")
)

// Attachment relay errors. Both legs belong to the same user-visible failure
// domain (rendered 500 with a fixed message), but the wrapped sentinel keeps
// the cause distinguishable in logs and in code.
var (
	AttachmentRelayError  = errors.New("attachment relay failed")
	AttachmentFetchError  = errors.Wrap(AttachmentRelayError, "source fetch failed")
	AttachmentUploadError = errors.Wrap(AttachmentRelayError, "storage upload failed")
)

// PersistenceError is rendered 500 with a generic message; the underlying
// database error never crosses the API boundary.
var PersistenceError = errors.New("database error")
