// File: utils/constants.go
package utils

import "time"

// SessionPrefix is the prefix used for Redis session keys.
const SessionPrefix = "session:"

// DefaultSessionTTL applies when SESSION_TTL is not configured.
const DefaultSessionTTL = 72 * time.Hour

// UploadLimit caps multipart bodies for photo and document uploads.
const UploadLimit = 10 << 20
