package queries

import (
	"encoding/base64"
	"fmt"
	"strconv"
	"strings"

	"room-reservation-engine/internal/pkg/errs"
)

const (
	DefaultListLimit = 50
	MaxListLimit     = 200
	CursorVersionV1  = "v1"
)

var ErrInvalidCursor = errs.New("invalid cursor")

// EncodeAfterCursor hides the allocation counter behind an opaque token.
func EncodeAfterCursor(seq int64) string {
	cursorData := fmt.Sprintf("%s:%d", CursorVersionV1, seq)
	return base64.RawURLEncoding.EncodeToString([]byte(cursorData))
}

func DecodeAfterCursor(cursor string) (int64, error) {
	if cursor == "" {
		return 0, fmt.Errorf("cursor cannot be empty")
	}

	decoded, err := base64.RawURLEncoding.DecodeString(cursor)
	if err != nil {
		return 0, fmt.Errorf("invalid cursor encoding: %w", err)
	}

	payload, ok := strings.CutPrefix(string(decoded), CursorVersionV1+":")
	if !ok {
		return 0, fmt.Errorf("unsupported cursor version")
	}

	seq, err := strconv.ParseInt(payload, 10, 64)
	if err != nil || seq < 0 {
		return 0, fmt.Errorf("invalid cursor position")
	}
	return seq, nil
}

type Cursor struct {
	After string `json:"after,omitempty"`
}

func ValidateLimit(limit int) int {
	if limit <= 0 {
		return DefaultListLimit
	}
	if limit > MaxListLimit {
		return MaxListLimit
	}
	return limit
}
