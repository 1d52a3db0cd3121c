package api

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/bnema/coursecupid-cli/internal/domain"
)

type Kind int

const (
	KindApplication Kind = iota
	KindNoSession
	KindInvalidSession
	KindTimeout
	KindNetworkUnreachable
)

func (k Kind) String() string {
	switch k {
	case KindNoSession:
		return "no_session"
	case KindInvalidSession:
		return "invalid_session"
	case KindTimeout:
		return "timeout"
	case KindNetworkUnreachable:
		return "network_unreachable"
	default:
		return "application"
	}
}

// Sentinels matched through errors.Is on an *Error of the same kind.
var (
	ErrNoSession          = domain.ErrNoSession
	ErrInvalidSession     = domain.ErrInvalidSession
	ErrTimeout            = domain.ErrTimeout
	ErrNetworkUnreachable = domain.ErrServiceUnreachable
	ErrApplication        = domain.ErrRejected
)

const (
	msgNoSession      = "No session found. Please join the course again."
	msgInvalidSession = "Invalid session. Please join the course again."
)

// Error is the classified failure of a Call.
type Error struct {
	Kind    Kind
	Method  string
	Path    string
	Status  int
	Message string
	// Corrupt is set when a stored token exists but is malformed. Only then
	// should the caller purge the identity.
	Corrupt bool
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return e.Message
	}

	return e.sentinel().Error()
}

func (e *Error) Unwrap() []error {
	if e.Err == nil {
		return []error{e.sentinel()}
	}

	return []error{e.sentinel(), e.Err}
}

func (e *Error) sentinel() error {
	switch e.Kind {
	case KindNoSession:
		return ErrNoSession
	case KindInvalidSession:
		return ErrInvalidSession
	case KindTimeout:
		return ErrTimeout
	case KindNetworkUnreachable:
		return ErrNetworkUnreachable
	default:
		return ErrApplication
	}
}

// IsSessionError reports whether err asks the user to join again.
func IsSessionError(err error) bool {
	return errors.Is(err, ErrNoSession) || errors.Is(err, ErrInvalidSession)
}

// IsCorruptSession reports whether err was caused by a malformed token.
func IsCorruptSession(err error) bool {
	var apiErr *Error
	return errors.As(err, &apiErr) && apiErr.Corrupt
}

func newResponseError(method, path string, status int, body []byte) *Error {
	message := extractMessage(status, body)
	if (status == http.StatusBadRequest || status == http.StatusUnauthorized) && mentionsIdentityHeader(message) {
		return &Error{Kind: KindInvalidSession, Method: method, Path: path, Status: status, Message: msgInvalidSession, Err: errors.New(message)}
	}

	return &Error{Kind: KindApplication, Method: method, Path: path, Status: status, Message: message}
}

func mentionsIdentityHeader(message string) bool {
	lower := strings.ToLower(message)
	if !strings.Contains(lower, strings.ToLower(HeaderUserID)) {
		return false
	}

	return strings.Contains(lower, "missing") || strings.Contains(lower, "invalid")
}

// extractMessage picks the first non-empty error, message or detail field of
// a JSON body, then the raw body, then a generic status line.
func extractMessage(status int, body []byte) string {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal(body, &fields); err == nil {
		for _, key := range []string{"error", "message", "detail"} {
			if message, ok := messageText(fields[key]); ok {
				return message
			}
		}
	}

	if text := strings.TrimSpace(string(body)); text != "" {
		return text
	}

	return fmt.Sprintf("Request failed (%d)", status)
}

func messageText(raw json.RawMessage) (string, bool) {
	if len(raw) == 0 {
		return "", false
	}

	var value any
	if err := json.Unmarshal(raw, &value); err != nil {
		return "", false
	}

	switch v := value.(type) {
	case nil:
		return "", false
	case string:
		v = strings.TrimSpace(v)
		return v, v != ""
	case bool:
		return strconv.FormatBool(v), v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), v != 0
	case []any:
		if joined := validationMessages(v); joined != "" {
			return joined, true
		}
	}

	var compact bytes.Buffer
	if err := json.Compact(&compact, raw); err != nil {
		return "", false
	}

	return compact.String(), true
}

// validationMessages flattens a list of {"msg": ...} validation entries.
func validationMessages(items []any) string {
	messages := make([]string, 0, len(items))
	for _, item := range items {
		entry, ok := item.(map[string]any)
		if !ok {
			return ""
		}
		msg, ok := entry["msg"].(string)
		if !ok || msg == "" {
			return ""
		}
		messages = append(messages, msg)
	}

	return strings.Join(messages, "; ")
}
