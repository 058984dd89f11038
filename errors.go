package askademy

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/goliatone/go-errors"
)

const (
	textCodeCredentialDecode   = "CREDENTIAL_DECODE_FAILED"
	textCodeInvalidCredentials = "INVALID_CREDENTIALS"
	textCodeSessionExpired     = "SESSION_EXPIRED"
	textCodePermissionDenied   = "PERMISSION_DENIED"
	textCodeNotFound           = "NOT_FOUND"
	textCodeServerError        = "SERVER_ERROR"
	textCodeNetwork            = "NETWORK_UNREACHABLE"
	textCodeBadRequest         = "BAD_REQUEST"
)

// ErrCredentialDecode is returned when a bearer credential cannot be decoded
// into claims. It is absorbed by the Session (fail closed to "no identity")
// and never surfaced to the user.
var ErrCredentialDecode = errors.New("unable to decode credential", errors.CategoryBadInput).
	WithTextCode(textCodeCredentialDecode).
	WithCode(errors.CodeBadRequest)

// ErrInvalidCredentials is returned when the auth endpoint rejects a login.
var ErrInvalidCredentials = errors.New("invalid email or password", errors.CategoryAuth).
	WithTextCode(textCodeInvalidCredentials).
	WithCode(errors.CodeUnauthorized)

// ErrSessionExpired is returned when a non-auth endpoint rejects the current
// credential; the pipeline absorbs it into a forced logout.
var ErrSessionExpired = errors.New("session expired or revoked", errors.CategoryAuth).
	WithTextCode(textCodeSessionExpired).
	WithCode(errors.CodeUnauthorized)

// ErrPermissionDenied is returned for backend 403 responses.
var ErrPermissionDenied = errors.New("not permitted to perform this action", errors.CategoryAuthz).
	WithTextCode(textCodePermissionDenied).
	WithCode(errors.CodeForbidden)

// ErrNotFound is returned for backend 404 responses.
var ErrNotFound = errors.New("resource not found", errors.CategoryNotFound).
	WithTextCode(textCodeNotFound).
	WithCode(errors.CodeNotFound)

// ErrServerUnavailable is returned for backend 5xx responses.
var ErrServerUnavailable = errors.New("server error", errors.CategoryInternal).
	WithTextCode(textCodeServerError).
	WithCode(errors.CodeInternal)

// ErrNetworkUnreachable is returned when no response reached the client.
var ErrNetworkUnreachable = errors.New("unable to reach server", errors.CategoryOperation).
	WithTextCode(textCodeNetwork)

// IsDecodeFailure checks for credential decode errors.
func IsDecodeFailure(err error) bool { return hasTextCode(err, textCodeCredentialDecode) }

// IsInvalidCredentials checks for rejected login attempts.
func IsInvalidCredentials(err error) bool { return hasTextCode(err, textCodeInvalidCredentials) }

// IsSessionExpired checks for server-signaled credential revocation.
func IsSessionExpired(err error) bool { return hasTextCode(err, textCodeSessionExpired) }

// IsPermissionDenied checks for backend 403 rejections.
func IsPermissionDenied(err error) bool { return hasTextCode(err, textCodePermissionDenied) }

// IsNetworkError checks for transport failures where no response arrived.
func IsNetworkError(err error) bool { return hasTextCode(err, textCodeNetwork) }

// IsValidationError checks for client-side pre-submission validation failures.
func IsValidationError(err error) bool {
	var rich *errors.Error
	if !errors.As(err, &rich) {
		return false
	}
	return rich.Category == errors.CategoryValidation
}

func hasTextCode(err error, code string) bool {
	var rich *errors.Error
	if !errors.As(err, &rich) {
		return false
	}
	return rich.TextCode == code
}

// decodeFailure wraps a low-level decode error into ErrCredentialDecode,
// preserving the reason in metadata for debug logging only.
func decodeFailure(reason string) *errors.Error {
	clone := ErrCredentialDecode.Clone()
	if clone == nil {
		return ErrCredentialDecode
	}
	clone.Source = ErrCredentialDecode
	return clone.WithMetadata(map[string]any{"reason": reason})
}

// failureBody is the structured failure shape some backend endpoints return.
// Others return a plain-text body; ClassifyResponse handles both.
type failureBody struct {
	Message string `json:"message"`
}

// ClassifyResponse maps a backend failure response to a classified error.
// It is pure: the side-effecting revoke-and-redirect reaction to 401s lives
// in the Pipeline, not here.
func ClassifyResponse(path string, status int, body []byte) error {
	message := extractMessage(body)

	switch {
	case status == http.StatusUnauthorized:
		if IsAuthEndpoint(path) {
			return withServerMessage(ErrInvalidCredentials, status, message)
		}
		return withServerMessage(ErrSessionExpired, status, message)
	case status == http.StatusForbidden:
		return withServerMessage(ErrPermissionDenied, status, message)
	case status == http.StatusNotFound:
		return withServerMessage(ErrNotFound, status, message)
	case status >= 500:
		return withServerMessage(ErrServerUnavailable, status, message)
	default:
		e := errors.New("request rejected", errors.CategoryValidation).
			WithTextCode(textCodeBadRequest).
			WithCode(status)
		return withServerMessage(e, status, message)
	}
}

// ClassifyTransportError wraps an error from the HTTP transport itself, i.e.
// no response reached the client.
func ClassifyTransportError(err error) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, ErrNetworkUnreachable.Category, ErrNetworkUnreachable.Message).
		WithTextCode(textCodeNetwork)
}

func withServerMessage(base *errors.Error, status int, message string) error {
	clone := base.Clone()
	if clone == nil {
		return base
	}
	clone.Source = base
	if message != "" {
		clone.Message = message
	}
	return clone.WithMetadata(map[string]any{"status": status})
}

// extractMessage pulls a human-readable message out of a failure body. The
// backend returns plain text for auth errors and {message} JSON elsewhere.
func extractMessage(body []byte) string {
	text := strings.TrimSpace(string(body))
	if text == "" {
		return ""
	}

	if strings.HasPrefix(text, "{") {
		var fb failureBody
		if err := json.Unmarshal(body, &fb); err == nil {
			return strings.TrimSpace(fb.Message)
		}
		return ""
	}

	return text
}
