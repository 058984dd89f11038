package askademy

import "github.com/goliatone/go-errors"

// User-facing messages, mapped from the error taxonomy. These are what a
// front end renders inline; raw error text stays in logs.
const (
	MsgNetworkError       = "We're having trouble connecting to the server. Please check your internet connection and try again."
	MsgInvalidCredentials = "The email or password you entered is incorrect. Please double-check and try again."
	MsgSessionExpired     = "Your session has expired. Please log in again to continue."
	MsgPermissionDenied   = "You don't have permission to perform this action."
	MsgNotFound           = "We couldn't find what you're looking for. It may have been moved or deleted."
	MsgServerError        = "Something went wrong on our end. We're working to fix it. Please try again later."
	MsgBadRequest         = "The information you provided isn't quite right. Please review and try again."
	MsgUnknownError       = "An unexpected error occurred. If this persists, please contact support."
)

// UserMessage converts any client error into a friendly, actionable message.
// Server-supplied messages win when they are user-readable; otherwise the
// taxonomy default applies. It never returns an empty string.
func UserMessage(err error) string {
	if err == nil {
		return ""
	}

	var rich *errors.Error
	if !errors.As(err, &rich) {
		return MsgUnknownError
	}

	// Validation errors carry their own field-level text.
	if rich.Category == errors.CategoryValidation && rich.TextCode != textCodeBadRequest {
		if rich.Message != "" {
			return rich.Message
		}
		return MsgBadRequest
	}

	switch rich.TextCode {
	case textCodeNetwork:
		return MsgNetworkError
	case textCodeInvalidCredentials:
		return MsgInvalidCredentials
	case textCodeSessionExpired:
		return MsgSessionExpired
	case textCodePermissionDenied:
		return MsgPermissionDenied
	case textCodeNotFound:
		return MsgNotFound
	case textCodeServerError:
		return MsgServerError
	case textCodeBadRequest:
		if hasServerMessage(rich) {
			return rich.Message
		}
		return MsgBadRequest
	default:
		if hasServerMessage(rich) {
			return rich.Message
		}
		return MsgUnknownError
	}
}

// hasServerMessage reports whether the error carries a message taken from the
// backend response body rather than the taxonomy default.
func hasServerMessage(rich *errors.Error) bool {
	if rich.Message == "" {
		return false
	}
	var src *errors.Error
	if errors.As(rich.Source, &src) {
		return rich.Message != src.Message
	}
	return true
}
