package askademy

import "fmt"

// Logger is the minimal logging surface used across the client.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// CredentialSource supplies the bearer credential attached to outbound requests.
type CredentialSource interface {
	Credential() (string, bool)
}

// SessionRevoker tears down the active session after a hard authorization
// failure signaled by the backend.
type SessionRevoker interface {
	Revoke()
}

// Navigator is the injected navigation capability invoked when a session is
// revoked mid-flight. Front ends route to their sign-in view; tests record
// the call.
type Navigator interface {
	NavigateToSignIn()
}

// SessionState is the read-only view of the session consumed by Gate.
type SessionState interface {
	Loading() bool
	Identity() (Identity, bool)
}

type defLogger struct{}

func (d defLogger) Debug(msg string, args ...any) { d.print("DBG", msg, args...) }
func (d defLogger) Info(msg string, args ...any)  { d.print("INF", msg, args...) }
func (d defLogger) Warn(msg string, args ...any)  { d.print("WRN", msg, args...) }
func (d defLogger) Error(msg string, args ...any) { d.print("ERR", msg, args...) }

func (defLogger) print(level, msg string, args ...any) {
	if len(args) == 0 {
		fmt.Printf("[%s] ASKADEMY %s\n", level, msg)
		return
	}
	fmt.Printf("[%s] ASKADEMY %s %v\n", level, msg, args)
}
