// Package askademy is the Go client for the Askademy classroom Q&A platform:
// a typed REST client plus the session machinery every front end needs
// (credential decode, session restore/login/logout, request authorization,
// role-gated views, and per-action permission predicates).
//
// Session lifecycle:
//   - A Session owns the current credential and its derived Identity. It is
//     created empty with loading=true, populated by Restore (from a
//     CredentialStore) or Login, and cleared by Logout or by the pipeline
//     when the backend rejects the credential. There is exactly one Session
//     per client process and it is injected, never global.
//   - Credentials are decoded without signature or expiry verification; the
//     client's trust is provisional and the server's 401 is the revocation
//     signal. A credential that fails to decode yields no identity at all.
//
// Request authorization:
//   - Pipeline wraps an http.RoundTripper. Outbound it attaches the bearer
//     credential and a request id; inbound it turns a 401 from any
//     non-auth endpoint into a forced logout plus a Navigator call. Auth
//     endpoints are excluded so a failed login surfaces inline instead of
//     bouncing the user back to sign-in.
//
// View authorization:
//   - Gate evaluates a view's required roles against the Session, yielding
//     pending/allowed/denied decisions. The Can* predicates decide which
//     destructive or privileged controls a front end should offer; the
//     backend remains the authority on every request.
package askademy
