package askademy

import (
	"net/http"
	"strings"

	"github.com/google/uuid"
)

// HeaderRequestID carries a client-generated correlation id on every request.
const HeaderRequestID = "X-Request-ID"

// defaultAuthScheme is the bearer scheme the backend expects.
const defaultAuthScheme = "Bearer"

// Pipeline is the request-authorization pipeline, implemented as an
// http.RoundTripper so every outbound call goes through the same two stages:
// outbound credential injection and inbound failure classification. When a
// non-auth endpoint answers 401 the pipeline revokes the session and invokes
// the Navigator; every other failure propagates to the caller unchanged.
// Nothing is retried and no refresh flow exists.
type Pipeline struct {
	base      http.RoundTripper
	source    CredentialSource
	revoker   SessionRevoker
	navigator Navigator
	scheme    string
	logger    Logger
}

// NewPipeline wires the pipeline to the session. The source and revoker are
// normally the same *Session; they are separate interfaces so tests can
// observe each side independently.
func NewPipeline(source CredentialSource, revoker SessionRevoker, navigator Navigator) *Pipeline {
	return &Pipeline{
		base:      http.DefaultTransport,
		source:    source,
		revoker:   revoker,
		navigator: navigator,
		scheme:    defaultAuthScheme,
		logger:    defLogger{},
	}
}

func (p *Pipeline) WithBase(base http.RoundTripper) *Pipeline {
	if base != nil {
		p.base = base
	}
	return p
}

func (p *Pipeline) WithLogger(logger Logger) *Pipeline {
	if logger != nil {
		p.logger = logger
	}
	return p
}

func (p *Pipeline) WithAuthScheme(scheme string) *Pipeline {
	if scheme != "" {
		p.scheme = scheme
	}
	return p
}

// RoundTrip implements http.RoundTripper.
func (p *Pipeline) RoundTrip(req *http.Request) (*http.Response, error) {
	out := req.Clone(req.Context())

	if p.source != nil {
		if credential, ok := p.source.Credential(); ok {
			out.Header.Set("Authorization", p.scheme+" "+credential)
		}
	}

	if out.Header.Get(HeaderRequestID) == "" {
		out.Header.Set(HeaderRequestID, uuid.NewString())
	}

	resp, err := p.base.RoundTrip(out)
	if err != nil {
		return nil, err
	}

	if ShouldRevoke(req.URL.Path, resp.StatusCode) {
		p.logger.Info("credential rejected by server, tearing down session",
			"path", req.URL.Path,
			"request_id", out.Header.Get(HeaderRequestID),
		)
		if p.revoker != nil {
			p.revoker.Revoke()
		}
		if p.navigator != nil {
			p.navigator.NavigateToSignIn()
		}
	}

	return resp, nil
}

// ShouldRevoke is the pure inbound classification step: a 401 from any
// endpoint other than the auth endpoints tears the session down. Auth
// endpoints are excluded so a failed login surfaces its own error instead of
// triggering a logout-redirect loop.
func ShouldRevoke(path string, status int) bool {
	return status == http.StatusUnauthorized && !IsAuthEndpoint(path)
}

// IsAuthEndpoint reports whether the request targets the login/register
// endpoints.
func IsAuthEndpoint(path string) bool {
	return strings.Contains(path, "/auth/")
}
