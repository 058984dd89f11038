package askademy_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/askademy/client-go"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeline_RoundTrip(t *testing.T) {
	newSignedInSession := func(t *testing.T) *askademy.Session {
		credential := mintCredential(t, jwt.MapClaims{
			"sub":    "ada@university.edu",
			"role":   "STUDENT",
			"userId": 7,
		})
		session := askademy.NewSession(askademy.NewMemoryStore(credential))
		session.Restore()
		require.True(t, session.Authenticated())
		return session
	}

	t.Run("attaches bearer credential and request id", func(t *testing.T) {
		session := newSignedInSession(t)
		credential, _ := session.Credential()

		var gotAuth, gotRequestID string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			gotRequestID = r.Header.Get(askademy.HeaderRequestID)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		navigator := &fakeNavigator{}
		client := &http.Client{Transport: askademy.NewPipeline(session, session, navigator)}

		resp, err := client.Get(server.URL + "/courses/student")
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, "Bearer "+credential, gotAuth)
		assert.NotEmpty(t, gotRequestID)
		assert.False(t, navigator.called())
	})

	t.Run("sends no authorization header when signed out", func(t *testing.T) {
		session := askademy.NewSession(askademy.NewMemoryStore())
		session.Restore()

		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := &http.Client{Transport: askademy.NewPipeline(session, session, &fakeNavigator{})}

		resp, err := client.Get(server.URL + "/courses")
		require.NoError(t, err)
		resp.Body.Close()

		assert.Empty(t, gotAuth)
	})

	t.Run("custom auth scheme", func(t *testing.T) {
		session := newSignedInSession(t)
		credential, _ := session.Credential()

		var gotAuth string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotAuth = r.Header.Get("Authorization")
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		pipeline := askademy.NewPipeline(session, session, &fakeNavigator{}).WithAuthScheme("Token")
		client := &http.Client{Transport: pipeline}

		resp, err := client.Get(server.URL + "/courses")
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, "Token "+credential, gotAuth)
	})

	t.Run("401 outside auth endpoints tears the session down", func(t *testing.T) {
		session := newSignedInSession(t)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		navigator := &fakeNavigator{}
		client := &http.Client{Transport: askademy.NewPipeline(session, session, navigator)}

		resp, err := client.Get(server.URL + "/courses/student")
		require.NoError(t, err)
		resp.Body.Close()

		assert.False(t, session.Authenticated())
		assert.True(t, navigator.called())
	})

	t.Run("401 on an auth endpoint does not tear the session down", func(t *testing.T) {
		session := newSignedInSession(t)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer server.Close()

		navigator := &fakeNavigator{}
		client := &http.Client{Transport: askademy.NewPipeline(session, session, navigator)}

		resp, err := client.Post(server.URL+"/auth/login", "application/json", nil)
		require.NoError(t, err)
		resp.Body.Close()

		assert.True(t, session.Authenticated(), "a failed sign-in must not log out the current user")
		assert.False(t, navigator.called())
	})

	t.Run("403 propagates without touching the session", func(t *testing.T) {
		session := newSignedInSession(t)

		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusForbidden)
		}))
		defer server.Close()

		navigator := &fakeNavigator{}
		client := &http.Client{Transport: askademy.NewPipeline(session, session, navigator)}

		resp, err := client.Get(server.URL + "/admin/stats")
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, http.StatusForbidden, resp.StatusCode)
		assert.True(t, session.Authenticated())
		assert.False(t, navigator.called())
	})

	t.Run("preserves a caller-supplied request id", func(t *testing.T) {
		session := newSignedInSession(t)

		var gotRequestID string
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			gotRequestID = r.Header.Get(askademy.HeaderRequestID)
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		client := &http.Client{Transport: askademy.NewPipeline(session, session, &fakeNavigator{})}

		req, err := http.NewRequest(http.MethodGet, server.URL+"/courses", nil)
		require.NoError(t, err)
		req.Header.Set(askademy.HeaderRequestID, "caller-chosen-id")

		resp, err := client.Do(req)
		require.NoError(t, err)
		resp.Body.Close()

		assert.Equal(t, "caller-chosen-id", gotRequestID)
	})
}

func TestShouldRevoke(t *testing.T) {
	tests := []struct {
		name   string
		path   string
		status int
		want   bool
	}{
		{"401 on a data endpoint", "/courses/student", http.StatusUnauthorized, true},
		{"401 on login", "/auth/login", http.StatusUnauthorized, false},
		{"401 on register", "/auth/register", http.StatusUnauthorized, false},
		{"401 on prefixed login", "/api/auth/login", http.StatusUnauthorized, false},
		{"403 on a data endpoint", "/courses/student", http.StatusForbidden, false},
		{"200 on a data endpoint", "/courses/student", http.StatusOK, false},
		{"500 on a data endpoint", "/courses/student", http.StatusInternalServerError, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, askademy.ShouldRevoke(tt.path, tt.status))
		})
	}
}

func TestIsAuthEndpoint(t *testing.T) {
	assert.True(t, askademy.IsAuthEndpoint("/auth/login"))
	assert.True(t, askademy.IsAuthEndpoint("/api/auth/register"))
	assert.False(t, askademy.IsAuthEndpoint("/courses"))
	assert.False(t, askademy.IsAuthEndpoint("/questions/7"))
}
