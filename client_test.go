package askademy_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/askademy/client-go"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testConfig implements askademy.Config without viper.
type testConfig struct {
	baseURL string
	timeout time.Duration
}

func (c testConfig) GetBaseURL() string        { return c.baseURL }
func (c testConfig) GetTimeout() time.Duration { return c.timeout }
func (c testConfig) GetAuthScheme() string     { return "Bearer" }
func (c testConfig) GetCredentialFile() string { return "" }
func (c testConfig) GetToken() string          { return "" }

// newWiredClient assembles the full stack the CLI uses: store, session,
// pipeline, client, and the auth service loop back into the session.
func newWiredClient(t *testing.T, serverURL string) (*askademy.Client, *askademy.Session, *fakeNavigator) {
	t.Helper()

	session := askademy.NewSession(askademy.NewMemoryStore())
	navigator := &fakeNavigator{}
	pipeline := askademy.NewPipeline(session, session, navigator)

	cfg := testConfig{baseURL: serverURL, timeout: 5 * time.Second}
	client := askademy.NewClient(cfg, pipeline)
	session.WithAuthService(client.Auth())
	session.Restore()

	return client, session, navigator
}

func TestClient_loginFlow(t *testing.T) {
	credential := mintCredential(t, jwt.MapClaims{
		"sub":    "ada@university.edu",
		"role":   "STUDENT",
		"userId": 7,
	})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/auth/login":
			var input askademy.LoginInput
			require.NoError(t, json.NewDecoder(r.Body).Decode(&input))

			if input.Password != "secret123" {
				w.WriteHeader(http.StatusUnauthorized)
				io.WriteString(w, "Bad credentials")
				return
			}
			json.NewEncoder(w).Encode(askademy.AuthResponse{
				Token: credential,
				ID:    7,
				Email: input.Email,
				Role:  "PROFESSOR",
			})
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	t.Run("successful login yields the server-supplied role", func(t *testing.T) {
		_, session, navigator := newWiredClient(t, server.URL)

		err := session.Login(context.Background(), "ada@university.edu", "secret123")
		require.NoError(t, err)

		identity, ok := session.Identity()
		require.True(t, ok)
		assert.Equal(t, askademy.RoleProfessor, identity.Role)
		assert.False(t, navigator.called())
	})

	t.Run("rejected login surfaces bad credentials without teardown", func(t *testing.T) {
		_, session, navigator := newWiredClient(t, server.URL)

		err := session.Login(context.Background(), "ada@university.edu", "wrongpass")
		require.Error(t, err)
		assert.True(t, askademy.IsInvalidCredentials(err))
		assert.Equal(t, askademy.MsgInvalidCredentials, askademy.UserMessage(err))
		assert.False(t, session.Authenticated())
		assert.False(t, navigator.called(), "a failed login must not trigger the sign-in redirect")
	})
}

func TestClient_expiredSessionTeardown(t *testing.T) {
	credential := mintCredential(t, jwt.MapClaims{
		"sub":    "ada@university.edu",
		"role":   "STUDENT",
		"userId": 7,
	})

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	session := askademy.NewSession(askademy.NewMemoryStore(credential))
	navigator := &fakeNavigator{}
	pipeline := askademy.NewPipeline(session, session, navigator)
	client := askademy.NewClient(testConfig{baseURL: server.URL, timeout: 5 * time.Second}, pipeline)
	session.WithAuthService(client.Auth())
	session.Restore()
	require.True(t, session.Authenticated())

	_, err := client.Courses().StudentCourses(context.Background())
	require.Error(t, err)
	assert.True(t, askademy.IsSessionExpired(err))
	assert.False(t, session.Authenticated())
	assert.True(t, navigator.called())
}

func TestClient_requestShapes(t *testing.T) {
	type captured struct {
		method      string
		path        string
		query       string
		contentType string
		body        string
	}
	var last captured

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		last = captured{
			method:      r.Method,
			path:        r.URL.Path,
			query:       r.URL.RawQuery,
			contentType: r.Header.Get("Content-Type"),
			body:        string(body),
		}
		io.WriteString(w, "[]")
	}))
	defer server.Close()

	client, _, _ := newWiredClient(t, server.URL)
	ctx := context.Background()

	t.Run("enroll by code posts a raw text body", func(t *testing.T) {
		require.NoError(t, client.Courses().EnrollByCode(ctx, "AB12CD34"))
		assert.Equal(t, http.MethodPost, last.method)
		assert.Equal(t, "/courses/enroll-by-code", last.path)
		assert.Equal(t, "text/plain", last.contentType)
		assert.Equal(t, "AB12CD34", last.body)
	})

	t.Run("grading update puts raw text", func(t *testing.T) {
		require.NoError(t, client.Courses().UpdateGradingInfo(ctx, 5, "Weekly quizzes, 40% final"))
		assert.Equal(t, http.MethodPut, last.method)
		assert.Equal(t, "/courses/5/grading", last.path)
		assert.Equal(t, "text/plain", last.contentType)
		assert.Equal(t, "Weekly quizzes, 40% final", last.body)
	})

	t.Run("question list carries the filter", func(t *testing.T) {
		_, err := client.Questions().ListByCourse(ctx, 5, "unanswered")
		require.NoError(t, err)
		assert.Equal(t, "/questions/course/5", last.path)
		assert.Equal(t, "filter=unanswered", last.query)
	})

	t.Run("question list omits an empty filter", func(t *testing.T) {
		_, err := client.Questions().ListByCourse(ctx, 5, "")
		require.NoError(t, err)
		assert.Equal(t, "/questions/course/5", last.path)
		assert.Empty(t, last.query)
	})

	t.Run("grouped questions carry the similarity threshold", func(t *testing.T) {
		_, err := client.Questions().Grouped(ctx, 5, 0.3)
		require.NoError(t, err)
		assert.Equal(t, "/questions/grouped/5", last.path)
		assert.Equal(t, "threshold=0.3", last.query)
	})

	t.Run("verify puts to the answer's verify endpoint", func(t *testing.T) {
		require.NoError(t, client.Answers().Verify(ctx, 42))
		assert.Equal(t, http.MethodPut, last.method)
		assert.Equal(t, "/answers/42/verify", last.path)
	})

	t.Run("batch answers post to the batch endpoint", func(t *testing.T) {
		_, err := client.Answers().CreateBatch(ctx, askademy.BatchAnswerInput{
			QuestionIDs: []int64{1, 2, 3},
			Content:     "See lecture 4.",
			AutoVerify:  true,
		})
		require.NoError(t, err)
		assert.Equal(t, http.MethodPost, last.method)
		assert.Equal(t, "/answers/batch", last.path)
		assert.Equal(t, "application/json", last.contentType)
		assert.JSONEq(t, `{"questionIds":[1,2,3],"content":"See lecture 4.","autoVerify":true,"anonymous":false}`, last.body)
	})

	t.Run("announcement delete targets the nested path", func(t *testing.T) {
		require.NoError(t, client.Announcements().Delete(ctx, 5, 9))
		assert.Equal(t, http.MethodDelete, last.method)
		assert.Equal(t, "/courses/5/announcements/9", last.path)
	})
}

func TestClient_decodesResponses(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/courses/5":
			io.WriteString(w, `{
				"id": 5,
				"name": "Distributed Systems",
				"courseCode": "AB12CD34",
				"professor": {"id": 12, "firstname": "Grace", "lastname": "Hopper", "role": "PROFESSOR"}
			}`)
		case "/admin/stats":
			io.WriteString(w, `{"users": 120, "courses": 8, "questions": 350}`)
		default:
			http.NotFound(w, r)
		}
	}))
	defer server.Close()

	client, _, _ := newWiredClient(t, server.URL)
	ctx := context.Background()

	course, err := client.Courses().Get(ctx, 5)
	require.NoError(t, err)
	assert.Equal(t, "Distributed Systems", course.Name)
	assert.Equal(t, "AB12CD34", course.CourseCode)
	require.NotNil(t, course.Professor)
	assert.Equal(t, "Grace Hopper", course.Professor.DisplayName())

	stats, err := client.Admin().Stats(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(120), stats["users"])
	assert.Equal(t, int64(350), stats["questions"])
}

func TestClient_networkFailure(t *testing.T) {
	// a closed server guarantees a transport-level failure
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	server.Close()

	client, _, _ := newWiredClient(t, server.URL)

	_, err := client.Courses().List(context.Background())
	require.Error(t, err)
	assert.True(t, askademy.IsNetworkError(err))
	assert.Equal(t, askademy.MsgNetworkError, askademy.UserMessage(err))
}
