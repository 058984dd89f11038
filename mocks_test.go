package askademy_test

import (
	"context"
	"sync/atomic"
	"testing"

	"github.com/askademy/client-go"
	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockAuthService implements askademy.AuthService
type MockAuthService struct {
	mock.Mock
}

func (m *MockAuthService) Login(ctx context.Context, email, password string) (askademy.AuthResponse, error) {
	args := m.Called(ctx, email, password)
	return args.Get(0).(askademy.AuthResponse), args.Error(1)
}

func (m *MockAuthService) Register(ctx context.Context, input askademy.RegisterInput) error {
	args := m.Called(ctx, input)
	return args.Error(0)
}

// fakeNavigator records forced navigations to the sign-in view.
type fakeNavigator struct {
	calls atomic.Int64
}

func (n *fakeNavigator) NavigateToSignIn() {
	n.calls.Add(1)
}

func (n *fakeNavigator) called() bool {
	return n.calls.Load() > 0
}

// fakeSessionState implements askademy.SessionState for gate tests.
type fakeSessionState struct {
	loading  bool
	identity *askademy.Identity
}

func (f *fakeSessionState) Loading() bool { return f.loading }

func (f *fakeSessionState) Identity() (askademy.Identity, bool) {
	if f.identity == nil {
		return askademy.Identity{}, false
	}
	return *f.identity, true
}

// mintCredential signs a token the way the backend does; the client never
// verifies the signature, only decodes the claims segment.
func mintCredential(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte("test-signing-key"))
	require.NoError(t, err)
	return signed
}
