package main

import (
	"fmt"
	"os"

	"github.com/askademy/client-go"
	"github.com/spf13/cobra"
)

// App holds the wired client: one Session per process, injected into the
// pipeline, the gate, and every command.
type App struct {
	cfg     *askademy.AppConfig
	session *askademy.Session
	client  *askademy.Client
	gate    *askademy.Gate
}

// Declared views with their role restrictions, mirroring the platform's
// navigable pages.
var (
	viewDashboard = askademy.View{Name: "dashboard", Path: "/dashboard"}
	viewCourse    = askademy.View{Name: "course", Path: "/courses/:id"}
	viewAdmin     = askademy.View{
		Name:     "admin dashboard",
		Path:     "/admin",
		Required: []askademy.Role{askademy.RoleAdmin},
	}
)

// signInNavigator is the CLI's navigation capability: when the pipeline
// tears the session down it points the user at the sign-in command.
type signInNavigator struct{}

func (signInNavigator) NavigateToSignIn() {
	fmt.Fprintln(os.Stderr, "Your session has expired. Run `askademy login` to sign in again.")
}

func newApp() *App {
	cfg := askademy.LoadConfig()

	var store askademy.CredentialStore
	if token := cfg.GetToken(); token != "" {
		store = askademy.NewMemoryStore(token)
	} else {
		store = askademy.NewFileStore(cfg.GetCredentialFile())
	}

	session := askademy.NewSession(store)
	pipeline := askademy.NewPipeline(session, session, signInNavigator{}).
		WithAuthScheme(cfg.GetAuthScheme())
	client := askademy.NewClient(cfg, pipeline)
	session.WithAuthService(client.Auth())
	session.Restore()

	return &App{
		cfg:     cfg,
		session: session,
		client:  client,
		gate:    askademy.NewGate(session),
	}
}

// requireView runs the role gate for a declared view before a command
// touches the network.
func (a *App) requireView(view askademy.View) error {
	switch a.gate.EvaluateView(view) {
	case askademy.DecisionAllowed:
		return nil
	case askademy.DecisionDeniedForbidden:
		return askademy.ErrPermissionDenied
	case askademy.DecisionDeniedUnauthenticated:
		return askademy.ErrSessionExpired
	default:
		return fmt.Errorf("session is still loading, try again")
	}
}

func (a *App) identity() *askademy.Identity {
	identity, ok := a.session.Identity()
	if !ok {
		return nil
	}
	return &identity
}

func newRootCmd(app *App) *cobra.Command {
	root := &cobra.Command{
		Use:           "askademy",
		Short:         "Askademy classroom Q&A client",
		Long:          "Terminal client for the Askademy classroom Q&A platform.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newLoginCmd(app),
		newLogoutCmd(app),
		newRegisterCmd(app),
		newWhoamiCmd(app),
		newCoursesCmd(app),
		newQuestionsCmd(app),
		newAnswersCmd(app),
		newAnnouncementsCmd(app),
		newAdminCmd(app),
	)

	return root
}
