package askademy

import (
	"os"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Config exposes the client settings the SDK consumes.
type Config interface {
	GetBaseURL() string
	GetTimeout() time.Duration
	GetAuthScheme() string
	GetCredentialFile() string
	GetToken() string
}

// AppConfig is the viper-backed Config used by the CLI: defaults first, then
// an optional .env file, then ASKADEMY_-prefixed environment variables.
type AppConfig struct {
	v *viper.Viper
}

// LoadConfig builds the runtime configuration.
func LoadConfig() *AppConfig {
	v := viper.New()
	v.SetTypeByDefaultValue(true)

	v.SetDefault("baseUrl", "http://localhost:8080/api")
	v.SetDefault("timeout", 30*time.Second)
	v.SetDefault("authScheme", defaultAuthScheme)
	v.SetDefault("credentialFile", defaultCredentialFile())
	v.SetDefault("token", "")

	// load .env if it exists (ignore if it does not)
	if _, err := os.Stat(".env"); err == nil {
		_ = godotenv.Load(".env")
	}

	v.SetEnvPrefix("ASKADEMY")
	v.AutomaticEnv()

	return &AppConfig{v: v}
}

func (c *AppConfig) GetBaseURL() string          { return c.v.GetString("baseUrl") }
func (c *AppConfig) GetTimeout() time.Duration   { return c.v.GetDuration("timeout") }
func (c *AppConfig) GetAuthScheme() string       { return c.v.GetString("authScheme") }
func (c *AppConfig) GetCredentialFile() string   { return c.v.GetString("credentialFile") }
func (c *AppConfig) GetToken() string            { return c.v.GetString("token") }

func defaultCredentialFile() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(os.TempDir(), ".askademy", "credential")
	}
	return filepath.Join(home, ".askademy", "credential")
}
