package config

import (
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.AppPort)
	assert.Equal(t, "mongo", cfg.DocumentStore)
	assert.Equal(t, "firebase", cfg.ObjectStore)
	assert.Equal(t, 72*time.Hour, cfg.SessionTTL)
	assert.Equal(t, "Europe/Rome", cfg.TimeZone)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("APP_PORT", "9090")
	t.Setenv("DOCUMENT_STORE", "firestore")
	t.Setenv("SESSION_TTL", "30m")

	cfg, err := Load(viper.New())
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.AppPort)
	assert.Equal(t, "firestore", cfg.DocumentStore)
	assert.Equal(t, 30*time.Minute, cfg.SessionTTL)
}

func TestLocationFallsBackToUTC(t *testing.T) {
	assert.Equal(t, time.UTC, Config{TimeZone: "Nowhere/Atlantis"}.Location())
	assert.Equal(t, time.UTC, Config{}.Location())
}

func TestAllowedOrigins(t *testing.T) {
	assert.Equal(t, []string{"*"}, Config{}.AllowedOrigins())
	assert.Equal(t, []string{"https://a.example", "https://b.example"},
		Config{CORSOrigins: "https://a.example, https://b.example,"}.AllowedOrigins())
}

func TestFirebaseConfigured(t *testing.T) {
	assert.False(t, Config{FirebaseAPIKey: "YOUR_API_KEY", FirebaseProjectID: "p"}.FirebaseConfigured())
	assert.False(t, Config{FirebaseAPIKey: "k"}.FirebaseConfigured())
	assert.True(t, Config{FirebaseAPIKey: "k", FirebaseProjectID: "p"}.FirebaseConfigured())
}
