package gate

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	iphoneUA  = "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X) AppleWebKit/605.1.15 Mobile/15E148"
	androidUA = "Mozilla/5.0 (Linux; Android 14; Pixel 8) AppleWebKit/537.36 Chrome/120.0 Mobile Safari/537.36"
	desktopUA = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 Chrome/120.0 Safari/537.36"
)

func TestDetectDevice(t *testing.T) {
	d := DetectDevice(iphoneUA, "", false)
	assert.True(t, d.IOS)
	assert.True(t, d.Mobile())
	assert.False(t, d.Standalone)

	d = DetectDevice(androidUA, "standalone", false)
	assert.True(t, d.Android)
	assert.True(t, d.Standalone)

	assert.True(t, DetectDevice("something ANDROID something", "", false).Android)
	assert.True(t, DetectDevice(iphoneUA, "browser", true).Standalone)
	assert.False(t, DetectDevice(desktopUA, "", false).Mobile())
}

func TestInstallPromptPreemptsEveryState(t *testing.T) {
	mobileBrowser := DetectDevice(androidUA, "browser", false)
	for _, s := range []Screen{Login, Signup, ProfileCompletion, Main} {
		g := Gate{State: s}
		assert.Equal(t, InstallPrompt, g.Screen(mobileBrowser), "state %s", s)
	}

	installed := DetectDevice(androidUA, "standalone", false)
	assert.Equal(t, Main, Gate{State: Main}.Screen(installed))
	assert.Equal(t, Login, Gate{}.Screen(Device{}))
}

func TestTransitions(t *testing.T) {
	g := New()
	require.Equal(t, Login, g.State)

	require.NoError(t, g.SwitchToSignup())
	assert.Equal(t, Signup, g.State)
	assert.ErrorIs(t, g.SwitchToSignup(), ErrInvalidTransition)

	require.NoError(t, g.SwitchToLogin())
	require.NoError(t, g.SignedIn(true))
	assert.Equal(t, ProfileCompletion, g.State)

	require.NoError(t, g.CompletionDone())
	assert.Equal(t, Main, g.State)
	assert.ErrorIs(t, g.CompletionDone(), ErrInvalidTransition)
	assert.ErrorIs(t, g.Skip(), ErrInvalidTransition)

	g.SignedOut()
	assert.Equal(t, Login, g.State)

	require.NoError(t, g.Skip())
	assert.Equal(t, Main, g.State)

	g.SignedOut()
	require.NoError(t, g.SwitchToSignup())
	require.NoError(t, g.Skip())
	assert.Equal(t, Main, g.State)

	g.State = ProfileCompletion
	assert.ErrorIs(t, g.Skip(), ErrInvalidTransition)
	assert.Equal(t, ProfileCompletion, g.State)
}

func TestSignedInWithoutCompletion(t *testing.T) {
	g := New()
	require.NoError(t, g.SwitchToSignup())
	require.NoError(t, g.SignedIn(false))
	assert.Equal(t, Main, g.State)
}

func TestInstructions(t *testing.T) {
	ios := Instructions(Device{IOS: true})
	assert.Equal(t, "ios", ios.Platform)
	assert.Contains(t, ios.Steps[1].Text, "Aggiungi a Home")

	android := Instructions(Device{Android: true})
	assert.Equal(t, "android", android.Platform)
	assert.Contains(t, android.Steps[0].Text, "(⋮)")
	assert.Equal(t, "Installa l'app per continuare", android.Subtitle)
}
