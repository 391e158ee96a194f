package browser

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLauncher_LaunchArgs_PlatformDefault(t *testing.T) {
	l := New("")
	program, args := l.launchArgs("https://github.com/acme/widgets/issues/1")

	switch runtime.GOOS {
	case "darwin":
		assert.Equal(t, "open", program)
		assert.Equal(t, []string{"https://github.com/acme/widgets/issues/1"}, args)
	case "windows":
		assert.Equal(t, "rundll32", program)
		assert.Equal(t, []string{"url.dll,FileProtocolHandler",
			"https://github.com/acme/widgets/issues/1"}, args)
	default:
		assert.Equal(t, "xdg-open", program)
		assert.Equal(t, []string{"https://github.com/acme/widgets/issues/1"}, args)
	}
}

func TestLauncher_LaunchArgs_Override(t *testing.T) {
	l := New("firefox")
	program, args := l.launchArgs("https://example.com")
	assert.Equal(t, "firefox", program)
	assert.Equal(t, []string{"https://example.com"}, args)
}

func TestLauncher_Open_StartFailure(t *testing.T) {
	l := New("nonexistent-browser-xyz")
	err := l.Open("https://example.com")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open browser")
}
