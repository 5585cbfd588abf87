package displayname

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve(t *testing.T) {
	resolver := NewResolver(map[string]string{
		"com.google.Chrome": "Google Chrome",
		"custom.app":        "Custom",
	})

	assert.Equal(t, "Google Chrome", resolver.Resolve("com.google.Chrome")) // override wins
	assert.Equal(t, "Custom", resolver.Resolve("custom.app"))
	assert.Equal(t, "Finder", resolver.Resolve("com.apple.finder"))
	assert.Equal(t, "org.unknown.app", resolver.Resolve("org.unknown.app"))
}

func TestResolveNoOverrides(t *testing.T) {
	resolver := NewResolver(nil)

	assert.Equal(t, "VSCode", resolver.Resolve("com.microsoft.VSCode"))
	assert.Equal(t, "raw-id", resolver.Resolve("raw-id"))
}
