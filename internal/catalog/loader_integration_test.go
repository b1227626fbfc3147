package catalog

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spachava753/plugingroups/internal/models"
)

// TestLoadFromURL_UpdateCenter fetches the real update center.
// This test is skipped with -short flag since it requires network access.
func TestLoadFromURL_UpdateCenter(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	c, err := LoadFromURL(ctx, DefaultURL)
	require.NoError(t, err)
	assert.Greater(t, len(c.Plugins), 1000)

	resolved, ok := NewUpdateCenterLookup(c).Resolve("git").(models.Resolved)
	require.True(t, ok, "git plugin should resolve")
	assert.Equal(t, "jenkinsci/git-plugin", resolved.Repository.Path)
	t.Logf("git plugin: %s", resolved.Repository.ID())
}
