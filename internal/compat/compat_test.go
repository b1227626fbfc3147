package compat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spachava753/plugingroups/internal/models"
)

func TestCheck(t *testing.T) {
	c := &models.Catalog{Plugins: map[string]models.CatalogEntry{
		"old":     {RequiredCore: "2.361.4"},
		"same":    {RequiredCore: "2.401.3"},
		"newer":   {RequiredCore: "2.426.1"},
		"newest":  {RequiredCore: "2.440"},
		"nocore":  {},
		"garbage": {RequiredCore: "latest"},
		"ancient": {RequiredCore: "1.580.1"},
	}}
	ids := models.NewIDSet("old", "same", "newer", "newest", "nocore", "garbage", "ancient", "absent")

	got, err := Check(c, ids, "2.401.3")
	require.NoError(t, err)
	assert.Equal(t, []Incompatibility{
		{ID: "newer", RequiredCore: "2.426.1"},
		{ID: "newest", RequiredCore: "2.440"},
	}, got)
}

func TestCheck_OnlyRequestedIDs(t *testing.T) {
	c := &models.Catalog{Plugins: map[string]models.CatalogEntry{
		"newer": {RequiredCore: "3.0"},
	}}

	got, err := Check(c, models.NewIDSet("other"), "2.0")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestCheck_BadCoreVersion(t *testing.T) {
	_, err := Check(&models.Catalog{}, models.NewIDSet(), "not-a-version")
	assert.Error(t, err)
}
