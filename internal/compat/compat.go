// Package compat reports plugins that need a newer Jenkins core than the one
// a group is meant to run on.
package compat

import (
	"fmt"
	"log/slog"
	"sort"

	"github.com/Masterminds/semver/v3"

	"github.com/spachava753/plugingroups/internal/models"
)

// Incompatibility is a plugin whose required core exceeds the target core.
type Incompatibility struct {
	ID           string
	RequiredCore string
}

// Check returns the plugins in ids whose requiredCore is newer than core,
// sorted by id. Plugins absent from the catalog or with an unparsable
// requiredCore are skipped.
func Check(c *models.Catalog, ids models.IDSet, core string) ([]Incompatibility, error) {
	target, err := semver.NewVersion(core)
	if err != nil {
		return nil, fmt.Errorf("parsing core version %q: %w", core, err)
	}

	var out []Incompatibility
	for id := range ids {
		entry, ok := c.Entry(id)
		if !ok || entry.RequiredCore == "" {
			continue
		}
		required, err := semver.NewVersion(entry.RequiredCore)
		if err != nil {
			slog.Debug("skipping unparsable required core", "id", id, "requiredCore", entry.RequiredCore, "error", err)
			continue
		}
		if required.GreaterThan(target) {
			out = append(out, Incompatibility{ID: id, RequiredCore: entry.RequiredCore})
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

// Report logs one warning per incompatible plugin.
func Report(incompatible []Incompatibility, core string) {
	for _, inc := range incompatible {
		slog.Warn("plugin requires a newer core", "id", inc.ID, "requiredCore", inc.RequiredCore, "core", core)
	}
}
