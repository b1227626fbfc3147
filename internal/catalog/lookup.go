package catalog

import (
	"log/slog"
	"strings"

	"github.com/spachava753/plugingroups/internal/models"
)

const githubPrefix = "https://github.com/"

// Lookup resolves a plugin identifier to a repository.
type Lookup interface {
	Resolve(id string) models.Outcome
}

// UpdateCenterLookup resolves plugin identifiers against a loaded update center.
type UpdateCenterLookup struct {
	catalog *models.Catalog
	// Strict reports scm URLs that do not start with https://github.com/ as
	// missing instead of deriving a path from the whole URL.
	Strict bool
}

// NewUpdateCenterLookup creates a lookup over c. The catalog must not be
// modified afterwards.
func NewUpdateCenterLookup(c *models.Catalog) *UpdateCenterLookup {
	return &UpdateCenterLookup{catalog: c}
}

// Resolve returns Resolved when the plugin has both a default branch and an
// scm URL, and Missing otherwise.
func (l *UpdateCenterLookup) Resolve(id string) models.Outcome {
	entry, ok := l.catalog.Entry(id)
	if !ok {
		return models.Missing{ID: id}
	}
	if entry.DefaultBranch == nil || *entry.DefaultBranch == "" || entry.SCM == nil || *entry.SCM == "" {
		slog.Debug("plugin has no branch or scm", "id", id)
		return models.Missing{ID: id}
	}

	path, ok := repositoryPath(*entry.SCM)
	if !ok {
		slog.Debug("scm url is not on github.com", "id", id, "scm", *entry.SCM, "strict", l.Strict)
		if l.Strict {
			return models.Missing{ID: id}
		}
	}

	name, organization := splitPath(path)
	return models.Resolved{
		Repository: models.NewGitHubRepository(*entry.DefaultBranch, path, name, organization),
	}
}

// repositoryPath returns what follows the github.com prefix in scm. When the
// prefix is absent it returns scm unchanged and false.
func repositoryPath(scm string) (string, bool) {
	_, after, found := strings.Cut(scm, githubPrefix)
	if !found {
		return scm, false
	}
	return after, true
}

// splitPath splits "org/name" at the last slash. A path without a slash is
// both the name and the organization.
func splitPath(path string) (name, organization string) {
	i := strings.LastIndex(path, "/")
	if i < 0 {
		return path, path
	}
	return path[i+1:], path[:i]
}
