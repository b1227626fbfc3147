package models

import (
	"encoding/json"
	"strings"
)

const (
	// GitHubOrigin is the origin recorded for every resolved repository.
	GitHubOrigin = "github.com"
	// GitHubRepositoryType is the record kind emitted as __typename.
	GitHubRepositoryType = "GitHubRepository"

	idSeparator = "~~"
)

// RepositoryDescriptor identifies a source repository at a given branch.
type RepositoryDescriptor struct {
	Branch       string
	Path         string
	Name         string
	Organization string
	Origin       string
	TypeName     string
}

// NewGitHubRepository builds a descriptor with the github.com origin and type name.
func NewGitHubRepository(branch, path, name, organization string) RepositoryDescriptor {
	return RepositoryDescriptor{
		Branch:       branch,
		Path:         path,
		Name:         name,
		Organization: organization,
		Origin:       GitHubOrigin,
		TypeName:     GitHubRepositoryType,
	}
}

// ID returns the composite identity of the descriptor. Two descriptors with the
// same path and branch share an ID and are the same entry in a repository set.
func (r RepositoryDescriptor) ID() string {
	return strings.Join([]string{r.TypeName, r.Origin, r.Path, r.Branch}, idSeparator)
}

type repositoryJSON struct {
	Branch       string `json:"branch"`
	Path         string `json:"path"`
	Name         string `json:"name"`
	Organization string `json:"organization"`
	Origin       string `json:"origin"`
	TypeName     string `json:"__typename"`
	ID           string `json:"id"`
}

// MarshalJSON emits every field, including the derived id.
func (r RepositoryDescriptor) MarshalJSON() ([]byte, error) {
	return json.Marshal(repositoryJSON{
		Branch:       r.Branch,
		Path:         r.Path,
		Name:         r.Name,
		Organization: r.Organization,
		Origin:       r.Origin,
		TypeName:     r.TypeName,
		ID:           r.ID(),
	})
}

// UnmarshalJSON reads a descriptor back, ignoring the stored id since it is derived.
func (r *RepositoryDescriptor) UnmarshalJSON(data []byte) error {
	var raw repositoryJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*r = RepositoryDescriptor{
		Branch:       raw.Branch,
		Path:         raw.Path,
		Name:         raw.Name,
		Organization: raw.Organization,
		Origin:       raw.Origin,
		TypeName:     raw.TypeName,
	}
	return nil
}
