package models

import (
	"cmp"
	"encoding/json"
	"slices"
	"sort"
)

// IDSet is a set of plugin identifiers.
type IDSet map[string]struct{}

// NewIDSet creates a set holding the given identifiers.
func NewIDSet(ids ...string) IDSet {
	s := make(IDSet, len(ids))
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// Add inserts id into the set.
func (s IDSet) Add(id string) {
	s[id] = struct{}{}
}

// Has reports whether id is in the set.
func (s IDSet) Has(id string) bool {
	_, ok := s[id]
	return ok
}

// Len returns the number of identifiers.
func (s IDSet) Len() int {
	return len(s)
}

// Sorted returns the identifiers in ascending order.
func (s IDSet) Sorted() []string {
	ids := make([]string, 0, len(s))
	for id := range s {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// PluginGroupSpec is the input for resolving one plugin group.
type PluginGroupSpec struct {
	Name        string
	PluginIDs   IDSet
	Description string
}

// PluginGroup is a named set of repositories, unique by RepositoryDescriptor.ID.
type PluginGroup struct {
	Name         string
	Description  string
	UpdatedAt    int64 // unix millis
	repositories map[string]RepositoryDescriptor
}

// NewPluginGroup builds a group, collapsing repositories that share an ID.
func NewPluginGroup(name, description string, repositories []RepositoryDescriptor, updatedAt int64) PluginGroup {
	set := make(map[string]RepositoryDescriptor, len(repositories))
	for _, r := range repositories {
		set[r.ID()] = r
	}
	return PluginGroup{
		Name:         name,
		Description:  description,
		UpdatedAt:    updatedAt,
		repositories: set,
	}
}

// Repositories returns the repository set ordered by ID.
func (g PluginGroup) Repositories() []RepositoryDescriptor {
	repos := make([]RepositoryDescriptor, 0, len(g.repositories))
	for _, r := range g.repositories {
		repos = append(repos, r)
	}
	slices.SortFunc(repos, func(a, b RepositoryDescriptor) int {
		return cmp.Compare(a.ID(), b.ID())
	})
	return repos
}

// Contains reports whether a repository with the same ID is in the group.
func (g PluginGroup) Contains(r RepositoryDescriptor) bool {
	_, ok := g.repositories[r.ID()]
	return ok
}

// Count is the number of repositories in the group.
func (g PluginGroup) Count() int {
	return len(g.repositories)
}

// Selected is the number of selected repositories. Every repository is
// currently selected, so it equals Count.
func (g PluginGroup) Selected() int {
	return len(g.repositories)
}

// Organization is reserved and always 0.
func (g PluginGroup) Organization() int {
	return 0
}

// Priority is reserved and always 0.
func (g PluginGroup) Priority() int {
	return 0
}

type pluginGroupJSON struct {
	Name         string                 `json:"name"`
	Description  string                 `json:"description"`
	Repositories []RepositoryDescriptor `json:"repositories"`
	Count        int                    `json:"count"`
	Selected     int                    `json:"selected"`
	Organization int                    `json:"organization"`
	Priority     int                    `json:"priority"`
	UpdatedAt    int64                  `json:"updatedAt"`
}

// MarshalJSON emits the group with its derived counters and no omitted fields.
func (g PluginGroup) MarshalJSON() ([]byte, error) {
	return json.Marshal(pluginGroupJSON{
		Name:         g.Name,
		Description:  g.Description,
		Repositories: g.Repositories(),
		Count:        g.Count(),
		Selected:     g.Selected(),
		Organization: g.Organization(),
		Priority:     g.Priority(),
		UpdatedAt:    g.UpdatedAt,
	})
}

// UnmarshalJSON rebuilds a group from its document. Stored counters are
// ignored and recomputed from the repositories.
func (g *PluginGroup) UnmarshalJSON(data []byte) error {
	var raw pluginGroupJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*g = NewPluginGroup(raw.Name, raw.Description, raw.Repositories, raw.UpdatedAt)
	return nil
}

// GroupResolutionResult is the output of resolving a PluginGroupSpec.
type GroupResolutionResult struct {
	PluginGroup PluginGroup
	Missing     map[string]Missing
}

// MissingIDs returns the unresolved identifiers in ascending order.
func (r GroupResolutionResult) MissingIDs() []string {
	ids := make([]string, 0, len(r.Missing))
	for id := range r.Missing {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
