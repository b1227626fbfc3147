package models

// CatalogEntry is one plugin's release and source metadata in the update center.
type CatalogEntry struct {
	DefaultBranch    *string `json:"defaultBranch"`
	SCM              *string `json:"scm"`
	ReleaseTimestamp string  `json:"releaseTimestamp"`
	RequiredCore     string  `json:"requiredCore"`
	Size             int64   `json:"size"`
}

// Catalog is an update center snapshot keyed by plugin identifier.
// It is read-only once loaded.
type Catalog struct {
	Plugins map[string]CatalogEntry `json:"plugins"`
}

// Entry returns the catalog entry for id.
func (c *Catalog) Entry(id string) (CatalogEntry, bool) {
	if c == nil {
		return CatalogEntry{}, false
	}
	e, ok := c.Plugins[id]
	return e, ok
}
