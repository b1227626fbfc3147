package models

// Outcome is the result of looking up one plugin identifier. It is either
// Resolved or Missing.
type Outcome interface {
	outcome()
}

// Resolved carries the repository a plugin identifier points at.
type Resolved struct {
	Repository RepositoryDescriptor
}

// Missing records a plugin identifier with no usable catalog entry.
type Missing struct {
	ID string
}

func (Resolved) outcome() {}
func (Missing) outcome()  {}
