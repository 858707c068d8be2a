package page

import (
	"errors"
	"fmt"
)

// ErrUnknownID is returned by ParseID for keys that name no page.
var ErrUnknownID = errors.New("unknown page id")

// ID identifies a page of the site. It selects which navigation entry, if
// any, is marked as the current page.
type ID int

const (
	None ID = iota
	Home
	Download
	Docs
	FAQ
	Dev
	Guidelines
	Lists
	Links
	Contact
	References
	Donate
)

// idKeys holds the legacy string keys, indexed by ID.
var idKeys = [...]string{
	None:       "",
	Home:       "home",
	Download:   "download",
	Docs:       "docs",
	FAQ:        "faq",
	Dev:        "dev",
	Guidelines: "guidelines",
	Lists:      "lists",
	Links:      "links",
	Contact:    "contact",
	References: "references",
	Donate:     "donate",
}

// String returns the legacy key for the ID, e.g. "download".
func (id ID) String() string {
	if !id.Valid() {
		return fmt.Sprintf("ID(%d)", int(id))
	}
	return idKeys[id]
}

// Valid reports whether id is one of the declared constants.
func (id ID) Valid() bool {
	return id >= None && int(id) < len(idKeys)
}

// ParseID converts a legacy key into an ID. The empty string yields None.
func ParseID(key string) (ID, error) {
	for i, k := range idKeys {
		if k == key {
			return ID(i), nil
		}
	}
	return None, fmt.Errorf("%w: %q", ErrUnknownID, key)
}

// AllIDs returns every declared ID except None, in declaration order.
func AllIDs() []ID {
	ids := make([]ID, 0, len(idKeys)-1)
	for i := range idKeys {
		if ID(i) == None {
			continue
		}
		ids = append(ids, ID(i))
	}
	return ids
}
