package domain

import "strconv"

// Identifier is the path segment used by the lookup endpoints. A value that parses
// as a base-10 integer selects the id arm; anything else is an exact name match.
type Identifier struct {
	raw  string
	id   int
	byID bool
}

// ParseIdentifier chooses the lookup arm by attempting a numeric parse first.
func ParseIdentifier(raw string) Identifier {
	if id, err := strconv.Atoi(raw); err == nil {
		return Identifier{raw: raw, id: id, byID: true}
	}
	return Identifier{raw: raw}
}

// ID returns the numeric id and whether the identifier is in the id arm.
func (i Identifier) ID() (int, bool) {
	return i.id, i.byID
}

// Name returns the raw value for a name lookup.
func (i Identifier) Name() string {
	return i.raw
}

func (i Identifier) String() string {
	return i.raw
}
