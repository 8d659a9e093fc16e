package abc

import "strings"

// ReservedAttribute names the vocabulary slot holding the user's secret.
// It never appears in a user's attribute set or in a reveal set.
const ReservedAttribute = "secret_key"

// Vocabulary is the ordered list of attribute names an issuer signs over.
// Slot 0 is the reserved secret slot; the order is fixed for the lifetime
// of the key pair and determines the message-vector layout on both sides.
type Vocabulary struct {
	names []string
}

// NewVocabulary builds a vocabulary from the issuer-chosen public attribute
// names, prepending the reserved secret slot. Names must be non-empty,
// unique, and must not collide with the reserved slot.
func NewVocabulary(attributes []string) (*Vocabulary, error) {
	if len(attributes) == 0 {
		return nil, ErrEmptyVocabulary
	}

	names := make([]string, 0, len(attributes)+1)
	names = append(names, ReservedAttribute)
	seen := make(map[string]bool, len(attributes)+1)
	seen[ReservedAttribute] = true

	for _, name := range attributes {
		if name == "" {
			return nil, ErrEmptyVocabulary
		}
		if name == ReservedAttribute {
			return nil, ErrReservedAttribute
		}
		if seen[name] {
			return nil, ErrDuplicateAttribute
		}
		seen[name] = true
		names = append(names, name)
	}

	return &Vocabulary{names: names}, nil
}

// ParseVocabulary builds a vocabulary from a comma-separated list of names.
func ParseVocabulary(list string) (*Vocabulary, error) {
	if list == "" {
		return nil, ErrEmptyVocabulary
	}
	return NewVocabulary(strings.Split(list, ","))
}

// Len returns the message-vector length L, including the reserved slot.
func (v *Vocabulary) Len() int { return len(v.names) }

// Names returns a copy of the full ordered name list, reserved slot first.
func (v *Vocabulary) Names() []string {
	out := make([]string, len(v.names))
	copy(out, v.names)
	return out
}

// PublicNames returns a copy of the attribute names without the reserved slot.
func (v *Vocabulary) PublicNames() []string {
	out := make([]string, len(v.names)-1)
	copy(out, v.names[1:])
	return out
}

// Index returns the vocabulary position of name, or -1. Lookup is linear;
// vocabularies are small.
func (v *Vocabulary) Index(name string) int {
	for i, n := range v.names {
		if n == name {
			return i
		}
	}
	return -1
}

// Equal reports whether both vocabularies hold the same names in the same
// order. Credentials are only meaningful against an identical vocabulary.
func (v *Vocabulary) Equal(other *Vocabulary) bool {
	if other == nil || len(v.names) != len(other.names) {
		return false
	}
	for i := range v.names {
		if v.names[i] != other.names[i] {
			return false
		}
	}
	return true
}

// checkAttributes verifies that every name is a public member of the
// vocabulary. The reserved slot is rejected explicitly.
func (v *Vocabulary) checkAttributes(names []string) error {
	for _, name := range names {
		if name == ReservedAttribute {
			return ErrReservedAttribute
		}
		if v.Index(name) < 0 {
			return ErrUnknownAttribute
		}
	}
	return nil
}

// SplitAttributeList parses a comma-separated attribute list into a
// normalised slice: the empty string is the empty set, and duplicates are
// dropped keeping first occurrence.
func SplitAttributeList(list string) []string {
	if list == "" {
		return nil
	}
	parts := strings.Split(list, ",")
	out := make([]string, 0, len(parts))
	seen := make(map[string]bool, len(parts))
	for _, p := range parts {
		if p == "" || seen[p] {
			continue
		}
		seen[p] = true
		out = append(out, p)
	}
	return out
}

// contains reports membership of name in a normalised attribute slice.
func contains(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}
