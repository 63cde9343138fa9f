package attachmentid

import (
	"fmt"
	"slices"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// Separator separates the domain from the local id in a serialized
// attachment ID.
const Separator = "/"

// ID identifies an attachment by the domain of the service that issued it
// and a token unique within that domain.
//
// Serialized forms:
//   - "{domain}/{id}" for current IDs
//   - "{id}" for legacy IDs minted before domains existed (empty domain)
//
// IDs are immutable and comparable, so they can be used with == and as map
// keys. The canonical string is built once, when the ID is created.
type ID struct {
	domain     string
	id         string
	serialized string
}

// New creates an attachment ID from its domain and local id components.
// The domain may be empty to represent a legacy ID. Neither component may
// contain the separator.
func New(domain, id string) (ID, error) {
	if strings.Contains(domain, Separator) {
		return ID{}, &InvalidComponentError{Component: ComponentDomain, Value: domain}
	}
	if strings.Contains(id, Separator) {
		return ID{}, &InvalidComponentError{Component: ComponentID, Value: id}
	}

	serialized := id
	if domain != "" {
		serialized = domain + Separator + id
	}

	return ID{domain: domain, id: id, serialized: serialized}, nil
}

// MustNew is like New but panics on error. Intended for tests and constants.
func MustNew(domain, id string) ID {
	a, err := New(domain, id)
	if err != nil {
		panic(fmt.Sprintf("invalid attachment ID: %v", err))
	}
	return a
}

// Parse decodes a serialized attachment ID.
// Accepts "{domain}/{id}" and the legacy "{id}" form. A leading separator
// ("/{id}") decodes to a legacy ID. Parse never returns the zero ID.
func Parse(s string) (ID, error) {
	if s == "" || s == Separator {
		return ID{}, newMalformedError(s)
	}

	parts := strings.Split(s, Separator)
	switch len(parts) {
	case 1:
		return New("", parts[0])
	case 2:
		return New(parts[0], parts[1])
	default:
		return ID{}, newMalformedError(s)
	}
}

// ParseNullable decodes a serialized attachment ID that may be absent.
// Returns ErrMissingInput when s is nil.
func ParseNullable(s *string) (ID, error) {
	if s == nil {
		return ID{}, ErrMissingInput
	}
	return Parse(*s)
}

// MustParse is like Parse but panics on error.
func MustParse(s string) ID {
	a, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("invalid attachment ID: %s: %v", s, err))
	}
	return a
}

// Domain returns the issuing domain. Empty for legacy IDs.
func (a ID) Domain() string {
	return a.domain
}

// LocalID returns the token that identifies the attachment within its domain.
func (a ID) LocalID() string {
	return a.id
}

// IsLegacy returns true if the ID has no domain.
func (a ID) IsLegacy() bool {
	return a.domain == ""
}

// IsZero returns true if this is the zero ID (no domain, empty local id).
func (a ID) IsZero() bool {
	return a.domain == "" && a.id == ""
}

// String returns the canonical serialized form. For any two IDs,
// a.String() == b.String() iff a.Equal(b).
func (a ID) String() string {
	return a.serialized
}

// GoString implements fmt.GoStringer.
func (a ID) GoString() string {
	return fmt.Sprintf("attachmentid.MustNew(%q, %q)", a.domain, a.id)
}

// Equal returns true if both IDs have the same domain and local id.
func (a ID) Equal(other ID) bool {
	return a.domain == other.domain && a.id == other.id
}

// Hash returns a hash of the ID that is stable for a given (domain, id) pair.
// Equal IDs always hash equally.
func (a ID) Hash() uint64 {
	const prime = 31
	h := uint64(1)
	h = prime*h + xxhash.Sum64String(a.domain)
	h = prime*h + xxhash.Sum64String(a.id)
	return h
}

// Compare orders IDs by domain, then by local id.
// Returns -1, 0 or +1.
func (a ID) Compare(other ID) int {
	if c := strings.Compare(a.domain, other.domain); c != 0 {
		return c
	}
	return strings.Compare(a.id, other.id)
}

// Less reports whether a sorts before other.
func (a ID) Less(other ID) bool {
	return a.Compare(other) < 0
}

// Compare orders two IDs; suitable for slices.SortFunc.
func Compare(a, b ID) int {
	return a.Compare(b)
}

// Sort sorts ids in place in canonical order.
func Sort(ids []ID) {
	slices.SortFunc(ids, Compare)
}

// Dedupe returns a sorted copy of ids with duplicates removed.
func Dedupe(ids []ID) []ID {
	out := slices.Clone(ids)
	Sort(out)
	return slices.CompactFunc(out, ID.Equal)
}
