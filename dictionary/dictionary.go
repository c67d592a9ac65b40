// Package dictionary provides the protocol field dictionary consumed by the
// fix codec and the session engine: a bijective tag↔field-name mapping, the
// ordered field-name sets of the header and trailer sections, and the
// message-type-name↔wire-code table.
//
// A Dictionary is constructed once at startup and is read-only thereafter.
// The bijection invariant (every tag has exactly one field name and vice
// versa) is enforced at construction time.
package dictionary

import (
	"fmt"
	"strconv"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/tradewire/go-fix/fix"
)

// Spec declares the content of a dictionary. Header and Trailer list field
// names in their section order; every listed name must appear in Fields.
type Spec struct {
	Fields   map[string]int    `toml:"fields"`
	Header   []string          `toml:"header"`
	Trailer  []string          `toml:"trailer"`
	MsgTypes map[string]string `toml:"msgtypes"`
}

// Dictionary implements fix.Dictionary. It is immutable after construction;
// the lookup maps are safe for concurrent readers.
type Dictionary struct {
	tagsByName *xsync.MapOf[string, int]
	namesByTag *xsync.MapOf[int, string]

	header     []string
	trailer    []string
	headerSet  map[string]struct{}
	trailerSet map[string]struct{}

	wireCodes map[string]string
}

var _ fix.Dictionary = (*Dictionary)(nil)

// New builds a Dictionary from the given spec, validating the tag↔name
// bijection, the section field lists and the message type table.
func New(spec Spec) (*Dictionary, error) {
	d := &Dictionary{
		tagsByName: xsync.NewMapOf[string, int](),
		namesByTag: xsync.NewMapOf[int, string](),
		headerSet:  make(map[string]struct{}, len(spec.Header)),
		trailerSet: make(map[string]struct{}, len(spec.Trailer)),
		wireCodes:  make(map[string]string, len(spec.MsgTypes)),
	}

	for name, tag := range spec.Fields {
		if name == "" {
			return nil, fmt.Errorf("field with tag %d has an empty name", tag)
		}
		if tag <= 0 {
			return nil, fmt.Errorf("field %s has non-positive tag %d", name, tag)
		}
		if existing, loaded := d.namesByTag.LoadOrStore(tag, name); loaded {
			return nil, fmt.Errorf("tag %d is mapped to both %s and %s", tag, existing, name)
		}
		d.tagsByName.Store(name, tag)
	}

	for _, name := range spec.Header {
		if _, ok := spec.Fields[name]; !ok {
			return nil, fmt.Errorf("header field %s is not declared in fields", name)
		}
		if _, dup := d.headerSet[name]; dup {
			return nil, fmt.Errorf("header field %s is listed twice", name)
		}
		d.headerSet[name] = struct{}{}
		d.header = append(d.header, name)
	}

	for _, name := range spec.Trailer {
		if _, ok := spec.Fields[name]; !ok {
			return nil, fmt.Errorf("trailer field %s is not declared in fields", name)
		}
		if _, inHeader := d.headerSet[name]; inHeader {
			return nil, fmt.Errorf("field %s is listed in both header and trailer", name)
		}
		if _, dup := d.trailerSet[name]; dup {
			return nil, fmt.Errorf("trailer field %s is listed twice", name)
		}
		d.trailerSet[name] = struct{}{}
		d.trailer = append(d.trailer, name)
	}

	seenCodes := make(map[string]string, len(spec.MsgTypes))
	for name, code := range spec.MsgTypes {
		if code == "" {
			return nil, fmt.Errorf("message type %s has an empty wire code", name)
		}
		if existing, dup := seenCodes[code]; dup {
			return nil, fmt.Errorf("wire code %s is mapped to both %s and %s", code, existing, name)
		}
		seenCodes[code] = name
		d.wireCodes[name] = code
	}

	return d, nil
}

func mustNew(spec Spec) *Dictionary {
	d, err := New(spec)
	if err != nil {
		panic(err)
	}
	return d
}

// TagFor returns the wire tag for a field name.
func (d *Dictionary) TagFor(fieldName string) (int, error) {
	tag, ok := d.tagsByName.Load(fieldName)
	if !ok {
		return 0, fmt.Errorf("%w: %s", fix.ErrUnknownField, fieldName)
	}
	return tag, nil
}

// FieldFor returns the field name for a wire tag. Unmapped tags pass through
// as their decimal string representation.
func (d *Dictionary) FieldFor(tag int) string {
	name, ok := d.namesByTag.Load(tag)
	if !ok {
		return strconv.Itoa(tag)
	}
	return name
}

// HeaderFields returns the ordered field names of the header section.
func (d *Dictionary) HeaderFields() []string {
	return d.header
}

// TrailerFields returns the ordered field names of the trailer section.
func (d *Dictionary) TrailerFields() []string {
	return d.trailer
}

// IsHeaderField reports whether the field name belongs to the header section.
func (d *Dictionary) IsHeaderField(fieldName string) bool {
	_, ok := d.headerSet[fieldName]
	return ok
}

// IsTrailerField reports whether the field name belongs to the trailer section.
func (d *Dictionary) IsTrailerField(fieldName string) bool {
	_, ok := d.trailerSet[fieldName]
	return ok
}

// WireCodeFor returns the wire code for a message type name.
func (d *Dictionary) WireCodeFor(messageType string) (string, error) {
	code, ok := d.wireCodes[messageType]
	if !ok {
		return "", fmt.Errorf("%w: %s", fix.ErrUnknownMsgType, messageType)
	}
	return code, nil
}
