package fix

// Dictionary resolves between wire tag numbers and dictionary field names,
// and supplies the section layout of the protocol. Implementations must be
// fully populated before the codec or the session engine is used and are
// treated as immutable thereafter; both session loops read the dictionary
// concurrently.
type Dictionary interface {
	// TagFor returns the wire tag for a field name. It returns an error
	// wrapping ErrUnknownField if the name has no tag.
	TagFor(fieldName string) (int, error)

	// FieldFor returns the field name for a wire tag. Unmapped tags pass
	// through as their decimal string representation.
	FieldFor(tag int) string

	// HeaderFields returns the ordered field names of the header section.
	HeaderFields() []string

	// TrailerFields returns the ordered field names of the trailer section.
	TrailerFields() []string

	// IsHeaderField reports whether the field name belongs to the header
	// section.
	IsHeaderField(fieldName string) bool

	// IsTrailerField reports whether the field name belongs to the trailer
	// section.
	IsTrailerField(fieldName string) bool

	// WireCodeFor returns the wire code for a message type name. It returns
	// an error wrapping ErrUnknownMsgType if the name has no code.
	WireCodeFor(messageType string) (string, error)
}
