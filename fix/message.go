package fix

// FieldMap maps dictionary field names to values within one message section.
type FieldMap map[string]Value

// Set stores a value under the given field name.
func (fm FieldMap) Set(name string, v Value) {
	fm[name] = v
}

// Get returns the value stored under the given field name.
func (fm FieldMap) Get(name string) (Value, bool) {
	v, ok := fm[name]
	return v, ok
}

// GetString returns the wire text of the value stored under the given field
// name, or the empty string if the field is absent.
func (fm FieldMap) GetString(name string) string {
	v, ok := fm[name]
	if !ok {
		return ""
	}
	return v.Wire()
}

// Clone returns a shallow copy of the field map.
func (fm FieldMap) Clone() FieldMap {
	clone := make(FieldMap, len(fm))
	for name, v := range fm {
		clone[name] = v
	}
	return clone
}

// Message is the structured form of one wire message. The header, body and
// trailer sections are disjoint by field name; the dictionary's header and
// trailer field sets decide which section a decoded field is routed to.
type Message struct {
	Header  FieldMap
	Body    FieldMap
	Trailer FieldMap
}

// NewMessage returns a Message with empty header, body and trailer sections.
func NewMessage() *Message {
	return &Message{
		Header:  make(FieldMap),
		Body:    make(FieldMap),
		Trailer: make(FieldMap),
	}
}

// MsgType returns the wire code carried in the MsgType header field, or the
// empty string if absent.
func (m *Message) MsgType() string {
	return m.Header.GetString(FieldMsgType)
}
