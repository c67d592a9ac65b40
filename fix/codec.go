package fix

import (
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Wire positions fixed by the protocol: every message starts with
// 8=<BeginString>, 9=<BodyLength> and carries 10=<CheckSum> as trailer.
const (
	tagBeginString = 8
	tagBodyLength  = 9
	tagCheckSum    = 10
)

// Encode serializes a structured message into its wire form.
//
// The header and body sections are merged, the MsgType field is emitted
// first inside the length-counted segment so that it lands third on the wire
// after BeginString and BodyLength, and repeating groups are flattened
// recursively into a count field followed by each element's fields in
// element order. Remaining fields are emitted in ascending tag order with
// group blocks kept contiguous.
//
// BodyLength is the byte length of the length-counted segment, and CheckSum
// is the byte sum of everything before the trailer, mod 256, zero-padded to
// three digits. Checksum arithmetic operates on raw bytes; field values are
// required to be ASCII.
//
// Encoding fails with an error wrapping ErrUnknownField if any field name
// has no dictionary tag. An unmapped field is a hard failure, not a silent
// drop: emitting it would desynchronize the receiver's parser.
func Encode(m *Message, dict Dictionary) ([]byte, error) {
	beginString := m.Header.GetString(FieldBeginString)
	if beginString == "" {
		return nil, ErrMissingBeginString
	}

	msgType, ok := m.Header.Get(FieldMsgType)
	if !ok {
		return nil, ErrMissingMsgType
	}

	type entry struct {
		tag   int
		value Value
	}

	entries := make([]entry, 0, len(m.Header)+len(m.Body))
	merge := func(section FieldMap) error {
		for name, v := range section {
			switch name {
			case FieldBeginString, FieldBodyLength, FieldMsgType:
				// computed separately
				continue
			}
			tag, err := dict.TagFor(name)
			if err != nil {
				return err
			}
			entries = append(entries, entry{tag: tag, value: v})
		}
		return nil
	}
	if err := merge(m.Header); err != nil {
		return nil, err
	}
	if err := merge(m.Body); err != nil {
		return nil, err
	}

	sort.Slice(entries, func(i, j int) bool { return entries[i].tag < entries[j].tag })

	msgTypeTag, err := dict.TagFor(FieldMsgType)
	if err != nil {
		return nil, err
	}

	var body strings.Builder
	writePair(&body, msgTypeTag, msgType.Wire())
	for _, e := range entries {
		if err := flattenField(&body, e.tag, e.value, dict); err != nil {
			return nil, err
		}
	}

	var pre strings.Builder
	writePair(&pre, tagBeginString, beginString)
	writePair(&pre, tagBodyLength, strconv.Itoa(body.Len()))
	pre.WriteString(body.String())

	wire := pre.String()
	var sum int
	for i := 0; i < len(wire); i++ {
		sum += int(wire[i])
	}

	return []byte(fmt.Sprintf("%s%d=%03d%s", wire, tagCheckSum, sum%256, SOH)), nil
}

// flattenField emits one tag=value pair, then recursively flattens the
// elements of a repeating group. The pair of a group field carries the
// element count; a zero-element group still emits its count field.
func flattenField(sb *strings.Builder, tag int, v Value, dict Dictionary) error {
	writePair(sb, tag, v.Wire())

	group, ok := v.Group()
	if !ok {
		return nil
	}

	for _, elem := range group {
		for _, f := range elem {
			tag, err := dict.TagFor(f.Name)
			if err != nil {
				return err
			}
			if err := flattenField(sb, tag, f.Value, dict); err != nil {
				return err
			}
		}
	}

	return nil
}

func writePair(sb *strings.Builder, tag int, value string) {
	sb.WriteString(strconv.Itoa(tag))
	sb.WriteByte('=')
	sb.WriteString(value)
	sb.WriteString(SOH)
}

// Decode parses a wire message into its structured form.
//
// Decoding is best-effort per field: a tag segment that is not numeric keeps
// its raw tag string as the field key, and a tag with no dictionary entry
// passes through keyed by its decimal string. Fields are routed into the
// header, body or trailer section according to the dictionary's section
// sets; everything not in either set is body.
//
// Decode does not reconstruct repeating groups: group count fields arrive as
// plain values and the consumer receives the flat field list. Callers
// written against the flat shape depend on this.
func Decode(wire []byte, dict Dictionary) (*Message, error) {
	if len(wire) == 0 {
		return nil, errors.New("empty wire message")
	}

	msg := NewMessage()
	for _, segment := range strings.Split(string(wire), SOH) {
		if segment == "" {
			continue
		}

		var name, value string
		if idx := strings.IndexByte(segment, '='); idx >= 0 {
			name = resolveTag(segment[:idx], dict)
			value = segment[idx+1:]
		} else {
			name = resolveTag(segment, dict)
		}

		switch {
		case dict.IsHeaderField(name):
			msg.Header.Set(name, String(value))
		case dict.IsTrailerField(name):
			msg.Trailer.Set(name, String(value))
		default:
			msg.Body.Set(name, String(value))
		}
	}

	return msg, nil
}

// resolveTag maps a raw tag segment to a field name, recovering from a
// malformed tag by keeping the raw string as the key.
func resolveTag(raw string, dict Dictionary) string {
	tag, err := parseTag(raw)
	if errors.Is(err, ErrMalformedTag) {
		return raw
	}
	return dict.FieldFor(tag)
}

func parseTag(raw string) (int, error) {
	tag, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrMalformedTag, raw)
	}
	return tag, nil
}
