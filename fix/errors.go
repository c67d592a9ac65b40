package fix

import "errors"

var (
	// ErrUnknownField indicates that a field name has no tag in the
	// dictionary. Encoding fails hard on this: emitting an unmapped field
	// would desynchronize the receiver's parser.
	ErrUnknownField = errors.New("unknown field name")

	// ErrMalformedTag indicates that a tag segment of a wire message is not
	// numeric. Decode recovers from it by keying the field with the raw tag
	// string instead of failing the whole message.
	ErrMalformedTag = errors.New("malformed tag")

	// ErrUnknownMsgType indicates that a message type name has no wire code
	// in the dictionary.
	ErrUnknownMsgType = errors.New("unknown message type")

	// ErrMissingMsgType indicates that a message offered for encoding has no
	// MsgType header field.
	ErrMissingMsgType = errors.New("message type header field is missing")

	// ErrMissingBeginString indicates that a message offered for encoding has
	// no BeginString header field.
	ErrMissingBeginString = errors.New("begin string header field is missing")
)
