// Package fix implements the message model and wire codec for a
// tag-delimited FIX-style messaging protocol.
//
// A message is represented as three field maps (header, body, trailer) keyed
// by dictionary field name. Encode flattens the structured form, including
// repeating groups, into the flat tag=value wire format delimited by SOH
// (0x01) and computes the BodyLength and CheckSum integrity fields. Decode
// performs the reverse split and routes each field into the header, body or
// trailer section according to the dictionary.
//
// Decode intentionally does not reconstruct repeating groups: the consumer
// receives the flat field list, with group count fields appearing as plain
// values. Callers that need nested groups reassemble them from the flat
// shape.
package fix
