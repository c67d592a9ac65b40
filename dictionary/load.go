package dictionary

import (
	"fmt"

	"github.com/BurntSushi/toml"
)

// LoadFile builds a Dictionary from a TOML schema document.
//
// The document declares the tag table, the section layouts and the message
// type codes:
//
//	[fields]
//	BeginString = 8
//	BodyLength = 9
//	MsgType = 35
//	CheckSum = 10
//
//	header = ["BeginString", "BodyLength", "MsgType"]
//	trailer = ["CheckSum"]
//
//	[msgtypes]
//	Logon = "A"
//
// The same bijection and section validation as New applies.
func LoadFile(path string) (*Dictionary, error) {
	var spec Spec
	if _, err := toml.DecodeFile(path, &spec); err != nil {
		return nil, fmt.Errorf("decode dictionary schema %s: %w", path, err)
	}

	d, err := New(spec)
	if err != nil {
		return nil, fmt.Errorf("invalid dictionary schema %s: %w", path, err)
	}

	return d, nil
}
