package wire

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"

	"github.com/knot-format/go-knot/ir"
)

// Tag bytes, one per node kind.
const (
	TagArray  byte = 1
	TagObject byte = 2
	TagString byte = 3
	TagInt    byte = 4
	TagDouble byte = 5
	TagBool   byte = 6
	TagFloat  byte = 7
	TagLong   byte = 8
	TagNull   byte = 9
)

// ErrCorruptStream is wrapped by every decode failure: an unrecognized
// tag byte or a truncated payload.
var ErrCorruptStream = errors.New("corrupt stream")

func Marshal(node *ir.Node) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := NewEncoder(buf).Encode(node); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func Unmarshal(d []byte) (*ir.Node, error) {
	dec := NewDecoder(bytes.NewReader(d))
	node, err := dec.Decode()
	if err != nil {
		return nil, err
	}
	return node, nil
}

// MarshalBase64 encodes node and wraps the stream in standard base64.
func MarshalBase64(node *ir.Node) (string, error) {
	d, err := Marshal(node)
	if err != nil {
		return "", err
	}
	return base64.StdEncoding.EncodeToString(d), nil
}

func UnmarshalBase64(s string) (*ir.Node, error) {
	d, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("%w: bad base64: %w", ErrCorruptStream, err)
	}
	return Unmarshal(d)
}
