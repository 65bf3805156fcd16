package wire

import (
	"encoding/binary"
	"io"
	"math"

	"github.com/knot-format/go-knot/ir"
)

// Encoder writes node trees to w in the wire format.
type Encoder struct {
	w io.Writer
}

func NewEncoder(w io.Writer) *Encoder {
	return &Encoder{w: w}
}

func (e *Encoder) Encode(node *ir.Node) error {
	switch node.Kind {
	case ir.ArrayKind:
		if err := e.writeHeader(TagArray, len(node.Values)); err != nil {
			return err
		}
		for _, v := range node.Values {
			if err := e.Encode(v); err != nil {
				return err
			}
		}
		return nil
	case ir.ObjectKind:
		if err := e.writeHeader(TagObject, len(node.Keys)); err != nil {
			return err
		}
		for i, k := range node.Keys {
			if err := e.writeBytes([]byte(k)); err != nil {
				return err
			}
			if err := e.Encode(node.Values[i]); err != nil {
				return err
			}
		}
		return nil
	case ir.StringKind:
		if err := e.writeTag(TagString); err != nil {
			return err
		}
		return e.writeBytes([]byte(node.Text))
	case ir.IntKind:
		if err := e.writeTag(TagInt); err != nil {
			return err
		}
		return e.writeUint32(uint32(node.AsInt()))
	case ir.LongKind:
		if err := e.writeTag(TagLong); err != nil {
			return err
		}
		return e.writeUint64(uint64(node.AsLong()))
	case ir.FloatKind:
		if err := e.writeTag(TagFloat); err != nil {
			return err
		}
		return e.writeUint32(math.Float32bits(node.AsFloat()))
	case ir.DoubleKind:
		if err := e.writeTag(TagDouble); err != nil {
			return err
		}
		return e.writeUint64(math.Float64bits(node.AsDouble()))
	case ir.BoolKind:
		if err := e.writeTag(TagBool); err != nil {
			return err
		}
		b := byte(0)
		if node.AsBool() {
			b = 1
		}
		_, err := e.w.Write([]byte{b})
		return err
	default:
		return e.writeTag(TagNull)
	}
}

func (e *Encoder) writeTag(t byte) error {
	_, err := e.w.Write([]byte{t})
	return err
}

func (e *Encoder) writeHeader(t byte, count int) error {
	if err := e.writeTag(t); err != nil {
		return err
	}
	return e.writeUint32(uint32(count))
}

func (e *Encoder) writeBytes(d []byte) error {
	if err := e.writeUint32(uint32(len(d))); err != nil {
		return err
	}
	_, err := e.w.Write(d)
	return err
}

func (e *Encoder) writeUint32(v uint32) error {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], v)
	_, err := e.w.Write(b[:])
	return err
}

func (e *Encoder) writeUint64(v uint64) error {
	var b [8]byte
	binary.LittleEndian.PutUint64(b[:], v)
	_, err := e.w.Write(b[:])
	return err
}
