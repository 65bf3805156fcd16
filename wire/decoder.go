package wire

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"strconv"

	"github.com/knot-format/go-knot/ir"
)

// Decoder reads node trees from r. Decoding fails fast: a failure leaves
// no usable partial tree.
type Decoder struct {
	r io.Reader
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r}
}

func (d *Decoder) Decode() (*ir.Node, error) {
	tag, err := d.readTag()
	if err != nil {
		return nil, err
	}
	switch tag {
	case TagArray:
		n, err := d.readUint32()
		if err != nil {
			return nil, err
		}
		arr := ir.NewArray()
		for range n {
			v, err := d.Decode()
			if err != nil {
				return nil, err
			}
			arr.Add("", v)
		}
		return arr, nil
	case TagObject:
		n, err := d.readUint32()
		if err != nil {
			return nil, err
		}
		obj := ir.NewObject()
		for range n {
			key, err := d.readString()
			if err != nil {
				return nil, err
			}
			v, err := d.Decode()
			if err != nil {
				return nil, err
			}
			obj.Add(key, v)
		}
		return obj, nil
	case TagString:
		s, err := d.readString()
		if err != nil {
			return nil, err
		}
		return ir.FromString(s), nil
	case TagInt:
		v, err := d.readUint32()
		if err != nil {
			return nil, err
		}
		return ir.FromInt(int32(v)), nil
	case TagLong:
		v, err := d.readUint64()
		if err != nil {
			return nil, err
		}
		return ir.FromLong(int64(v)), nil
	case TagFloat:
		v, err := d.readUint32()
		if err != nil {
			return nil, err
		}
		return ir.FromFloat(math.Float32frombits(v)), nil
	case TagDouble:
		v, err := d.readUint64()
		if err != nil {
			return nil, err
		}
		return ir.FromDouble(math.Float64frombits(v)), nil
	case TagBool:
		var b [1]byte
		if _, err := io.ReadFull(d.r, b[:]); err != nil {
			return nil, fmt.Errorf("%w: bool payload: %w", ErrCorruptStream, err)
		}
		return ir.FromBool(b[0] != 0), nil
	case TagNull:
		return ir.Null(), nil
	default:
		return nil, fmt.Errorf("%w: unrecognized tag byte 0x%02x", ErrCorruptStream, tag)
	}
}

func (d *Decoder) readTag() (byte, error) {
	var b [1]byte
	if _, err := io.ReadFull(d.r, b[:]); err != nil {
		return 0, fmt.Errorf("%w: tag byte: %w", ErrCorruptStream, err)
	}
	return b[0], nil
}

func (d *Decoder) readUint32() (uint32, error) {
	var b [4]byte
	if _, err := io.ReadFull(d.r, b[:]); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCorruptStream, err)
	}
	return binary.LittleEndian.Uint32(b[:]), nil
}

func (d *Decoder) readUint64() (uint64, error) {
	var b [8]byte
	if _, err := io.ReadFull(d.r, b[:]); err != nil {
		return 0, fmt.Errorf("%w: %w", ErrCorruptStream, err)
	}
	return binary.LittleEndian.Uint64(b[:]), nil
}

func (d *Decoder) readString() (string, error) {
	n, err := d.readUint32()
	if err != nil {
		return "", err
	}
	if n > 1<<28 {
		return "", fmt.Errorf("%w: implausible length %s", ErrCorruptStream,
			strconv.FormatUint(uint64(n), 10))
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(d.r, buf); err != nil {
		return "", fmt.Errorf("%w: %w", ErrCorruptStream, err)
	}
	return string(buf), nil
}
