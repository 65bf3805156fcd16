// Package parse converts JSON text into ir.Node trees.
//
// The parser is a single left-to-right scan over the input. It maintains a
// stack of open containers, an accumulating token buffer, the pending key
// of the current object entry, and quote state. Containers are attached to
// their parent as soon as they open, so the tree is built top-down.
// Failures abort the whole parse; there are no partial trees.
package parse

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf16"
	"unicode/utf8"

	"github.com/knot-format/go-knot/ir"
)

func Parse(jsonText string) (*ir.Node, error) {
	s := &scanner{}
	rs := []rune(jsonText)
	n := len(rs)
	for i := 0; i < n; i++ {
		r := rs[i]
		if s.inQuote {
			switch r {
			case '\\':
				i = s.escape(rs, i)
			case '"':
				s.inQuote = false
			case '\r', '\n':
				// bare CR/LF are dropped even inside quotes
			default:
				s.tok.WriteRune(r)
			}
			continue
		}
		switch r {
		case ' ', '\t', '\r', '\n':
		case '"':
			s.inQuote = true
			s.quoted = true
			s.haveTok = true
		case '{':
			s.open(ir.NewObject())
		case '[':
			s.open(ir.NewArray())
		case '}', ']':
			if len(s.stack) == 0 {
				return nil, fmt.Errorf("%w: unbalanced %q at offset %d", ErrMalformedInput, r, i)
			}
			if err := s.commit(); err != nil {
				return nil, err
			}
			s.stack = s.stack[:len(s.stack)-1]
		case ':':
			if s.keySet {
				return nil, fmt.Errorf("%w: key %q already set at offset %d", ErrMalformedInput, s.key, i)
			}
			s.key = s.tok.String()
			s.keySet = true
			s.resetToken()
		case ',':
			if len(s.stack) == 0 {
				return nil, fmt.Errorf("%w: %q outside any container at offset %d", ErrMalformedInput, r, i)
			}
			if err := s.commit(); err != nil {
				return nil, err
			}
		default:
			var err error
			i, err = s.bare(rs, i)
			if err != nil {
				return nil, err
			}
		}
	}
	if s.inQuote {
		return nil, fmt.Errorf("%w: quote left open at end of input", ErrMalformedInput)
	}
	if len(s.stack) != 0 {
		return nil, fmt.Errorf("%w: %d container(s) left open at end of input", ErrMalformedInput, len(s.stack))
	}
	if s.haveTok {
		if err := s.commit(); err != nil {
			return nil, err
		}
	}
	if s.root == nil {
		return nil, fmt.Errorf("%w: empty input", ErrMalformedInput)
	}
	return s.root, nil
}

type scanner struct {
	stack []*ir.Node
	root  *ir.Node

	tok     strings.Builder
	haveTok bool
	quoted  bool
	inQuote bool

	key    string
	keySet bool
}

// open attaches a new container to the current context and pushes it.
func (s *scanner) open(c *ir.Node) {
	s.attach(c)
	s.stack = append(s.stack, c)
	s.resetToken()
	s.keySet = false
	s.key = ""
}

// attach places a finished node as a child of the innermost open
// container, under the pending key when the parent is an object. With no
// open container the node becomes the root.
func (s *scanner) attach(child *ir.Node) {
	if len(s.stack) == 0 {
		s.root = child
		return
	}
	s.stack[len(s.stack)-1].Add(s.key, child)
}

// commit applies the token-commit rule: a quoted token is always a string,
// a bare token is classified as null/number/bool. An object entry whose
// key is pending but whose value never accumulated flushes as null.
func (s *scanner) commit() error {
	defer func() {
		s.resetToken()
		s.keySet = false
		s.key = ""
	}()
	if !s.haveTok {
		if s.keySet {
			s.attach(ir.Null())
		}
		return nil
	}
	child, err := classify(s.tok.String(), s.quoted)
	if err != nil {
		return err
	}
	s.attach(child)
	return nil
}

func (s *scanner) resetToken() {
	s.tok.Reset()
	s.haveTok = false
	s.quoted = false
}

// escape handles the backslash pair starting at rs[i]. \/, \" and \\ emit
// the bare character, \uXXXX emits the code unit, and any other pair
// passes through unchanged. A high surrogate followed by a \uXXXX low
// surrogate combines into the single character the pair denotes; an
// unpaired surrogate becomes the replacement character.
func (s *scanner) escape(rs []rune, i int) int {
	if i+1 >= len(rs) {
		s.tok.WriteRune('\\')
		return i
	}
	c := rs[i+1]
	switch c {
	case '/', '"', '\\':
		s.tok.WriteRune(c)
		return i + 1
	case 'u':
		if i+5 < len(rs) {
			if u, err := strconv.ParseUint(string(rs[i+2:i+6]), 16, 32); err == nil {
				r := rune(u)
				if utf16.IsSurrogate(r) && i+11 < len(rs) && rs[i+6] == '\\' && rs[i+7] == 'u' {
					if u2, err := strconv.ParseUint(string(rs[i+8:i+12]), 16, 32); err == nil {
						if combined := utf16.DecodeRune(r, rune(u2)); combined != utf8.RuneError {
							s.tok.WriteRune(combined)
							return i + 11
						}
					}
				}
				s.tok.WriteRune(r)
				return i + 5
			}
		}
	}
	s.tok.WriteRune('\\')
	s.tok.WriteRune(c)
	return i + 1
}

// bare consumes the bare (unquoted) character at rs[i]. The literals true,
// false and null are matched exactly and fast-forwarded; any other token
// must start with a digit, sign, '.' or exponent character.
func (s *scanner) bare(rs []rune, i int) (int, error) {
	if !s.haveTok {
		switch rs[i] {
		case 't':
			return s.literal(rs, i, "true")
		case 'f':
			return s.literal(rs, i, "false")
		case 'n':
			return s.literal(rs, i, "null")
		}
		switch r := rs[i]; {
		case r >= '0' && r <= '9', r == '+', r == '-', r == '.', r == 'e', r == 'E':
		default:
			return 0, fmt.Errorf("%w: invalid bare token starting with %q at offset %d",
				ErrMalformedInput, rs[i], i)
		}
	}
	s.tok.WriteRune(rs[i])
	s.haveTok = true
	return i, nil
}

func (s *scanner) literal(rs []rune, i int, lit string) (int, error) {
	end := i + len(lit)
	if end > len(rs) || string(rs[i:end]) != lit {
		return 0, fmt.Errorf("%w: invalid bare token starting with %q at offset %d",
			ErrMalformedInput, rs[i], i)
	}
	s.tok.WriteString(lit)
	s.haveTok = true
	return end - 1, nil
}

// classify turns a committed token into a scalar node. Bare tokens are
// tried in fixed priority order: null, int32, int64, float32 (only for
// tokens of at most 7 characters), float64, bool. The raw token is kept as
// the node's canonical text so numbers round-trip bit for bit through
// text.
func classify(tok string, quoted bool) (*ir.Node, error) {
	if quoted {
		return ir.FromString(tok), nil
	}
	if tok == "null" {
		return ir.Null(), nil
	}
	if _, err := strconv.ParseInt(tok, 10, 32); err == nil {
		return ir.Scalar(ir.IntKind, tok), nil
	}
	if _, err := strconv.ParseInt(tok, 10, 64); err == nil {
		return ir.Scalar(ir.LongKind, tok), nil
	}
	if len(tok) <= 7 {
		if _, err := strconv.ParseFloat(tok, 32); err == nil {
			return ir.Scalar(ir.FloatKind, tok), nil
		}
	}
	if _, err := strconv.ParseFloat(tok, 64); err == nil {
		return ir.Scalar(ir.DoubleKind, tok), nil
	}
	if tok == "true" || tok == "false" {
		return ir.Scalar(ir.BoolKind, tok), nil
	}
	return nil, fmt.Errorf("%w: unclassifiable token %q", ErrMalformedInput, tok)
}
