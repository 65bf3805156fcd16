// Package ir provides the in-memory representation for JSON documents.
//
// # Overview
//
// All documents (whether parsed from text, decoded from the wire format,
// or created programmatically) are represented as ir.Node trees. A Node is
// a tagged variant: its Kind field selects one of Null, String, Int, Long,
// Float, Double, Bool, Array or Object, and the remaining fields are
// populated according to the kind.
//
// # Node Structure
//
//   - Scalar kinds store their canonical text in Text. The canonical text
//     is culture-invariant ("." decimal separator) and is what the typed
//     accessors parse on every access.
//   - ArrayKind stores ordered children in Values.
//   - ObjectKind stores ordered keys in Keys, parallel to Values. Keys are
//     unique; inserting an existing key overwrites the value in place, and
//     inserting an empty key generates a synthetic unique key so the entry
//     is never dropped.
//
// Containers exclusively own their children: the tree has no cycles and no
// shared subtrees. Use Clone to duplicate a subtree.
//
// # Creating Nodes
//
// Use constructor functions to create nodes:
//
//	s := ir.FromString("hello")
//	i := ir.FromInt(42)
//	f := ir.FromFloat(3.5)
//	b := ir.FromBool(true)
//	arr := ir.NewArray()
//	obj := ir.NewObject()
//	obj.Add("key", s)
//
// # Typed Accessors
//
// The As* accessor family is total: it parses the canonical text and
// returns the type's zero value when the text does not parse as that type.
// The As*OK variants report the miss instead, and always report absent on
// NullKind. Accessors never fail, so optional fields can be probed without
// guarding every access.
//
// The Set* family overwrites the canonical text and retags the node to the
// corresponding scalar kind; this is how a null or string node is promoted
// to a typed scalar.
//
// # Traversal
//
// Children yields direct children in container order; DeepChildren yields
// the depth-first pre-order descendants. Both are lazy, finite and
// restartable. Visit provides callback-style traversal with pre and post
// hooks.
//
// # Equality
//
// == on *Node is pointer identity. Structural equality is provided
// separately by Compare, mostly for tests:
//
//	equal := ir.Compare(a, b) == 0
//
// # Thread Safety
//
// Node trees are not safe for concurrent mutation. Read-only traversal of
// a finished tree is safe.
//
// # Related Packages
//
//   - github.com/knot-format/go-knot/parse - parses JSON text into nodes
//   - github.com/knot-format/go-knot/encode - renders nodes as JSON text
//   - github.com/knot-format/go-knot/wire - binary codec for node trees
//   - github.com/knot-format/go-knot/gomap - populates Go structs from nodes
package ir
