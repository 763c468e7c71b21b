package base

import "bytes"

// StringNode is a node identified by a string, such as a "host:port" address.
type StringNode string

var _ Node[StringNode] = StringNode("")

// Bytes returns the raw bytes of the string.
func (n StringNode) Bytes() []byte {
	return []byte(n)
}

// Clone returns the node itself: strings are immutable.
func (n StringNode) Clone() StringNode {
	return n
}

// String implements fmt.Stringer.
func (n StringNode) String() string {
	return string(n)
}

// BytesNode is a node identified by an opaque byte sequence.
type BytesNode []byte

var _ Node[BytesNode] = BytesNode(nil)

// Bytes returns the underlying slice. Callers must not modify it.
func (n BytesNode) Bytes() []byte {
	return n
}

// Clone returns a deep copy of the node.
func (n BytesNode) Clone() BytesNode {
	return bytes.Clone(n)
}

// Equal reports whether both nodes have the same encoding.
func (n BytesNode) Equal(other BytesNode) bool {
	return bytes.Equal(n, other)
}
