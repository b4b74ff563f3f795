// Package jsonld decodes and searches schema.org JSON-LD payloads.
//
// Payloads are decoded into Value, a tagged union that keeps object members
// in document order, so searches over arbitrary shapes are deterministic.
package jsonld

import (
	"bytes"
	"encoding/json"
)

// Kind identifies the type of a JSON value.
type Kind int

// Value kinds. The zero Value is Null.
const (
	Null Kind = iota
	Bool
	Number
	String
	Array
	Object
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case Null:
		return "null"
	case Bool:
		return "bool"
	case Number:
		return "number"
	case String:
		return "string"
	case Array:
		return "array"
	case Object:
		return "object"
	}
	return "unknown"
}

// Member is a single key/value pair of an object.
type Member struct {
	Key   string
	Value Value
}

// Value is an immutable JSON value.
type Value struct {
	kind    Kind
	boolean bool
	text    string // string content, or the literal of a number
	items   []Value
	members []Member
}

// StringValue returns a string value.
func StringValue(s string) Value { return Value{kind: String, text: s} }

// NumberValue returns a number value holding the given literal.
func NumberValue(literal string) Value { return Value{kind: Number, text: literal} }

// BoolValue returns a boolean value.
func BoolValue(b bool) Value { return Value{kind: Bool, boolean: b} }

// ArrayOf returns an array value.
func ArrayOf(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{kind: Array, items: items}
}

// ObjectOf returns an object value with members in the given order.
func ObjectOf(members ...Member) Value {
	if members == nil {
		members = []Member{}
	}
	return Value{kind: Object, members: members}
}

// EmptyObject returns an object without members.
func EmptyObject() Value { return ObjectOf() }

// Pair is shorthand for building a Member.
func Pair(key string, v Value) Member { return Member{Key: key, Value: v} }

// Kind returns the kind of the value.
func (v Value) Kind() Kind { return v.kind }

// Text returns the content of a string value.
func (v Value) Text() (string, bool) {
	if v.kind != String {
		return "", false
	}
	return v.text, true
}

// Literal returns the literal text of a number value.
func (v Value) Literal() (string, bool) {
	if v.kind != Number {
		return "", false
	}
	return v.text, true
}

// Truth returns the content of a boolean value.
func (v Value) Truth() (bool, bool) {
	if v.kind != Bool {
		return false, false
	}
	return v.boolean, true
}

// Items returns the elements of an array value, or nil for other kinds.
func (v Value) Items() []Value {
	if v.kind != Array {
		return nil
	}
	return v.items
}

// Members returns the members of an object value in document order,
// or nil for other kinds.
func (v Value) Members() []Member {
	if v.kind != Object {
		return nil
	}
	return v.members
}

// Len returns the number of elements or members of a container, 0 otherwise.
func (v Value) Len() int {
	switch v.kind {
	case Array:
		return len(v.items)
	case Object:
		return len(v.members)
	}
	return 0
}

// Get returns the first member of an object with the given key.
func (v Value) Get(key string) (Value, bool) {
	if v.kind != Object {
		return Value{}, false
	}
	for _, m := range v.members {
		if m.Key == key {
			return m.Value, true
		}
	}
	return Value{}, false
}

// MarshalJSON encodes the value, preserving member order.
func (v Value) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	if err := v.encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func (v Value) encode(buf *bytes.Buffer) error {
	switch v.kind {
	case Null:
		buf.WriteString("null")
	case Bool:
		if v.boolean {
			buf.WriteString("true")
		} else {
			buf.WriteString("false")
		}
	case Number:
		buf.WriteString(v.text)
	case String:
		b, err := json.Marshal(v.text)
		if err != nil {
			return err
		}
		buf.Write(b)
	case Array:
		buf.WriteByte('[')
		for i, item := range v.items {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := item.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case Object:
		buf.WriteByte('{')
		for i, m := range v.members {
			if i > 0 {
				buf.WriteByte(',')
			}
			k, err := json.Marshal(m.Key)
			if err != nil {
				return err
			}
			buf.Write(k)
			buf.WriteByte(':')
			if err := m.Value.encode(buf); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	}
	return nil
}

// encodedLen returns the length of the encoded value.
func (v Value) encodedLen() int {
	b, err := v.MarshalJSON()
	if err != nil {
		return 0
	}
	return len(b)
}
