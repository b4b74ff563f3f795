package jsonld

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// Decode parses a JSON document into a Value. Object members keep their
// document order. Anything after the first value is an error.
func Decode(raw string) (Value, error) {
	dec := json.NewDecoder(strings.NewReader(raw))
	dec.UseNumber()

	v, err := decodeValue(dec)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return Value{}, errors.New("decoding JSON-LD: empty payload")
		}
		return Value{}, fmt.Errorf("decoding JSON-LD: %w", err)
	}

	if _, err := dec.Token(); err != io.EOF {
		return Value{}, errors.New("decoding JSON-LD: trailing data after payload")
	}
	return v, nil
}

// DecodeLenient is like Decode but retries once on a repaired copy of the
// input when strict decoding fails. Repair handles the usual breakage in
// hand-written blocks: trailing commas, single quotes, unquoted keys,
// missing closing brackets.
func DecodeLenient(raw string) (Value, error) {
	v, err := Decode(raw)
	if err == nil {
		return v, nil
	}

	repaired, repairErr := jsonrepair.JSONRepair(raw)
	if repairErr != nil {
		return Value{}, fmt.Errorf("%w (repair failed: %v)", err, repairErr)
	}
	return Decode(repaired)
}

func decodeValue(dec *json.Decoder) (Value, error) {
	tok, err := dec.Token()
	if err != nil {
		return Value{}, err
	}

	switch t := tok.(type) {
	case json.Delim:
		switch t {
		case '{':
			return decodeObject(dec)
		case '[':
			return decodeArray(dec)
		}
		return Value{}, fmt.Errorf("unexpected delimiter %q", rune(t))
	case string:
		return StringValue(t), nil
	case json.Number:
		return NumberValue(t.String()), nil
	case bool:
		return BoolValue(t), nil
	case nil:
		return Value{}, nil
	}
	return Value{}, fmt.Errorf("unexpected token %v", tok)
}

func decodeObject(dec *json.Decoder) (Value, error) {
	members := []Member{}
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return Value{}, err
		}
		key, ok := tok.(string)
		if !ok {
			return Value{}, fmt.Errorf("object key is %T, not string", tok)
		}
		v, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		members = append(members, Member{Key: key, Value: v})
	}
	// Consume the closing brace.
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return Value{kind: Object, members: members}, nil
}

func decodeArray(dec *json.Decoder) (Value, error) {
	items := []Value{}
	for dec.More() {
		v, err := decodeValue(dec)
		if err != nil {
			return Value{}, err
		}
		items = append(items, v)
	}
	// Consume the closing bracket.
	if _, err := dec.Token(); err != nil {
		return Value{}, err
	}
	return Value{kind: Array, items: items}, nil
}

// Primary returns the element of an array payload with the longest encoded
// form, the first one on ties. Pages that embed a list of entities usually
// put the recipe in the richest one. Non-array values are returned as-is.
func Primary(v Value) Value {
	if v.kind != Array || len(v.items) == 0 {
		return v
	}
	best, bestLen := v.items[0], v.items[0].encodedLen()
	for _, item := range v.items[1:] {
		if n := item.encodedLen(); n > bestLen {
			best, bestLen = item, n
		}
	}
	return best
}
