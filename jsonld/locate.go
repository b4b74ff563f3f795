package jsonld

// Locate searches node depth-first for a member named key and returns the
// first value found.
//
// Arrays are searched element by element in order. In an object, a member
// named key at the top level wins over anything nested in its siblings;
// otherwise member values are searched in document order. Scalars,
// strings included, are never searched.
func Locate(node Value, key string) (Value, bool) {
	switch node.kind {
	case Array:
		for _, item := range node.items {
			if v, ok := Locate(item, key); ok {
				return v, true
			}
		}
	case Object:
		if v, ok := node.Get(key); ok {
			return v, true
		}
		for _, m := range node.members {
			if v, ok := Locate(m.Value, key); ok {
				return v, true
			}
		}
	case Null, Bool, Number, String:
	}
	return Value{}, false
}
