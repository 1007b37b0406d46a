package mergepatch

// Apply merges patch into target following RFC 7396 and returns the result.
//
// A patch that is not an object replaces the target. An object patch is
// applied to a copy of the target when the target is an object, and to an
// empty object otherwise. For each patch member: Null removes the key, an
// object is merged recursively when the existing value is also an object,
// and anything else, including an object landing on a missing or non-object
// value, replaces the existing value as is. Arrays are never merged
// element-wise.
//
// Kept and updated keys retain the target's order; new keys follow in patch
// order. Neither input is modified. A nil target is treated as absent.
func Apply(target, patch Value) Value {
	p, ok := patch.(*Object)
	if !ok {
		return patch
	}

	var result *Object
	if t, ok := target.(*Object); ok {
		result = t.Clone()
	} else {
		result = NewObject()
	}

	for _, key := range p.keys {
		switch pv := p.values[key].(type) {
		case Null:
			result.Delete(key)
		case *Object:
			if existing, ok := result.Get(key); ok {
				if eo, ok := existing.(*Object); ok {
					result.Set(key, Apply(eo, pv))
					continue
				}
			}
			result.Set(key, pv)
		default:
			result.Set(key, pv)
		}
	}
	return result
}
