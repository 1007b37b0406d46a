package mergepatch

// TopLevelKeys returns the keys of v in order when v is an object, or nil.
func TopLevelKeys(v Value) []string {
	obj, ok := v.(*Object)
	if !ok {
		return nil
	}
	keys := make([]string, len(obj.keys))
	copy(keys, obj.keys)
	return keys
}

// KeyPaths returns the dot-joined paths of every key in v, parents before
// their children. Arrays are leaves.
//
//	{"a": {"b": 1}, "c": [ {"d": 2} ]}  =>  a, a.b, c
func KeyPaths(v Value) []string {
	var paths []string
	collectKeyPaths(v, "", &paths)
	return paths
}

func collectKeyPaths(v Value, prefix string, paths *[]string) {
	obj, ok := v.(*Object)
	if !ok {
		return
	}
	for _, k := range obj.keys {
		p := joinKey(prefix, k)
		*paths = append(*paths, p)
		collectKeyPaths(obj.values[k], p, paths)
	}
}

// MissingKeys returns the top-level keys of override that base lacks.
// The result is nil unless both values are objects.
func MissingKeys(base, override Value) []string {
	b, ok := base.(*Object)
	if !ok {
		return nil
	}
	o, ok := override.(*Object)
	if !ok {
		return nil
	}
	var missing []string
	for _, k := range o.keys {
		if !b.Has(k) {
			missing = append(missing, k)
		}
	}
	return missing
}

// MissingKeyPaths returns dot paths of keys in override that base lacks,
// descending only where both sides hold objects. A missing parent is reported
// once, without its children.
func MissingKeyPaths(base, override Value) []string {
	var missing []string
	collectMissing(base, override, "", &missing)
	return missing
}

func collectMissing(base, override Value, prefix string, missing *[]string) {
	b, ok := base.(*Object)
	if !ok {
		return
	}
	o, ok := override.(*Object)
	if !ok {
		return
	}
	for _, k := range o.keys {
		p := joinKey(prefix, k)
		bv, present := b.values[k]
		if !present {
			*missing = append(*missing, p)
			continue
		}
		collectMissing(bv, o.values[k], p, missing)
	}
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}
