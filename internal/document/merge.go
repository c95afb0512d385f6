package document

// Merge layers documents from lowest to highest priority and returns a new
// tree. Nil layers are skipped.
//
// Mappings are merged key by key at every depth. Any other combination,
// including two sequences, is resolved by taking the higher layer wholesale.
// The inputs are never modified.
func Merge(layers ...*Node) *Node {
	var out *Node
	for _, layer := range layers {
		if layer == nil {
			continue
		}
		out = mergeInto(out, layer)
	}
	return out
}

func mergeInto(dst, src *Node) *Node {
	if dst == nil || dst.kind != KindMapping || src.kind != KindMapping {
		return src.Clone()
	}

	for _, key := range src.keys {
		existing, _ := dst.Get(key)
		dst.Set(key, mergeInto(existing, src.fields[key]))
	}
	return dst
}
