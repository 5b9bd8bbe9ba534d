package document

// Merge deep-merges b onto a and returns the result. Where both sides hold
// an object under the same key the objects are merged key by key; any other
// pairing, arrays included, takes b's value whole. Neither input is
// modified.
func Merge(a, b Document) Document {
	return Document(mergeObjects(a, b))
}

func mergeObjects(a, b map[string]any) map[string]any {
	out := make(map[string]any, len(a)+len(b))
	for k, v := range a {
		out[k] = v
	}
	for k, bv := range b {
		if av, ok := out[k]; ok {
			aObj, aIsObj := Object(av)
			bObj, bIsObj := Object(bv)
			if aIsObj && bIsObj {
				out[k] = mergeObjects(aObj, bObj)
				continue
			}
		}
		out[k] = bv
	}
	return out
}
