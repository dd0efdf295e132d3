package reconcile

// DedupeNewest keeps, for every key, the record with the highest timestamp.
// Records without a key are always kept. The relative order of the kept
// records is the order of their first appearance.
func DedupeNewest[T any](items []T, key func(T) string, updated func(T) int64) []T {
	best := make(map[string]int, len(items))
	out := make([]T, 0, len(items))
	for _, item := range items {
		k := key(item)
		if k == "" {
			out = append(out, item)
			continue
		}
		i, ok := best[k]
		if !ok {
			best[k] = len(out)
			out = append(out, item)
			continue
		}
		if updated(item) > updated(out[i]) {
			out[i] = item
		}
	}
	return out
}
