package resolver

import "maps"

// MergeNodeSelectors merges the global and service node selector maps.
//
// Keys present in both maps must carry identical values; a disagreement
// returns a *ConflictError naming the key and both values. Keys present in
// only one map pass through unchanged. The inputs are never mutated; the
// result is always a freshly allocated map.
//
// Disjoint keys merging silently while overlapping keys must agree is
// deliberate: two independent authorities may each add constraints, but
// neither may silently rewrite the other's.
func MergeNodeSelectors(global, service map[string]string) (map[string]string, error) {
	merged := make(map[string]string, len(global)+len(service))
	maps.Copy(merged, global)

	for k, v := range service {
		if existing, ok := merged[k]; ok && existing != v {
			return nil, &ConflictError{
				Key:          k,
				GlobalValue:  existing,
				ServiceValue: v,
			}
		}
		merged[k] = v
	}

	return merged, nil
}
