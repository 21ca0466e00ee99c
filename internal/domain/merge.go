package domain

import "calpages/internal/domain/entities"

// MergeEventTypes folds the sources into one list keyed by event type id.
// The first occurrence of an id fixes its position; a later occurrence
// replaces the record there, every field included, nil ones too.
func MergeEventTypes(sources ...[]entities.EventType) []entities.EventType {
	index := make(map[uint]int)
	var out []entities.EventType
	for _, src := range sources {
		for _, et := range src {
			if i, ok := index[et.ID]; ok {
				out[i] = et
				continue
			}
			index[et.ID] = len(out)
			out = append(out, et)
		}
	}
	return out
}
