package recommend

import (
	"keshomarket/internal/catalog"
)

// Resolve maps extracted identifiers to products from the given snapshot,
// preserving first-seen order. Identifiers with no match are dropped
// silently: the catalog may have changed between prompt construction and
// reply. An empty result is returned as nil so messages can omit the field.
func Resolve(ids []string, snapshot []catalog.Product) []catalog.Product {
	if len(ids) == 0 || len(snapshot) == 0 {
		return nil
	}

	byID := make(map[string]catalog.Product, len(snapshot))
	for _, p := range snapshot {
		byID[p.ID] = p
	}

	var resolved []catalog.Product
	for _, id := range ids {
		if p, ok := byID[id]; ok {
			resolved = append(resolved, p)
		}
	}
	return resolved
}
