package parser

import (
	"encoding/json"
	"log"
	"strings"

	"lexora/internal/domain"
)

const (
	minEntityLen           = 2
	maxEntitiesPerCategory = 20
)

// ParseEntities turns a raw model response into an entity map keyed by the
// closed entity-category vocabulary. It never fails; unparseable input yields
// an empty map.
func ParseEntities(raw string) domain.EntityMap {
	categories := make([]string, 0, len(domain.EntityCategories))
	for _, c := range domain.AllEntityCategories() {
		categories = append(categories, string(c))
	}

	parsed := parseStringListMap(raw, categories)

	entities := domain.EntityMap{}
	for category, values := range parsed {
		entities[domain.EntityCategory(category)] = values
	}
	return entities
}

// ParseRelationships parses the relationship stage's response using the same
// map grammar over the relationship vocabulary.
func ParseRelationships(raw string) domain.RelationshipMap {
	categories := make([]string, 0, 4)
	for _, c := range domain.AllRelationshipCategories() {
		categories = append(categories, string(c))
	}

	parsed := parseStringListMap(raw, categories)

	rels := domain.RelationshipMap{}
	for category, values := range parsed {
		rels[domain.RelationshipCategory(category)] = values
	}
	return rels
}

// parseStringListMap parses a {"CATEGORY": ["a","b"]} response restricted to
// the given category names. Strict JSON first, then a bullet-list heuristic.
// Values are trimmed, deduplicated case-sensitively, and capped per category.
func parseStringListMap(raw string, categories []string) map[string][]string {
	known := make(map[string]bool, len(categories))
	for _, c := range categories {
		known[c] = true
	}

	jsonStr, found := outermostSlice(raw, '{', '}')
	if !found {
		jsonStr = raw
	}

	var parsed map[string]json.RawMessage
	if err := json.Unmarshal([]byte(jsonStr), &parsed); err != nil {
		log.Printf("parser.parseStringListMap: structured parse failed, using fallback: %v", err)
		return fallbackStringListMap(raw, categories)
	}

	result := map[string][]string{}
	for category, rawList := range parsed {
		category = strings.ToUpper(strings.TrimSpace(category))
		if !known[category] {
			continue
		}
		var list []string
		if err := json.Unmarshal(rawList, &list); err != nil {
			continue
		}
		if clean := cleanStringList(list); len(clean) > 0 {
			result[category] = clean
		}
	}
	return result
}

// cleanStringList trims, drops short strings, removes case-sensitive
// duplicates preserving first-seen order, and caps the list.
func cleanStringList(values []string) []string {
	seen := make(map[string]bool, len(values))
	var clean []string
	for _, v := range values {
		v = strings.TrimSpace(v)
		if len(v) < minEntityLen || seen[v] {
			continue
		}
		seen[v] = true
		clean = append(clean, v)
		if len(clean) == maxEntitiesPerCategory {
			break
		}
	}
	return clean
}

// fallbackStringListMap scans for category heading lines and collects the
// bulleted or numbered entries beneath them.
func fallbackStringListMap(raw string, categories []string) map[string][]string {
	collected := map[string][]string{}
	current := ""

	for _, line := range strings.Split(raw, "\n") {
		line = strings.TrimSpace(line)

		for _, category := range categories {
			if strings.Contains(strings.ToUpper(line), category) && strings.Contains(line, ":") {
				current = category
				break
			}
		}

		if current == "" || !isListEntry(line) {
			continue
		}
		entry := strings.TrimSpace(strings.TrimLeft(line, "-*0123456789. "))
		if len(entry) >= minEntityLen {
			collected[current] = append(collected[current], entry)
		}
	}

	result := map[string][]string{}
	for category, values := range collected {
		if clean := cleanStringList(values); len(clean) > 0 {
			result[category] = clean
		}
	}
	return result
}

// isListEntry reports whether a line looks like a bullet or numbered item.
func isListEntry(line string) bool {
	if line == "" {
		return false
	}
	if strings.HasPrefix(line, "-") || strings.HasPrefix(line, "*") || strings.HasPrefix(line, "•") {
		return true
	}
	return line[0] >= '0' && line[0] <= '9' && strings.Contains(line, ".")
}
