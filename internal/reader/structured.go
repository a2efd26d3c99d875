package reader

import (
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strconv"
	"strings"

	"menuflow/internal/domain"
)

type structuredReader struct{}

func (r *structuredReader) Format() domain.MenuFormat { return domain.FormatStructured }

// structuredColumns is the synthetic header emitted before the flattened
// rows so that downstream extraction maps columns deterministically.
var structuredColumns = []string{"name", "description", "price", "category"}

// Read flattens a structured JSON tree into columnar records. Accepted
// shapes: a top-level array of item objects, an object with an "items" or
// "menu" array, or an object/array grouping items under category keys.
func (r *structuredReader) Read(data []byte) ([]domain.RawRecord, error) {
	var root interface{}
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, domain.NewFormatError(domain.FormatStructured, err)
	}

	records := []domain.RawRecord{{Fields: structuredColumns, Line: 0}}
	line := 0
	appendItem := func(item map[string]interface{}, category string) {
		line++
		records = append(records, domain.RawRecord{Fields: flattenItem(item, category), Line: line})
	}

	if err := walkStructured(root, "", appendItem); err != nil {
		return nil, domain.NewFormatError(domain.FormatStructured, err)
	}
	if len(records) == 1 {
		return nil, domain.NewFormatError(domain.FormatStructured, errors.New("no item objects found"))
	}
	return records, nil
}

// walkStructured descends the tree handing item objects to emit. An object
// is an item when it carries a name-like key; otherwise its entries are
// treated as category groupings.
func walkStructured(node interface{}, category string, emit func(map[string]interface{}, string)) error {
	switch v := node.(type) {
	case []interface{}:
		for _, el := range v {
			if err := walkStructured(el, category, emit); err != nil {
				return err
			}
		}
		return nil
	case map[string]interface{}:
		if hasNameKey(v) && !isGroupOnly(v) {
			emit(v, category)
			return nil
		}
		// {"name": "Starters", "items": [...]} names a category, not an item
		if g := stringField(v, "name", "title"); g != "" && isGroupOnly(v) {
			category = g
		}
		for _, key := range sortedKeys(v) {
			child := v[key]
			childCategory := category
			switch child.(type) {
			case []interface{}, map[string]interface{}:
				if !isContainerKey(key) {
					childCategory = key
				}
				if err := walkStructured(child, childCategory, emit); err != nil {
					return err
				}
			}
		}
		return nil
	default:
		return fmt.Errorf("unexpected %T at top of structured document", node)
	}
}

func hasNameKey(obj map[string]interface{}) bool {
	for _, key := range []string{"name", "title", "item"} {
		if s, ok := obj[key].(string); ok && strings.TrimSpace(s) != "" {
			return true
		}
	}
	return false
}

// isGroupOnly detects shapes like {"name": "Starters", "items": [...]}
// where the object names a category rather than an item.
func isGroupOnly(obj map[string]interface{}) bool {
	for _, key := range []string{"items", "menu", "entries"} {
		if _, ok := obj[key].([]interface{}); ok {
			return true
		}
	}
	return false
}

func isContainerKey(key string) bool {
	switch strings.ToLower(key) {
	case "items", "menu", "entries", "data", "sections", "categories":
		return true
	}
	return false
}

func flattenItem(item map[string]interface{}, category string) []string {
	name := stringField(item, "name", "title", "item")
	desc := stringField(item, "description", "desc", "details")
	price := priceField(item)
	if c := stringField(item, "category", "section", "group"); c != "" {
		category = c
	}
	return []string{name, desc, price, category}
}

func stringField(obj map[string]interface{}, keys ...string) string {
	for _, key := range keys {
		if s, ok := obj[key].(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func priceField(obj map[string]interface{}) string {
	for _, key := range []string{"price", "cost", "amount"} {
		switch v := obj[key].(type) {
		case float64:
			return strconv.FormatFloat(v, 'f', 2, 64)
		case string:
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func sortedKeys(obj map[string]interface{}) []string {
	keys := make([]string, 0, len(obj))
	for key := range obj {
		keys = append(keys, key)
	}
	// map iteration order is random; sort for a deterministic pipeline
	sort.Strings(keys)
	return keys
}
