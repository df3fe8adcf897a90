// Package file loads the menu catalog from a YAML or JSON document.
//
// Both a top-level list of items and a document with an "items" key are accepted:
//
//	items:
//	  - id: beer_guinness_pint
//	    name: Guinness
//	    price_pence: 500
//	    tags: [beer, pint, guinness]
package file

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aretw0/taproom/pkg/adapters/memory"
	"github.com/aretw0/taproom/pkg/domain"
	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Format of a menu document.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// FormatFromPath picks the format from the file extension. Anything but ".json" is YAML.
func FormatFromPath(path string) Format {
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		return FormatJSON
	}
	return FormatYAML
}

// LoadCatalog reads and validates the menu at path.
func LoadCatalog(path string) (*memory.Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read menu file: %w", err)
	}
	items, err := ParseMenu(data, FormatFromPath(path))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return memory.NewCatalog(items)
}

// ParseMenu decodes menu items. Unknown item fields are rejected so typos such as "price"
// do not silently produce free items.
func ParseMenu(data []byte, format Format) ([]domain.MenuItem, error) {
	var raw any
	switch format {
	case FormatJSON:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("failed to parse menu json: %w", err)
		}
	default:
		if err := yaml.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("failed to parse menu yaml: %w", err)
		}
	}

	list, err := itemList(raw)
	if err != nil {
		return nil, err
	}

	var items []domain.MenuItem
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &items,
		ErrorUnused: true,
	})
	if err != nil {
		return nil, err
	}
	if err := dec.Decode(list); err != nil {
		return nil, fmt.Errorf("failed to decode menu items: %w", err)
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("%w: menu has no items", domain.ErrInvalidMenu)
	}
	return items, nil
}

func itemList(raw any) ([]any, error) {
	switch v := raw.(type) {
	case []any:
		return v, nil
	case map[string]any:
		list, ok := v["items"].([]any)
		if !ok {
			return nil, fmt.Errorf("%w: expected an \"items\" list", domain.ErrInvalidMenu)
		}
		return list, nil
	case nil:
		return nil, fmt.Errorf("%w: empty document", domain.ErrInvalidMenu)
	default:
		return nil, fmt.Errorf("%w: unexpected document type %T", domain.ErrInvalidMenu, raw)
	}
}
