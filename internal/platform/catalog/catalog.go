// Package catalog holds the static item catalog: the category -> item type ->
// allowed units mapping offered by input forms. It is loaded once at process
// start and read-only thereafter. The catalog constrains new transactions only;
// stock ledger rows for retired entries stay readable.
package catalog

import (
	"fmt"
	"os"
	"sort"

	"gopkg.in/yaml.v3"

	"github.com/sunnytraders/inventory_pro_app/internal/apperrors"
)

// Catalog maps category name -> item type name -> allowed unit names.
type Catalog struct {
	Categories map[string]map[string][]string `yaml:"categories" json:"categories"`

	// ExpenseTypes enumerates the expense categories offered by the expense form.
	ExpenseTypes []string `yaml:"expenseTypes" json:"expenseTypes"`
}

// Default returns the built-in catalog used when no catalog file is configured.
func Default() *Catalog {
	return &Catalog{
		Categories: map[string]map[string][]string{
			"Cement": {
				"JK Strong":   {"bag"},
				"JK Super":    {"bag"},
				"Birla Super": {"bag"},
				"UltraTech":   {"bag"},
			},
			"Stone/Crusher": {
				"Khadi":        {"pati", "brass"},
				"Crush Sand":   {"pati", "brass"},
				"Plaster Sand": {"pati", "brass"},
			},
			"Bricks": {
				`Cement 4"`: {"pcs"},
				`Cement 6"`: {"pcs"},
				"Red Brick": {"pcs"},
			},
			"AAC Block": {
				`AAC 4"`: {"pcs", "cbm"},
				`AAC 6"`: {"pcs", "cbm"},
			},
			"Chemicals": {
				"Tile Chemical": {"bag"},
				"Waterproofing": {"litre", "kg"},
			},
		},
		ExpenseTypes: []string{"Staff Salary", "Diesel", "Maintenance", "Shop Rent", "Other"},
	}
}

// Load reads the catalog from a YAML file. An empty path returns the built-in
// default so the process starts without any configuration files present.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read catalog file %s: %w", path, err)
	}
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("failed to parse catalog file %s: %w", path, err)
	}
	if len(c.Categories) == 0 {
		return nil, fmt.Errorf("catalog file %s defines no categories", path)
	}
	if len(c.ExpenseTypes) == 0 {
		c.ExpenseTypes = Default().ExpenseTypes
	}
	return &c, nil
}

// Validate reports whether the (category, itemType, unit) triple is currently legal.
func (c *Catalog) Validate(category, itemType, unit string) error {
	items, ok := c.Categories[category]
	if !ok {
		return fmt.Errorf("%w: unknown category %q", apperrors.ErrValidation, category)
	}
	units, ok := items[itemType]
	if !ok {
		return fmt.Errorf("%w: unknown item type %q in category %q", apperrors.ErrValidation, itemType, category)
	}
	for _, u := range units {
		if u == unit {
			return nil
		}
	}
	return fmt.Errorf("%w: unit %q not allowed for %s/%s", apperrors.ErrValidation, unit, category, itemType)
}

// CategoryNames returns the category names in sorted order for form population.
func (c *Catalog) CategoryNames() []string {
	names := make([]string, 0, len(c.Categories))
	for name := range c.Categories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
