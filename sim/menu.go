package sim

import (
	"bytes"
	"fmt"
	"math/rand"
	"os"

	"gopkg.in/yaml.v3"
)

// ItemClass partitions menu items by which station prepares them.
// Drinks go to the barista, food to the cook; "other" items (extras,
// packaged goods) need no preparation beyond the register.
type ItemClass int

const (
	ClassDrink ItemClass = iota
	ClassFood
	ClassOther
)

var (
	drinkCategoryIDs = map[string]bool{"beverages": true, "coffee": true}
	otherCategoryIDs = map[string]bool{"extras": true}
)

// ClassOf returns the preparation class for a category ID.
// Any category that is neither drink-like nor an extras bucket counts as food.
func ClassOf(categoryID string) ItemClass {
	switch {
	case drinkCategoryIDs[categoryID]:
		return ClassDrink
	case otherCategoryIDs[categoryID]:
		return ClassOther
	default:
		return ClassFood
	}
}

// MenuItem is a single sellable item. Prices are integer currency units;
// the core never does floating-point money arithmetic.
type MenuItem struct {
	ID         string `yaml:"id"`
	Name       string `yaml:"name"`
	Price      int64  `yaml:"price"`
	CategoryID string `yaml:"-"`
}

// Category groups items under a category ID. Items inherit the category ID
// when the catalog is built.
type Category struct {
	ID    string     `yaml:"id"`
	Items []MenuItem `yaml:"items"`
}

// Catalog is the read-only menu shared by all simulated days.
// It is never mutated during simulation.
type Catalog struct {
	Categories []Category `yaml:"categories"`
}

// stamp copies each category's ID onto its items. Called once after load.
func (c *Catalog) stamp() {
	for i := range c.Categories {
		for j := range c.Categories[i].Items {
			c.Categories[i].Items[j].CategoryID = c.Categories[i].ID
		}
	}
}

// DrinkCategories returns the categories whose items the barista prepares.
func (c *Catalog) DrinkCategories() []Category {
	var out []Category
	for _, cat := range c.Categories {
		if drinkCategoryIDs[cat.ID] {
			out = append(out, cat)
		}
	}
	return out
}

// CategoriesIn returns the catalog categories whose ID appears in ids,
// skipping categories with no items. May return an empty slice; callers
// treat that as "skip this selection step", never an error.
func (c *Catalog) CategoriesIn(ids ...string) []Category {
	want := make(map[string]bool, len(ids))
	for _, id := range ids {
		want[id] = true
	}
	var out []Category
	for _, cat := range c.Categories {
		if want[cat.ID] && len(cat.Items) > 0 {
			out = append(out, cat)
		}
	}
	return out
}

// PickItem selects uniformly among the given categories, then uniformly
// among the chosen category's items. Returns false if nothing is eligible.
func PickItem(rng *rand.Rand, cats []Category) (MenuItem, bool) {
	var eligible []Category
	for _, cat := range cats {
		if len(cat.Items) > 0 {
			eligible = append(eligible, cat)
		}
	}
	if len(eligible) == 0 {
		return MenuItem{}, false
	}
	cat := eligible[rng.Intn(len(eligible))]
	return cat.Items[rng.Intn(len(cat.Items))], true
}

// LoadCatalog reads and parses a YAML menu file.
// Uses strict parsing: unrecognized keys (typos) are rejected.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading menu file: %w", err)
	}
	var cat Catalog
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cat); err != nil {
		return nil, fmt.Errorf("parsing menu file: %w", err)
	}
	if len(cat.Categories) == 0 {
		return nil, fmt.Errorf("menu file %s has no categories", path)
	}
	cat.stamp()
	return &cat, nil
}

// FallbackCatalog returns the built-in minimal menu used when loading the
// real menu fails, so a simulation can always proceed.
func FallbackCatalog() *Catalog {
	cat := &Catalog{
		Categories: []Category{
			{ID: "coffee", Items: []MenuItem{
				{ID: "espresso", Name: "Espresso", Price: 35},
				{ID: "latte", Name: "Latte", Price: 55},
			}},
			{ID: "food", Items: []MenuItem{
				{ID: "bowl", Name: "Bowl", Price: 120},
				{ID: "sandwich", Name: "Sandwich", Price: 90},
			}},
		},
	}
	cat.stamp()
	return cat
}
