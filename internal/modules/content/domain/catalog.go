package domain

type Category string

const (
	CategoryWorkQuotes  Category = "work_quotes"
	CategoryBreakQuotes Category = "break_quotes"
	CategoryStretches   Category = "stretches"
	CategoryFunFacts    Category = "fun_facts"
)

var Categories = []Category{CategoryWorkQuotes, CategoryBreakQuotes, CategoryStretches, CategoryFunFacts}

// Picker chooses an index in [0, n).
type Picker interface {
	Intn(n int) int
}

// Catalog maps a category to its ordered entries.
type Catalog map[Category][]string

// DefaultCatalog returns a fresh copy of the built-in tables.
func DefaultCatalog() Catalog {
	catalog := make(Catalog, len(defaultEntries))
	for category, entries := range defaultEntries {
		catalog[category] = append([]string(nil), entries...)
	}
	return catalog
}

// Override replaces a category when entries is non-empty; an empty list
// keeps what is already there.
func (c Catalog) Override(category Category, entries []string) {
	if len(entries) == 0 {
		return
	}
	c[category] = append([]string(nil), entries...)
}

// Pick returns a random entry of category, or "" when it has none.
func (c Catalog) Pick(category Category, picker Picker) string {
	entries := c[category]
	if len(entries) == 0 {
		return ""
	}
	return entries[picker.Intn(len(entries))]
}

// Entries returns a copy of the entries of category.
func (c Catalog) Entries(category Category) []string {
	return append([]string(nil), c[category]...)
}
