package repo

// ProductFilter narrows catalog listings. Name is a case-insensitive
// substring match; InStock restricts to products with quantity > 0.
// Results are always ordered by name ascending.
type ProductFilter struct {
	Name    string
	InStock bool
}
