package domain

// CategoryAll is the pseudo-category that matches every product.
const CategoryAll = "all"

// ProductCategories maps each category to the exact product names that belong
// to it. Membership is by exact name match against this table, not by a field
// on Product; a catalog name missing from every list simply never matches a
// category filter.
var ProductCategories = map[string][]string{
	"face":  {"Foundation", "Brush", "Primer", "Concealer", "Contour", "BB Foundation", "Bronzer", "Skin Perfector", "Tinted Moisturizer"},
	"lips":  {"Lipstick", "Floral Lip Gloss", "Lip Pencil", "Matte Lipstick"},
	"blush": {"Blush", "Powder Blush"},
	"eyes":  {"Eyeshadow", "Eyelash", "EyeLiner Pencil"},
	"brows": {"Eyebrow", "Brow Freeze Gel", "Clear Brow Mascara"},
}

// CategoryMembers returns the name list for a category, and whether the
// category exists. CategoryAll has no list; callers treat it as "no filter".
func CategoryMembers(category string) ([]string, bool) {
	if category == CategoryAll {
		return nil, true
	}
	names, ok := ProductCategories[category]
	return names, ok
}
