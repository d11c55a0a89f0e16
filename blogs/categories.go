package blogs

import (
	"slices"
	"strings"
)

// categories is the fixed set a blog may be filed under.
var categories = []string{
	"technology",
	"programming",
	"web-development",
	"mobile-development",
	"data-science",
	"artificial-intelligence",
	"machine-learning",
	"cybersecurity",
	"cloud-computing",
	"devops",
	"design",
	"ui-ux",
	"business",
	"entrepreneurship",
	"finance",
	"marketing",
	"productivity",
	"career",
	"education",
	"tutorials",
	"reviews",
	"news",
	"opinion",
	"lifestyle",
	"health",
	"travel",
	"food",
	"entertainment",
	"sports",
	"science",
	"others",
}

func AllCategories() []string {
	return slices.Clone(categories)
}

// ValidCategory reports whether category is known. No category is valid.
func ValidCategory(category string) bool {
	return category == "" || slices.Contains(categories, strings.ToLower(category))
}
