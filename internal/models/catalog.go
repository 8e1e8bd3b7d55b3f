package models

// Category is the top-level menu classification.
type Category string

const (
	CategoryHamburguer      Category = "hamburguer"
	CategoryBebidas         Category = "bebidas"
	CategoryAcompanhamentos Category = "acompanhamentos"
	CategorySobremesas      Category = "sobremesas"
	CategoryCombos          Category = "combos"
)

func ValidCategory(c Category) bool {
	switch c {
	case CategoryHamburguer, CategoryBebidas, CategoryAcompanhamentos, CategorySobremesas, CategoryCombos:
		return true
	}
	return false
}

// Ingredient is the secondary classification used by catalog filters.
type Ingredient string

const (
	IngredientCarne       Ingredient = "carne"
	IngredientFrango      Ingredient = "frango"
	IngredientVegetariano Ingredient = "vegetariano"
	IngredientQueijo      Ingredient = "queijo"
	IngredientBacon       Ingredient = "bacon"
	IngredientAlface      Ingredient = "alface"
	IngredientTomate      Ingredient = "tomate"
)

type Specifications struct {
	Weight      string `json:"weight,omitempty"`
	Size        string `json:"size,omitempty"`
	Ingredients string `json:"ingredients,omitempty"`
	Allergen    string `json:"allergen,omitempty"`
}

// Product is immutable after catalog load. Orders copy snapshots of it,
// so later price changes never alter order history.
type Product struct {
	ID                 string         `json:"id"`
	Name               string         `json:"name"`
	Description        string         `json:"description"`
	PriceCents         int64          `json:"priceCents"`
	OriginalPriceCents *int64         `json:"originalPriceCents,omitempty"`
	Category           Category       `json:"category"`
	Ingredient         Ingredient     `json:"ingredient"`
	Image              string         `json:"image"`
	Images             []string       `json:"images"`
	Featured           bool           `json:"featured"`
	InStock            bool           `json:"inStock"`
	Specifications     Specifications `json:"specifications"`
}

// CartItem lives in the session cart store, not in the database. Product is
// a resolved snapshot taken when the item was added.
type CartItem struct {
	ID        string  `json:"id"`
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Product   Product `json:"product"`
}
