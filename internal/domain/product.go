package domain

// Category is one of the fixed tags the storefront API assigns to products.
type Category string

const (
	CategorySoftSkill  Category = "софт-скил"
	CategoryHardSkill  Category = "хард-скил"
	CategoryOther      Category = "другое"
	CategoryAdditional Category = "дополнительное"
	CategoryButton     Category = "кнопка"
)

// Product is a catalog entry. A nil Price means the item is priceless: it can
// sit in the basket but never contributes to a total and is never submitted.
type Product struct {
	ID          string   `json:"id"`
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Image       string   `json:"image"`
	Category    Category `json:"category"`
	Price       *float64 `json:"price"`
}

// Priced reports whether the product can actually be purchased.
func (p Product) Priced() bool {
	return p.Price != nil
}

// PriceValue returns the price, or 0 for priceless items.
func (p Product) PriceValue() float64 {
	if p.Price == nil {
		return 0
	}
	return *p.Price
}
