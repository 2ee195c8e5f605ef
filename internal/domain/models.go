package domain

// TypeGroceries is the catalog type excluded from percentage discounts.
const TypeGroceries = "groceries"

// Product is a catalog document from the product index
type Product struct {
	ProductName string `json:"productName"`
	Type        string `json:"type"`
	Price       int64  `json:"price"`
}

// BasketItem is one product-name/quantity pair submitted for pricing
type BasketItem struct {
	ProductName string `json:"productName"`
	Amount      int64  `json:"amount"`
}

// UserDetails carries the discount-relevant user flags; also serves as the
// record shape written to the user index
type UserDetails struct {
	Username            string `json:"username,omitempty"`
	Password            string `json:"password,omitempty"`
	AccountCreationDate string `json:"accountCreationDate,omitempty"`
	Employee            bool   `json:"employee"`
	Affiliate           bool   `json:"affiliate"`
	Customer            bool   `json:"customer"`
}

// PriceResult is the sole output of a successful basket computation
type PriceResult struct {
	TotalPrice int64 `json:"totalPrice"`
}
