package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Category is an expense category.
type Category string

const (
	CategoryFoodDining    Category = "Food & Dining"
	CategoryGroceries     Category = "Groceries"
	CategoryTransport     Category = "Transportation"
	CategoryFuel          Category = "Fuel"
	CategoryHouseRent     Category = "House Rent"
	CategoryUtilities     Category = "Utilities"
	CategoryInternetPhone Category = "Internet & Phone"
	CategoryHealthcare    Category = "Healthcare"
	CategoryEntertainment Category = "Entertainment"
	CategoryShopping      Category = "Shopping"
	CategoryEducation     Category = "Education"
	CategoryTravel        Category = "Travel"
	CategoryInsurance     Category = "Insurance"
	CategoryInvestments   Category = "Investments"
	CategoryEMIPayments   Category = "EMI Payments"
	CategoryOther         Category = "Other"
)

// Categories lists all expense categories in display order.
var Categories = []Category{
	CategoryFoodDining,
	CategoryGroceries,
	CategoryTransport,
	CategoryFuel,
	CategoryHouseRent,
	CategoryUtilities,
	CategoryInternetPhone,
	CategoryHealthcare,
	CategoryEntertainment,
	CategoryShopping,
	CategoryEducation,
	CategoryTravel,
	CategoryInsurance,
	CategoryInvestments,
	CategoryEMIPayments,
	CategoryOther,
}

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Expense is a single logged transaction. Expenses are immutable once
// created; the only mutation is deletion.
//
// PaymentMethodName is a denormalized copy of the method's name taken at
// creation time. It is intentionally never refreshed when the method is
// renamed or deleted, so historic records keep the name they were logged
// under.
type Expense struct {
	ID                string          `json:"id"`
	Date              Date            `json:"date"`
	Amount            decimal.Decimal `json:"amount"`
	Description       string          `json:"description"`
	Category          Category        `json:"category"`
	PaymentMethodID   string          `json:"paymentMethod"`
	PaymentMethodName string          `json:"paymentMethodName"`
	CreatedAt         time.Time       `json:"createdDate"`
}
