package models

import "time"

// MethodType represents the kind of payment method.
type MethodType string

const (
	MethodTypeCreditCard    MethodType = "Credit Card"
	MethodTypeDebitCard     MethodType = "Debit Card"
	MethodTypeBankAccount   MethodType = "Bank Account"
	MethodTypeUPI           MethodType = "UPI"
	MethodTypeDigitalWallet MethodType = "Digital Wallet"
	MethodTypeCash          MethodType = "Cash"
)

// MethodTypes lists all payment method types in display order.
var MethodTypes = []MethodType{
	MethodTypeCreditCard,
	MethodTypeDebitCard,
	MethodTypeBankAccount,
	MethodTypeUPI,
	MethodTypeDigitalWallet,
	MethodTypeCash,
}

// Valid reports whether t is a known method type.
func (t MethodType) Valid() bool {
	for _, known := range MethodTypes {
		if t == known {
			return true
		}
	}
	return false
}

// PaymentMethod is a card, account, wallet, or cash bucket expenses are paid
// from. At most one method is the default at any time; the first method
// created becomes the default automatically.
type PaymentMethod struct {
	ID        string     `json:"id"`
	Name      string     `json:"name"`
	Type      MethodType `json:"type"`
	LastFour  string     `json:"lastFour,omitempty"`
	Color     string     `json:"color"`
	IsDefault bool       `json:"isDefault"`
	CreatedAt time.Time  `json:"createdDate"`
}
