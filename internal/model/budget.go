package model

import "github.com/shopspring/decimal"

// Budget is a monthly spending limit for one category.
type Budget struct {
	Category Category
	Limit    decimal.Decimal
}
