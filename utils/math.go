package utils

import "github.com/shopspring/decimal"

// RoundMoney rounds a decimal amount to the currency minor unit
func RoundMoney(amount decimal.Decimal) decimal.Decimal {
	return amount.Round(MoneyPlaces)
}

// MaxZero returns amount, or zero when amount is negative
func MaxZero(amount decimal.Decimal) decimal.Decimal {
	if amount.IsNegative() {
		return decimal.Zero
	}
	return amount
}
