package domain

import "github.com/shopspring/decimal"

type TopUp struct {
	Previous decimal.Decimal
	Amount   decimal.Decimal
	New      decimal.Decimal
}

type UserEntry struct {
	User  User
	TopUp TopUp
}

type CompanyReport struct {
	Company    Company
	Emailed    []UserEntry
	NotEmailed []UserEntry
	Total      decimal.Decimal
}
