package service

import (
	"github.com/bagdasarian/token-topup/internal/domain"
	"github.com/shopspring/decimal"
)

func companyID(id int) *int {
	return &id
}

func tokens(value string) decimal.NullDecimal {
	return decimal.NewNullDecimal(decimal.RequireFromString(value))
}

func newUser(id int, lastName string, company *int, emailStatus, active bool) domain.User {
	return domain.User{
		ID:           id,
		FirstName:    "First",
		LastName:     lastName,
		Email:        lastName + "@example.com",
		CompanyID:    company,
		EmailStatus:  emailStatus,
		ActiveStatus: active,
	}
}

func lastNames(users []domain.User) []string {
	names := make([]string, 0, len(users))
	for _, u := range users {
		names = append(names, u.LastName)
	}
	return names
}
