package domain

import "github.com/shopspring/decimal"

type User struct {
	ID           int                 `json:"id"`
	FirstName    string              `json:"first_name"`
	LastName     string              `json:"last_name"`
	Email        string              `json:"email"`
	CompanyID    *int                `json:"company_id"`
	EmailStatus  bool                `json:"email_status"`
	ActiveStatus bool                `json:"active_status"`
	Tokens       decimal.NullDecimal `json:"tokens"`
}

// Balance возвращает текущий баланс токенов, отсутствующий баланс считается нулевым
func (u User) Balance() decimal.Decimal {
	if !u.Tokens.Valid {
		return decimal.Zero
	}
	return u.Tokens.Decimal
}

// HasCompany сообщает, привязан ли пользователь к компании
func (u User) HasCompany() bool {
	return u.CompanyID != nil
}
