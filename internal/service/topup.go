package service

import (
	"github.com/bagdasarian/token-topup/internal/domain"
	"github.com/shopspring/decimal"
)

// CalculateTopUp считает пополнение: активный пользователь получает top_up компании,
// неактивный ничего. Отсутствующий баланс считается нулевым.
func CalculateTopUp(company domain.Company, user domain.User) domain.TopUp {
	amount := decimal.Zero
	if user.ActiveStatus {
		amount = company.TopUp
	}

	previous := user.Balance()

	return domain.TopUp{
		Previous: previous,
		Amount:   amount,
		New:      previous.Add(amount),
	}
}
