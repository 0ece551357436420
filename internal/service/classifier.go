package service

import "github.com/bagdasarian/token-topup/internal/domain"

type Classification struct {
	Emailed    []domain.User
	NotEmailed []domain.User
}

// IsEmailed - письмо отправляется, только если согласны и пользователь, и компания
func IsEmailed(company domain.Company, user domain.User) bool {
	return user.EmailStatus && company.EmailStatus
}

// ClassifyUsers отбрасывает неактивных пользователей и делит остальных на получивших письмо и нет
func ClassifyUsers(company domain.Company, users []domain.User) Classification {
	result := Classification{
		Emailed:    make([]domain.User, 0),
		NotEmailed: make([]domain.User, 0),
	}

	for _, user := range users {
		if !user.ActiveStatus {
			continue
		}

		if IsEmailed(company, user) {
			result.Emailed = append(result.Emailed, user)
		} else {
			result.NotEmailed = append(result.NotEmailed, user)
		}
	}

	return result
}
