package service

import (
	"slices"
	"strings"

	"github.com/bagdasarian/token-topup/internal/domain"
)

// SortByLastName возвращает копию пользователей, отсортированную по фамилии.
// Сортировка стабильная: при равных фамилиях сохраняется исходный порядок.
func SortByLastName(users []domain.User) []domain.User {
	sorted := slices.Clone(users)
	slices.SortStableFunc(sorted, func(a, b domain.User) int {
		return strings.Compare(a.LastName, b.LastName)
	})
	return sorted
}

// GroupUsersByCompany сортирует пользователей по фамилии и раскладывает их по компаниям.
// Пользователи без компании молча отбрасываются, поэтому ключ есть только у компаний
// хотя бы с одним пользователем.
func GroupUsersByCompany(users []domain.User) map[int][]domain.User {
	grouped := make(map[int][]domain.User)
	for _, user := range SortByLastName(users) {
		if !user.HasCompany() {
			continue
		}
		grouped[*user.CompanyID] = append(grouped[*user.CompanyID], user)
	}
	return grouped
}
