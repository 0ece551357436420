package domain

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLoadError(t *testing.T) {
	t.Run("сообщение содержит операцию и причину", func(t *testing.T) {
		err := NewLoadError(OpReadUsers, fs.ErrNotExist)

		assert.Equal(t, "readUsers error: file does not exist", err.Error())
		assert.True(t, errors.Is(err, fs.ErrNotExist))
	})

	t.Run("errors.Is по шаблону", func(t *testing.T) {
		err := fmt.Errorf("build reports: %w", NewLoadError(OpReadCompanies, errors.New("boom")))

		assert.True(t, errors.Is(err, ErrLoad))
		assert.True(t, errors.Is(err, &LoadError{Op: OpReadCompanies}))
		assert.False(t, errors.Is(err, &LoadError{Op: OpReadUsers}))
		assert.False(t, errors.Is(err, ErrWrite))
	})

	t.Run("errors.As извлекает операцию", func(t *testing.T) {
		err := fmt.Errorf("wrap: %w", NewLoadError(OpReadUsers, errors.New("boom")))

		var loadErr *LoadError
		assert.True(t, errors.As(err, &loadErr))
		assert.Equal(t, OpReadUsers, loadErr.Op)
	})
}

func TestWriteError(t *testing.T) {
	err := NewWriteError(fs.ErrClosed)

	assert.Equal(t, "write report error: file already closed", err.Error())
	assert.True(t, errors.Is(err, ErrWrite))
	assert.True(t, errors.Is(err, fs.ErrClosed))
	assert.False(t, errors.Is(err, ErrLoad))
}

func TestUser_Balance(t *testing.T) {
	companyID := 1
	u := User{ID: 1, CompanyID: &companyID}

	assert.True(t, u.Balance().IsZero(), "отсутствующий баланс должен быть нулевым")
	assert.True(t, u.HasCompany())
	assert.False(t, User{}.HasCompany())
}
