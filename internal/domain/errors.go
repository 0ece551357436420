package domain

import "fmt"

const (
	OpReadCompanies = "readCompanies"
	OpReadUsers     = "readUsers"
)

// LoadError - источник данных не удалось прочитать или разобрать
type LoadError struct {
	Op  string
	Err error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("%s error: %v", e.Op, e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// Это позволяет использовать errors.Is() с пустым Op как с шаблоном для любой ошибки загрузки
func (e *LoadError) Is(target error) bool {
	if t, ok := target.(*LoadError); ok {
		return t.Op == "" || t.Op == e.Op
	}
	return false
}

// WriteError - отчет не удалось записать или закрыть
type WriteError struct {
	Err error
}

func (e *WriteError) Error() string {
	return fmt.Sprintf("write report error: %v", e.Err)
}

func (e *WriteError) Unwrap() error {
	return e.Err
}

func (e *WriteError) Is(target error) bool {
	_, ok := target.(*WriteError)
	return ok
}

var (
	// ErrLoad - шаблон для errors.Is(), совпадает с любой LoadError
	ErrLoad = &LoadError{}

	// ErrWrite - шаблон для errors.Is(), совпадает с любой WriteError
	ErrWrite = &WriteError{}
)

// NewLoadError оборачивает причину ошибки загрузки
func NewLoadError(op string, err error) *LoadError {
	return &LoadError{Op: op, Err: err}
}

// NewWriteError оборачивает причину ошибки записи
func NewWriteError(err error) *WriteError {
	return &WriteError{Err: err}
}
