package report

import (
	"bufio"
	"fmt"
	"io"

	"github.com/bagdasarian/token-topup/internal/domain"
)

type Writer struct {
	w   *bufio.Writer
	err error
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

// Write выводит секции компаний в переданном порядке и сбрасывает буфер.
// Первая ошибка записи возвращается как WriteError, остальной вывод пропускается.
func (rw *Writer) Write(reports []domain.CompanyReport) error {
	for _, r := range reports {
		rw.writeCompany(r)
	}

	if rw.err == nil {
		rw.err = rw.w.Flush()
	}
	if rw.err != nil {
		return domain.NewWriteError(rw.err)
	}
	return nil
}

func (rw *Writer) writeCompany(r domain.CompanyReport) {
	rw.printf("Company Id: %d\n", r.Company.ID)
	rw.printf("Company Name: %s\n", r.Company.Name)

	rw.printf("Users Emailed:\n")
	for _, entry := range r.Emailed {
		rw.writeUser(entry)
	}

	rw.printf("Users Not Emailed:\n")
	for _, entry := range r.NotEmailed {
		rw.writeUser(entry)
	}

	rw.printf("\tTotal amount of top ups for %s: %s\n\n", r.Company.Name, r.Total)
}

func (rw *Writer) writeUser(entry domain.UserEntry) {
	u := entry.User
	rw.printf("\t%s, %s, %s\n", u.LastName, u.FirstName, u.Email)
	rw.printf("\t  Previous Token Balance, %s\n", entry.TopUp.Previous)
	rw.printf("\t  New Token Balance %s\n", entry.TopUp.New)
}

func (rw *Writer) printf(format string, args ...any) {
	if rw.err != nil {
		return
	}
	_, rw.err = fmt.Fprintf(rw.w, format, args...)
}
