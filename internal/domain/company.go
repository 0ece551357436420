package domain

import "github.com/shopspring/decimal"

type Company struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	TopUp       decimal.Decimal `json:"top_up"`
	EmailStatus bool            `json:"email_status"`
}
