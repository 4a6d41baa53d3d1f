package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Income represents a row in the incomes table.
type Income struct {
	IncomeID     string          `db:"income_id"`
	WorkspaceID  string          `db:"workspace_id"`
	Source       string          `db:"source"`
	Amount       decimal.Decimal `db:"amount"`
	ReceivedDate time.Time       `db:"received_date"`
	Note         string          `db:"note"`
	AuditFields
}
