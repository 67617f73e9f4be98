package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/report"
	"github.com/shopspring/decimal"
)

// TransactionStatusCanceled marks a voided sale. Every other status counts as a sale.
const TransactionStatusCanceled = "canceled"

// UserModel is a cashier account
type UserModel struct {
	BaseModel
	Name string `gorm:"type:varchar(255);not null"`
}

func (UserModel) TableName() string { return "users" }

// CustomerModel is a registered customer
type CustomerModel struct {
	BaseModel
	Name string `gorm:"type:varchar(255);not null"`
}

func (CustomerModel) TableName() string { return "customers" }

// ProductModel is a sellable product
type ProductModel struct {
	BaseModel
	Title string `gorm:"type:varchar(255);not null"`
}

func (ProductModel) TableName() string { return "products" }

// TransactionModel is a sale recorded at the register
type TransactionModel struct {
	BaseModel
	Invoice    string          `gorm:"type:varchar(100);not null;uniqueIndex"`
	CashierID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	CustomerID *uuid.UUID      `gorm:"type:uuid;index"`
	Discount   decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	GrandTotal decimal.Decimal `gorm:"type:decimal(15,2);not null;default:0"`
	Status     string          `gorm:"type:varchar(20);not null;default:'completed'"`
}

func (TransactionModel) TableName() string { return "transactions" }

// ToCashTransaction maps the row onto the cash report source type
func (m *TransactionModel) ToCashTransaction() report.CashTransaction {
	return report.CashTransaction{
		ID:         m.ID,
		Invoice:    m.Invoice,
		GrandTotal: m.GrandTotal,
		CreatedAt:  m.CreatedAt,
	}
}

// TransactionDetailModel is one line of a transaction
type TransactionDetailModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TransactionID uuid.UUID       `gorm:"type:uuid;not null;index"`
	ProductID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	Qty           int64           `gorm:"not null"`
	Price         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt     time.Time       `gorm:"not null"`
}

func (TransactionDetailModel) TableName() string { return "transaction_details" }

// ProfitModel is the profit booked for a transaction
type ProfitModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TransactionID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Total         decimal.Decimal `gorm:"type:decimal(15,2);not null"`
	CreatedAt     time.Time       `gorm:"not null"`
}

func (ProfitModel) TableName() string { return "profits" }

// CashEntryModel is a manual cash movement. Category is "in" or "out".
type CashEntryModel struct {
	BaseModel
	CashierID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	Category    string          `gorm:"type:varchar(10);not null"`
	Description string          `gorm:"type:varchar(255)"`
	Amount      decimal.Decimal `gorm:"type:decimal(15,2);not null"`
}

func (CashEntryModel) TableName() string { return "cash_entries" }

// ToDomain maps the row onto the cash report source type
func (m *CashEntryModel) ToDomain() report.CashEntry {
	return report.CashEntry{
		ID:          m.ID,
		Kind:        report.CashEntryKind(m.Category),
		Description: m.Description,
		Amount:      m.Amount,
		CreatedAt:   m.CreatedAt,
	}
}

// AllModels lists every model, in dependency order, for schema creation in tests
func AllModels() []any {
	return []any{
		&StudioPageModel{},
		&UserModel{},
		&CustomerModel{},
		&ProductModel{},
		&TransactionModel{},
		&TransactionDetailModel{},
		&ProfitModel{},
		&CashEntryModel{},
	}
}
