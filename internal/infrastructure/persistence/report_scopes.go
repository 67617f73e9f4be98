package persistence

import (
	"github.com/pos/backend/internal/domain/report"
	"github.com/pos/backend/internal/infrastructure/persistence/models"
	"gorm.io/gorm"
)

func qualify(alias, column string) string {
	if alias == "" {
		return column
	}
	return alias + "." + column
}

// notCanceled excludes voided sales from the transactions table aliased as alias
func notCanceled(alias string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.Where(qualify(alias, "status")+" <> ?", models.TransactionStatusCanceled)
	}
}

// transactionFilter applies the report filter to the transactions table aliased as alias
func transactionFilter(alias string, f report.Filter) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		from, to := f.Range()
		db = db.Where(qualify(alias, "created_at")+" >= ? AND "+qualify(alias, "created_at")+" < ?", from, to)
		if f.Invoice != "" {
			db = db.Where(qualify(alias, "invoice")+" LIKE ?", "%"+f.Invoice+"%")
		}
		if f.CashierID != nil {
			db = db.Where(qualify(alias, "cashier_id")+" = ?", *f.CashierID)
		}
		if f.CustomerID != nil {
			db = db.Where(qualify(alias, "customer_id")+" = ?", *f.CustomerID)
		}
		return db
	}
}

// paginate limits the query to one page. pageSize <= 0 leaves it unbounded.
func paginate(page, pageSize int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if pageSize <= 0 {
			return db
		}
		if page < 1 {
			page = 1
		}
		return db.Offset((page - 1) * pageSize).Limit(pageSize)
	}
}

func nameOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
