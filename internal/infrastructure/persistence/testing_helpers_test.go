package persistence

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/pos/backend/internal/domain/report"
	"github.com/pos/backend/internal/infrastructure/persistence/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	// a single connection keeps every query on the same in-memory database
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(models.AllModels()...))
	return db
}

func day(s string) time.Time {
	d, err := time.ParseInLocation(report.DateLayout, s, time.UTC)
	if err != nil {
		panic(err)
	}
	return d
}

func at(s string) time.Time {
	ts, err := time.ParseInLocation("2006-01-02 15:04", s, time.UTC)
	if err != nil {
		panic(err)
	}
	return ts
}

func rupiah(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

// posFixture seeds a small store: two cashiers, one customer, three products
type posFixture struct {
	t        *testing.T
	db       *gorm.DB
	sari     uuid.UUID
	budi     uuid.UUID
	customer uuid.UUID
	kopi     uuid.UUID
	roti     uuid.UUID
	teh      uuid.UUID
}

func newPOSFixture(t *testing.T, db *gorm.DB) *posFixture {
	f := &posFixture{t: t, db: db}
	f.sari = f.user("Sari")
	f.budi = f.user("Budi")
	f.customer = f.insertCustomer("Andi")
	f.kopi = f.product("Kopi Susu")
	f.roti = f.product("Roti Bakar")
	f.teh = f.product("Teh Tarik")
	return f
}

func (f *posFixture) base(ts time.Time) models.BaseModel {
	return models.BaseModel{ID: uuid.New(), CreatedAt: ts, UpdatedAt: ts}
}

func (f *posFixture) user(name string) uuid.UUID {
	m := &models.UserModel{BaseModel: f.base(at("2024-01-01 00:00")), Name: name}
	require.NoError(f.t, f.db.Create(m).Error)
	return m.ID
}

func (f *posFixture) insertCustomer(name string) uuid.UUID {
	m := &models.CustomerModel{BaseModel: f.base(at("2024-01-01 00:00")), Name: name}
	require.NoError(f.t, f.db.Create(m).Error)
	return m.ID
}

func (f *posFixture) product(title string) uuid.UUID {
	m := &models.ProductModel{BaseModel: f.base(at("2024-01-01 00:00")), Title: title}
	require.NoError(f.t, f.db.Create(m).Error)
	return m.ID
}

type line struct {
	product uuid.UUID
	qty     int64
	price   int64
}

func (f *posFixture) sale(invoice, when string, cashier uuid.UUID, customer *uuid.UUID, status string, discount, profit int64, lines ...line) uuid.UUID {
	ts := at(when)
	var total int64
	for _, l := range lines {
		total += l.qty * l.price
	}
	trx := &models.TransactionModel{
		BaseModel:  f.base(ts),
		Invoice:    invoice,
		CashierID:  cashier,
		CustomerID: customer,
		Discount:   rupiah(discount),
		GrandTotal: rupiah(total - discount),
		Status:     status,
	}
	require.NoError(f.t, f.db.Create(trx).Error)

	for i, l := range lines {
		require.NoError(f.t, f.db.Create(&models.TransactionDetailModel{
			ID:            uuid.New(),
			TransactionID: trx.ID,
			ProductID:     l.product,
			Qty:           l.qty,
			Price:         rupiah(l.price),
			CreatedAt:     ts.Add(time.Duration(i) * time.Second),
		}).Error)
	}
	if profit != 0 {
		require.NoError(f.t, f.db.Create(&models.ProfitModel{
			ID:            uuid.New(),
			TransactionID: trx.ID,
			Total:         rupiah(profit),
			CreatedAt:     ts,
		}).Error)
	}
	return trx.ID
}

func (f *posFixture) cashEntry(when string, cashier uuid.UUID, kind report.CashEntryKind, description string, amount int64) uuid.UUID {
	m := &models.CashEntryModel{
		BaseModel:   f.base(at(when)),
		CashierID:   cashier,
		Category:    string(kind),
		Description: description,
		Amount:      rupiah(amount),
	}
	require.NoError(f.t, f.db.Create(m).Error)
	return m.ID
}
