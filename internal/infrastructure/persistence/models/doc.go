// Package models contains GORM persistence models. Domain entities stay free of
// ORM tags; each model converts to and from its domain type.
//
// The POS tables (users, customers, products, transactions, transaction_details,
// profits, cash_entries) are written by the cashier application and only read here.
package models
