// Code generated by ent, DO NOT EDIT.

package batch

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the batch type in the database.
	Label = "batch"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldTotalParts holds the string denoting the total_parts field in the database.
	FieldTotalParts = "total_parts"
	// FieldTotalLabor holds the string denoting the total_labor field in the database.
	FieldTotalLabor = "total_labor"
	// FieldTotalTax holds the string denoting the total_tax field in the database.
	FieldTotalTax = "total_tax"
	// FieldTotalInvoices holds the string denoting the total_invoices field in the database.
	FieldTotalInvoices = "total_invoices"
	// FieldFlaggedCount holds the string denoting the flagged_count field in the database.
	FieldFlaggedCount = "flagged_count"
	// FieldProcessedCount holds the string denoting the processed_count field in the database.
	FieldProcessedCount = "processed_count"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeInvoices holds the string denoting the invoices edge name in mutations.
	EdgeInvoices = "invoices"
	// Table holds the table name of the batch in the database.
	Table = "batches"
	// InvoicesTable is the table that holds the invoices relation/edge.
	InvoicesTable = "invoices"
	// InvoicesInverseTable is the table name for the Invoice entity.
	// It exists in this package in order to avoid circular dependency with the "invoice" package.
	InvoicesInverseTable = "invoices"
	// InvoicesColumn is the table column denoting the invoices relation/edge.
	InvoicesColumn = "batch_id"
)

// Columns holds all SQL columns for batch fields.
var Columns = []string{
	FieldID,
	FieldUserID,
	FieldName,
	FieldTotalParts,
	FieldTotalLabor,
	FieldTotalTax,
	FieldTotalInvoices,
	FieldFlaggedCount,
	FieldProcessedCount,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	UserIDValidator func(string) error
	// DefaultName holds the default value on creation for the "name" field.
	DefaultName string
	// TotalInvoicesValidator is a validator for the "total_invoices" field. It is called by the builders before save.
	TotalInvoicesValidator func(int) error
	// FlaggedCountValidator is a validator for the "flagged_count" field. It is called by the builders before save.
	FlaggedCountValidator func(int) error
	// ProcessedCountValidator is a validator for the "processed_count" field. It is called by the builders before save.
	ProcessedCountValidator func(int) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Batch queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByTotalParts orders the results by the total_parts field.
func ByTotalParts(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalParts, opts...).ToFunc()
}

// ByTotalLabor orders the results by the total_labor field.
func ByTotalLabor(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalLabor, opts...).ToFunc()
}

// ByTotalTax orders the results by the total_tax field.
func ByTotalTax(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalTax, opts...).ToFunc()
}

// ByTotalInvoices orders the results by the total_invoices field.
func ByTotalInvoices(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalInvoices, opts...).ToFunc()
}

// ByFlaggedCount orders the results by the flagged_count field.
func ByFlaggedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFlaggedCount, opts...).ToFunc()
}

// ByProcessedCount orders the results by the processed_count field.
func ByProcessedCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessedCount, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByInvoicesCount orders the results by invoices count.
func ByInvoicesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newInvoicesStep(), opts...)
	}
}

// ByInvoices orders the results by invoices terms.
func ByInvoices(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newInvoicesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newInvoicesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(InvoicesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, InvoicesTable, InvoicesColumn),
	)
}
