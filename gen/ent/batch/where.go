// Code generated by ent, DO NOT EDIT.

package batch

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/kelechimadu/invoice-tally/gen/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldUserID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldName, v))
}

// TotalParts applies equality check predicate on the "total_parts" field. It's identical to TotalPartsEQ.
func TotalParts(v float64) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldTotalParts, v))
}

// TotalLabor applies equality check predicate on the "total_labor" field. It's identical to TotalLaborEQ.
func TotalLabor(v float64) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldTotalLabor, v))
}

// TotalTax applies equality check predicate on the "total_tax" field. It's identical to TotalTaxEQ.
func TotalTax(v float64) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldTotalTax, v))
}

// TotalInvoices applies equality check predicate on the "total_invoices" field. It's identical to TotalInvoicesEQ.
func TotalInvoices(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldTotalInvoices, v))
}

// FlaggedCount applies equality check predicate on the "flagged_count" field. It's identical to FlaggedCountEQ.
func FlaggedCount(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldFlaggedCount, v))
}

// ProcessedCount applies equality check predicate on the "processed_count" field. It's identical to ProcessedCountEQ.
func ProcessedCount(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldProcessedCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldCreatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.Batch {
	return predicate.Batch(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.Batch {
	return predicate.Batch(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.Batch {
	return predicate.Batch(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.Batch {
	return predicate.Batch(sql.FieldContainsFold(FieldUserID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Batch {
	return predicate.Batch(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Batch {
	return predicate.Batch(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Batch {
	return predicate.Batch(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Batch {
	return predicate.Batch(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Batch {
	return predicate.Batch(sql.FieldContainsFold(FieldName, v))
}

// TotalPartsEQ applies the EQ predicate on the "total_parts" field.
func TotalPartsEQ(v float64) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldTotalParts, v))
}

// TotalPartsNEQ applies the NEQ predicate on the "total_parts" field.
func TotalPartsNEQ(v float64) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldTotalParts, v))
}

// TotalPartsIn applies the In predicate on the "total_parts" field.
func TotalPartsIn(vs ...float64) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldTotalParts, vs...))
}

// TotalPartsNotIn applies the NotIn predicate on the "total_parts" field.
func TotalPartsNotIn(vs ...float64) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldTotalParts, vs...))
}

// TotalPartsGT applies the GT predicate on the "total_parts" field.
func TotalPartsGT(v float64) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldTotalParts, v))
}

// TotalPartsGTE applies the GTE predicate on the "total_parts" field.
func TotalPartsGTE(v float64) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldTotalParts, v))
}

// TotalPartsLT applies the LT predicate on the "total_parts" field.
func TotalPartsLT(v float64) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldTotalParts, v))
}

// TotalPartsLTE applies the LTE predicate on the "total_parts" field.
func TotalPartsLTE(v float64) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldTotalParts, v))
}

// TotalLaborEQ applies the EQ predicate on the "total_labor" field.
func TotalLaborEQ(v float64) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldTotalLabor, v))
}

// TotalLaborNEQ applies the NEQ predicate on the "total_labor" field.
func TotalLaborNEQ(v float64) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldTotalLabor, v))
}

// TotalLaborIn applies the In predicate on the "total_labor" field.
func TotalLaborIn(vs ...float64) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldTotalLabor, vs...))
}

// TotalLaborNotIn applies the NotIn predicate on the "total_labor" field.
func TotalLaborNotIn(vs ...float64) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldTotalLabor, vs...))
}

// TotalLaborGT applies the GT predicate on the "total_labor" field.
func TotalLaborGT(v float64) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldTotalLabor, v))
}

// TotalLaborGTE applies the GTE predicate on the "total_labor" field.
func TotalLaborGTE(v float64) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldTotalLabor, v))
}

// TotalLaborLT applies the LT predicate on the "total_labor" field.
func TotalLaborLT(v float64) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldTotalLabor, v))
}

// TotalLaborLTE applies the LTE predicate on the "total_labor" field.
func TotalLaborLTE(v float64) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldTotalLabor, v))
}

// TotalTaxEQ applies the EQ predicate on the "total_tax" field.
func TotalTaxEQ(v float64) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldTotalTax, v))
}

// TotalTaxNEQ applies the NEQ predicate on the "total_tax" field.
func TotalTaxNEQ(v float64) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldTotalTax, v))
}

// TotalTaxIn applies the In predicate on the "total_tax" field.
func TotalTaxIn(vs ...float64) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldTotalTax, vs...))
}

// TotalTaxNotIn applies the NotIn predicate on the "total_tax" field.
func TotalTaxNotIn(vs ...float64) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldTotalTax, vs...))
}

// TotalTaxGT applies the GT predicate on the "total_tax" field.
func TotalTaxGT(v float64) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldTotalTax, v))
}

// TotalTaxGTE applies the GTE predicate on the "total_tax" field.
func TotalTaxGTE(v float64) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldTotalTax, v))
}

// TotalTaxLT applies the LT predicate on the "total_tax" field.
func TotalTaxLT(v float64) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldTotalTax, v))
}

// TotalTaxLTE applies the LTE predicate on the "total_tax" field.
func TotalTaxLTE(v float64) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldTotalTax, v))
}

// TotalInvoicesEQ applies the EQ predicate on the "total_invoices" field.
func TotalInvoicesEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldTotalInvoices, v))
}

// TotalInvoicesNEQ applies the NEQ predicate on the "total_invoices" field.
func TotalInvoicesNEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldTotalInvoices, v))
}

// TotalInvoicesIn applies the In predicate on the "total_invoices" field.
func TotalInvoicesIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldTotalInvoices, vs...))
}

// TotalInvoicesNotIn applies the NotIn predicate on the "total_invoices" field.
func TotalInvoicesNotIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldTotalInvoices, vs...))
}

// TotalInvoicesGT applies the GT predicate on the "total_invoices" field.
func TotalInvoicesGT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldTotalInvoices, v))
}

// TotalInvoicesGTE applies the GTE predicate on the "total_invoices" field.
func TotalInvoicesGTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldTotalInvoices, v))
}

// TotalInvoicesLT applies the LT predicate on the "total_invoices" field.
func TotalInvoicesLT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldTotalInvoices, v))
}

// TotalInvoicesLTE applies the LTE predicate on the "total_invoices" field.
func TotalInvoicesLTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldTotalInvoices, v))
}

// FlaggedCountEQ applies the EQ predicate on the "flagged_count" field.
func FlaggedCountEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldFlaggedCount, v))
}

// FlaggedCountNEQ applies the NEQ predicate on the "flagged_count" field.
func FlaggedCountNEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldFlaggedCount, v))
}

// FlaggedCountIn applies the In predicate on the "flagged_count" field.
func FlaggedCountIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldFlaggedCount, vs...))
}

// FlaggedCountNotIn applies the NotIn predicate on the "flagged_count" field.
func FlaggedCountNotIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldFlaggedCount, vs...))
}

// FlaggedCountGT applies the GT predicate on the "flagged_count" field.
func FlaggedCountGT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldFlaggedCount, v))
}

// FlaggedCountGTE applies the GTE predicate on the "flagged_count" field.
func FlaggedCountGTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldFlaggedCount, v))
}

// FlaggedCountLT applies the LT predicate on the "flagged_count" field.
func FlaggedCountLT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldFlaggedCount, v))
}

// FlaggedCountLTE applies the LTE predicate on the "flagged_count" field.
func FlaggedCountLTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldFlaggedCount, v))
}

// ProcessedCountEQ applies the EQ predicate on the "processed_count" field.
func ProcessedCountEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldProcessedCount, v))
}

// ProcessedCountNEQ applies the NEQ predicate on the "processed_count" field.
func ProcessedCountNEQ(v int) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldProcessedCount, v))
}

// ProcessedCountIn applies the In predicate on the "processed_count" field.
func ProcessedCountIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldProcessedCount, vs...))
}

// ProcessedCountNotIn applies the NotIn predicate on the "processed_count" field.
func ProcessedCountNotIn(vs ...int) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldProcessedCount, vs...))
}

// ProcessedCountGT applies the GT predicate on the "processed_count" field.
func ProcessedCountGT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldProcessedCount, v))
}

// ProcessedCountGTE applies the GTE predicate on the "processed_count" field.
func ProcessedCountGTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldProcessedCount, v))
}

// ProcessedCountLT applies the LT predicate on the "processed_count" field.
func ProcessedCountLT(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldProcessedCount, v))
}

// ProcessedCountLTE applies the LTE predicate on the "processed_count" field.
func ProcessedCountLTE(v int) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldProcessedCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Batch {
	return predicate.Batch(sql.FieldLTE(FieldCreatedAt, v))
}

// HasInvoices applies the HasEdge predicate on the "invoices" edge.
func HasInvoices() predicate.Batch {
	return predicate.Batch(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, InvoicesTable, InvoicesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasInvoicesWith applies the HasEdge predicate on the "invoices" edge with a given conditions (other predicates).
func HasInvoicesWith(preds ...predicate.Invoice) predicate.Batch {
	return predicate.Batch(func(s *sql.Selector) {
		step := newInvoicesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Batch) predicate.Batch {
	return predicate.Batch(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Batch) predicate.Batch {
	return predicate.Batch(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Batch) predicate.Batch {
	return predicate.Batch(sql.NotPredicates(p))
}
