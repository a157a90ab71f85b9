// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/kelechimadu/invoice-tally/gen/ent/batch"
)

// Batch is the model entity for the Batch schema.
type Batch struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// UserID holds the value of the "user_id" field.
	UserID string `json:"user_id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// TotalParts holds the value of the "total_parts" field.
	TotalParts float64 `json:"total_parts,omitempty"`
	// TotalLabor holds the value of the "total_labor" field.
	TotalLabor float64 `json:"total_labor,omitempty"`
	// TotalTax holds the value of the "total_tax" field.
	TotalTax float64 `json:"total_tax,omitempty"`
	// TotalInvoices holds the value of the "total_invoices" field.
	TotalInvoices int `json:"total_invoices,omitempty"`
	// FlaggedCount holds the value of the "flagged_count" field.
	FlaggedCount int `json:"flagged_count,omitempty"`
	// ProcessedCount holds the value of the "processed_count" field.
	ProcessedCount int `json:"processed_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BatchQuery when eager-loading is set.
	Edges        BatchEdges `json:"edges"`
	selectValues sql.SelectValues
}

// BatchEdges holds the relations/edges for other nodes in the graph.
type BatchEdges struct {
	// Invoices holds the value of the invoices edge.
	Invoices []*Invoice `json:"invoices,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// InvoicesOrErr returns the Invoices value or an error if the edge
// was not loaded in eager-loading.
func (e BatchEdges) InvoicesOrErr() ([]*Invoice, error) {
	if e.loadedTypes[0] {
		return e.Invoices, nil
	}
	return nil, &NotLoadedError{edge: "invoices"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Batch) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case batch.FieldTotalParts, batch.FieldTotalLabor, batch.FieldTotalTax:
			values[i] = new(sql.NullFloat64)
		case batch.FieldTotalInvoices, batch.FieldFlaggedCount, batch.FieldProcessedCount:
			values[i] = new(sql.NullInt64)
		case batch.FieldUserID, batch.FieldName:
			values[i] = new(sql.NullString)
		case batch.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case batch.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Batch fields.
func (_m *Batch) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case batch.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case batch.FieldUserID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field user_id", values[i])
			} else if value.Valid {
				_m.UserID = value.String
			}
		case batch.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case batch.FieldTotalParts:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_parts", values[i])
			} else if value.Valid {
				_m.TotalParts = value.Float64
			}
		case batch.FieldTotalLabor:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_labor", values[i])
			} else if value.Valid {
				_m.TotalLabor = value.Float64
			}
		case batch.FieldTotalTax:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field total_tax", values[i])
			} else if value.Valid {
				_m.TotalTax = value.Float64
			}
		case batch.FieldTotalInvoices:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_invoices", values[i])
			} else if value.Valid {
				_m.TotalInvoices = int(value.Int64)
			}
		case batch.FieldFlaggedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field flagged_count", values[i])
			} else if value.Valid {
				_m.FlaggedCount = int(value.Int64)
			}
		case batch.FieldProcessedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field processed_count", values[i])
			} else if value.Valid {
				_m.ProcessedCount = int(value.Int64)
			}
		case batch.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Batch.
// This includes values selected through modifiers, order, etc.
func (_m *Batch) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryInvoices queries the "invoices" edge of the Batch entity.
func (_m *Batch) QueryInvoices() *InvoiceQuery {
	return NewBatchClient(_m.config).QueryInvoices(_m)
}

// Update returns a builder for updating this Batch.
// Note that you need to call Batch.Unwrap() before calling this method if this Batch
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Batch) Update() *BatchUpdateOne {
	return NewBatchClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Batch entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Batch) Unwrap() *Batch {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Batch is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Batch) String() string {
	var builder strings.Builder
	builder.WriteString("Batch(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("user_id=")
	builder.WriteString(_m.UserID)
	builder.WriteString(", ")
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("total_parts=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalParts))
	builder.WriteString(", ")
	builder.WriteString("total_labor=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalLabor))
	builder.WriteString(", ")
	builder.WriteString("total_tax=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalTax))
	builder.WriteString(", ")
	builder.WriteString("total_invoices=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalInvoices))
	builder.WriteString(", ")
	builder.WriteString("flagged_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.FlaggedCount))
	builder.WriteString(", ")
	builder.WriteString("processed_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProcessedCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Batches is a parsable slice of Batch.
type Batches []*Batch
