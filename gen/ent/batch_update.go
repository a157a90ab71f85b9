// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/kelechimadu/invoice-tally/gen/ent/batch"
	"github.com/kelechimadu/invoice-tally/gen/ent/invoice"
	"github.com/kelechimadu/invoice-tally/gen/ent/predicate"
)

// BatchUpdate is the builder for updating Batch entities.
type BatchUpdate struct {
	config
	hooks    []Hook
	mutation *BatchMutation
}

// Where appends a list predicates to the BatchUpdate builder.
func (_u *BatchUpdate) Where(ps ...predicate.Batch) *BatchUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *BatchUpdate) SetName(v string) *BatchUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableName(v *string) *BatchUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTotalParts sets the "total_parts" field.
func (_u *BatchUpdate) SetTotalParts(v float64) *BatchUpdate {
	_u.mutation.ResetTotalParts()
	_u.mutation.SetTotalParts(v)
	return _u
}

// SetNillableTotalParts sets the "total_parts" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableTotalParts(v *float64) *BatchUpdate {
	if v != nil {
		_u.SetTotalParts(*v)
	}
	return _u
}

// AddTotalParts adds value to the "total_parts" field.
func (_u *BatchUpdate) AddTotalParts(v float64) *BatchUpdate {
	_u.mutation.AddTotalParts(v)
	return _u
}

// SetTotalLabor sets the "total_labor" field.
func (_u *BatchUpdate) SetTotalLabor(v float64) *BatchUpdate {
	_u.mutation.ResetTotalLabor()
	_u.mutation.SetTotalLabor(v)
	return _u
}

// SetNillableTotalLabor sets the "total_labor" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableTotalLabor(v *float64) *BatchUpdate {
	if v != nil {
		_u.SetTotalLabor(*v)
	}
	return _u
}

// AddTotalLabor adds value to the "total_labor" field.
func (_u *BatchUpdate) AddTotalLabor(v float64) *BatchUpdate {
	_u.mutation.AddTotalLabor(v)
	return _u
}

// SetTotalTax sets the "total_tax" field.
func (_u *BatchUpdate) SetTotalTax(v float64) *BatchUpdate {
	_u.mutation.ResetTotalTax()
	_u.mutation.SetTotalTax(v)
	return _u
}

// SetNillableTotalTax sets the "total_tax" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableTotalTax(v *float64) *BatchUpdate {
	if v != nil {
		_u.SetTotalTax(*v)
	}
	return _u
}

// AddTotalTax adds value to the "total_tax" field.
func (_u *BatchUpdate) AddTotalTax(v float64) *BatchUpdate {
	_u.mutation.AddTotalTax(v)
	return _u
}

// SetTotalInvoices sets the "total_invoices" field.
func (_u *BatchUpdate) SetTotalInvoices(v int) *BatchUpdate {
	_u.mutation.ResetTotalInvoices()
	_u.mutation.SetTotalInvoices(v)
	return _u
}

// SetNillableTotalInvoices sets the "total_invoices" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableTotalInvoices(v *int) *BatchUpdate {
	if v != nil {
		_u.SetTotalInvoices(*v)
	}
	return _u
}

// AddTotalInvoices adds value to the "total_invoices" field.
func (_u *BatchUpdate) AddTotalInvoices(v int) *BatchUpdate {
	_u.mutation.AddTotalInvoices(v)
	return _u
}

// SetFlaggedCount sets the "flagged_count" field.
func (_u *BatchUpdate) SetFlaggedCount(v int) *BatchUpdate {
	_u.mutation.ResetFlaggedCount()
	_u.mutation.SetFlaggedCount(v)
	return _u
}

// SetNillableFlaggedCount sets the "flagged_count" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableFlaggedCount(v *int) *BatchUpdate {
	if v != nil {
		_u.SetFlaggedCount(*v)
	}
	return _u
}

// AddFlaggedCount adds value to the "flagged_count" field.
func (_u *BatchUpdate) AddFlaggedCount(v int) *BatchUpdate {
	_u.mutation.AddFlaggedCount(v)
	return _u
}

// SetProcessedCount sets the "processed_count" field.
func (_u *BatchUpdate) SetProcessedCount(v int) *BatchUpdate {
	_u.mutation.ResetProcessedCount()
	_u.mutation.SetProcessedCount(v)
	return _u
}

// SetNillableProcessedCount sets the "processed_count" field if the given value is not nil.
func (_u *BatchUpdate) SetNillableProcessedCount(v *int) *BatchUpdate {
	if v != nil {
		_u.SetProcessedCount(*v)
	}
	return _u
}

// AddProcessedCount adds value to the "processed_count" field.
func (_u *BatchUpdate) AddProcessedCount(v int) *BatchUpdate {
	_u.mutation.AddProcessedCount(v)
	return _u
}

// AddInvoiceIDs adds the "invoices" edge to the Invoice entity by IDs.
func (_u *BatchUpdate) AddInvoiceIDs(ids ...uuid.UUID) *BatchUpdate {
	_u.mutation.AddInvoiceIDs(ids...)
	return _u
}

// AddInvoices adds the "invoices" edges to the Invoice entity.
func (_u *BatchUpdate) AddInvoices(v ...*Invoice) *BatchUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInvoiceIDs(ids...)
}

// Mutation returns the BatchMutation object of the builder.
func (_u *BatchUpdate) Mutation() *BatchMutation {
	return _u.mutation
}

// ClearInvoices clears all "invoices" edges to the Invoice entity.
func (_u *BatchUpdate) ClearInvoices() *BatchUpdate {
	_u.mutation.ClearInvoices()
	return _u
}

// RemoveInvoiceIDs removes the "invoices" edge to Invoice entities by IDs.
func (_u *BatchUpdate) RemoveInvoiceIDs(ids ...uuid.UUID) *BatchUpdate {
	_u.mutation.RemoveInvoiceIDs(ids...)
	return _u
}

// RemoveInvoices removes "invoices" edges to Invoice entities.
func (_u *BatchUpdate) RemoveInvoices(v ...*Invoice) *BatchUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInvoiceIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BatchUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BatchUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BatchUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BatchUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BatchUpdate) check() error {
	if v, ok := _u.mutation.TotalInvoices(); ok {
		if err := batch.TotalInvoicesValidator(v); err != nil {
			return &ValidationError{Name: "total_invoices", err: fmt.Errorf(`ent: validator failed for field "Batch.total_invoices": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FlaggedCount(); ok {
		if err := batch.FlaggedCountValidator(v); err != nil {
			return &ValidationError{Name: "flagged_count", err: fmt.Errorf(`ent: validator failed for field "Batch.flagged_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessedCount(); ok {
		if err := batch.ProcessedCountValidator(v); err != nil {
			return &ValidationError{Name: "processed_count", err: fmt.Errorf(`ent: validator failed for field "Batch.processed_count": %w`, err)}
		}
	}
	return nil
}

func (_u *BatchUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(batch.Table, batch.Columns, sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(batch.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalParts(); ok {
		_spec.SetField(batch.FieldTotalParts, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalParts(); ok {
		_spec.AddField(batch.FieldTotalParts, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalLabor(); ok {
		_spec.SetField(batch.FieldTotalLabor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalLabor(); ok {
		_spec.AddField(batch.FieldTotalLabor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalTax(); ok {
		_spec.SetField(batch.FieldTotalTax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalTax(); ok {
		_spec.AddField(batch.FieldTotalTax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalInvoices(); ok {
		_spec.SetField(batch.FieldTotalInvoices, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalInvoices(); ok {
		_spec.AddField(batch.FieldTotalInvoices, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FlaggedCount(); ok {
		_spec.SetField(batch.FieldFlaggedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFlaggedCount(); ok {
		_spec.AddField(batch.FieldFlaggedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessedCount(); ok {
		_spec.SetField(batch.FieldProcessedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessedCount(); ok {
		_spec.AddField(batch.FieldProcessedCount, field.TypeInt, value)
	}
	if _u.mutation.InvoicesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batch.InvoicesTable,
			Columns: []string{batch.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInvoicesIDs(); len(nodes) > 0 && !_u.mutation.InvoicesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batch.InvoicesTable,
			Columns: []string{batch.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoicesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batch.InvoicesTable,
			Columns: []string{batch.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{batch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BatchUpdateOne is the builder for updating a single Batch entity.
type BatchUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BatchMutation
}

// SetName sets the "name" field.
func (_u *BatchUpdateOne) SetName(v string) *BatchUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableName(v *string) *BatchUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetTotalParts sets the "total_parts" field.
func (_u *BatchUpdateOne) SetTotalParts(v float64) *BatchUpdateOne {
	_u.mutation.ResetTotalParts()
	_u.mutation.SetTotalParts(v)
	return _u
}

// SetNillableTotalParts sets the "total_parts" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableTotalParts(v *float64) *BatchUpdateOne {
	if v != nil {
		_u.SetTotalParts(*v)
	}
	return _u
}

// AddTotalParts adds value to the "total_parts" field.
func (_u *BatchUpdateOne) AddTotalParts(v float64) *BatchUpdateOne {
	_u.mutation.AddTotalParts(v)
	return _u
}

// SetTotalLabor sets the "total_labor" field.
func (_u *BatchUpdateOne) SetTotalLabor(v float64) *BatchUpdateOne {
	_u.mutation.ResetTotalLabor()
	_u.mutation.SetTotalLabor(v)
	return _u
}

// SetNillableTotalLabor sets the "total_labor" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableTotalLabor(v *float64) *BatchUpdateOne {
	if v != nil {
		_u.SetTotalLabor(*v)
	}
	return _u
}

// AddTotalLabor adds value to the "total_labor" field.
func (_u *BatchUpdateOne) AddTotalLabor(v float64) *BatchUpdateOne {
	_u.mutation.AddTotalLabor(v)
	return _u
}

// SetTotalTax sets the "total_tax" field.
func (_u *BatchUpdateOne) SetTotalTax(v float64) *BatchUpdateOne {
	_u.mutation.ResetTotalTax()
	_u.mutation.SetTotalTax(v)
	return _u
}

// SetNillableTotalTax sets the "total_tax" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableTotalTax(v *float64) *BatchUpdateOne {
	if v != nil {
		_u.SetTotalTax(*v)
	}
	return _u
}

// AddTotalTax adds value to the "total_tax" field.
func (_u *BatchUpdateOne) AddTotalTax(v float64) *BatchUpdateOne {
	_u.mutation.AddTotalTax(v)
	return _u
}

// SetTotalInvoices sets the "total_invoices" field.
func (_u *BatchUpdateOne) SetTotalInvoices(v int) *BatchUpdateOne {
	_u.mutation.ResetTotalInvoices()
	_u.mutation.SetTotalInvoices(v)
	return _u
}

// SetNillableTotalInvoices sets the "total_invoices" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableTotalInvoices(v *int) *BatchUpdateOne {
	if v != nil {
		_u.SetTotalInvoices(*v)
	}
	return _u
}

// AddTotalInvoices adds value to the "total_invoices" field.
func (_u *BatchUpdateOne) AddTotalInvoices(v int) *BatchUpdateOne {
	_u.mutation.AddTotalInvoices(v)
	return _u
}

// SetFlaggedCount sets the "flagged_count" field.
func (_u *BatchUpdateOne) SetFlaggedCount(v int) *BatchUpdateOne {
	_u.mutation.ResetFlaggedCount()
	_u.mutation.SetFlaggedCount(v)
	return _u
}

// SetNillableFlaggedCount sets the "flagged_count" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableFlaggedCount(v *int) *BatchUpdateOne {
	if v != nil {
		_u.SetFlaggedCount(*v)
	}
	return _u
}

// AddFlaggedCount adds value to the "flagged_count" field.
func (_u *BatchUpdateOne) AddFlaggedCount(v int) *BatchUpdateOne {
	_u.mutation.AddFlaggedCount(v)
	return _u
}

// SetProcessedCount sets the "processed_count" field.
func (_u *BatchUpdateOne) SetProcessedCount(v int) *BatchUpdateOne {
	_u.mutation.ResetProcessedCount()
	_u.mutation.SetProcessedCount(v)
	return _u
}

// SetNillableProcessedCount sets the "processed_count" field if the given value is not nil.
func (_u *BatchUpdateOne) SetNillableProcessedCount(v *int) *BatchUpdateOne {
	if v != nil {
		_u.SetProcessedCount(*v)
	}
	return _u
}

// AddProcessedCount adds value to the "processed_count" field.
func (_u *BatchUpdateOne) AddProcessedCount(v int) *BatchUpdateOne {
	_u.mutation.AddProcessedCount(v)
	return _u
}

// AddInvoiceIDs adds the "invoices" edge to the Invoice entity by IDs.
func (_u *BatchUpdateOne) AddInvoiceIDs(ids ...uuid.UUID) *BatchUpdateOne {
	_u.mutation.AddInvoiceIDs(ids...)
	return _u
}

// AddInvoices adds the "invoices" edges to the Invoice entity.
func (_u *BatchUpdateOne) AddInvoices(v ...*Invoice) *BatchUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddInvoiceIDs(ids...)
}

// Mutation returns the BatchMutation object of the builder.
func (_u *BatchUpdateOne) Mutation() *BatchMutation {
	return _u.mutation
}

// ClearInvoices clears all "invoices" edges to the Invoice entity.
func (_u *BatchUpdateOne) ClearInvoices() *BatchUpdateOne {
	_u.mutation.ClearInvoices()
	return _u
}

// RemoveInvoiceIDs removes the "invoices" edge to Invoice entities by IDs.
func (_u *BatchUpdateOne) RemoveInvoiceIDs(ids ...uuid.UUID) *BatchUpdateOne {
	_u.mutation.RemoveInvoiceIDs(ids...)
	return _u
}

// RemoveInvoices removes "invoices" edges to Invoice entities.
func (_u *BatchUpdateOne) RemoveInvoices(v ...*Invoice) *BatchUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveInvoiceIDs(ids...)
}

// Where appends a list predicates to the BatchUpdate builder.
func (_u *BatchUpdateOne) Where(ps ...predicate.Batch) *BatchUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BatchUpdateOne) Select(field string, fields ...string) *BatchUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Batch entity.
func (_u *BatchUpdateOne) Save(ctx context.Context) (*Batch, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BatchUpdateOne) SaveX(ctx context.Context) *Batch {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BatchUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BatchUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *BatchUpdateOne) check() error {
	if v, ok := _u.mutation.TotalInvoices(); ok {
		if err := batch.TotalInvoicesValidator(v); err != nil {
			return &ValidationError{Name: "total_invoices", err: fmt.Errorf(`ent: validator failed for field "Batch.total_invoices": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FlaggedCount(); ok {
		if err := batch.FlaggedCountValidator(v); err != nil {
			return &ValidationError{Name: "flagged_count", err: fmt.Errorf(`ent: validator failed for field "Batch.flagged_count": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ProcessedCount(); ok {
		if err := batch.ProcessedCountValidator(v); err != nil {
			return &ValidationError{Name: "processed_count", err: fmt.Errorf(`ent: validator failed for field "Batch.processed_count": %w`, err)}
		}
	}
	return nil
}

func (_u *BatchUpdateOne) sqlSave(ctx context.Context) (_node *Batch, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(batch.Table, batch.Columns, sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Batch.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, batch.FieldID)
		for _, f := range fields {
			if !batch.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != batch.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(batch.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.TotalParts(); ok {
		_spec.SetField(batch.FieldTotalParts, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalParts(); ok {
		_spec.AddField(batch.FieldTotalParts, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalLabor(); ok {
		_spec.SetField(batch.FieldTotalLabor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalLabor(); ok {
		_spec.AddField(batch.FieldTotalLabor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalTax(); ok {
		_spec.SetField(batch.FieldTotalTax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTotalTax(); ok {
		_spec.AddField(batch.FieldTotalTax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TotalInvoices(); ok {
		_spec.SetField(batch.FieldTotalInvoices, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalInvoices(); ok {
		_spec.AddField(batch.FieldTotalInvoices, field.TypeInt, value)
	}
	if value, ok := _u.mutation.FlaggedCount(); ok {
		_spec.SetField(batch.FieldFlaggedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedFlaggedCount(); ok {
		_spec.AddField(batch.FieldFlaggedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessedCount(); ok {
		_spec.SetField(batch.FieldProcessedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedProcessedCount(); ok {
		_spec.AddField(batch.FieldProcessedCount, field.TypeInt, value)
	}
	if _u.mutation.InvoicesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batch.InvoicesTable,
			Columns: []string{batch.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedInvoicesIDs(); len(nodes) > 0 && !_u.mutation.InvoicesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batch.InvoicesTable,
			Columns: []string{batch.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.InvoicesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   batch.InvoicesTable,
			Columns: []string{batch.InvoicesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Batch{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{batch.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
