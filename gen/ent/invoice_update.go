// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/kelechimadu/invoice-tally/gen/ent/batch"
	"github.com/kelechimadu/invoice-tally/gen/ent/invoice"
	"github.com/kelechimadu/invoice-tally/gen/ent/predicate"
)

// InvoiceUpdate is the builder for updating Invoice entities.
type InvoiceUpdate struct {
	config
	hooks    []Hook
	mutation *InvoiceMutation
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdate) Where(ps ...predicate.Invoice) *InvoiceUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetBatchID sets the "batch_id" field.
func (_u *InvoiceUpdate) SetBatchID(v uuid.UUID) *InvoiceUpdate {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableBatchID(v *uuid.UUID) *InvoiceUpdate {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *InvoiceUpdate) SetFilename(v string) *InvoiceUpdate {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableFilename(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetParts sets the "parts" field.
func (_u *InvoiceUpdate) SetParts(v float64) *InvoiceUpdate {
	_u.mutation.ResetParts()
	_u.mutation.SetParts(v)
	return _u
}

// SetNillableParts sets the "parts" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableParts(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetParts(*v)
	}
	return _u
}

// AddParts adds value to the "parts" field.
func (_u *InvoiceUpdate) AddParts(v float64) *InvoiceUpdate {
	_u.mutation.AddParts(v)
	return _u
}

// SetLabor sets the "labor" field.
func (_u *InvoiceUpdate) SetLabor(v float64) *InvoiceUpdate {
	_u.mutation.ResetLabor()
	_u.mutation.SetLabor(v)
	return _u
}

// SetNillableLabor sets the "labor" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableLabor(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetLabor(*v)
	}
	return _u
}

// AddLabor adds value to the "labor" field.
func (_u *InvoiceUpdate) AddLabor(v float64) *InvoiceUpdate {
	_u.mutation.AddLabor(v)
	return _u
}

// SetTaxAmount sets the "tax_amount" field.
func (_u *InvoiceUpdate) SetTaxAmount(v float64) *InvoiceUpdate {
	_u.mutation.ResetTaxAmount()
	_u.mutation.SetTaxAmount(v)
	return _u
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableTaxAmount(v *float64) *InvoiceUpdate {
	if v != nil {
		_u.SetTaxAmount(*v)
	}
	return _u
}

// AddTaxAmount adds value to the "tax_amount" field.
func (_u *InvoiceUpdate) AddTaxAmount(v float64) *InvoiceUpdate {
	_u.mutation.AddTaxAmount(v)
	return _u
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (_u *InvoiceUpdate) ClearTaxAmount() *InvoiceUpdate {
	_u.mutation.ClearTaxAmount()
	return _u
}

// SetTaxNote sets the "tax_note" field.
func (_u *InvoiceUpdate) SetTaxNote(v string) *InvoiceUpdate {
	_u.mutation.SetTaxNote(v)
	return _u
}

// SetNillableTaxNote sets the "tax_note" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableTaxNote(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetTaxNote(*v)
	}
	return _u
}

// ClearTaxNote clears the value of the "tax_note" field.
func (_u *InvoiceUpdate) ClearTaxNote() *InvoiceUpdate {
	_u.mutation.ClearTaxNote()
	return _u
}

// SetFlagged sets the "flagged" field.
func (_u *InvoiceUpdate) SetFlagged(v bool) *InvoiceUpdate {
	_u.mutation.SetFlagged(v)
	return _u
}

// SetNillableFlagged sets the "flagged" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableFlagged(v *bool) *InvoiceUpdate {
	if v != nil {
		_u.SetFlagged(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *InvoiceUpdate) SetConfidence(v invoice.Confidence) *InvoiceUpdate {
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableConfidence(v *invoice.Confidence) *InvoiceUpdate {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *InvoiceUpdate) SetErrorMessage(v string) *InvoiceUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableErrorMessage(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *InvoiceUpdate) ClearErrorMessage() *InvoiceUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *InvoiceUpdate) SetRawText(v string) *InvoiceUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableRawText(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// SetStorageKey sets the "storage_key" field.
func (_u *InvoiceUpdate) SetStorageKey(v string) *InvoiceUpdate {
	_u.mutation.SetStorageKey(v)
	return _u
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (_u *InvoiceUpdate) SetNillableStorageKey(v *string) *InvoiceUpdate {
	if v != nil {
		_u.SetStorageKey(*v)
	}
	return _u
}

// ClearStorageKey clears the value of the "storage_key" field.
func (_u *InvoiceUpdate) ClearStorageKey() *InvoiceUpdate {
	_u.mutation.ClearStorageKey()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdate) SetUpdatedAt(v time.Time) *InvoiceUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBatch sets the "batch" edge to the Batch entity.
func (_u *InvoiceUpdate) SetBatch(v *Batch) *InvoiceUpdate {
	return _u.SetBatchID(v.ID)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdate) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearBatch clears the "batch" edge to the Batch entity.
func (_u *InvoiceUpdate) ClearBatch() *InvoiceUpdate {
	_u.mutation.ClearBatch()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *InvoiceUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *InvoiceUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdate) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := invoice.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Invoice.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := invoice.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Invoice.confidence": %w`, err)}
		}
	}
	if _u.mutation.BatchCleared() && len(_u.mutation.BatchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Invoice.batch"`)
	}
	return nil
}

func (_u *InvoiceUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(invoice.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Parts(); ok {
		_spec.SetField(invoice.FieldParts, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedParts(); ok {
		_spec.AddField(invoice.FieldParts, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Labor(); ok {
		_spec.SetField(invoice.FieldLabor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLabor(); ok {
		_spec.AddField(invoice.FieldLabor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TaxAmount(); ok {
		_spec.SetField(invoice.FieldTaxAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxAmount(); ok {
		_spec.AddField(invoice.FieldTaxAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TaxAmountCleared() {
		_spec.ClearField(invoice.FieldTaxAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TaxNote(); ok {
		_spec.SetField(invoice.FieldTaxNote, field.TypeString, value)
	}
	if _u.mutation.TaxNoteCleared() {
		_spec.ClearField(invoice.FieldTaxNote, field.TypeString)
	}
	if value, ok := _u.mutation.Flagged(); ok {
		_spec.SetField(invoice.FieldFlagged, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(invoice.FieldConfidence, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(invoice.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(invoice.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(invoice.FieldRawText, field.TypeString, value)
	}
	if value, ok := _u.mutation.StorageKey(); ok {
		_spec.SetField(invoice.FieldStorageKey, field.TypeString, value)
	}
	if _u.mutation.StorageKeyCleared() {
		_spec.ClearField(invoice.FieldStorageKey, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BatchCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.BatchTable,
			Columns: []string{invoice.BatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.BatchTable,
			Columns: []string{invoice.BatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// InvoiceUpdateOne is the builder for updating a single Invoice entity.
type InvoiceUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *InvoiceMutation
}

// SetBatchID sets the "batch_id" field.
func (_u *InvoiceUpdateOne) SetBatchID(v uuid.UUID) *InvoiceUpdateOne {
	_u.mutation.SetBatchID(v)
	return _u
}

// SetNillableBatchID sets the "batch_id" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableBatchID(v *uuid.UUID) *InvoiceUpdateOne {
	if v != nil {
		_u.SetBatchID(*v)
	}
	return _u
}

// SetFilename sets the "filename" field.
func (_u *InvoiceUpdateOne) SetFilename(v string) *InvoiceUpdateOne {
	_u.mutation.SetFilename(v)
	return _u
}

// SetNillableFilename sets the "filename" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableFilename(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetFilename(*v)
	}
	return _u
}

// SetParts sets the "parts" field.
func (_u *InvoiceUpdateOne) SetParts(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetParts()
	_u.mutation.SetParts(v)
	return _u
}

// SetNillableParts sets the "parts" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableParts(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetParts(*v)
	}
	return _u
}

// AddParts adds value to the "parts" field.
func (_u *InvoiceUpdateOne) AddParts(v float64) *InvoiceUpdateOne {
	_u.mutation.AddParts(v)
	return _u
}

// SetLabor sets the "labor" field.
func (_u *InvoiceUpdateOne) SetLabor(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetLabor()
	_u.mutation.SetLabor(v)
	return _u
}

// SetNillableLabor sets the "labor" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableLabor(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetLabor(*v)
	}
	return _u
}

// AddLabor adds value to the "labor" field.
func (_u *InvoiceUpdateOne) AddLabor(v float64) *InvoiceUpdateOne {
	_u.mutation.AddLabor(v)
	return _u
}

// SetTaxAmount sets the "tax_amount" field.
func (_u *InvoiceUpdateOne) SetTaxAmount(v float64) *InvoiceUpdateOne {
	_u.mutation.ResetTaxAmount()
	_u.mutation.SetTaxAmount(v)
	return _u
}

// SetNillableTaxAmount sets the "tax_amount" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableTaxAmount(v *float64) *InvoiceUpdateOne {
	if v != nil {
		_u.SetTaxAmount(*v)
	}
	return _u
}

// AddTaxAmount adds value to the "tax_amount" field.
func (_u *InvoiceUpdateOne) AddTaxAmount(v float64) *InvoiceUpdateOne {
	_u.mutation.AddTaxAmount(v)
	return _u
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (_u *InvoiceUpdateOne) ClearTaxAmount() *InvoiceUpdateOne {
	_u.mutation.ClearTaxAmount()
	return _u
}

// SetTaxNote sets the "tax_note" field.
func (_u *InvoiceUpdateOne) SetTaxNote(v string) *InvoiceUpdateOne {
	_u.mutation.SetTaxNote(v)
	return _u
}

// SetNillableTaxNote sets the "tax_note" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableTaxNote(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetTaxNote(*v)
	}
	return _u
}

// ClearTaxNote clears the value of the "tax_note" field.
func (_u *InvoiceUpdateOne) ClearTaxNote() *InvoiceUpdateOne {
	_u.mutation.ClearTaxNote()
	return _u
}

// SetFlagged sets the "flagged" field.
func (_u *InvoiceUpdateOne) SetFlagged(v bool) *InvoiceUpdateOne {
	_u.mutation.SetFlagged(v)
	return _u
}

// SetNillableFlagged sets the "flagged" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableFlagged(v *bool) *InvoiceUpdateOne {
	if v != nil {
		_u.SetFlagged(*v)
	}
	return _u
}

// SetConfidence sets the "confidence" field.
func (_u *InvoiceUpdateOne) SetConfidence(v invoice.Confidence) *InvoiceUpdateOne {
	_u.mutation.SetConfidence(v)
	return _u
}

// SetNillableConfidence sets the "confidence" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableConfidence(v *invoice.Confidence) *InvoiceUpdateOne {
	if v != nil {
		_u.SetConfidence(*v)
	}
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *InvoiceUpdateOne) SetErrorMessage(v string) *InvoiceUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableErrorMessage(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *InvoiceUpdateOne) ClearErrorMessage() *InvoiceUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *InvoiceUpdateOne) SetRawText(v string) *InvoiceUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableRawText(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// SetStorageKey sets the "storage_key" field.
func (_u *InvoiceUpdateOne) SetStorageKey(v string) *InvoiceUpdateOne {
	_u.mutation.SetStorageKey(v)
	return _u
}

// SetNillableStorageKey sets the "storage_key" field if the given value is not nil.
func (_u *InvoiceUpdateOne) SetNillableStorageKey(v *string) *InvoiceUpdateOne {
	if v != nil {
		_u.SetStorageKey(*v)
	}
	return _u
}

// ClearStorageKey clears the value of the "storage_key" field.
func (_u *InvoiceUpdateOne) ClearStorageKey() *InvoiceUpdateOne {
	_u.mutation.ClearStorageKey()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *InvoiceUpdateOne) SetUpdatedAt(v time.Time) *InvoiceUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetBatch sets the "batch" edge to the Batch entity.
func (_u *InvoiceUpdateOne) SetBatch(v *Batch) *InvoiceUpdateOne {
	return _u.SetBatchID(v.ID)
}

// Mutation returns the InvoiceMutation object of the builder.
func (_u *InvoiceUpdateOne) Mutation() *InvoiceMutation {
	return _u.mutation
}

// ClearBatch clears the "batch" edge to the Batch entity.
func (_u *InvoiceUpdateOne) ClearBatch() *InvoiceUpdateOne {
	_u.mutation.ClearBatch()
	return _u
}

// Where appends a list predicates to the InvoiceUpdate builder.
func (_u *InvoiceUpdateOne) Where(ps ...predicate.Invoice) *InvoiceUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *InvoiceUpdateOne) Select(field string, fields ...string) *InvoiceUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Invoice entity.
func (_u *InvoiceUpdateOne) Save(ctx context.Context) (*Invoice, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *InvoiceUpdateOne) SaveX(ctx context.Context) *Invoice {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *InvoiceUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *InvoiceUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *InvoiceUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := invoice.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *InvoiceUpdateOne) check() error {
	if v, ok := _u.mutation.Filename(); ok {
		if err := invoice.FilenameValidator(v); err != nil {
			return &ValidationError{Name: "filename", err: fmt.Errorf(`ent: validator failed for field "Invoice.filename": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Confidence(); ok {
		if err := invoice.ConfidenceValidator(v); err != nil {
			return &ValidationError{Name: "confidence", err: fmt.Errorf(`ent: validator failed for field "Invoice.confidence": %w`, err)}
		}
	}
	if _u.mutation.BatchCleared() && len(_u.mutation.BatchIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Invoice.batch"`)
	}
	return nil
}

func (_u *InvoiceUpdateOne) sqlSave(ctx context.Context) (_node *Invoice, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(invoice.Table, invoice.Columns, sqlgraph.NewFieldSpec(invoice.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Invoice.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, invoice.FieldID)
		for _, f := range fields {
			if !invoice.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != invoice.FieldID {
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
	if value, ok := _u.mutation.Filename(); ok {
		_spec.SetField(invoice.FieldFilename, field.TypeString, value)
	}
	if value, ok := _u.mutation.Parts(); ok {
		_spec.SetField(invoice.FieldParts, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedParts(); ok {
		_spec.AddField(invoice.FieldParts, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Labor(); ok {
		_spec.SetField(invoice.FieldLabor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLabor(); ok {
		_spec.AddField(invoice.FieldLabor, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.TaxAmount(); ok {
		_spec.SetField(invoice.FieldTaxAmount, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedTaxAmount(); ok {
		_spec.AddField(invoice.FieldTaxAmount, field.TypeFloat64, value)
	}
	if _u.mutation.TaxAmountCleared() {
		_spec.ClearField(invoice.FieldTaxAmount, field.TypeFloat64)
	}
	if value, ok := _u.mutation.TaxNote(); ok {
		_spec.SetField(invoice.FieldTaxNote, field.TypeString, value)
	}
	if _u.mutation.TaxNoteCleared() {
		_spec.ClearField(invoice.FieldTaxNote, field.TypeString)
	}
	if value, ok := _u.mutation.Flagged(); ok {
		_spec.SetField(invoice.FieldFlagged, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Confidence(); ok {
		_spec.SetField(invoice.FieldConfidence, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(invoice.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(invoice.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(invoice.FieldRawText, field.TypeString, value)
	}
	if value, ok := _u.mutation.StorageKey(); ok {
		_spec.SetField(invoice.FieldStorageKey, field.TypeString, value)
	}
	if _u.mutation.StorageKeyCleared() {
		_spec.ClearField(invoice.FieldStorageKey, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(invoice.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.BatchCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.BatchTable,
			Columns: []string{invoice.BatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.BatchIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   invoice.BatchTable,
			Columns: []string{invoice.BatchColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Invoice{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{invoice.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
