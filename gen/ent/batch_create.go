// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/google/uuid"
	"github.com/kelechimadu/invoice-tally/gen/ent/batch"
	"github.com/kelechimadu/invoice-tally/gen/ent/invoice"
)

// BatchCreate is the builder for creating a Batch entity.
type BatchCreate struct {
	config
	mutation *BatchMutation
	hooks    []Hook
}

// SetUserID sets the "user_id" field.
func (_c *BatchCreate) SetUserID(v string) *BatchCreate {
	_c.mutation.SetUserID(v)
	return _c
}

// SetName sets the "name" field.
func (_c *BatchCreate) SetName(v string) *BatchCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_c *BatchCreate) SetNillableName(v *string) *BatchCreate {
	if v != nil {
		_c.SetName(*v)
	}
	return _c
}

// SetTotalParts sets the "total_parts" field.
func (_c *BatchCreate) SetTotalParts(v float64) *BatchCreate {
	_c.mutation.SetTotalParts(v)
	return _c
}

// SetTotalLabor sets the "total_labor" field.
func (_c *BatchCreate) SetTotalLabor(v float64) *BatchCreate {
	_c.mutation.SetTotalLabor(v)
	return _c
}

// SetTotalTax sets the "total_tax" field.
func (_c *BatchCreate) SetTotalTax(v float64) *BatchCreate {
	_c.mutation.SetTotalTax(v)
	return _c
}

// SetTotalInvoices sets the "total_invoices" field.
func (_c *BatchCreate) SetTotalInvoices(v int) *BatchCreate {
	_c.mutation.SetTotalInvoices(v)
	return _c
}

// SetFlaggedCount sets the "flagged_count" field.
func (_c *BatchCreate) SetFlaggedCount(v int) *BatchCreate {
	_c.mutation.SetFlaggedCount(v)
	return _c
}

// SetProcessedCount sets the "processed_count" field.
func (_c *BatchCreate) SetProcessedCount(v int) *BatchCreate {
	_c.mutation.SetProcessedCount(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BatchCreate) SetCreatedAt(v time.Time) *BatchCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BatchCreate) SetNillableCreatedAt(v *time.Time) *BatchCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BatchCreate) SetID(v uuid.UUID) *BatchCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *BatchCreate) SetNillableID(v *uuid.UUID) *BatchCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// AddInvoiceIDs adds the "invoices" edge to the Invoice entity by IDs.
func (_c *BatchCreate) AddInvoiceIDs(ids ...uuid.UUID) *BatchCreate {
	_c.mutation.AddInvoiceIDs(ids...)
	return _c
}

// AddInvoices adds the "invoices" edges to the Invoice entity.
func (_c *BatchCreate) AddInvoices(v ...*Invoice) *BatchCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddInvoiceIDs(ids...)
}

// Mutation returns the BatchMutation object of the builder.
func (_c *BatchCreate) Mutation() *BatchMutation {
	return _c.mutation
}

// Save creates the Batch in the database.
func (_c *BatchCreate) Save(ctx context.Context) (*Batch, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BatchCreate) SaveX(ctx context.Context) *Batch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BatchCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BatchCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BatchCreate) defaults() {
	if _, ok := _c.mutation.Name(); !ok {
		v := batch.DefaultName
		_c.mutation.SetName(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := batch.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := batch.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BatchCreate) check() error {
	if _, ok := _c.mutation.UserID(); !ok {
		return &ValidationError{Name: "user_id", err: errors.New(`ent: missing required field "Batch.user_id"`)}
	}
	if v, ok := _c.mutation.UserID(); ok {
		if err := batch.UserIDValidator(v); err != nil {
			return &ValidationError{Name: "user_id", err: fmt.Errorf(`ent: validator failed for field "Batch.user_id": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Batch.name"`)}
	}
	if _, ok := _c.mutation.TotalParts(); !ok {
		return &ValidationError{Name: "total_parts", err: errors.New(`ent: missing required field "Batch.total_parts"`)}
	}
	if _, ok := _c.mutation.TotalLabor(); !ok {
		return &ValidationError{Name: "total_labor", err: errors.New(`ent: missing required field "Batch.total_labor"`)}
	}
	if _, ok := _c.mutation.TotalTax(); !ok {
		return &ValidationError{Name: "total_tax", err: errors.New(`ent: missing required field "Batch.total_tax"`)}
	}
	if _, ok := _c.mutation.TotalInvoices(); !ok {
		return &ValidationError{Name: "total_invoices", err: errors.New(`ent: missing required field "Batch.total_invoices"`)}
	}
	if v, ok := _c.mutation.TotalInvoices(); ok {
		if err := batch.TotalInvoicesValidator(v); err != nil {
			return &ValidationError{Name: "total_invoices", err: fmt.Errorf(`ent: validator failed for field "Batch.total_invoices": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FlaggedCount(); !ok {
		return &ValidationError{Name: "flagged_count", err: errors.New(`ent: missing required field "Batch.flagged_count"`)}
	}
	if v, ok := _c.mutation.FlaggedCount(); ok {
		if err := batch.FlaggedCountValidator(v); err != nil {
			return &ValidationError{Name: "flagged_count", err: fmt.Errorf(`ent: validator failed for field "Batch.flagged_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ProcessedCount(); !ok {
		return &ValidationError{Name: "processed_count", err: errors.New(`ent: missing required field "Batch.processed_count"`)}
	}
	if v, ok := _c.mutation.ProcessedCount(); ok {
		if err := batch.ProcessedCountValidator(v); err != nil {
			return &ValidationError{Name: "processed_count", err: fmt.Errorf(`ent: validator failed for field "Batch.processed_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Batch.created_at"`)}
	}
	return nil
}

func (_c *BatchCreate) sqlSave(ctx context.Context) (*Batch, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BatchCreate) createSpec() (*Batch, *sqlgraph.CreateSpec) {
	var (
		_node = &Batch{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(batch.Table, sqlgraph.NewFieldSpec(batch.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.UserID(); ok {
		_spec.SetField(batch.FieldUserID, field.TypeString, value)
		_node.UserID = value
	}
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(batch.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.TotalParts(); ok {
		_spec.SetField(batch.FieldTotalParts, field.TypeFloat64, value)
		_node.TotalParts = value
	}
	if value, ok := _c.mutation.TotalLabor(); ok {
		_spec.SetField(batch.FieldTotalLabor, field.TypeFloat64, value)
		_node.TotalLabor = value
	}
	if value, ok := _c.mutation.TotalTax(); ok {
		_spec.SetField(batch.FieldTotalTax, field.TypeFloat64, value)
		_node.TotalTax = value
	}
	if value, ok := _c.mutation.TotalInvoices(); ok {
		_spec.SetField(batch.FieldTotalInvoices, field.TypeInt, value)
		_node.TotalInvoices = value
	}
	if value, ok := _c.mutation.FlaggedCount(); ok {
		_spec.SetField(batch.FieldFlaggedCount, field.TypeInt, value)
		_node.FlaggedCount = value
	}
	if value, ok := _c.mutation.ProcessedCount(); ok {
		_spec.SetField(batch.FieldProcessedCount, field.TypeInt, value)
		_node.ProcessedCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(batch.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.InvoicesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// BatchCreateBulk is the builder for creating many Batch entities in bulk.
type BatchCreateBulk struct {
	config
	err      error
	builders []*BatchCreate
}

// Save creates the Batch entities in the database.
func (_c *BatchCreateBulk) Save(ctx context.Context) ([]*Batch, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Batch, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BatchMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *BatchCreateBulk) SaveX(ctx context.Context) []*Batch {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BatchCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BatchCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
