// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/kelechimadu/invoice-tally/gen/ent/batch"
	"github.com/kelechimadu/invoice-tally/gen/ent/invoice"
	"github.com/kelechimadu/invoice-tally/gen/ent/predicate"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeBatch   = "Batch"
	TypeInvoice = "Invoice"
)

// BatchMutation represents an operation that mutates the Batch nodes in the graph.
type BatchMutation struct {
	config
	op                 Op
	typ                string
	id                 *uuid.UUID
	user_id            *string
	name               *string
	total_parts        *float64
	addtotal_parts     *float64
	total_labor        *float64
	addtotal_labor     *float64
	total_tax          *float64
	addtotal_tax       *float64
	total_invoices     *int
	addtotal_invoices  *int
	flagged_count      *int
	addflagged_count   *int
	processed_count    *int
	addprocessed_count *int
	created_at         *time.Time
	clearedFields      map[string]struct{}
	invoices           map[uuid.UUID]struct{}
	removedinvoices    map[uuid.UUID]struct{}
	clearedinvoices    bool
	done               bool
	oldValue           func(context.Context) (*Batch, error)
	predicates         []predicate.Batch
}

var _ ent.Mutation = (*BatchMutation)(nil)

// batchOption allows management of the mutation configuration using functional options.
type batchOption func(*BatchMutation)

// newBatchMutation creates new mutation for the Batch entity.
func newBatchMutation(c config, op Op, opts ...batchOption) *BatchMutation {
	m := &BatchMutation{
		config:        c,
		op:            op,
		typ:           TypeBatch,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBatchID sets the ID field of the mutation.
func withBatchID(id uuid.UUID) batchOption {
	return func(m *BatchMutation) {
		var (
			err   error
			once  sync.Once
			value *Batch
		)
		m.oldValue = func(ctx context.Context) (*Batch, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Batch.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBatch sets the old Batch of the mutation.
func withBatch(node *Batch) batchOption {
	return func(m *BatchMutation) {
		m.oldValue = func(context.Context) (*Batch, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BatchMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BatchMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Batch entities.
func (m *BatchMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BatchMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BatchMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Batch.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetUserID sets the "user_id" field.
func (m *BatchMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *BatchMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *BatchMutation) ResetUserID() {
	m.user_id = nil
}

// SetName sets the "name" field.
func (m *BatchMutation) SetName(s string) {
	m.name = &s
}

// Name returns the value of the "name" field in the mutation.
func (m *BatchMutation) Name() (r string, exists bool) {
	v := m.name
	if v == nil {
		return
	}
	return *v, true
}

// OldName returns the old "name" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldName(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldName: %w", err)
	}
	return oldValue.Name, nil
}

// ResetName resets all changes to the "name" field.
func (m *BatchMutation) ResetName() {
	m.name = nil
}

// SetTotalParts sets the "total_parts" field.
func (m *BatchMutation) SetTotalParts(f float64) {
	m.total_parts = &f
	m.addtotal_parts = nil
}

// TotalParts returns the value of the "total_parts" field in the mutation.
func (m *BatchMutation) TotalParts() (r float64, exists bool) {
	v := m.total_parts
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalParts returns the old "total_parts" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldTotalParts(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalParts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalParts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalParts: %w", err)
	}
	return oldValue.TotalParts, nil
}

// AddTotalParts adds f to the "total_parts" field.
func (m *BatchMutation) AddTotalParts(f float64) {
	if m.addtotal_parts != nil {
		*m.addtotal_parts += f
	} else {
		m.addtotal_parts = &f
	}
}

// AddedTotalParts returns the value that was added to the "total_parts" field in this mutation.
func (m *BatchMutation) AddedTotalParts() (r float64, exists bool) {
	v := m.addtotal_parts
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalParts resets all changes to the "total_parts" field.
func (m *BatchMutation) ResetTotalParts() {
	m.total_parts = nil
	m.addtotal_parts = nil
}

// SetTotalLabor sets the "total_labor" field.
func (m *BatchMutation) SetTotalLabor(f float64) {
	m.total_labor = &f
	m.addtotal_labor = nil
}

// TotalLabor returns the value of the "total_labor" field in the mutation.
func (m *BatchMutation) TotalLabor() (r float64, exists bool) {
	v := m.total_labor
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalLabor returns the old "total_labor" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldTotalLabor(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalLabor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalLabor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalLabor: %w", err)
	}
	return oldValue.TotalLabor, nil
}

// AddTotalLabor adds f to the "total_labor" field.
func (m *BatchMutation) AddTotalLabor(f float64) {
	if m.addtotal_labor != nil {
		*m.addtotal_labor += f
	} else {
		m.addtotal_labor = &f
	}
}

// AddedTotalLabor returns the value that was added to the "total_labor" field in this mutation.
func (m *BatchMutation) AddedTotalLabor() (r float64, exists bool) {
	v := m.addtotal_labor
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalLabor resets all changes to the "total_labor" field.
func (m *BatchMutation) ResetTotalLabor() {
	m.total_labor = nil
	m.addtotal_labor = nil
}

// SetTotalTax sets the "total_tax" field.
func (m *BatchMutation) SetTotalTax(f float64) {
	m.total_tax = &f
	m.addtotal_tax = nil
}

// TotalTax returns the value of the "total_tax" field in the mutation.
func (m *BatchMutation) TotalTax() (r float64, exists bool) {
	v := m.total_tax
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalTax returns the old "total_tax" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldTotalTax(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalTax is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalTax requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalTax: %w", err)
	}
	return oldValue.TotalTax, nil
}

// AddTotalTax adds f to the "total_tax" field.
func (m *BatchMutation) AddTotalTax(f float64) {
	if m.addtotal_tax != nil {
		*m.addtotal_tax += f
	} else {
		m.addtotal_tax = &f
	}
}

// AddedTotalTax returns the value that was added to the "total_tax" field in this mutation.
func (m *BatchMutation) AddedTotalTax() (r float64, exists bool) {
	v := m.addtotal_tax
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalTax resets all changes to the "total_tax" field.
func (m *BatchMutation) ResetTotalTax() {
	m.total_tax = nil
	m.addtotal_tax = nil
}

// SetTotalInvoices sets the "total_invoices" field.
func (m *BatchMutation) SetTotalInvoices(i int) {
	m.total_invoices = &i
	m.addtotal_invoices = nil
}

// TotalInvoices returns the value of the "total_invoices" field in the mutation.
func (m *BatchMutation) TotalInvoices() (r int, exists bool) {
	v := m.total_invoices
	if v == nil {
		return
	}
	return *v, true
}

// OldTotalInvoices returns the old "total_invoices" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldTotalInvoices(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTotalInvoices is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTotalInvoices requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTotalInvoices: %w", err)
	}
	return oldValue.TotalInvoices, nil
}

// AddTotalInvoices adds i to the "total_invoices" field.
func (m *BatchMutation) AddTotalInvoices(i int) {
	if m.addtotal_invoices != nil {
		*m.addtotal_invoices += i
	} else {
		m.addtotal_invoices = &i
	}
}

// AddedTotalInvoices returns the value that was added to the "total_invoices" field in this mutation.
func (m *BatchMutation) AddedTotalInvoices() (r int, exists bool) {
	v := m.addtotal_invoices
	if v == nil {
		return
	}
	return *v, true
}

// ResetTotalInvoices resets all changes to the "total_invoices" field.
func (m *BatchMutation) ResetTotalInvoices() {
	m.total_invoices = nil
	m.addtotal_invoices = nil
}

// SetFlaggedCount sets the "flagged_count" field.
func (m *BatchMutation) SetFlaggedCount(i int) {
	m.flagged_count = &i
	m.addflagged_count = nil
}

// FlaggedCount returns the value of the "flagged_count" field in the mutation.
func (m *BatchMutation) FlaggedCount() (r int, exists bool) {
	v := m.flagged_count
	if v == nil {
		return
	}
	return *v, true
}

// OldFlaggedCount returns the old "flagged_count" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldFlaggedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlaggedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlaggedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlaggedCount: %w", err)
	}
	return oldValue.FlaggedCount, nil
}

// AddFlaggedCount adds i to the "flagged_count" field.
func (m *BatchMutation) AddFlaggedCount(i int) {
	if m.addflagged_count != nil {
		*m.addflagged_count += i
	} else {
		m.addflagged_count = &i
	}
}

// AddedFlaggedCount returns the value that was added to the "flagged_count" field in this mutation.
func (m *BatchMutation) AddedFlaggedCount() (r int, exists bool) {
	v := m.addflagged_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetFlaggedCount resets all changes to the "flagged_count" field.
func (m *BatchMutation) ResetFlaggedCount() {
	m.flagged_count = nil
	m.addflagged_count = nil
}

// SetProcessedCount sets the "processed_count" field.
func (m *BatchMutation) SetProcessedCount(i int) {
	m.processed_count = &i
	m.addprocessed_count = nil
}

// ProcessedCount returns the value of the "processed_count" field in the mutation.
func (m *BatchMutation) ProcessedCount() (r int, exists bool) {
	v := m.processed_count
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessedCount returns the old "processed_count" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldProcessedCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessedCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessedCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessedCount: %w", err)
	}
	return oldValue.ProcessedCount, nil
}

// AddProcessedCount adds i to the "processed_count" field.
func (m *BatchMutation) AddProcessedCount(i int) {
	if m.addprocessed_count != nil {
		*m.addprocessed_count += i
	} else {
		m.addprocessed_count = &i
	}
}

// AddedProcessedCount returns the value that was added to the "processed_count" field in this mutation.
func (m *BatchMutation) AddedProcessedCount() (r int, exists bool) {
	v := m.addprocessed_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetProcessedCount resets all changes to the "processed_count" field.
func (m *BatchMutation) ResetProcessedCount() {
	m.processed_count = nil
	m.addprocessed_count = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BatchMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BatchMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Batch entity.
// If the Batch object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BatchMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BatchMutation) ResetCreatedAt() {
	m.created_at = nil
}

// AddInvoiceIDs adds the "invoices" edge to the Invoice entity by ids.
func (m *BatchMutation) AddInvoiceIDs(ids ...uuid.UUID) {
	if m.invoices == nil {
		m.invoices = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.invoices[ids[i]] = struct{}{}
	}
}

// ClearInvoices clears the "invoices" edge to the Invoice entity.
func (m *BatchMutation) ClearInvoices() {
	m.clearedinvoices = true
}

// InvoicesCleared reports if the "invoices" edge to the Invoice entity was cleared.
func (m *BatchMutation) InvoicesCleared() bool {
	return m.clearedinvoices
}

// RemoveInvoiceIDs removes the "invoices" edge to the Invoice entity by IDs.
func (m *BatchMutation) RemoveInvoiceIDs(ids ...uuid.UUID) {
	if m.removedinvoices == nil {
		m.removedinvoices = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.invoices, ids[i])
		m.removedinvoices[ids[i]] = struct{}{}
	}
}

// RemovedInvoices returns the removed IDs of the "invoices" edge to the Invoice entity.
func (m *BatchMutation) RemovedInvoicesIDs() (ids []uuid.UUID) {
	for id := range m.removedinvoices {
		ids = append(ids, id)
	}
	return
}

// InvoicesIDs returns the "invoices" edge IDs in the mutation.
func (m *BatchMutation) InvoicesIDs() (ids []uuid.UUID) {
	for id := range m.invoices {
		ids = append(ids, id)
	}
	return
}

// ResetInvoices resets all changes to the "invoices" edge.
func (m *BatchMutation) ResetInvoices() {
	m.invoices = nil
	m.clearedinvoices = false
	m.removedinvoices = nil
}

// Where appends a list predicates to the BatchMutation builder.
func (m *BatchMutation) Where(ps ...predicate.Batch) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BatchMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BatchMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Batch, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BatchMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BatchMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Batch).
func (m *BatchMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BatchMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.user_id != nil {
		fields = append(fields, batch.FieldUserID)
	}
	if m.name != nil {
		fields = append(fields, batch.FieldName)
	}
	if m.total_parts != nil {
		fields = append(fields, batch.FieldTotalParts)
	}
	if m.total_labor != nil {
		fields = append(fields, batch.FieldTotalLabor)
	}
	if m.total_tax != nil {
		fields = append(fields, batch.FieldTotalTax)
	}
	if m.total_invoices != nil {
		fields = append(fields, batch.FieldTotalInvoices)
	}
	if m.flagged_count != nil {
		fields = append(fields, batch.FieldFlaggedCount)
	}
	if m.processed_count != nil {
		fields = append(fields, batch.FieldProcessedCount)
	}
	if m.created_at != nil {
		fields = append(fields, batch.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BatchMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case batch.FieldUserID:
		return m.UserID()
	case batch.FieldName:
		return m.Name()
	case batch.FieldTotalParts:
		return m.TotalParts()
	case batch.FieldTotalLabor:
		return m.TotalLabor()
	case batch.FieldTotalTax:
		return m.TotalTax()
	case batch.FieldTotalInvoices:
		return m.TotalInvoices()
	case batch.FieldFlaggedCount:
		return m.FlaggedCount()
	case batch.FieldProcessedCount:
		return m.ProcessedCount()
	case batch.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BatchMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case batch.FieldUserID:
		return m.OldUserID(ctx)
	case batch.FieldName:
		return m.OldName(ctx)
	case batch.FieldTotalParts:
		return m.OldTotalParts(ctx)
	case batch.FieldTotalLabor:
		return m.OldTotalLabor(ctx)
	case batch.FieldTotalTax:
		return m.OldTotalTax(ctx)
	case batch.FieldTotalInvoices:
		return m.OldTotalInvoices(ctx)
	case batch.FieldFlaggedCount:
		return m.OldFlaggedCount(ctx)
	case batch.FieldProcessedCount:
		return m.OldProcessedCount(ctx)
	case batch.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Batch field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BatchMutation) SetField(name string, value ent.Value) error {
	switch name {
	case batch.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case batch.FieldName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetName(v)
		return nil
	case batch.FieldTotalParts:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalParts(v)
		return nil
	case batch.FieldTotalLabor:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalLabor(v)
		return nil
	case batch.FieldTotalTax:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalTax(v)
		return nil
	case batch.FieldTotalInvoices:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTotalInvoices(v)
		return nil
	case batch.FieldFlaggedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlaggedCount(v)
		return nil
	case batch.FieldProcessedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessedCount(v)
		return nil
	case batch.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Batch field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BatchMutation) AddedFields() []string {
	var fields []string
	if m.addtotal_parts != nil {
		fields = append(fields, batch.FieldTotalParts)
	}
	if m.addtotal_labor != nil {
		fields = append(fields, batch.FieldTotalLabor)
	}
	if m.addtotal_tax != nil {
		fields = append(fields, batch.FieldTotalTax)
	}
	if m.addtotal_invoices != nil {
		fields = append(fields, batch.FieldTotalInvoices)
	}
	if m.addflagged_count != nil {
		fields = append(fields, batch.FieldFlaggedCount)
	}
	if m.addprocessed_count != nil {
		fields = append(fields, batch.FieldProcessedCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BatchMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case batch.FieldTotalParts:
		return m.AddedTotalParts()
	case batch.FieldTotalLabor:
		return m.AddedTotalLabor()
	case batch.FieldTotalTax:
		return m.AddedTotalTax()
	case batch.FieldTotalInvoices:
		return m.AddedTotalInvoices()
	case batch.FieldFlaggedCount:
		return m.AddedFlaggedCount()
	case batch.FieldProcessedCount:
		return m.AddedProcessedCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BatchMutation) AddField(name string, value ent.Value) error {
	switch name {
	case batch.FieldTotalParts:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalParts(v)
		return nil
	case batch.FieldTotalLabor:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalLabor(v)
		return nil
	case batch.FieldTotalTax:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalTax(v)
		return nil
	case batch.FieldTotalInvoices:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTotalInvoices(v)
		return nil
	case batch.FieldFlaggedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFlaggedCount(v)
		return nil
	case batch.FieldProcessedCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddProcessedCount(v)
		return nil
	}
	return fmt.Errorf("unknown Batch numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BatchMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BatchMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BatchMutation) ClearField(name string) error {
	return fmt.Errorf("unknown Batch nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BatchMutation) ResetField(name string) error {
	switch name {
	case batch.FieldUserID:
		m.ResetUserID()
		return nil
	case batch.FieldName:
		m.ResetName()
		return nil
	case batch.FieldTotalParts:
		m.ResetTotalParts()
		return nil
	case batch.FieldTotalLabor:
		m.ResetTotalLabor()
		return nil
	case batch.FieldTotalTax:
		m.ResetTotalTax()
		return nil
	case batch.FieldTotalInvoices:
		m.ResetTotalInvoices()
		return nil
	case batch.FieldFlaggedCount:
		m.ResetFlaggedCount()
		return nil
	case batch.FieldProcessedCount:
		m.ResetProcessedCount()
		return nil
	case batch.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Batch field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BatchMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.invoices != nil {
		edges = append(edges, batch.EdgeInvoices)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BatchMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case batch.EdgeInvoices:
		ids := make([]ent.Value, 0, len(m.invoices))
		for id := range m.invoices {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BatchMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedinvoices != nil {
		edges = append(edges, batch.EdgeInvoices)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BatchMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case batch.EdgeInvoices:
		ids := make([]ent.Value, 0, len(m.removedinvoices))
		for id := range m.removedinvoices {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BatchMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedinvoices {
		edges = append(edges, batch.EdgeInvoices)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BatchMutation) EdgeCleared(name string) bool {
	switch name {
	case batch.EdgeInvoices:
		return m.clearedinvoices
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BatchMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown Batch unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BatchMutation) ResetEdge(name string) error {
	switch name {
	case batch.EdgeInvoices:
		m.ResetInvoices()
		return nil
	}
	return fmt.Errorf("unknown Batch edge %s", name)
}

// InvoiceMutation represents an operation that mutates the Invoice nodes in the graph.
type InvoiceMutation struct {
	config
	op            Op
	typ           string
	id            *uuid.UUID
	user_id       *string
	filename      *string
	parts         *float64
	addparts      *float64
	labor         *float64
	addlabor      *float64
	tax_amount    *float64
	addtax_amount *float64
	tax_note      *string
	flagged       *bool
	confidence    *invoice.Confidence
	error_message *string
	raw_text      *string
	storage_key   *string
	created_at    *time.Time
	updated_at    *time.Time
	clearedFields map[string]struct{}
	batch         *uuid.UUID
	clearedbatch  bool
	done          bool
	oldValue      func(context.Context) (*Invoice, error)
	predicates    []predicate.Invoice
}

var _ ent.Mutation = (*InvoiceMutation)(nil)

// invoiceOption allows management of the mutation configuration using functional options.
type invoiceOption func(*InvoiceMutation)

// newInvoiceMutation creates new mutation for the Invoice entity.
func newInvoiceMutation(c config, op Op, opts ...invoiceOption) *InvoiceMutation {
	m := &InvoiceMutation{
		config:        c,
		op:            op,
		typ:           TypeInvoice,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withInvoiceID sets the ID field of the mutation.
func withInvoiceID(id uuid.UUID) invoiceOption {
	return func(m *InvoiceMutation) {
		var (
			err   error
			once  sync.Once
			value *Invoice
		)
		m.oldValue = func(ctx context.Context) (*Invoice, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Invoice.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withInvoice sets the old Invoice of the mutation.
func withInvoice(node *Invoice) invoiceOption {
	return func(m *InvoiceMutation) {
		m.oldValue = func(context.Context) (*Invoice, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m InvoiceMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m InvoiceMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Invoice entities.
func (m *InvoiceMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *InvoiceMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *InvoiceMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Invoice.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetBatchID sets the "batch_id" field.
func (m *InvoiceMutation) SetBatchID(u uuid.UUID) {
	m.batch = &u
}

// BatchID returns the value of the "batch_id" field in the mutation.
func (m *InvoiceMutation) BatchID() (r uuid.UUID, exists bool) {
	v := m.batch
	if v == nil {
		return
	}
	return *v, true
}

// OldBatchID returns the old "batch_id" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldBatchID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBatchID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBatchID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBatchID: %w", err)
	}
	return oldValue.BatchID, nil
}

// ResetBatchID resets all changes to the "batch_id" field.
func (m *InvoiceMutation) ResetBatchID() {
	m.batch = nil
}

// SetUserID sets the "user_id" field.
func (m *InvoiceMutation) SetUserID(s string) {
	m.user_id = &s
}

// UserID returns the value of the "user_id" field in the mutation.
func (m *InvoiceMutation) UserID() (r string, exists bool) {
	v := m.user_id
	if v == nil {
		return
	}
	return *v, true
}

// OldUserID returns the old "user_id" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldUserID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUserID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUserID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUserID: %w", err)
	}
	return oldValue.UserID, nil
}

// ResetUserID resets all changes to the "user_id" field.
func (m *InvoiceMutation) ResetUserID() {
	m.user_id = nil
}

// SetFilename sets the "filename" field.
func (m *InvoiceMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *InvoiceMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *InvoiceMutation) ResetFilename() {
	m.filename = nil
}

// SetParts sets the "parts" field.
func (m *InvoiceMutation) SetParts(f float64) {
	m.parts = &f
	m.addparts = nil
}

// Parts returns the value of the "parts" field in the mutation.
func (m *InvoiceMutation) Parts() (r float64, exists bool) {
	v := m.parts
	if v == nil {
		return
	}
	return *v, true
}

// OldParts returns the old "parts" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldParts(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldParts is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldParts requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldParts: %w", err)
	}
	return oldValue.Parts, nil
}

// AddParts adds f to the "parts" field.
func (m *InvoiceMutation) AddParts(f float64) {
	if m.addparts != nil {
		*m.addparts += f
	} else {
		m.addparts = &f
	}
}

// AddedParts returns the value that was added to the "parts" field in this mutation.
func (m *InvoiceMutation) AddedParts() (r float64, exists bool) {
	v := m.addparts
	if v == nil {
		return
	}
	return *v, true
}

// ResetParts resets all changes to the "parts" field.
func (m *InvoiceMutation) ResetParts() {
	m.parts = nil
	m.addparts = nil
}

// SetLabor sets the "labor" field.
func (m *InvoiceMutation) SetLabor(f float64) {
	m.labor = &f
	m.addlabor = nil
}

// Labor returns the value of the "labor" field in the mutation.
func (m *InvoiceMutation) Labor() (r float64, exists bool) {
	v := m.labor
	if v == nil {
		return
	}
	return *v, true
}

// OldLabor returns the old "labor" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldLabor(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLabor is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLabor requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLabor: %w", err)
	}
	return oldValue.Labor, nil
}

// AddLabor adds f to the "labor" field.
func (m *InvoiceMutation) AddLabor(f float64) {
	if m.addlabor != nil {
		*m.addlabor += f
	} else {
		m.addlabor = &f
	}
}

// AddedLabor returns the value that was added to the "labor" field in this mutation.
func (m *InvoiceMutation) AddedLabor() (r float64, exists bool) {
	v := m.addlabor
	if v == nil {
		return
	}
	return *v, true
}

// ResetLabor resets all changes to the "labor" field.
func (m *InvoiceMutation) ResetLabor() {
	m.labor = nil
	m.addlabor = nil
}

// SetTaxAmount sets the "tax_amount" field.
func (m *InvoiceMutation) SetTaxAmount(f float64) {
	m.tax_amount = &f
	m.addtax_amount = nil
}

// TaxAmount returns the value of the "tax_amount" field in the mutation.
func (m *InvoiceMutation) TaxAmount() (r float64, exists bool) {
	v := m.tax_amount
	if v == nil {
		return
	}
	return *v, true
}

// OldTaxAmount returns the old "tax_amount" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldTaxAmount(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaxAmount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaxAmount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaxAmount: %w", err)
	}
	return oldValue.TaxAmount, nil
}

// AddTaxAmount adds f to the "tax_amount" field.
func (m *InvoiceMutation) AddTaxAmount(f float64) {
	if m.addtax_amount != nil {
		*m.addtax_amount += f
	} else {
		m.addtax_amount = &f
	}
}

// AddedTaxAmount returns the value that was added to the "tax_amount" field in this mutation.
func (m *InvoiceMutation) AddedTaxAmount() (r float64, exists bool) {
	v := m.addtax_amount
	if v == nil {
		return
	}
	return *v, true
}

// ClearTaxAmount clears the value of the "tax_amount" field.
func (m *InvoiceMutation) ClearTaxAmount() {
	m.tax_amount = nil
	m.addtax_amount = nil
	m.clearedFields[invoice.FieldTaxAmount] = struct{}{}
}

// TaxAmountCleared returns if the "tax_amount" field was cleared in this mutation.
func (m *InvoiceMutation) TaxAmountCleared() bool {
	_, ok := m.clearedFields[invoice.FieldTaxAmount]
	return ok
}

// ResetTaxAmount resets all changes to the "tax_amount" field.
func (m *InvoiceMutation) ResetTaxAmount() {
	m.tax_amount = nil
	m.addtax_amount = nil
	delete(m.clearedFields, invoice.FieldTaxAmount)
}

// SetTaxNote sets the "tax_note" field.
func (m *InvoiceMutation) SetTaxNote(s string) {
	m.tax_note = &s
}

// TaxNote returns the value of the "tax_note" field in the mutation.
func (m *InvoiceMutation) TaxNote() (r string, exists bool) {
	v := m.tax_note
	if v == nil {
		return
	}
	return *v, true
}

// OldTaxNote returns the old "tax_note" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldTaxNote(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTaxNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTaxNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTaxNote: %w", err)
	}
	return oldValue.TaxNote, nil
}

// ClearTaxNote clears the value of the "tax_note" field.
func (m *InvoiceMutation) ClearTaxNote() {
	m.tax_note = nil
	m.clearedFields[invoice.FieldTaxNote] = struct{}{}
}

// TaxNoteCleared returns if the "tax_note" field was cleared in this mutation.
func (m *InvoiceMutation) TaxNoteCleared() bool {
	_, ok := m.clearedFields[invoice.FieldTaxNote]
	return ok
}

// ResetTaxNote resets all changes to the "tax_note" field.
func (m *InvoiceMutation) ResetTaxNote() {
	m.tax_note = nil
	delete(m.clearedFields, invoice.FieldTaxNote)
}

// SetFlagged sets the "flagged" field.
func (m *InvoiceMutation) SetFlagged(b bool) {
	m.flagged = &b
}

// Flagged returns the value of the "flagged" field in the mutation.
func (m *InvoiceMutation) Flagged() (r bool, exists bool) {
	v := m.flagged
	if v == nil {
		return
	}
	return *v, true
}

// OldFlagged returns the old "flagged" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldFlagged(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFlagged is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFlagged requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFlagged: %w", err)
	}
	return oldValue.Flagged, nil
}

// ResetFlagged resets all changes to the "flagged" field.
func (m *InvoiceMutation) ResetFlagged() {
	m.flagged = nil
}

// SetConfidence sets the "confidence" field.
func (m *InvoiceMutation) SetConfidence(i invoice.Confidence) {
	m.confidence = &i
}

// Confidence returns the value of the "confidence" field in the mutation.
func (m *InvoiceMutation) Confidence() (r invoice.Confidence, exists bool) {
	v := m.confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldConfidence returns the old "confidence" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldConfidence(ctx context.Context) (v invoice.Confidence, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldConfidence: %w", err)
	}
	return oldValue.Confidence, nil
}

// ResetConfidence resets all changes to the "confidence" field.
func (m *InvoiceMutation) ResetConfidence() {
	m.confidence = nil
}

// SetErrorMessage sets the "error_message" field.
func (m *InvoiceMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *InvoiceMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *InvoiceMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[invoice.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *InvoiceMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[invoice.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *InvoiceMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, invoice.FieldErrorMessage)
}

// SetRawText sets the "raw_text" field.
func (m *InvoiceMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *InvoiceMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldRawText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *InvoiceMutation) ResetRawText() {
	m.raw_text = nil
}

// SetStorageKey sets the "storage_key" field.
func (m *InvoiceMutation) SetStorageKey(s string) {
	m.storage_key = &s
}

// StorageKey returns the value of the "storage_key" field in the mutation.
func (m *InvoiceMutation) StorageKey() (r string, exists bool) {
	v := m.storage_key
	if v == nil {
		return
	}
	return *v, true
}

// OldStorageKey returns the old "storage_key" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldStorageKey(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStorageKey is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStorageKey requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStorageKey: %w", err)
	}
	return oldValue.StorageKey, nil
}

// ClearStorageKey clears the value of the "storage_key" field.
func (m *InvoiceMutation) ClearStorageKey() {
	m.storage_key = nil
	m.clearedFields[invoice.FieldStorageKey] = struct{}{}
}

// StorageKeyCleared returns if the "storage_key" field was cleared in this mutation.
func (m *InvoiceMutation) StorageKeyCleared() bool {
	_, ok := m.clearedFields[invoice.FieldStorageKey]
	return ok
}

// ResetStorageKey resets all changes to the "storage_key" field.
func (m *InvoiceMutation) ResetStorageKey() {
	m.storage_key = nil
	delete(m.clearedFields, invoice.FieldStorageKey)
}

// SetCreatedAt sets the "created_at" field.
func (m *InvoiceMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *InvoiceMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *InvoiceMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *InvoiceMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *InvoiceMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the Invoice entity.
// If the Invoice object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *InvoiceMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *InvoiceMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearBatch clears the "batch" edge to the Batch entity.
func (m *InvoiceMutation) ClearBatch() {
	m.clearedbatch = true
	m.clearedFields[invoice.FieldBatchID] = struct{}{}
}

// BatchCleared reports if the "batch" edge to the Batch entity was cleared.
func (m *InvoiceMutation) BatchCleared() bool {
	return m.clearedbatch
}

// BatchIDs returns the "batch" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// BatchID instead. It exists only for internal usage by the builders.
func (m *InvoiceMutation) BatchIDs() (ids []uuid.UUID) {
	if id := m.batch; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetBatch resets all changes to the "batch" edge.
func (m *InvoiceMutation) ResetBatch() {
	m.batch = nil
	m.clearedbatch = false
}

// Where appends a list predicates to the InvoiceMutation builder.
func (m *InvoiceMutation) Where(ps ...predicate.Invoice) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the InvoiceMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *InvoiceMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Invoice, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *InvoiceMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *InvoiceMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Invoice).
func (m *InvoiceMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *InvoiceMutation) Fields() []string {
	fields := make([]string, 0, 14)
	if m.batch != nil {
		fields = append(fields, invoice.FieldBatchID)
	}
	if m.user_id != nil {
		fields = append(fields, invoice.FieldUserID)
	}
	if m.filename != nil {
		fields = append(fields, invoice.FieldFilename)
	}
	if m.parts != nil {
		fields = append(fields, invoice.FieldParts)
	}
	if m.labor != nil {
		fields = append(fields, invoice.FieldLabor)
	}
	if m.tax_amount != nil {
		fields = append(fields, invoice.FieldTaxAmount)
	}
	if m.tax_note != nil {
		fields = append(fields, invoice.FieldTaxNote)
	}
	if m.flagged != nil {
		fields = append(fields, invoice.FieldFlagged)
	}
	if m.confidence != nil {
		fields = append(fields, invoice.FieldConfidence)
	}
	if m.error_message != nil {
		fields = append(fields, invoice.FieldErrorMessage)
	}
	if m.raw_text != nil {
		fields = append(fields, invoice.FieldRawText)
	}
	if m.storage_key != nil {
		fields = append(fields, invoice.FieldStorageKey)
	}
	if m.created_at != nil {
		fields = append(fields, invoice.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, invoice.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *InvoiceMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case invoice.FieldBatchID:
		return m.BatchID()
	case invoice.FieldUserID:
		return m.UserID()
	case invoice.FieldFilename:
		return m.Filename()
	case invoice.FieldParts:
		return m.Parts()
	case invoice.FieldLabor:
		return m.Labor()
	case invoice.FieldTaxAmount:
		return m.TaxAmount()
	case invoice.FieldTaxNote:
		return m.TaxNote()
	case invoice.FieldFlagged:
		return m.Flagged()
	case invoice.FieldConfidence:
		return m.Confidence()
	case invoice.FieldErrorMessage:
		return m.ErrorMessage()
	case invoice.FieldRawText:
		return m.RawText()
	case invoice.FieldStorageKey:
		return m.StorageKey()
	case invoice.FieldCreatedAt:
		return m.CreatedAt()
	case invoice.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *InvoiceMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case invoice.FieldBatchID:
		return m.OldBatchID(ctx)
	case invoice.FieldUserID:
		return m.OldUserID(ctx)
	case invoice.FieldFilename:
		return m.OldFilename(ctx)
	case invoice.FieldParts:
		return m.OldParts(ctx)
	case invoice.FieldLabor:
		return m.OldLabor(ctx)
	case invoice.FieldTaxAmount:
		return m.OldTaxAmount(ctx)
	case invoice.FieldTaxNote:
		return m.OldTaxNote(ctx)
	case invoice.FieldFlagged:
		return m.OldFlagged(ctx)
	case invoice.FieldConfidence:
		return m.OldConfidence(ctx)
	case invoice.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case invoice.FieldRawText:
		return m.OldRawText(ctx)
	case invoice.FieldStorageKey:
		return m.OldStorageKey(ctx)
	case invoice.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case invoice.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Invoice field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceMutation) SetField(name string, value ent.Value) error {
	switch name {
	case invoice.FieldBatchID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBatchID(v)
		return nil
	case invoice.FieldUserID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUserID(v)
		return nil
	case invoice.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case invoice.FieldParts:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetParts(v)
		return nil
	case invoice.FieldLabor:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLabor(v)
		return nil
	case invoice.FieldTaxAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaxAmount(v)
		return nil
	case invoice.FieldTaxNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTaxNote(v)
		return nil
	case invoice.FieldFlagged:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFlagged(v)
		return nil
	case invoice.FieldConfidence:
		v, ok := value.(invoice.Confidence)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetConfidence(v)
		return nil
	case invoice.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case invoice.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case invoice.FieldStorageKey:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStorageKey(v)
		return nil
	case invoice.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case invoice.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Invoice field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *InvoiceMutation) AddedFields() []string {
	var fields []string
	if m.addparts != nil {
		fields = append(fields, invoice.FieldParts)
	}
	if m.addlabor != nil {
		fields = append(fields, invoice.FieldLabor)
	}
	if m.addtax_amount != nil {
		fields = append(fields, invoice.FieldTaxAmount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *InvoiceMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case invoice.FieldParts:
		return m.AddedParts()
	case invoice.FieldLabor:
		return m.AddedLabor()
	case invoice.FieldTaxAmount:
		return m.AddedTaxAmount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *InvoiceMutation) AddField(name string, value ent.Value) error {
	switch name {
	case invoice.FieldParts:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddParts(v)
		return nil
	case invoice.FieldLabor:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLabor(v)
		return nil
	case invoice.FieldTaxAmount:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddTaxAmount(v)
		return nil
	}
	return fmt.Errorf("unknown Invoice numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *InvoiceMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(invoice.FieldTaxAmount) {
		fields = append(fields, invoice.FieldTaxAmount)
	}
	if m.FieldCleared(invoice.FieldTaxNote) {
		fields = append(fields, invoice.FieldTaxNote)
	}
	if m.FieldCleared(invoice.FieldErrorMessage) {
		fields = append(fields, invoice.FieldErrorMessage)
	}
	if m.FieldCleared(invoice.FieldStorageKey) {
		fields = append(fields, invoice.FieldStorageKey)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *InvoiceMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *InvoiceMutation) ClearField(name string) error {
	switch name {
	case invoice.FieldTaxAmount:
		m.ClearTaxAmount()
		return nil
	case invoice.FieldTaxNote:
		m.ClearTaxNote()
		return nil
	case invoice.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case invoice.FieldStorageKey:
		m.ClearStorageKey()
		return nil
	}
	return fmt.Errorf("unknown Invoice nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *InvoiceMutation) ResetField(name string) error {
	switch name {
	case invoice.FieldBatchID:
		m.ResetBatchID()
		return nil
	case invoice.FieldUserID:
		m.ResetUserID()
		return nil
	case invoice.FieldFilename:
		m.ResetFilename()
		return nil
	case invoice.FieldParts:
		m.ResetParts()
		return nil
	case invoice.FieldLabor:
		m.ResetLabor()
		return nil
	case invoice.FieldTaxAmount:
		m.ResetTaxAmount()
		return nil
	case invoice.FieldTaxNote:
		m.ResetTaxNote()
		return nil
	case invoice.FieldFlagged:
		m.ResetFlagged()
		return nil
	case invoice.FieldConfidence:
		m.ResetConfidence()
		return nil
	case invoice.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case invoice.FieldRawText:
		m.ResetRawText()
		return nil
	case invoice.FieldStorageKey:
		m.ResetStorageKey()
		return nil
	case invoice.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case invoice.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown Invoice field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *InvoiceMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.batch != nil {
		edges = append(edges, invoice.EdgeBatch)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *InvoiceMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case invoice.EdgeBatch:
		if id := m.batch; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *InvoiceMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *InvoiceMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *InvoiceMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedbatch {
		edges = append(edges, invoice.EdgeBatch)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *InvoiceMutation) EdgeCleared(name string) bool {
	switch name {
	case invoice.EdgeBatch:
		return m.clearedbatch
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *InvoiceMutation) ClearEdge(name string) error {
	switch name {
	case invoice.EdgeBatch:
		m.ClearBatch()
		return nil
	}
	return fmt.Errorf("unknown Invoice unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *InvoiceMutation) ResetEdge(name string) error {
	switch name {
	case invoice.EdgeBatch:
		m.ResetBatch()
		return nil
	}
	return fmt.Errorf("unknown Invoice edge %s", name)
}
