// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/google/uuid"
	"github.com/kelechimadu/invoice-tally/db/ent/schema"
	"github.com/kelechimadu/invoice-tally/gen/ent/batch"
	"github.com/kelechimadu/invoice-tally/gen/ent/invoice"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	batchFields := schema.Batch{}.Fields()
	_ = batchFields
	// batchDescUserID is the schema descriptor for user_id field.
	batchDescUserID := batchFields[1].Descriptor()
	// batch.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	batch.UserIDValidator = batchDescUserID.Validators[0].(func(string) error)
	// batchDescName is the schema descriptor for name field.
	batchDescName := batchFields[2].Descriptor()
	// batch.DefaultName holds the default value on creation for the name field.
	batch.DefaultName = batchDescName.Default.(string)
	// batchDescTotalInvoices is the schema descriptor for total_invoices field.
	batchDescTotalInvoices := batchFields[6].Descriptor()
	// batch.TotalInvoicesValidator is a validator for the "total_invoices" field. It is called by the builders before save.
	batch.TotalInvoicesValidator = batchDescTotalInvoices.Validators[0].(func(int) error)
	// batchDescFlaggedCount is the schema descriptor for flagged_count field.
	batchDescFlaggedCount := batchFields[7].Descriptor()
	// batch.FlaggedCountValidator is a validator for the "flagged_count" field. It is called by the builders before save.
	batch.FlaggedCountValidator = batchDescFlaggedCount.Validators[0].(func(int) error)
	// batchDescProcessedCount is the schema descriptor for processed_count field.
	batchDescProcessedCount := batchFields[8].Descriptor()
	// batch.ProcessedCountValidator is a validator for the "processed_count" field. It is called by the builders before save.
	batch.ProcessedCountValidator = batchDescProcessedCount.Validators[0].(func(int) error)
	// batchDescCreatedAt is the schema descriptor for created_at field.
	batchDescCreatedAt := batchFields[9].Descriptor()
	// batch.DefaultCreatedAt holds the default value on creation for the created_at field.
	batch.DefaultCreatedAt = batchDescCreatedAt.Default.(func() time.Time)
	// batchDescID is the schema descriptor for id field.
	batchDescID := batchFields[0].Descriptor()
	// batch.DefaultID holds the default value on creation for the id field.
	batch.DefaultID = batchDescID.Default.(func() uuid.UUID)
	invoiceFields := schema.Invoice{}.Fields()
	_ = invoiceFields
	// invoiceDescUserID is the schema descriptor for user_id field.
	invoiceDescUserID := invoiceFields[2].Descriptor()
	// invoice.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	invoice.UserIDValidator = invoiceDescUserID.Validators[0].(func(string) error)
	// invoiceDescFilename is the schema descriptor for filename field.
	invoiceDescFilename := invoiceFields[3].Descriptor()
	// invoice.FilenameValidator is a validator for the "filename" field. It is called by the builders before save.
	invoice.FilenameValidator = invoiceDescFilename.Validators[0].(func(string) error)
	// invoiceDescFlagged is the schema descriptor for flagged field.
	invoiceDescFlagged := invoiceFields[8].Descriptor()
	// invoice.DefaultFlagged holds the default value on creation for the flagged field.
	invoice.DefaultFlagged = invoiceDescFlagged.Default.(bool)
	// invoiceDescRawText is the schema descriptor for raw_text field.
	invoiceDescRawText := invoiceFields[11].Descriptor()
	// invoice.DefaultRawText holds the default value on creation for the raw_text field.
	invoice.DefaultRawText = invoiceDescRawText.Default.(string)
	// invoiceDescCreatedAt is the schema descriptor for created_at field.
	invoiceDescCreatedAt := invoiceFields[13].Descriptor()
	// invoice.DefaultCreatedAt holds the default value on creation for the created_at field.
	invoice.DefaultCreatedAt = invoiceDescCreatedAt.Default.(func() time.Time)
	// invoiceDescUpdatedAt is the schema descriptor for updated_at field.
	invoiceDescUpdatedAt := invoiceFields[14].Descriptor()
	// invoice.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	invoice.DefaultUpdatedAt = invoiceDescUpdatedAt.Default.(func() time.Time)
	// invoice.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	invoice.UpdateDefaultUpdatedAt = invoiceDescUpdatedAt.UpdateDefault.(func() time.Time)
	// invoiceDescID is the schema descriptor for id field.
	invoiceDescID := invoiceFields[0].Descriptor()
	// invoice.DefaultID holds the default value on creation for the id field.
	invoice.DefaultID = invoiceDescID.Default.(func() uuid.UUID)
}
