// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// BatchesColumns holds the columns for the "batches" table.
	BatchesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeString},
		{Name: "name", Type: field.TypeString, Default: ""},
		{Name: "total_parts", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "total_labor", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "total_tax", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "total_invoices", Type: field.TypeInt},
		{Name: "flagged_count", Type: field.TypeInt},
		{Name: "processed_count", Type: field.TypeInt},
		{Name: "created_at", Type: field.TypeTime},
	}
	// BatchesTable holds the schema information for the "batches" table.
	BatchesTable = &schema.Table{
		Name:       "batches",
		Columns:    BatchesColumns,
		PrimaryKey: []*schema.Column{BatchesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "batch_user_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{BatchesColumns[1], BatchesColumns[9]},
			},
		},
	}
	// InvoicesColumns holds the columns for the "invoices" table.
	InvoicesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "user_id", Type: field.TypeString},
		{Name: "filename", Type: field.TypeString},
		{Name: "parts", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "labor", Type: field.TypeFloat64, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "tax_amount", Type: field.TypeFloat64, Nullable: true, SchemaType: map[string]string{"postgres": "numeric(12,2)"}},
		{Name: "tax_note", Type: field.TypeString, Nullable: true},
		{Name: "flagged", Type: field.TypeBool, Default: false},
		{Name: "confidence", Type: field.TypeEnum, Enums: []string{"high", "medium", "low"}, Default: "medium"},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "raw_text", Type: field.TypeString, Size: 2147483647, Default: ""},
		{Name: "storage_key", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "batch_id", Type: field.TypeUUID},
	}
	// InvoicesTable holds the schema information for the "invoices" table.
	InvoicesTable = &schema.Table{
		Name:       "invoices",
		Columns:    InvoicesColumns,
		PrimaryKey: []*schema.Column{InvoicesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "invoices_batches_invoices",
				Columns:    []*schema.Column{InvoicesColumns[14]},
				RefColumns: []*schema.Column{BatchesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "invoice_batch_id",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[14]},
			},
			{
				Name:    "invoice_user_id_flagged",
				Unique:  false,
				Columns: []*schema.Column{InvoicesColumns[1], InvoicesColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		BatchesTable,
		InvoicesTable,
	}
)

func init() {
	BatchesTable.Annotation = &entsql.Annotation{
		Table: "batches",
	}
	InvoicesTable.ForeignKeys[0].RefTable = BatchesTable
	InvoicesTable.Annotation = &entsql.Annotation{
		Table: "invoices",
	}
}
