package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"

	"github.com/kelechimadu/invoice-tally/constants"
)

type Invoice struct{ ent.Schema }

func (Invoice) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "invoices"},
	}
}

func (Invoice) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		field.UUID("batch_id", uuid.UUID{}),
		field.String("user_id").NotEmpty().Immutable(),
		field.String("filename").NotEmpty(),
		field.Float("parts").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("labor").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		// tax is numeric OR free text ("N/A", "Included"); exactly one column is set
		field.Float("tax_amount").
			Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.String("tax_note").Optional().Nillable(),
		field.Bool("flagged").Default(false),
		field.Enum("confidence").
			Values(constants.ConfidenceLevels...).
			Default(string(constants.ConfidenceMedium)),
		field.String("error_message").Optional().Nillable(),
		field.Text("raw_text").Default(""),
		field.String("storage_key").Optional().Nillable(),
		field.Time("created_at").Default(time.Now).Immutable(),
		field.Time("updated_at").Default(time.Now).UpdateDefault(time.Now),
	}
}

func (Invoice) Edges() []ent.Edge {
	return []ent.Edge{
		// MANY invoices -> ONE batch (FK: invoices.batch_id)
		edge.From("batch", Batch.Type).
			Ref("invoices").
			Field("batch_id").
			Required().
			Unique(),
	}
}

func (Invoice) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("batch_id"),
		index.Fields("user_id", "flagged"),
	}
}
