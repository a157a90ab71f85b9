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
)

type Batch struct{ ent.Schema }

func (Batch) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "batches"},
	}
}

func (Batch) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).
			Default(uuid.New).
			Immutable().
			StorageKey("id"),
		// identity comes from the hosted auth provider; every query is scoped by it
		field.String("user_id").NotEmpty().Immutable(),
		field.String("name").Default(""),
		field.Float("total_parts").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("total_labor").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Float("total_tax").
			SchemaType(map[string]string{dialect.Postgres: "numeric(12,2)"}),
		field.Int("total_invoices").NonNegative(),
		field.Int("flagged_count").NonNegative(),
		field.Int("processed_count").NonNegative(),
		field.Time("created_at").Default(time.Now).Immutable(),
	}
}

func (Batch) Edges() []ent.Edge {
	return []ent.Edge{
		// ONE batch -> MANY invoices
		edge.To("invoices", Invoice.Type),
	}
}

func (Batch) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id", "created_at"),
	}
}
