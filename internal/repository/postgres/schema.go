package postgres

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/prekshaaaaaaaa/coliving-backend/internal/repository"
)

// ProbeCapabilities inspects information_schema once at startup to learn
// which optional identity columns and chat tables this database carries.
func ProbeCapabilities(ctx context.Context, db *sqlx.DB) (repository.Capabilities, error) {
	var caps repository.Capabilities

	var cols []string
	err := db.SelectContext(ctx, &cols, `
		SELECT column_name FROM information_schema.columns
		WHERE table_name = 'users' AND column_name IN ('email', 'firebase_uid')
	`)
	if err != nil {
		return caps, err
	}
	for _, c := range cols {
		switch c {
		case "email":
			caps.Email = true
		case "firebase_uid":
			caps.ExternalUID = true
		}
	}

	var tables []string
	err = db.SelectContext(ctx, &tables, `
		SELECT table_name FROM information_schema.tables
		WHERE table_name IN ('chat_rooms', 'messages')
	`)
	if err != nil {
		return caps, err
	}
	caps.Chat = len(tables) == 2

	return caps, nil
}

type schemaRepository struct {
	db *sqlx.DB
}

func NewSchemaRepository(db *sqlx.DB) repository.SchemaRepository {
	return &schemaRepository{db: db}
}

// Health reports presence of every table and optional column the
// application knows about.
func (r *schemaRepository) Health(ctx context.Context) (*repository.SchemaReport, error) {
	db := r.db
	report := &repository.SchemaReport{
		Tables:  make(map[string]bool),
		Columns: make(map[string]bool),
	}

	for _, table := range []string{"users", "residents", "roommates", "matches", "chat_rooms", "messages"} {
		var exists bool
		err := db.GetContext(ctx, &exists, `
			SELECT EXISTS (SELECT 1 FROM information_schema.tables WHERE table_name = $1)
		`, table)
		if err != nil {
			return nil, err
		}
		report.Tables[table] = exists
	}

	for _, col := range []string{"email", "firebase_uid"} {
		var exists bool
		err := db.GetContext(ctx, &exists, `
			SELECT EXISTS (SELECT 1 FROM information_schema.columns WHERE table_name = 'users' AND column_name = $1)
		`, col)
		if err != nil {
			return nil, err
		}
		report.Columns["users_"+col] = exists
	}

	return report, nil
}
