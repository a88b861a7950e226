package server

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/zipcheck/rentcheck/internal/checklist"
)

// DocStore implements Store on a single sessions table with a JSONB data
// column. The schema is created by the migrations package.
type DocStore struct {
	db *sql.DB
}

func NewDocStore(db *sql.DB) *DocStore {
	return &DocStore{db: db}
}

func (s *DocStore) CreateSession(ctx context.Context) (SessionDoc, error) {
	doc := SessionDoc{
		ID:        newID(),
		CreatedAt: nowUTC(),
		UpdatedAt: nowUTC(),
		State:     checklist.NewState(),
	}
	return doc, s.put(ctx, doc)
}

func (s *DocStore) Session(ctx context.Context, id string) (SessionDoc, error) {
	var data string
	err := s.db.QueryRowContext(ctx,
		`SELECT json(data) FROM sessions WHERE id = ?`, id,
	).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return SessionDoc{}, ErrNotFound
	}
	if err != nil {
		return SessionDoc{}, err
	}

	var doc SessionDoc
	if err := json.Unmarshal([]byte(data), &doc); err != nil {
		return SessionDoc{}, err
	}
	if doc.State.Answers == nil {
		doc.State.Answers = map[string]checklist.Answer{}
	}
	return doc, nil
}

func (s *DocStore) SaveSession(ctx context.Context, doc SessionDoc) error {
	doc.UpdatedAt = nowUTC()
	return s.put(ctx, doc)
}

func (s *DocStore) put(ctx context.Context, doc SessionDoc) error {
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO sessions (id, created_at, updated_at, data) VALUES (?, ?, ?, jsonb(?))
		 ON CONFLICT(id) DO UPDATE SET updated_at = excluded.updated_at, data = excluded.data`,
		doc.ID, doc.CreatedAt, doc.UpdatedAt, string(data),
	)
	return err
}

func newID() string {
	b := make([]byte, 16)
	rand.Read(b)
	return hex.EncodeToString(b)
}

func nowUTC() string {
	return time.Now().UTC().Format("2006-01-02T15:04:05.000Z")
}
