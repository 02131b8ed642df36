package sqlitedb

import (
	"database/sql"
	"encoding/json"

	"github.com/pkg/errors"

	"github.com/daftarhq/daftar/core/document"
)

type documentRepository struct {
	db *sql.DB
}

func NewDocumentRepository(db *sql.DB) document.Repository {
	return &documentRepository{db: db}
}

// File content lives in a dedicated BLOB column so the JSON document stays
// small and the listing query never drags file bytes along.

func (repo *documentRepository) QueryAllFiles() ([]document.File, error) {
	rows, err := repo.db.Query(`SELECT data FROM documents`)
	if err != nil {
		return nil, errors.Wrap(err, "querying documents")
	}
	defer func() { _ = rows.Close() }()

	files := make([]document.File, 0)
	for rows.Next() {
		var data []byte
		if err = rows.Scan(&data); err != nil {
			return nil, errors.Wrap(err, "scanning document")
		}
		var f document.File
		if err = json.Unmarshal(data, &f); err != nil {
			return nil, errors.Wrap(err, "decoding document")
		}
		files = append(files, f)
	}
	if err = rows.Err(); err != nil {
		return nil, errors.Wrap(err, "reading documents")
	}
	return files, nil
}

func (repo *documentRepository) GetFileByID(id string) (document.File, error) {
	var data, content []byte
	err := repo.db.QueryRow(`SELECT data, content FROM documents WHERE id = ?`, id).
		Scan(&data, &content)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return document.File{}, document.ErrNotFound
		}
		return document.File{}, errors.Wrap(err, "getting document")
	}
	var f document.File
	if err = json.Unmarshal(data, &f); err != nil {
		return document.File{}, errors.Wrap(err, "decoding document")
	}
	f.Content = content
	return f, nil
}

func (repo *documentRepository) SaveFile(f document.File) error {
	content := f.Content
	f.Content = nil
	data, err := json.Marshal(f)
	if err != nil {
		return errors.Wrap(err, "encoding document")
	}
	_, err = repo.db.Exec(
		`INSERT INTO documents (id, data, content) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET data = excluded.data, content = excluded.content`,
		f.ID, data, content)
	return errors.Wrap(err, "saving document")
}

func (repo *documentRepository) DeleteFileByID(id string) error {
	return deleteRecord(repo.db, "documents", id)
}
