package inmemdb

import "github.com/daftarhq/daftar/core/document"

type documentRepository struct {
	db *documentTable
}

func NewDocumentRepository(db *DB) document.Repository {
	return &documentRepository{db: db.documents}
}

func (repo *documentRepository) QueryAllFiles() ([]document.File, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	files := make([]document.File, 0, len(repo.db.table))
	for _, f := range repo.db.table {
		files = append(files, *f)
	}
	return files, nil
}

func (repo *documentRepository) GetFileByID(id string) (document.File, error) {
	repo.db.RLock()
	defer repo.db.RUnlock()

	if f, ok := repo.db.table[id]; ok {
		return *f, nil
	}
	return document.File{}, document.ErrNotFound
}

func (repo *documentRepository) SaveFile(f document.File) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	repo.db.table[f.ID] = &f
	return nil
}

func (repo *documentRepository) DeleteFileByID(id string) error {
	repo.db.Lock()
	defer repo.db.Unlock()
	delete(repo.db.table, id)
	return nil
}
