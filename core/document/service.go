package document

import (
	"errors"
	"fmt"
	"time"

	"github.com/daftarhq/daftar/core"
)

var ErrNotFound = errors.New("document not found")

type (
	Repository interface {
		QueryAllFiles() ([]File, error)
		GetFileByID(id string) (File, error)
		SaveFile(File) error
		DeleteFileByID(id string) error
	}

	Service struct {
		repo Repository
	}
)

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// CreateFolder adds a folder node under parentID ("" for root).
func (svc *Service) CreateFolder(name, parentID string) (File, error) {
	name = core.CleanString(name)
	if name == "" {
		return File{}, core.NewValidationError(errors.New("folder name is required"),
			core.FieldError{Field: "name", Error: "this field is required"})
	}
	f := File{
		ID:        core.NewID(),
		Name:      name,
		Category:  CategoryFolder,
		Type:      "folder",
		ParentID:  parentID,
		DateAdded: time.Now().Format("2006-01-02"),
		Size:      "-",
	}
	if err := svc.repo.SaveFile(f); err != nil {
		return File{}, err
	}
	return f, nil
}

// AddFile stores an uploaded file under parentID ("" for root). The display
// size is fixed at upload time.
func (svc *Service) AddFile(name, mimeType, parentID string, content []byte) (File, error) {
	f := File{
		ID:        core.NewID(),
		Name:      name,
		Category:  CategoryFile,
		Type:      mimeType,
		ParentID:  parentID,
		DateAdded: time.Now().Format("2006-01-02"),
		Size:      fmt.Sprintf("%.1f KB", float64(len(content))/1024),
		Content:   content,
	}
	if err := svc.repo.SaveFile(f); err != nil {
		return File{}, err
	}
	return f, nil
}

func (svc *Service) Get(id string) (File, error) {
	return svc.repo.GetFileByID(id)
}

// Children lists the direct entries of a folder ("" for root).
func (svc *Service) Children(parentID string) ([]File, error) {
	files, err := svc.repo.QueryAllFiles()
	if err != nil {
		return nil, err
	}
	children := make([]File, 0)
	for _, f := range files {
		if f.ParentID == parentID {
			children = append(children, f)
		}
	}
	return children, nil
}

// Delete removes a node; deleting a folder removes its whole subtree, one
// record at a time.
func (svc *Service) Delete(id string) error {
	target, err := svc.repo.GetFileByID(id)
	if err != nil {
		return err
	}

	ids := []string{target.ID}
	if target.Folder() {
		files, err := svc.repo.QueryAllFiles()
		if err != nil {
			return err
		}
		ids = append(ids, collectDescendants(files, target.ID)...)
	}

	for _, fid := range ids {
		if err := svc.repo.DeleteFileByID(fid); err != nil {
			return err
		}
	}
	return nil
}

func collectDescendants(files []File, parentID string) []string {
	var ids []string
	for _, f := range files {
		if f.ParentID != parentID {
			continue
		}
		ids = append(ids, f.ID)
		if f.Folder() {
			ids = append(ids, collectDescendants(files, f.ID)...)
		}
	}
	return ids
}
