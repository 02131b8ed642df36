package document

// File categories.
const (
	CategoryFolder = "folder"
	CategoryFile   = "file"
)

// File is a node in the filesystem-like document tree. Folders never hold
// content; ParentID is empty for root entries.
type File struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Category  string `json:"category"` // folder | file
	Type      string `json:"type"`     // MIME type, or "folder"
	ParentID  string `json:"parentId,omitempty"`
	DateAdded string `json:"dateAdded"` // YYYY-MM-DD
	Size      string `json:"size"`      // display size, "-" for folders
	Content   []byte `json:"-"`
}

func (f File) Folder() bool {
	return f.Category == CategoryFolder
}
