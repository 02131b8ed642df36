package document_test

import (
	"testing"

	"github.com/daftarhq/daftar/core"
	"github.com/daftarhq/daftar/core/document"
	testutil "github.com/daftarhq/daftar/tests"
)

func TestCreateFolder(t *testing.T) {
	svc := testutil.DocumentService(t)

	f, err := svc.CreateFolder("  Exams  ", "")
	if err != nil {
		t.Fatalf("CreateFolder() failed: %v", err)
	}
	if f.Name != "Exams" {
		t.Errorf("Name = %q, want Exams", f.Name)
	}
	if !f.Folder() {
		t.Error("expected a folder node")
	}
	if f.Size != "-" {
		t.Errorf("Size = %q, want -", f.Size)
	}

	if _, err = svc.CreateFolder("   ", ""); err == nil {
		t.Fatal("expected a validation error for a blank name")
	} else if _, ok := err.(*core.ValidationError); !ok {
		t.Errorf("error type = %T, want *core.ValidationError", err)
	}
}

func TestAddFileSize(t *testing.T) {
	svc := testutil.DocumentService(t)

	f, err := svc.AddFile("notes.pdf", "application/pdf", "", make([]byte, 2048))
	if err != nil {
		t.Fatalf("AddFile() failed: %v", err)
	}
	if f.Size != "2.0 KB" {
		t.Errorf("Size = %q, want 2.0 KB", f.Size)
	}
	if f.Folder() {
		t.Error("file classified as a folder")
	}
}

func TestChildren(t *testing.T) {
	svc := testutil.DocumentService(t)

	root, err := svc.CreateFolder("Exams", "")
	if err != nil {
		t.Fatalf("CreateFolder() failed: %v", err)
	}
	if _, err = svc.CreateFolder("2024", root.ID); err != nil {
		t.Fatalf("CreateFolder() failed: %v", err)
	}
	if _, err = svc.AddFile("syllabus.pdf", "application/pdf", "", nil); err != nil {
		t.Fatalf("AddFile() failed: %v", err)
	}

	atRoot, err := svc.Children("")
	if err != nil {
		t.Fatalf("Children() failed: %v", err)
	}
	if len(atRoot) != 2 {
		t.Errorf("expected 2 root entries, got %d", len(atRoot))
	}

	inExams, err := svc.Children(root.ID)
	if err != nil {
		t.Fatalf("Children() failed: %v", err)
	}
	if len(inExams) != 1 || inExams[0].Name != "2024" {
		t.Errorf("unexpected folder listing: %+v", inExams)
	}
}

func TestDeleteRemovesSubtree(t *testing.T) {
	svc := testutil.DocumentService(t)

	root, _ := svc.CreateFolder("Exams", "")
	sub, _ := svc.CreateFolder("2024", root.ID)
	leaf, _ := svc.AddFile("exam.pdf", "application/pdf", sub.ID, nil)
	sibling, _ := svc.AddFile("other.pdf", "application/pdf", "", nil)

	if err := svc.Delete(root.ID); err != nil {
		t.Fatalf("Delete() failed: %v", err)
	}

	for _, id := range []string{root.ID, sub.ID, leaf.ID} {
		if _, err := svc.Get(id); err != document.ErrNotFound {
			t.Errorf("Get(%s) error = %v, want ErrNotFound", id, err)
		}
	}
	if _, err := svc.Get(sibling.ID); err != nil {
		t.Errorf("sibling deleted too: %v", err)
	}

	if err := svc.Delete("missing"); err != document.ErrNotFound {
		t.Errorf("Delete(missing) error = %v, want ErrNotFound", err)
	}
}
