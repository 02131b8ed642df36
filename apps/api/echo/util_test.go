package echoapi

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/daftarhq/daftar/core"
	"github.com/daftarhq/daftar/core/document"
	"github.com/daftarhq/daftar/core/importer"
	"github.com/daftarhq/daftar/core/school"
	inmemdb "github.com/daftarhq/daftar/storage/database/inmem"
)

func setupServer(t *testing.T) (Server, *school.Service, *document.Service) {
	t.Helper()
	core.Conf.Set("debug", false)
	core.Conf.Set("testMode", true)

	db, err := inmemdb.Open()
	if err != nil {
		t.Fatalf("setupServer() failed: %v", err)
	}
	studentRepo := inmemdb.NewStudentRepository(db)
	schoolSvc := school.NewService(
		inmemdb.NewCycleRepository(db),
		inmemdb.NewClassRepository(db),
		studentRepo,
		inmemdb.NewSessionRepository(db),
	)
	docSvc := document.NewService(inmemdb.NewDocumentRepository(db))
	importSvc := importer.NewService(studentRepo)

	srv := NewServer(&Options{
		Address:        "127.0.0.1:0",
		DisableReqLogs: true,
		SchoolSvc:      schoolSvc,
		DocSvc:         docSvc,
		ImportSvc:      importSvc,
	})
	return srv, schoolSvc, docSvc
}

func newRequest(method, path string, data ...[]byte) (*http.Request, *httptest.ResponseRecorder) {
	var body bytes.Buffer
	if len(data) > 0 {
		body.Write(data[0])
	}
	req := httptest.NewRequest(method, path, &body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return req, rec
}

func newUploadRequest(t *testing.T, method, path, field, fileName string, content []byte, fields map[string]string) (*http.Request, *httptest.ResponseRecorder) {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	part, err := w.CreateFormFile(field, fileName)
	if err != nil {
		t.Fatalf("newUploadRequest() failed: %v", err)
	}
	if _, err = part.Write(content); err != nil {
		t.Fatalf("newUploadRequest() failed: %v", err)
	}
	for k, v := range fields {
		if err = w.WriteField(k, v); err != nil {
			t.Fatalf("newUploadRequest() failed: %v", err)
		}
	}
	if err = w.Close(); err != nil {
		t.Fatalf("newUploadRequest() failed: %v", err)
	}

	req := httptest.NewRequest(method, path, &body)
	req.Header.Set(echo.HeaderContentType, w.FormDataContentType())
	rec := httptest.NewRecorder()
	return req, rec
}

func marchallObj(t *testing.T, obj interface{}) []byte {
	data, err := json.Marshal(obj)
	if err != nil {
		t.Fatalf("marchallObj() failed: %v", err)
	}
	return data
}

func decodeBody(t *testing.T, r io.Reader, into interface{}) {
	t.Helper()
	if err := json.NewDecoder(r).Decode(into); err != nil {
		t.Fatalf("decodeBody() failed: %v", err)
	}
}
