package echoapi

import (
	"bytes"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/daftarhq/daftar/core/importer"
)

func buildSheet(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}
	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func massarSheet(t *testing.T) []byte {
	rows := make([][]interface{}, 15)
	for i := range rows {
		rows[i] = []interface{}{"", "", "", "", "", ""}
	}
	rows = append(rows,
		[]interface{}{"", "", "M001", "EL AMRANI Youssef", "", "15/03/2010"},
		[]interface{}{"", "", "M002", "BENNIS Sara", "", "2010-04-01"},
	)
	return buildSheet(t, rows)
}

func Test_importApi_preview(t *testing.T) {
	srv, _, _ := setupServer(t)

	req, rec := newUploadRequest(t, http.MethodPost, "/v1/imports/preview", "file", "roster.xlsx", massarSheet(t), nil)
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	var p importer.Preview
	decodeBody(t, rec.Body, &p)
	assert.True(t, p.Massar)
	assert.Equal(t, 2, p.RowCount)
}

func Test_importApi_run(t *testing.T) {
	srv, svc, _ := setupServer(t)

	req, rec := newUploadRequest(t, http.MethodPost, "/v1/imports", "file", "roster.xlsx", massarSheet(t),
		map[string]string{"class": "2A"})
	srv.ServeHTTP(rec, req)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp ImportResponse
	decodeBody(t, rec.Body, &resp)
	assert.True(t, resp.Massar)
	assert.Equal(t, 2, resp.Imported)

	students, err := svc.Students()
	require.NoError(t, err)
	require.Len(t, students, 2)
	assert.Equal(t, "2A", students[0].ClassName)
}

func Test_importApi_genericNeedsIDColumn(t *testing.T) {
	srv, _, _ := setupServer(t)

	sheet := buildSheet(t, [][]interface{}{
		{"Quelconque"},
		{"EL AMRANI Youssef"},
	})
	req, rec := newUploadRequest(t, http.MethodPost, "/v1/imports", "file", "roster.xlsx", sheet, nil)
	srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func Test_importApi_rejectsGarbage(t *testing.T) {
	srv, _, _ := setupServer(t)

	req, rec := newUploadRequest(t, http.MethodPost, "/v1/imports/preview", "file", "roster.xlsx", []byte("not a workbook"), nil)
	srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
