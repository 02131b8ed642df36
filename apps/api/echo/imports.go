package echoapi

import (
	"encoding/json"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/daftarhq/daftar/core/importer"
)

type importApi struct {
	svc *importer.Service
}

func registerImportAPI(g *echo.Group, svc *importer.Service) {
	api := importApi{svc: svc}

	ig := g.Group("/imports")
	ig.POST("/preview", api.preview)
	ig.POST("", api.run)
}

// preview analyzes an uploaded sheet without writing anything, so the UI can
// show the detected format and let the user adjust the column mapping.
func (api *importApi) preview(ctx echo.Context) error {
	rows, err := api.readSheet(ctx)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, importer.Analyze(rows))
}

// run executes the full pipeline. The optional "mapping" form field carries a
// JSON importer.Mapping for generic sheets; "class" carries the class-context
// name.
func (api *importApi) run(ctx echo.Context) error {
	rows, err := api.readSheet(ctx)
	if err != nil {
		return err
	}
	p := importer.Analyze(rows)

	mapping := p.Suggested
	if raw := ctx.FormValue("mapping"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &mapping); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "malformed mapping")
		}
	}

	students, err := p.Students(ctx.FormValue("class"), mapping)
	if err != nil {
		return errors.Wrap(err, "materializing students")
	}
	n, err := api.svc.Commit(students)
	if err != nil {
		return errors.Wrap(err, "committing import")
	}
	return ctx.JSON(http.StatusOK, ImportResponse{Imported: n, Massar: p.Massar})
}

func (api *importApi) readSheet(ctx echo.Context) ([][]string, error) {
	fh, err := ctx.FormFile("file")
	if err != nil {
		return nil, errFileFieldMissing
	}
	f, err := fh.Open()
	if err != nil {
		return nil, errors.Wrap(err, "opening upload")
	}
	defer func() { _ = f.Close() }()

	rows, err := importer.ReadWorkbook(f)
	if err != nil {
		return nil, echo.NewHTTPError(http.StatusBadRequest, "unreadable workbook")
	}
	return rows, nil
}

type ImportResponse struct {
	Imported int  `json:"imported"`
	Massar   bool `json:"massar"`
}
