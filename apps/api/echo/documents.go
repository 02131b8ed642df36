package echoapi

import (
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/daftarhq/daftar/core/document"
)

type documentApi struct {
	svc *document.Service
}

func registerDocumentAPI(g *echo.Group, svc *document.Service) {
	api := documentApi{svc: svc}

	dg := g.Group("/documents")
	dg.GET("", api.query)
	dg.POST("", api.upload)
	dg.POST("/folders", api.createFolder)
	dg.GET("/:id", api.retrieve)
	dg.GET("/:id/content", api.download)
	dg.GET("/:id/viewer", api.viewer)
	dg.DELETE("/:id", api.destroy)
}

// query lists the direct children of a folder; no parent param means root.
func (api *documentApi) query(ctx echo.Context) error {
	files, err := api.svc.Children(ctx.QueryParam("parent"))
	if err != nil {
		return errors.Wrap(err, "querying documents")
	}
	return ctx.JSON(http.StatusOK, files)
}

func (api *documentApi) upload(ctx echo.Context) error {
	fh, err := ctx.FormFile("file")
	if err != nil {
		return errFileFieldMissing
	}

	f, err := fh.Open()
	if err != nil {
		return errors.Wrap(err, "opening upload")
	}
	defer func() { _ = f.Close() }()
	content, err := io.ReadAll(f)
	if err != nil {
		return errors.Wrap(err, "reading upload")
	}

	mimeType := fh.Header.Get(echo.HeaderContentType)
	if mimeType == "" {
		mimeType = http.DetectContentType(content)
	}

	doc, err := api.svc.AddFile(fh.Filename, mimeType, ctx.FormValue("parentId"), content)
	if err != nil {
		return errors.Wrap(err, "storing upload")
	}
	return ctx.JSON(http.StatusCreated, doc)
}

func (api *documentApi) createFolder(ctx echo.Context) error {
	var data CreateFolderRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to CreateFolderRequest")
	}
	folder, err := api.svc.CreateFolder(data.Name, data.ParentID)
	if err != nil {
		return errors.Wrap(err, "creating folder")
	}
	return ctx.JSON(http.StatusCreated, folder)
}

func (api *documentApi) retrieve(ctx echo.Context) error {
	doc, err := api.svc.Get(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding document by ID")
	}
	return ctx.JSON(http.StatusOK, doc)
}

func (api *documentApi) download(ctx echo.Context) error {
	doc, err := api.svc.Get(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding document by ID")
	}
	if doc.Folder() {
		return errHttpNotFound
	}
	return ctx.Blob(http.StatusOK, doc.Type, doc.Content)
}

// viewer tells the UI which viewer family fits a stored document.
func (api *documentApi) viewer(ctx echo.Context) error {
	doc, err := api.svc.Get(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding document by ID")
	}
	kind, err := document.Classify(doc.Name, doc.Type)
	if err != nil {
		return err
	}
	return ctx.JSON(http.StatusOK, ViewerResponse{Kind: kind})
}

func (api *documentApi) destroy(ctx echo.Context) error {
	if err := api.svc.Delete(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting document")
	}
	return ctx.NoContent(http.StatusNoContent)
}

type (
	CreateFolderRequest struct {
		Name     string `json:"name"`
		ParentID string `json:"parentId"`
	}

	ViewerResponse struct {
		Kind document.Kind `json:"kind"`
	}
)
