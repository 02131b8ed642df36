package echoapi

import (
	"encoding/base64"
	"fmt"
	"io"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/daftarhq/daftar/core"
	"github.com/daftarhq/daftar/core/school"
)

// photoSizeLimit caps student photo uploads. Photos are stored inline as
// data URLs, so the limit keeps individual records small.
const photoSizeLimit = 2 << 20 // 2 MB

type schoolApi struct {
	svc *school.Service
}

func registerSchoolAPI(g *echo.Group, svc *school.Service) {
	api := schoolApi{svc: svc}

	cg := g.Group("/cycles")
	cg.GET("", api.queryCycles)
	cg.POST("", api.createCycle)
	cg.DELETE("/:id", api.destroyCycle)
	cg.GET("/:id/classes", api.queryCycleClasses)

	clg := g.Group("/classes")
	clg.GET("", api.queryClasses)
	clg.GET("/tree", api.classTree)
	clg.POST("", api.createClass)
	clg.POST("/:id/copy", api.copyClass)
	clg.DELETE("/:id", api.destroyClass)

	sg := g.Group("/students")
	sg.GET("", api.queryStudents)
	sg.POST("", api.createStudent)
	sg.GET("/:id", api.retrieveStudent)
	sg.PUT("/:id", api.updateStudent)
	sg.PUT("/:id/photo", api.attachPhoto)
	sg.DELETE("/:id", api.destroyStudent)

	seg := g.Group("/sessions")
	seg.GET("", api.querySessions)
	seg.POST("", api.createSession)
	seg.GET("/:id", api.retrieveSession)
	seg.PUT("/:id", api.updateSession)
	seg.DELETE("/:id", api.destroySession)

	g.GET("/stats", api.stats)
}

// Cycle handlers

func (api *schoolApi) queryCycles(ctx echo.Context) error {
	cycles, err := api.svc.Cycles()
	if err != nil {
		return errors.Wrap(err, "querying cycles")
	}
	if cycles == nil {
		cycles = []school.Cycle{}
	}
	return ctx.JSON(http.StatusOK, cycles)
}

func (api *schoolApi) createCycle(ctx echo.Context) error {
	var data CreateCycleRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to CreateCycleRequest")
	}
	cy, err := api.svc.CreateCycle(data.Name)
	if err != nil {
		return errors.Wrap(err, "creating cycle")
	}
	return ctx.JSON(http.StatusCreated, cy)
}

func (api *schoolApi) destroyCycle(ctx echo.Context) error {
	if err := api.svc.DeleteCycle(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting cycle")
	}
	return ctx.NoContent(http.StatusNoContent)
}

func (api *schoolApi) queryCycleClasses(ctx echo.Context) error {
	classes, err := api.svc.CycleClasses(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "querying cycle classes")
	}
	if classes == nil {
		classes = []school.Class{}
	}
	return ctx.JSON(http.StatusOK, classes)
}

// Class handlers

func (api *schoolApi) queryClasses(ctx echo.Context) error {
	classes, err := api.svc.EffectiveClasses()
	if err != nil {
		return errors.Wrap(err, "querying classes")
	}
	if classes == nil {
		classes = []school.Class{}
	}
	return ctx.JSON(http.StatusOK, classes)
}

func (api *schoolApi) classTree(ctx echo.Context) error {
	tree, err := api.svc.ClassTree()
	if err != nil {
		return errors.Wrap(err, "building class tree")
	}
	if tree == nil {
		tree = []school.CycleGroup{}
	}
	return ctx.JSON(http.StatusOK, tree)
}

func (api *schoolApi) createClass(ctx echo.Context) error {
	var data CreateClassRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to CreateClassRequest")
	}
	cls, existsElsewhere, err := api.svc.CreateClass(data.Name, data.CycleID)
	if err != nil {
		return errors.Wrap(err, "creating class")
	}
	return ctx.JSON(http.StatusCreated, CreateClassResponse{Class: cls, ExistsElsewhere: existsElsewhere})
}

func (api *schoolApi) copyClass(ctx echo.Context) error {
	var data CopyClassRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to CopyClassRequest")
	}
	cls, copied, err := api.svc.CopyClass(ctx.Param("id"), data.TargetCycleID)
	if err != nil {
		return errors.Wrap(err, "copying class")
	}
	return ctx.JSON(http.StatusCreated, CopyClassResponse{Class: cls, SessionsCopied: copied})
}

func (api *schoolApi) destroyClass(ctx echo.Context) error {
	if err := api.svc.DeleteClass(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting class")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Student handlers

func (api *schoolApi) queryStudents(ctx echo.Context) error {
	students, err := api.svc.Students()
	if err != nil {
		return errors.Wrap(err, "querying students")
	}
	if students == nil {
		students = []school.Student{}
	}
	if class := ctx.QueryParam("class"); class != "" {
		filtered := make([]school.Student, 0)
		for _, s := range students {
			if s.ClassName == class {
				filtered = append(filtered, s)
			}
		}
		students = filtered
	}
	return ctx.JSON(http.StatusOK, students)
}

func (api *schoolApi) createStudent(ctx echo.Context) error {
	var data school.Student
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Student")
	}
	if data.ID == "" {
		data.ID = core.NewID()
	}
	if err := api.svc.SaveStudent(data); err != nil {
		return errors.Wrap(err, "creating student")
	}
	return ctx.JSON(http.StatusCreated, data)
}

func (api *schoolApi) retrieveStudent(ctx echo.Context) error {
	s, err := api.svc.GetStudent(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding student by ID")
	}
	return ctx.JSON(http.StatusOK, s)
}

func (api *schoolApi) updateStudent(ctx echo.Context) error {
	var data school.Student
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Student")
	}
	data.ID = ctx.Param("id")
	if _, err := api.svc.GetStudent(data.ID); err != nil {
		return errors.Wrap(err, "finding student by ID")
	}
	if err := api.svc.SaveStudent(data); err != nil {
		return errors.Wrap(err, "updating student")
	}
	return ctx.JSON(http.StatusOK, data)
}

func (api *schoolApi) attachPhoto(ctx echo.Context) error {
	fh, err := ctx.FormFile("photo")
	if err != nil {
		return errFileFieldMissing
	}
	if fh.Size > photoSizeLimit {
		return errPhotoTooLarge
	}

	f, err := fh.Open()
	if err != nil {
		return errors.Wrap(err, "opening photo upload")
	}
	defer func() { _ = f.Close() }()
	content, err := io.ReadAll(io.LimitReader(f, photoSizeLimit+1))
	if err != nil {
		return errors.Wrap(err, "reading photo upload")
	}
	if len(content) > photoSizeLimit {
		return errPhotoTooLarge
	}

	mimeType := fh.Header.Get(echo.HeaderContentType)
	if mimeType == "" {
		mimeType = http.DetectContentType(content)
	}
	dataURL := fmt.Sprintf("data:%s;base64,%s", mimeType, base64.StdEncoding.EncodeToString(content))

	s, err := api.svc.AttachPhoto(ctx.Param("id"), dataURL)
	if err != nil {
		return errors.Wrap(err, "attaching photo")
	}
	return ctx.JSON(http.StatusOK, s)
}

func (api *schoolApi) destroyStudent(ctx echo.Context) error {
	if err := api.svc.DeleteStudent(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting student")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Session handlers

func (api *schoolApi) querySessions(ctx echo.Context) error {
	sessions, err := api.svc.Sessions()
	if err != nil {
		return errors.Wrap(err, "querying sessions")
	}
	if sessions == nil {
		sessions = []school.Session{}
	}
	return ctx.JSON(http.StatusOK, sessions)
}

func (api *schoolApi) createSession(ctx echo.Context) error {
	var data CreateSessionRequest
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to CreateSessionRequest")
	}
	if err := data.Validate(); err != nil {
		return err
	}
	sess, err := api.svc.CreateSession(data.ClassID, data.Date)
	if err != nil {
		return errors.Wrap(err, "creating session")
	}
	return ctx.JSON(http.StatusCreated, sess)
}

func (api *schoolApi) retrieveSession(ctx echo.Context) error {
	sess, err := api.svc.GetSession(ctx.Param("id"))
	if err != nil {
		return errors.Wrap(err, "finding session by ID")
	}
	return ctx.JSON(http.StatusOK, sess)
}

func (api *schoolApi) updateSession(ctx echo.Context) error {
	var data school.Session
	if err := ctx.Bind(&data); err != nil {
		return errors.Wrap(err, "binding to Session")
	}
	data.ID = ctx.Param("id")
	if _, err := api.svc.GetSession(data.ID); err != nil {
		return errors.Wrap(err, "finding session by ID")
	}
	if err := api.svc.SaveSession(data); err != nil {
		return errors.Wrap(err, "updating session")
	}
	return ctx.JSON(http.StatusOK, data)
}

func (api *schoolApi) destroySession(ctx echo.Context) error {
	if err := api.svc.DeleteSession(ctx.Param("id")); err != nil {
		return errors.Wrap(err, "deleting session")
	}
	return ctx.NoContent(http.StatusNoContent)
}

// Stats

func (api *schoolApi) stats(ctx echo.Context) error {
	stats, err := api.svc.Stats()
	if err != nil {
		return errors.Wrap(err, "computing stats")
	}
	return ctx.JSON(http.StatusOK, stats)
}

// Bindings

type (
	CreateCycleRequest struct {
		Name string `json:"name"`
	}

	CreateClassRequest struct {
		Name    string `json:"name"`
		CycleID string `json:"cycleId"`
	}

	CreateClassResponse struct {
		Class           school.Class `json:"class"`
		ExistsElsewhere bool         `json:"existsElsewhere"`
	}

	CopyClassRequest struct {
		TargetCycleID string `json:"targetCycleId"`
	}

	CopyClassResponse struct {
		Class          school.Class `json:"class"`
		SessionsCopied int          `json:"sessionsCopied"`
	}

	CreateSessionRequest struct {
		ClassID string `json:"classId" validate:"required"`
		Date    string `json:"date" validate:"required,isodate"`
	}
)

func (sr *CreateSessionRequest) Validate() error {
	sr.ClassID = core.CleanString(sr.ClassID)
	sr.Date = core.CleanString(sr.Date)
	return core.Validate.Struct(sr)
}
