package echoapi

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"github.com/daftarhq/daftar/core"
	"github.com/daftarhq/daftar/core/document"
	"github.com/daftarhq/daftar/core/importer"
	"github.com/daftarhq/daftar/core/school"
)

var (
	errHttpNotFound     = echo.NewHTTPError(http.StatusNotFound, "not found")
	errPhotoTooLarge    = echo.NewHTTPError(http.StatusRequestEntityTooLarge, "photo exceeds the 2 MB limit")
	errFileFieldMissing = echo.NewHTTPError(http.StatusBadRequest, "file field is required")
)

// appHTTPErrorHandler is a custom echo.HTTPErrorHandler that knows how to
// handle our errors.
func appHTTPErrorHandler(err error, ctx echo.Context) {
	var code int
	var message interface{}

	switch origErr := errors.Cause(err).(type) {
	case *echo.HTTPError:
		if origErr.Internal != nil {
			if herr, ok := origErr.Internal.(*echo.HTTPError); ok {
				origErr = herr
			}
		}
		code = origErr.Code
		message = origErr.Message
	case validator.ValidationErrors:
		fldErrs := make(map[string]string, len(origErr))
		for _, vErr := range origErr {
			fldErrs[vErr.Field()] = vErr.Translate(core.Translator)
		}
		code = http.StatusBadRequest
		message = fldErrs
	case *core.ValidationError:
		if origErr.Fields != nil {
			fldErrs := make(map[string]string, len(origErr.Fields))
			for _, fErr := range origErr.Fields {
				fldErrs[fErr.Field] = fErr.Error
			}
			message = fldErrs
		} else {
			message = origErr.Error()
		}
		code = http.StatusBadRequest
	case *core.ConflictError:
		code = http.StatusConflict
		message = origErr.Error()
	default:
		switch errors.Cause(err) {
		case school.ErrNotFound, document.ErrNotFound:
			code = http.StatusNotFound
			message = "not found"
		case importer.ErrNoIDColumn:
			code = http.StatusBadRequest
			message = errors.Cause(err).Error()
		case document.ErrUnsupportedFormat:
			code = http.StatusUnsupportedMediaType
			message = errors.Cause(err).Error()
		default: // any other error is a server error
			code = http.StatusInternalServerError
			message = http.StatusText(http.StatusInternalServerError)
			ctx.Logger().Errorf("%+v", err)
		}
	}

	if ctx.Echo().Debug {
		message = err.Error()
	}
	if m, ok := message.(string); ok {
		message = echo.Map{"error": m}
	}

	// Send response
	if !ctx.Response().Committed {
		if ctx.Request().Method == http.MethodHead { // Issue #608
			err = ctx.NoContent(code)
		} else {
			err = ctx.JSON(code, message)
		}
		if err != nil {
			ctx.Echo().Logger.Error(err)
		}
	}
}
