package cleanblog

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Render writes cmp as a 200 HTML response.
func Render(c echo.Context, cmp templ.Component) error {
	return RenderStatus(c, http.StatusOK, cmp)
}

// RenderStatus buffers cmp and writes it with the given status. Nothing is
// sent if the component fails, so the error handler can still respond.
func RenderStatus(c echo.Context, code int, cmp templ.Component) error {
	var buf bytes.Buffer
	if err := cmp.Render(c.Request().Context(), &buf); err != nil {
		return err
	}
	return c.HTMLBlob(code, buf.Bytes())
}

// renderForm re-renders the post form, for a new post or an edit of an
// existing one, with the submitted values and their errors.
func (a *App) renderForm(c echo.Context, code int, form PostForm, errs FieldErrors, edit bool) error {
	return RenderStatus(c, code, a.Views.PostForm(form, errs, edit, CsrfToken(c)))
}
