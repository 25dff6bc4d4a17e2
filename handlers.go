package cleanblog

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
)

var duplicateTitleErrors = FieldErrors{"title": "A post with this title already exists."}

func (a *App) handleHome(c echo.Context) error {
	posts, err := a.Store.ListPosts(c.Request().Context())
	if err != nil {
		return err
	}
	return Render(c, a.Views.Home(posts, a.popFlash(c)))
}

// handlePost answers GET and POST alike; the post page has no form of its own.
func (a *App) handlePost(c echo.Context) error {
	id, err := postID(c)
	if err != nil {
		return err
	}
	post, err := a.Store.GetPost(c.Request().Context(), id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return a.renderNotFound(c)
		}
		return err
	}
	return Render(c, a.Views.Post(post, a.popFlash(c)))
}

func (a *App) handleNewPost(c echo.Context) error {
	if c.Request().Method != http.MethodPost {
		return a.renderForm(c, http.StatusOK, PostForm{}, nil, false)
	}

	var form PostForm
	if err := c.Bind(&form); err != nil {
		return err
	}
	if errs := form.Validate(); len(errs) > 0 {
		return a.renderForm(c, http.StatusUnprocessableEntity, form, errs, false)
	}

	post := form.Post()
	post.Date = a.now().Format(DateLayout)
	created, err := a.Store.CreatePost(c.Request().Context(), post)
	if err != nil {
		if errors.Is(err, ErrDuplicateTitle) {
			return a.renderForm(c, http.StatusConflict, form, duplicateTitleErrors, false)
		}
		return err
	}
	a.Log.Info().Int64("id", created.ID).Str("title", created.Title).Msg("post created")

	if err := addFlash(c, "Post published."); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func (a *App) handleEditPost(c echo.Context) error {
	id, err := postID(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()
	post, err := a.Store.GetPost(ctx, id)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return a.renderNotFound(c)
		}
		return err
	}
	if c.Request().Method != http.MethodPost {
		return a.renderForm(c, http.StatusOK, FormFromPost(post), nil, true)
	}

	var form PostForm
	if err := c.Bind(&form); err != nil {
		return err
	}
	if errs := form.Validate(); len(errs) > 0 {
		return a.renderForm(c, http.StatusUnprocessableEntity, form, errs, true)
	}

	if err := a.Store.UpdatePost(ctx, id, form.Post()); err != nil {
		switch {
		case errors.Is(err, ErrDuplicateTitle):
			return a.renderForm(c, http.StatusConflict, form, duplicateTitleErrors, true)
		case errors.Is(err, ErrNotFound):
			return a.renderNotFound(c)
		}
		return err
	}
	a.Log.Info().Int64("id", id).Msg("post updated")

	if err := addFlash(c, "Post updated."); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, post.Link())
}

// handleDeletePost deletes on GET without a confirmation step, matching the
// delete links rendered on the post pages.
func (a *App) handleDeletePost(c echo.Context) error {
	id, err := postID(c)
	if err != nil {
		return err
	}
	if err := a.Store.DeletePost(c.Request().Context(), id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return a.renderNotFound(c)
		}
		return err
	}
	a.Log.Info().Int64("id", id).Msg("post deleted")

	if err := addFlash(c, "Post deleted."); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/")
}

func (a *App) handleAbout(c echo.Context) error {
	return Render(c, a.Views.About())
}

func (a *App) handleContact(c echo.Context) error {
	return Render(c, a.Views.Contact())
}

func (a *App) handleSitemap(c echo.Context) error {
	posts, err := a.Store.ListPosts(c.Request().Context())
	if err != nil {
		return err
	}
	return writeXML(c, "application/xml; charset=utf-8", buildSitemap(a.Config, posts))
}

func (a *App) handleFeed(c echo.Context) error {
	posts, err := a.Store.ListPosts(c.Request().Context())
	if err != nil {
		return err
	}
	return writeXML(c, "application/rss+xml; charset=utf-8", buildFeed(a.Config, posts))
}

// handleRobots generates robots.txt pointing at the sitemap under SiteConfig.URL.
func (a *App) handleRobots(c echo.Context) error {
	body := fmt.Sprintf("User-agent: *\nAllow: /\n\nSitemap: %s/sitemap.xml\n", a.Config.URL)
	return c.String(http.StatusOK, body)
}

func (a *App) renderNotFound(c echo.Context) error {
	return RenderStatus(c, http.StatusNotFound, a.Views.NotFound())
}

func (a *App) httpErrorHandler(err error, c echo.Context) {
	if c.Response().Committed {
		return
	}
	var he *echo.HTTPError
	ok := errors.As(err, &he)
	if ok && he.Code == http.StatusNotFound {
		_ = a.renderNotFound(c)
		return
	}
	code := http.StatusInternalServerError
	if ok {
		code = he.Code
	}
	if code >= 500 {
		a.Log.Error().
			Err(err).
			Str("method", c.Request().Method).
			Str("uri", c.Request().RequestURI).
			Str("request_id", c.Response().Header().Get(echo.HeaderXRequestID)).
			Msg("server error")
		_ = RenderStatus(c, code, a.Views.ServerError())
		return
	}
	msg := http.StatusText(code)
	if ok {
		if m, isText := he.Message.(string); isText {
			msg = m
		}
	}
	if c.Request().Method == http.MethodHead {
		_ = c.NoContent(code)
		return
	}
	_ = c.String(code, msg)
}

// postID parses the :id path parameter.
func postID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id < 1 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid post id")
	}
	return id, nil
}
