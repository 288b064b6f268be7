package scribe

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

func (a *App) handleDashboard(c echo.Context) error {
	if !a.isAdmin(c) {
		return Render(c, a.Views.Login(CsrfToken(c)))
	}
	return a.renderDashboard(c)
}

// handleLogin processes the login form posted to /dashboard. A failed
// attempt falls through to re-render the login form with no error detail.
func (a *App) handleLogin(c echo.Context) error {
	if a.isAdmin(c) {
		return a.renderDashboard(c)
	}
	username := c.FormValue("uname")
	password := c.FormValue("pass")
	if a.checkCredentials(username, password) {
		if err := adminSession(c).SetUser(username); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}
	return Render(c, a.Views.Login(CsrfToken(c)))
}

func (a *App) handleEditForm(c echo.Context) error {
	if !a.isAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}
	id := parseID(c.Param("id"))
	if id == 0 {
		return Render(c, a.Views.Edit(Post{}, CsrfToken(c)))
	}
	post, err := a.Store.GetPostByID(c.Request().Context(), id)
	if err != nil {
		if IsNotFound(err) {
			return Render(c, a.Views.Edit(Post{}, CsrfToken(c)))
		}
		return err
	}
	return Render(c, a.Views.Edit(post, CsrfToken(c)))
}

// handleEditSubmit creates or updates a post. The route keeps /edit/0 as the
// public "create" surface, but internally dispatches to the discriminated
// CreatePost/UpdatePost store operations.
func (a *App) handleEditSubmit(c echo.Context) error {
	if !a.isAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}
	if err := c.Request().ParseForm(); err != nil {
		return err
	}

	fields := PostFields{
		Title:     strings.TrimSpace(c.FormValue("title")),
		Slug:      strings.TrimSpace(c.FormValue("slug")),
		Content:   c.FormValue("content"),
		Tagline:   c.FormValue("tline"),
		ImageFile: strings.TrimSpace(c.FormValue("img_file")),
	}
	if fields.Slug == "" {
		fields.Slug = Slugify(fields.Title)
	}

	sess := adminSession(c)
	id := parseID(c.Param("id"))
	if id == 0 {
		post := Post{
			Title:     fields.Title,
			Slug:      fields.Slug,
			Content:   fields.Content,
			Tagline:   fields.Tagline,
			ImageFile: fields.ImageFile,
		}
		if err := a.Store.CreatePost(c.Request().Context(), &post); err != nil {
			return err
		}
		if err := sess.AddFlash("New Post has been added successfully"); err != nil {
			return err
		}
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}

	if err := a.Store.UpdatePost(c.Request().Context(), id, fields); err != nil {
		if IsNotFound(err) {
			return c.Redirect(http.StatusSeeOther, "/dashboard")
		}
		return err
	}
	if err := sess.AddFlash("Post has been updated successfully"); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// handleDelete removes a post. A missing id leaves the dashboard unchanged,
// with no flash.
func (a *App) handleDelete(c echo.Context) error {
	if !a.isAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}
	id := parseID(c.Param("id"))
	ctx := c.Request().Context()
	if _, err := a.Store.GetPostByID(ctx, id); err != nil {
		if IsNotFound(err) {
			return c.Redirect(http.StatusSeeOther, "/dashboard")
		}
		return err
	}
	if err := a.Store.DeletePost(ctx, id); err != nil {
		return err
	}
	if err := adminSession(c).AddFlash("Post has been deleted successfully"); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

// handleUpload stores a single uploaded file under the configured directory.
// A request without the file field is a silent no-op.
func (a *App) handleUpload(c echo.Context) error {
	if !a.isAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}
	file, err := c.FormFile(uploadField)
	if err != nil {
		return c.Redirect(http.StatusSeeOther, "/dashboard")
	}
	if _, err := saveUpload(file, a.Config.UploadDir); err != nil {
		return err
	}
	if err := adminSession(c).AddFlash("File has been uploaded successfully"); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (a *App) handleLogout(c echo.Context) error {
	if err := adminSession(c).Clear(); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/dashboard")
}

func (a *App) renderDashboard(c echo.Context) error {
	posts, err := a.Store.ListPosts(c.Request().Context())
	if err != nil {
		return err
	}
	flashes := adminSession(c).Flashes()
	return Render(c, a.Views.Dashboard(posts, flashes, CsrfToken(c)))
}

// parseID reads a numeric path parameter. Anything non-numeric maps to the
// 0 sentinel, which the edit flow treats as "create new".
func parseID(raw string) uint {
	n, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0
	}
	return uint(n)
}
