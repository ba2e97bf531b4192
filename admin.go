package gearpress

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/gearpress/gearpress/views"
)

// handleAdmin is the session gate: without a valid session the login view is
// rendered, with one the dashboard (which performs a fresh list fetch).
func (a *App) handleAdmin(c echo.Context) error {
	if !IsAdmin(c) {
		return Render(c, views.AdminLogin(a.Config.viewConfig(), "", CsrfToken(c)))
	}
	return a.renderDashboard(c, views.Creating(), views.Post{}, c.QueryParam("msg"), false)
}

func (a *App) handleAdminLogin(c echo.Context) error {
	if !a.loginLimiter.Check(c.RealIP()) {
		return c.String(http.StatusTooManyRequests, "Too many login attempts. Try again later.")
	}
	email := strings.TrimSpace(c.FormValue("email"))
	password := c.FormValue("password")
	if err := a.Auth.SignIn(email, password); err != nil {
		a.loginLimiter.Record(c.RealIP())
		return Render(c, views.AdminLogin(a.Config.viewConfig(), "Login failed: "+err.Error(), CsrfToken(c)))
	}
	if err := setAdminSession(c, email); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

func (a *App) handleAdminLogout(c echo.Context) error {
	if err := clearAdminSession(c); err != nil {
		return err
	}
	return c.Redirect(http.StatusSeeOther, "/admin/")
}

// handleAdminEdit populates the editor form with an existing post's fields
// and switches it into editing mode.
func (a *App) handleAdminEdit(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	id := c.Param("id")
	post, err := a.Store.GetPost(id)
	if err != nil {
		if err == ErrNotFound {
			return echo.NewHTTPError(http.StatusNotFound)
		}
		return err
	}
	return a.renderDashboard(c, views.Editing(id), post, "", false)
}

// handleAdminSave creates or updates a post depending on the hidden id
// field. The creation timestamp is stamped by the store on the create path
// and never sent on updates.
func (a *App) handleAdminSave(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	if err := c.Request().ParseForm(); err != nil {
		return err
	}
	id := strings.TrimSpace(c.FormValue("id"))
	payload := views.Post{
		Title:       c.FormValue("title"),
		Description: c.FormValue("description"),
		Link:        c.FormValue("link"),
		ImageURL:    c.FormValue("imageUrl"),
	}

	if id != "" {
		if err := a.Store.UpdatePost(id, payload); err != nil {
			msg := "Error updating post: " + err.Error()
			if err == ErrNotFound {
				msg = "Error updating post: post no longer exists."
			}
			return a.renderDashboard(c, views.Editing(id), payload, msg, true)
		}
		a.Cache.Invalidate()
		return c.Redirect(http.StatusSeeOther, "/admin/?msg=Post+updated+successfully.")
	}

	if _, err := a.Store.CreatePost(payload); err != nil {
		return a.renderDashboard(c, views.Creating(), payload, "Error creating post: "+err.Error(), true)
	}
	a.Cache.Invalidate()
	return c.Redirect(http.StatusSeeOther, "/admin/?msg=New+post+created.")
}

// handleAdminDelete removes a post by id. The delete control in the view
// carries the confirmation attribute, so reaching this handler means the
// user confirmed.
func (a *App) handleAdminDelete(c echo.Context) error {
	if !IsAdmin(c) {
		return c.Redirect(http.StatusSeeOther, "/admin/")
	}
	id := c.Param("id")
	if err := a.Store.DeletePost(id); err != nil {
		msg := "Error deleting post: " + err.Error()
		if err == ErrNotFound {
			msg = "Error deleting post: post no longer exists."
		}
		return a.renderDashboard(c, views.Creating(), views.Post{}, msg, true)
	}
	a.Cache.Invalidate()
	return c.Redirect(http.StatusSeeOther, "/admin/?msg=Post+deleted.")
}

// renderDashboard fetches the post list fresh from the store and renders the
// dashboard. A failed fetch degrades to the inline error placeholder instead
// of failing the whole page.
func (a *App) renderDashboard(c echo.Context, mode views.EditorMode, form views.Post, msg string, msgErr bool) error {
	posts, err := a.Store.ListPosts()
	listErr := false
	if err != nil {
		c.Logger().Errorf("list posts: %v", err)
		listErr = true
	}
	return Render(c, views.AdminDashboard(a.Config.viewConfig(), views.DashboardData{
		Posts:     posts,
		ListError: listErr,
		Message:   msg,
		MsgError:  msgErr,
		Mode:      mode,
		Form:      form,
		CSRFToken: CsrfToken(c),
	}))
}
