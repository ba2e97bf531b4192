package views

import (
	"strings"
	"testing"
	"time"
)

func TestDashboardCreatingMode(t *testing.T) {
	html := renderToString(t, AdminDashboard(testCfg, DashboardData{
		Mode:      Creating(),
		CSRFToken: "tok",
	}))

	if !strings.Contains(html, ">Publish Post<") {
		t.Error("create mode should use the publish label")
	}
	if strings.Contains(html, "Cancel Edit") {
		t.Error("create mode should not show the cancel-edit control")
	}
	if !strings.Contains(html, `name="id" value=""`) {
		t.Error("create mode should carry an empty hidden id")
	}
	if !strings.Contains(html, "No posts yet.") {
		t.Error("empty list should render the placeholder")
	}
}

func TestDashboardEditingMode(t *testing.T) {
	form := Post{Title: "X", Description: "desc", Link: "https://x", ImageURL: "https://y"}
	html := renderToString(t, AdminDashboard(testCfg, DashboardData{
		Mode:      Editing("abc"),
		Form:      form,
		CSRFToken: "tok",
	}))

	if !strings.Contains(html, `name="id" value="abc"`) {
		t.Error("editing mode should carry the post id in the hidden field")
	}
	if !strings.Contains(html, `value="X"`) {
		t.Error("title field should be populated")
	}
	if !strings.Contains(html, ">desc</textarea>") {
		t.Error("description field should be populated")
	}
	if !strings.Contains(html, ">Update Post<") {
		t.Error("editing mode should use the update label")
	}
	if !strings.Contains(html, "Cancel Edit") {
		t.Error("editing mode should show the cancel-edit control")
	}
}

func TestDashboardRowControls(t *testing.T) {
	post := Post{ID: "abc", Title: "Hello", Description: "World", CreatedAt: time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)}
	html := renderToString(t, AdminDashboard(testCfg, DashboardData{
		Posts:     []Post{post},
		Mode:      Creating(),
		CSRFToken: "tok",
	}))

	if !strings.Contains(html, `href="/admin/post/abc/"`) {
		t.Error("row should link to the edit view by id")
	}
	if !strings.Contains(html, `action="/admin/delete/abc/"`) {
		t.Error("row should post the delete to the id route")
	}
	if !strings.Contains(html, `data-confirm=`) {
		t.Error("delete form should carry the confirmation attribute")
	}
}

func TestDashboardListError(t *testing.T) {
	html := renderToString(t, AdminDashboard(testCfg, DashboardData{
		ListError: true,
		Mode:      Creating(),
	}))
	if !strings.Contains(html, "Error loading posts.") {
		t.Error("list fetch failure should render the error placeholder")
	}
}

func TestDashboardMessageBanner(t *testing.T) {
	html := renderToString(t, AdminDashboard(testCfg, DashboardData{
		Message: "New post created.",
		Mode:    Creating(),
	}))
	if !strings.Contains(html, `class="message success"`) || !strings.Contains(html, "New post created.") {
		t.Error("success banner should be rendered")
	}

	html = renderToString(t, AdminDashboard(testCfg, DashboardData{
		Message:  "Error creating post: boom",
		MsgError: true,
		Mode:     Creating(),
	}))
	if !strings.Contains(html, `class="message error"`) {
		t.Error("error banner should use the error class")
	}
}

func TestDashboardEscapesPostFields(t *testing.T) {
	post := Post{ID: "p", Title: `<img src=x onerror=alert(1)>`, Description: "d"}
	html := renderToString(t, AdminDashboard(testCfg, DashboardData{
		Posts: []Post{post},
		Mode:  Creating(),
	}))
	if strings.Contains(html, "<img src=x") {
		t.Error("row title must be escaped")
	}
	if !strings.Contains(html, "&lt;img src=x") {
		t.Error("escaped title missing from output")
	}
}

func TestAdminLoginError(t *testing.T) {
	html := renderToString(t, AdminLogin(testCfg, "", "tok"))
	if strings.Contains(html, `class="message error"`) {
		t.Error("no error banner expected without a message")
	}

	html = renderToString(t, AdminLogin(testCfg, "Login failed: invalid email or password", "tok"))
	if !strings.Contains(html, "Login failed: invalid email or password") {
		t.Error("login error message should be rendered")
	}
	if !strings.Contains(html, `name="_csrf" value="tok"`) {
		t.Error("login form should carry the CSRF token")
	}
}
