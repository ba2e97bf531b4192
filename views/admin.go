package views

import (
	"bytes"
	"strconv"

	"github.com/a-h/templ"
)

// AdminLogin renders the email/password login view shown to requests
// without a valid session.
func AdminLogin(cfg SiteConfig, errMsg string, csrfToken string) templ.Component {
	return component(func(buf *bytes.Buffer) {
		page(buf, cfg, "Admin Login — "+cfg.Name, []string{"/public/dashboard.js"}, func(buf *bytes.Buffer) {
			buf.WriteString("<main class=\"login-section\"><h1>Admin Login</h1>")
			if errMsg != "" {
				buf.WriteString("<div id=\"message\" class=\"message error\">" + esc(errMsg) + "</div>")
			}
			buf.WriteString("<form method=\"post\" action=\"/admin/login/\">")
			buf.WriteString("<input type=\"hidden\" name=\"_csrf\" value=\"" + esc(csrfToken) + "\">")
			buf.WriteString("<label for=\"email\">Email</label>")
			buf.WriteString("<input type=\"email\" id=\"email\" name=\"email\" required autocomplete=\"email\">")
			buf.WriteString("<label for=\"password\">Password</label>")
			buf.WriteString("<input type=\"password\" id=\"password\" name=\"password\" required autocomplete=\"current-password\">")
			buf.WriteString("<button type=\"submit\" class=\"btn\">Sign In</button>")
			buf.WriteString("</form></main>")
		})
	})
}

// DashboardData is everything the admin dashboard view needs for one render.
type DashboardData struct {
	Posts     []Post
	ListError bool   // the list fetch failed; show the error placeholder
	Message   string // transient status banner, "" for none
	MsgError  bool   // banner is an error rather than a success
	Mode      EditorMode
	Form      Post // field values to populate the editor form with
	CSRFToken string
}

// AdminDashboard renders the post editor: status banner, create/update form,
// and the post list with edit and delete controls.
func AdminDashboard(cfg SiteConfig, d DashboardData) templ.Component {
	return component(func(buf *bytes.Buffer) {
		page(buf, cfg, "Dashboard — "+cfg.Name, []string{"/public/dashboard.js"}, func(buf *bytes.Buffer) {
			buf.WriteString("<main class=\"dashboard-section\">")
			buf.WriteString("<header class=\"dashboard-header\"><h1>Dashboard</h1>")
			buf.WriteString("<form method=\"post\" action=\"/admin/logout/\">")
			buf.WriteString("<input type=\"hidden\" name=\"_csrf\" value=\"" + esc(d.CSRFToken) + "\">")
			buf.WriteString("<button type=\"submit\" id=\"logout-btn\" class=\"btn btn-secondary\">Logout</button>")
			buf.WriteString("</form></header>")
			if d.Message != "" {
				class := "message success"
				if d.MsgError {
					class = "message error"
				}
				buf.WriteString("<div id=\"message\" class=\"" + class + "\">" + esc(d.Message) + "</div>")
			}
			writeAdminForm(buf, d.Mode, d.Form, d.CSRFToken)
			buf.WriteString("<h2>Posts</h2><div id=\"blog-list\" class=\"blog-list\">")
			switch {
			case d.ListError:
				buf.WriteString("<p class=\"list-error\">Error loading posts.</p>")
			case len(d.Posts) == 0:
				buf.WriteString("<p class=\"list-empty\">No posts yet.</p>")
			default:
				for _, p := range d.Posts {
					writeAdminRow(buf, p, d.CSRFToken)
				}
			}
			buf.WriteString("</div></main>")
		})
	})
}

func writeAdminForm(buf *bytes.Buffer, mode EditorMode, form Post, csrfToken string) {
	heading := "New Post"
	if mode.IsEditing() {
		heading = "Edit Post"
	}
	buf.WriteString("<section class=\"editor\"><h2>" + heading + "</h2>")
	buf.WriteString("<form id=\"blog-form\" method=\"post\" action=\"/admin/save/\">")
	buf.WriteString("<input type=\"hidden\" name=\"_csrf\" value=\"" + esc(csrfToken) + "\">")
	buf.WriteString("<input type=\"hidden\" name=\"id\" value=\"" + esc(mode.PostID()) + "\">")
	buf.WriteString("<label for=\"title\">Title</label>")
	buf.WriteString("<input type=\"text\" id=\"title\" name=\"title\" required value=\"" + esc(form.Title) + "\">")
	buf.WriteString("<label for=\"description\">Description</label>")
	buf.WriteString("<textarea id=\"description\" name=\"description\" rows=\"5\" required>" + esc(form.Description) + "</textarea>")
	buf.WriteString("<label for=\"link\">Link (optional)</label>")
	buf.WriteString("<input type=\"url\" id=\"link\" name=\"link\" value=\"" + esc(form.Link) + "\">")
	buf.WriteString("<label for=\"imageUrl\">Image URL (optional)</label>")
	buf.WriteString("<input type=\"url\" id=\"imageUrl\" name=\"imageUrl\" value=\"" + esc(form.ImageURL) + "\">")
	buf.WriteString("<button type=\"submit\" id=\"submit-btn\" class=\"btn\" data-busy-label=\"Saving...\">" + mode.SubmitLabel() + "</button>")
	if mode.IsEditing() {
		buf.WriteString("<a href=\"/admin/\" id=\"cancel-edit-btn\" class=\"btn btn-secondary\">Cancel Edit</a>")
	}
	buf.WriteString("</form></section>")
}

func writeAdminRow(buf *bytes.Buffer, p Post, csrfToken string) {
	buf.WriteString("<div class=\"blog-list-item\"><div class=\"blog-info\">")
	buf.WriteString("<h4>" + esc(p.Title) + "</h4>")
	buf.WriteString("<p>" + esc(Excerpt(p.Description, 120)) + "</p>")
	buf.WriteString("<time datetime=\"" + esc(p.CreatedAt.Format("2006-01-02")) + "\">" + esc(p.CreatedAt.Format("Jan 2, 2006")) + "</time>")
	buf.WriteString("</div><div class=\"blog-actions\">")
	buf.WriteString("<a class=\"btn btn-sm btn-edit\" href=\"/admin/post/" + esc(p.ID) + "/\">Edit</a>")
	buf.WriteString("<form method=\"post\" action=\"/admin/delete/" + esc(p.ID) + "/\" data-confirm=\"Delete this post? This cannot be undone.\">")
	buf.WriteString("<input type=\"hidden\" name=\"_csrf\" value=\"" + esc(csrfToken) + "\">")
	buf.WriteString("<button type=\"submit\" class=\"btn btn-sm btn-delete\">Delete</button>")
	buf.WriteString("</form></div></div>")
}

// AdminImages renders the uploaded-image manager below the dashboard.
func AdminImages(cfg SiteConfig, images []Image, csrfToken string) templ.Component {
	return component(func(buf *bytes.Buffer) {
		page(buf, cfg, "Images — "+cfg.Name, []string{"/public/dashboard.js"}, func(buf *bytes.Buffer) {
			buf.WriteString("<main class=\"dashboard-section\"><h1>Images</h1>")
			buf.WriteString("<form method=\"post\" action=\"/admin/images/upload/\" enctype=\"multipart/form-data\">")
			buf.WriteString("<input type=\"hidden\" name=\"_csrf\" value=\"" + esc(csrfToken) + "\">")
			buf.WriteString("<input type=\"file\" name=\"image\" accept=\"image/*\" required>")
			buf.WriteString("<button type=\"submit\" class=\"btn\">Upload</button>")
			buf.WriteString("</form><div class=\"image-list\">")
			if len(images) == 0 {
				buf.WriteString("<p class=\"list-empty\">No images uploaded.</p>")
			}
			for _, img := range images {
				buf.WriteString("<div class=\"image-item\">")
				buf.WriteString("<img src=\"/public/uploads/" + esc(img.Filename) + "\" alt=\"" + esc(img.OriginalName) + "\" loading=\"lazy\">")
				buf.WriteString("<code>/public/uploads/" + esc(img.Filename) + "</code>")
				buf.WriteString("<span>" + strconv.Itoa(img.Width) + "×" + strconv.Itoa(img.Height) + "</span>")
				buf.WriteString("<form method=\"post\" action=\"/admin/images/delete/" + esc(img.Filename) + "/\" data-confirm=\"Delete this image?\">")
				buf.WriteString("<input type=\"hidden\" name=\"_csrf\" value=\"" + esc(csrfToken) + "\">")
				buf.WriteString("<button type=\"submit\" class=\"btn btn-sm btn-delete\">Delete</button>")
				buf.WriteString("</form></div>")
			}
			buf.WriteString("</div><p><a href=\"/admin/\">Back to dashboard</a></p></main>")
		})
	})
}
