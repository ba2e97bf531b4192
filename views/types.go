package views

import "time"

// SiteConfig holds site-wide settings populated from environment variables.
// Every handler passes this to templates so nothing is hardcoded.
type SiteConfig struct {
	Name        string // SITE_NAME  (default "Blog")
	URL         string // SITE_URL   (default "http://localhost:3000")
	Description string // SITE_DESCRIPTION
	Author      string // SITE_AUTHOR
}

// Post is the core content type stored in SQLite and rendered by templates.
// ID and CreatedAt are assigned by the store on the create path and never
// change afterwards; updates replace the remaining fields wholesale.
type Post struct {
	ID          string
	Title       string
	Description string
	Link        string // optional external link; rendered only if usable
	ImageURL    string // optional; rendered only if it begins with "http"
	CreatedAt   time.Time
}

// EditorMode says whether the admin form is creating a new post or editing
// an existing one. It is passed explicitly into the form template instead of
// living in shared mutable state.
type EditorMode struct {
	editing bool
	id      string
}

// Creating returns the mode for a blank create form.
func Creating() EditorMode { return EditorMode{} }

// Editing returns the mode for editing the post with the given id.
func Editing(id string) EditorMode { return EditorMode{editing: true, id: id} }

// IsEditing reports whether the mode targets an existing post.
func (m EditorMode) IsEditing() bool { return m.editing }

// PostID returns the id being edited, or "" in create mode.
func (m EditorMode) PostID() string { return m.id }

// SubmitLabel is the label of the form's submit button for this mode.
func (m EditorMode) SubmitLabel() string {
	if m.editing {
		return "Update Post"
	}
	return "Publish Post"
}

// Image is metadata for an uploaded image served from the static directory.
type Image struct {
	Filename     string
	OriginalName string
	Width        int
	Height       int
	Size         int
	UploadedAt   string
}
