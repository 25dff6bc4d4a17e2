package cleanblog

import "strconv"

// DateLayout is the format of BlogPost.Date, stamped once when a post is created.
const DateLayout = "January 02, 2006"

// BlogPost is the single content type stored in SQLite and rendered by templates.
type BlogPost struct {
	ID       int64
	Title    string
	Subtitle string
	Date     string
	Body     string // rich HTML from the editor, stored verbatim
	Author   string
	ImgURL   string
}

// Link returns the site-relative URL of the post page.
func (p BlogPost) Link() string {
	return "/post/" + strconv.FormatInt(p.ID, 10)
}

// EditLink returns the site-relative URL of the post's edit form.
func (p BlogPost) EditLink() string {
	return "/edit-post/" + strconv.FormatInt(p.ID, 10)
}

// DeleteLink returns the site-relative URL that deletes the post.
func (p BlogPost) DeleteLink() string {
	return "/delete/" + strconv.FormatInt(p.ID, 10)
}

// PageMeta carries per-page OpenGraph and SEO metadata into the <head> template.
type PageMeta struct {
	Title       string
	Description string
	URL         string // canonical + og:url
	OGType      string // "website" or "article"
	Image       string
}
