// Package views renders cleanblog pages from embedded html/template files and
// exposes them as templ components through cleanblog.ViewFuncs.
package views

import (
	"context"
	"embed"
	"html/template"
	"io"
	"time"

	"github.com/a-h/templ"

	"github.com/eringen/cleanblog"
)

//go:embed templates/*.html
var templateFS embed.FS

var funcs = template.FuncMap{
	"trustedHTML": trustedHTML,
	"hasError": func(errs cleanblog.FieldErrors, field string) bool {
		return errs.Has(field)
	},
	"fieldError": func(errs cleanblog.FieldErrors, field string) string {
		return errs[field]
	},
	"fieldArgs": func(name, label, value string, errs cleanblog.FieldErrors) formField {
		return formField{Name: name, Label: label, Value: value, Error: errs[name]}
	},
}

// formField is the context of the "field" template in make-post.html.
type formField struct {
	Name  string
	Label string
	Value string
	Error string
}

var pages = map[string]*template.Template{
	"index":     parsePage("index.html"),
	"post":      parsePage("post.html"),
	"make-post": parsePage("make-post.html"),
	"about":     parsePage("about.html"),
	"contact":   parsePage("contact.html"),
	"404":       parsePage("404.html"),
	"500":       parsePage("500.html"),
}

func parsePage(name string) *template.Template {
	return template.Must(template.New(name).Funcs(funcs).ParseFS(templateFS, "templates/layout.html", "templates/"+name))
}

// trustedHTML marks a post body as safe markup. Bodies come from the
// operator's rich-text editor and are rendered verbatim with no sanitizing;
// this is the only place the templates bypass escaping.
func trustedHTML(body string) template.HTML {
	return template.HTML(body)
}

// pageData is the context every page template receives.
type pageData struct {
	Site        cleanblog.SiteConfig
	Meta        cleanblog.PageMeta
	HeaderImage string
	JSONLD      template.JS
	Flash       string
	Year        int

	AllPosts  []cleanblog.BlogPost
	Post      cleanblog.BlogPost
	Form      cleanblog.PostForm
	Errors    cleanblog.FieldErrors
	Edit      bool
	CSRFToken string
}

type renderer struct {
	cfg cleanblog.SiteConfig
}

// Funcs returns the view functions for a site with the given configuration.
func Funcs(cfg cleanblog.SiteConfig) cleanblog.ViewFuncs {
	r := renderer{cfg: cfg}
	return cleanblog.ViewFuncs{
		Home:        r.home,
		Post:        r.post,
		PostForm:    r.postForm,
		About:       r.about,
		Contact:     r.contact,
		NotFound:    r.notFound,
		ServerError: r.serverError,
	}
}

func (r renderer) page(meta cleanblog.PageMeta) pageData {
	if meta.OGType == "" {
		meta.OGType = "website"
	}
	if meta.Description == "" {
		meta.Description = r.cfg.Description
	}
	return pageData{
		Site: r.cfg,
		Meta: meta,
		Year: time.Now().Year(),
	}
}

func (r renderer) home(posts []cleanblog.BlogPost, flash string) templ.Component {
	d := r.page(cleanblog.PageMeta{Title: r.cfg.Name, URL: buildURL(r.cfg.URL)})
	d.JSONLD = template.JS(WebsiteJsonLD(r.cfg))
	d.AllPosts = posts
	d.Flash = flash
	return component("index", d)
}

func (r renderer) post(post cleanblog.BlogPost, flash string) templ.Component {
	d := r.page(cleanblog.PageMeta{
		Title:       post.Title + " | " + r.cfg.Name,
		Description: post.Subtitle,
		URL:         buildURL(r.cfg.URL, post.Link()),
		OGType:      "article",
		Image:       post.ImgURL,
	})
	d.JSONLD = template.JS(BlogPostingJsonLD(r.cfg, post))
	d.HeaderImage = post.ImgURL
	d.Post = post
	d.Flash = flash
	return component("post", d)
}

func (r renderer) postForm(form cleanblog.PostForm, errs cleanblog.FieldErrors, edit bool, csrfToken string) templ.Component {
	title := "New Post"
	if edit {
		title = "Edit Post"
	}
	d := r.page(cleanblog.PageMeta{Title: title + " | " + r.cfg.Name})
	d.Form = form
	d.Errors = errs
	d.Edit = edit
	d.CSRFToken = csrfToken
	return component("make-post", d)
}

func (r renderer) about() templ.Component {
	return component("about", r.page(cleanblog.PageMeta{Title: "About | " + r.cfg.Name, URL: buildURL(r.cfg.URL, "about")}))
}

func (r renderer) contact() templ.Component {
	return component("contact", r.page(cleanblog.PageMeta{Title: "Contact | " + r.cfg.Name, URL: buildURL(r.cfg.URL, "contact")}))
}

func (r renderer) notFound() templ.Component {
	return component("404", r.page(cleanblog.PageMeta{Title: "Not Found | " + r.cfg.Name}))
}

func (r renderer) serverError() templ.Component {
	return component("500", r.page(cleanblog.PageMeta{Title: "Error | " + r.cfg.Name}))
}

func component(page string, data pageData) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return pages[page].ExecuteTemplate(w, "layout", data)
	})
}
