package views

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eringen/cleanblog"
)

var testConfig = cleanblog.SiteConfig{
	Name:        "Test Blog",
	URL:         "http://example.com",
	Description: "Notes from the road",
	Author:      "Site Owner",
}

func render(t *testing.T, cmp templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, cmp.Render(context.Background(), &buf))
	return buf.String()
}

func samplePost() cleanblog.BlogPost {
	return cleanblog.BlogPost{
		ID:       3,
		Title:    "Trip <Log>",
		Subtitle: "Day 1",
		Date:     "March 05, 2026",
		Body:     "<p>Hi <em>there</em></p>",
		Author:   "A",
		ImgURL:   "http://example.com/a.jpg",
	}
}

func TestHomeListsPosts(t *testing.T) {
	v := Funcs(testConfig)
	post := samplePost()

	html := render(t, v.Home([]cleanblog.BlogPost{post}, "Post published."))

	assert.Contains(t, html, "<title>Test Blog</title>")
	assert.Contains(t, html, "Trip &lt;Log&gt;")
	assert.Contains(t, html, `href="/post/3"`)
	assert.Contains(t, html, `href="/delete/3"`)
	assert.Contains(t, html, "Posted by A on March 05, 2026")
	assert.Contains(t, html, "Post published.")
	assert.Contains(t, html, `href="/new-post"`)
	assert.NotContains(t, html, "No posts yet.")
}

func TestHomeEmpty(t *testing.T) {
	html := render(t, Funcs(testConfig).Home(nil, ""))

	assert.Contains(t, html, "No posts yet.")
	assert.NotContains(t, html, "alert-success")
}

func TestPostRendersTrustedBody(t *testing.T) {
	post := samplePost()

	html := render(t, Funcs(testConfig).Post(post, ""))

	assert.Contains(t, html, "<p>Hi <em>there</em></p>")
	assert.Contains(t, html, "<h1>Trip &lt;Log&gt;</h1>")
	assert.NotContains(t, html, "<h1>Trip <Log></h1>")
	assert.Contains(t, html, `href="/edit-post/3"`)
	assert.Contains(t, html, `<link rel="canonical" href="http://example.com/post/3">`)
	assert.Contains(t, html, `<meta property="og:type" content="article">`)
	assert.Contains(t, html, "application/ld+json")
}

func TestPostFormNew(t *testing.T) {
	html := render(t, Funcs(testConfig).PostForm(cleanblog.PostForm{}, nil, false, "tok123"))

	assert.Contains(t, html, "<h1>New Post</h1>")
	assert.Contains(t, html, `name="_csrf" value="tok123"`)
	assert.Contains(t, html, `name="img_url"`)
	assert.Contains(t, html, "ckeditor.js")
	assert.NotContains(t, html, "is-invalid")
}

func TestPostFormEditWithErrors(t *testing.T) {
	form := cleanblog.PostForm{Title: `Say "hi"`, ImgURL: "not-a-url", Body: "<p>draft</p>"}
	errs := cleanblog.FieldErrors{
		"img_url": "Invalid URL.",
		"body":    "This field is required.",
	}

	html := render(t, Funcs(testConfig).PostForm(form, errs, true, "tok"))

	assert.Contains(t, html, "<h1>Edit Post</h1>")
	assert.Contains(t, html, "Invalid URL.")
	assert.Contains(t, html, "This field is required.")
	assert.Contains(t, html, `value="Say &#34;hi&#34;"`)
	assert.Contains(t, html, "&lt;p&gt;draft&lt;/p&gt;</textarea>")
}

func TestStaticAndErrorPages(t *testing.T) {
	v := Funcs(testConfig)

	assert.Contains(t, render(t, v.About()), "<title>About | Test Blog</title>")
	assert.Contains(t, render(t, v.Contact()), "<title>Contact | Test Blog</title>")
	assert.Contains(t, render(t, v.NotFound()), "Page not found")
	assert.Contains(t, render(t, v.ServerError()), "<title>Error | Test Blog</title>")
}

func TestBlogPostingJsonLD(t *testing.T) {
	post := samplePost()
	post.Author = ""

	var data map[string]any
	require.NoError(t, json.Unmarshal([]byte(BlogPostingJsonLD(testConfig, post)), &data))

	assert.Equal(t, "BlogPosting", data["@type"])
	assert.Equal(t, "Trip <Log>", data["headline"])
	assert.Equal(t, "http://example.com/post/3", data["url"])
	assert.Equal(t, "2026-03-05", data["datePublished"])
	author, ok := data["author"].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "Site Owner", author["name"])
}

func TestWebsiteJsonLD(t *testing.T) {
	var data map[string]any
	require.NoError(t, json.Unmarshal([]byte(WebsiteJsonLD(testConfig)), &data))

	assert.Equal(t, "WebSite", data["@type"])
	assert.Equal(t, "http://example.com/", data["url"])
	assert.Equal(t, "Notes from the road", data["description"])
}
