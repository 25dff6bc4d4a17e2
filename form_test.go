package cleanblog

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPostFormValidate(t *testing.T) {
	valid := PostForm{
		Title:    "Trip Log",
		Subtitle: "Day 1",
		Author:   "A",
		ImgURL:   "http://example.com/a.jpg",
		Body:     "<p>Hi</p>",
	}

	tests := []struct {
		name   string
		mutate func(*PostForm)
		want   FieldErrors
	}{
		{
			name:   "valid",
			mutate: func(*PostForm) {},
			want:   FieldErrors{},
		},
		{
			name:   "https image",
			mutate: func(f *PostForm) { f.ImgURL = "https://cdn.example.org/img/photo.png?w=800" },
			want:   FieldErrors{},
		},
		{
			name:   "empty title",
			mutate: func(f *PostForm) { f.Title = "" },
			want:   FieldErrors{"title": "This field is required."},
		},
		{
			name:   "whitespace title",
			mutate: func(f *PostForm) { f.Title = "   " },
			want:   FieldErrors{"title": "This field is required."},
		},
		{
			name:   "relative image url",
			mutate: func(f *PostForm) { f.ImgURL = "not-a-url" },
			want:   FieldErrors{"img_url": "Invalid URL."},
		},
		{
			name:   "empty image url",
			mutate: func(f *PostForm) { f.ImgURL = "" },
			want:   FieldErrors{"img_url": "This field is required."},
		},
		{
			name: "everything missing",
			mutate: func(f *PostForm) {
				*f = PostForm{}
			},
			want: FieldErrors{
				"title":    "This field is required.",
				"subtitle": "This field is required.",
				"author":   "This field is required.",
				"img_url":  "This field is required.",
				"body":     "This field is required.",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := valid
			tt.mutate(&form)
			assert.Equal(t, tt.want, form.Validate())
		})
	}
}

func TestPostFormValidateDoesNotModify(t *testing.T) {
	form := PostForm{Title: "  Padded  ", ImgURL: "bad"}
	before := form

	errs := form.Validate()

	assert.Equal(t, before, form)
	assert.True(t, errs.Has("img_url"))
	assert.False(t, errs.Has("title"))
}

func TestPostFormPost(t *testing.T) {
	form := PostForm{
		Title:    " Trip Log ",
		Subtitle: "Day 1\n",
		Author:   "\tA",
		ImgURL:   " http://example.com/a.jpg",
		Body:     "<p>Hi</p>  ",
	}

	got := form.Post()

	assert.Equal(t, BlogPost{
		Title:    "Trip Log",
		Subtitle: "Day 1",
		Author:   "A",
		ImgURL:   "http://example.com/a.jpg",
		Body:     "<p>Hi</p>",
	}, got)
}

func TestFormFromPost(t *testing.T) {
	post := BlogPost{
		ID:       3,
		Title:    "Trip Log",
		Subtitle: "Day 1",
		Date:     "March 05, 2026",
		Body:     "<p>Hi</p>",
		Author:   "A",
		ImgURL:   "http://example.com/a.jpg",
	}

	form := FormFromPost(post)

	assert.Equal(t, "Trip Log", form.Title)
	assert.Equal(t, "<p>Hi</p>", form.Body)
	assert.Empty(t, form.Validate())
}
