package cleanblog

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

// PostForm is the submitted post form shared by the create and edit pages.
type PostForm struct {
	Title    string `form:"title" validate:"required"`
	Subtitle string `form:"subtitle" validate:"required"`
	Author   string `form:"author" validate:"required"`
	ImgURL   string `form:"img_url" validate:"required,url"`
	Body     string `form:"body" validate:"required"`
}

// FieldErrors maps a form field name to its error message.
// An empty FieldErrors means the form is valid.
type FieldErrors map[string]string

// Has reports whether field has an error.
func (fe FieldErrors) Has(field string) bool {
	_, ok := fe[field]
	return ok
}

var (
	validateOnce sync.Once
	validate     *validator.Validate
)

func formValidator() *validator.Validate {
	validateOnce.Do(func() {
		validate = validator.New()
		validate.RegisterTagNameFunc(func(f reflect.StructField) string {
			return f.Tag.Get("form")
		})
	})
	return validate
}

// Validate checks that every field is present and that img_url is an
// absolute URL. The form itself is not modified.
func (f PostForm) Validate() FieldErrors {
	errs := FieldErrors{}
	trimmed := f.Trimmed()
	err := formValidator().Struct(trimmed)
	if err == nil {
		return errs
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		errs["form"] = err.Error()
		return errs
	}
	for _, fe := range verrs {
		field := fe.Field()
		if _, seen := errs[field]; seen {
			continue
		}
		switch fe.Tag() {
		case "required":
			errs[field] = "This field is required."
		case "url":
			errs[field] = "Invalid URL."
		default:
			errs[field] = "Invalid value."
		}
	}
	return errs
}

// Trimmed returns a copy of the form with surrounding whitespace removed
// from every field.
func (f PostForm) Trimmed() PostForm {
	return PostForm{
		Title:    strings.TrimSpace(f.Title),
		Subtitle: strings.TrimSpace(f.Subtitle),
		Author:   strings.TrimSpace(f.Author),
		ImgURL:   strings.TrimSpace(f.ImgURL),
		Body:     strings.TrimSpace(f.Body),
	}
}

// Post converts the form into a BlogPost without id or date.
func (f PostForm) Post() BlogPost {
	t := f.Trimmed()
	return BlogPost{
		Title:    t.Title,
		Subtitle: t.Subtitle,
		Author:   t.Author,
		ImgURL:   t.ImgURL,
		Body:     t.Body,
	}
}

// FormFromPost pre-populates a form with the current values of p.
func FormFromPost(p BlogPost) PostForm {
	return PostForm{
		Title:    p.Title,
		Subtitle: p.Subtitle,
		Author:   p.Author,
		ImgURL:   p.ImgURL,
		Body:     p.Body,
	}
}
