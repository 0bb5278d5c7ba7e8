// Package web holds the HTML templates of the todo pages, embedded into the binary.
package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"time"
	"todoapp/shared/constant"
	"todoapp/shared/timezone"
)

const (
	PageList          = "list"
	PageForm          = "form"
	PageConfirmDelete = "confirm_delete"
	PageError         = "error"
)

//go:embed templates/*.html
var files embed.FS

var templates = template.Must(
	template.New("").
		Funcs(template.FuncMap{
			"displayDate": displayDate,
		}).
		ParseFS(files, "templates/*.html"),
)

func displayDate(t time.Time) string {
	return timezone.Format(t, constant.DisplayDateFormat)
}

// Render executes the named page into a buffer so a template error never leaves a half written response.
func Render(page string, data any) ([]byte, error) {
	var buf bytes.Buffer

	if err := templates.ExecuteTemplate(&buf, page, data); err != nil {
		return nil, fmt.Errorf("rendering %s page: %w", page, err)
	}

	return buf.Bytes(), nil
}
