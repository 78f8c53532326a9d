package email

import (
	"bytes"
	"fmt"
	"html/template"
	"path/filepath"
)

// RenderTemplate parses {dir}/{name}.html and executes it with data.
func RenderTemplate(dir, name string, data any) (string, error) {
	path := filepath.Join(dir, name+".html")
	t, err := template.ParseFiles(path)
	if err != nil {
		return "", fmt.Errorf("email: parse template %s: %w", name, err)
	}

	var body bytes.Buffer
	if err := t.Execute(&body, data); err != nil {
		return "", fmt.Errorf("email: render template %s: %w", name, err)
	}
	return body.String(), nil
}
