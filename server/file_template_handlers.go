package server

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
)

//go:embed templates/*
var templateFiles embed.FS

const (
	layoutTemplate = "layout.html"
	iconsTemplate  = "icons.html"
)

func TemplateFilesFS() fs.FS {
	// Create the sub filesystem once
	subFS, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		panic("Failed to create templates sub filesystem: " + err.Error())
	}
	return subFS
}

// ParsePage parses a page template together with the shared layout and icons.
// The layout is parsed first so the page can override its blocks.
func ParsePage(name string) (*template.Template, error) {
	tmpl, err := template.ParseFS(TemplateFilesFS(), layoutTemplate, iconsTemplate, name)
	if err != nil {
		return nil, fmt.Errorf("parse page %s: %w", name, err)
	}
	return tmpl, nil
}

// pages holds every parsed page, built once in New.
type pages struct {
	landing *template.Template
	success *template.Template
	failure *template.Template
}

func parsePages() (*pages, error) {
	var p pages
	var err error
	if p.landing, err = ParsePage("landing.html"); err != nil {
		return nil, err
	}
	if p.success, err = ParsePage("success.html"); err != nil {
		return nil, err
	}
	if p.failure, err = ParsePage("error.html"); err != nil {
		return nil, err
	}
	return &p, nil
}

// renderPage executes tmpl into a buffer so a template failure never leaves a half written page.
func renderPage(w http.ResponseWriter, status int, tmpl *template.Template, data any) error {
	var buf bytes.Buffer
	if err := tmpl.ExecuteTemplate(&buf, "layout", data); err != nil {
		http.Error(w, "500 - Internal Server Error", http.StatusInternalServerError)
		return fmt.Errorf("execute %s: %w", tmpl.Name(), err)
	}
	w.Header().Set("Content-Type", contentTypeHTML)
	w.WriteHeader(status)
	_, err := buf.WriteTo(w)
	return err
}
