package server

import (
	"embed"
	"fmt"
	"io/fs"
	"mime"
	"net/http"
	"path"
	"strings"

	"github.com/rs/zerolog"
)

//go:embed static/*
var staticFiles embed.FS

func StaticFilesFS() fs.FS {
	subFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		panic("Failed to create sub filesystem: " + err.Error())
	}
	return subFS
}

type staticAsset struct {
	data        []byte
	contentType string
}

// staticAssets is the embedded static tree, loaded into memory once.
type staticAssets map[string]staticAsset

func loadStaticAssets(fsys fs.FS) (staticAssets, error) {
	assets := staticAssets{}
	err := fs.WalkDir(fsys, ".", func(name string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		data, err := fs.ReadFile(fsys, name)
		if err != nil {
			return fmt.Errorf("failed to open %s: %w", name, err)
		}
		assets[name] = staticAsset{data: data, contentType: contentTypeFor(name, data)}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return assets, nil
}

func contentTypeFor(name string, data []byte) string {
	ctype := mime.TypeByExtension(strings.ToLower(path.Ext(name)))
	if ctype == "" {
		// Fallback for unknown extensions
		ctype = http.DetectContentType(data)
	}
	// Ensure UTF-8 for text types when not present
	if strings.HasPrefix(ctype, "text/") && !strings.Contains(strings.ToLower(ctype), "charset=") {
		ctype += "; charset=utf-8"
	}
	return ctype
}

// serveFileHandler streams an embedded asset addressed by the request path.
func (s *Server) serveFileHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		name := strings.TrimPrefix(path.Clean(r.URL.Path), "/")
		asset, ok := s.assets[name]
		if !ok {
			zerolog.Ctx(r.Context()).Debug().Str("file", name).Msg("static file not found")
			http.Error(w, "404 - Page Not Found", http.StatusNotFound)
			return
		}
		w.Header().Set("Content-Type", asset.contentType)
		if r.Method == http.MethodHead {
			return
		}
		if _, err := w.Write(asset.data); err != nil {
			zerolog.Ctx(r.Context()).Warn().Err(err).Str("file", name).Msg("failed to write static file")
		}
	}
}
