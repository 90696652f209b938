package handlers

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
)

// StaticHandler serves the frontend build from staticDir. Unknown paths
// fall back to index.html so client-side routing works.
func StaticHandler(staticDir string) http.HandlerFunc {
	fs := http.FileServer(http.Dir(staticDir))

	return func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/api/") {
			http.NotFound(w, r)
			return
		}

		path := filepath.Join(staticDir, r.URL.Path)

		fileInfo, err := os.Stat(path)
		if os.IsNotExist(err) || (r.URL.Path != "/" && (strings.HasSuffix(r.URL.Path, "/") || (err == nil && fileInfo.IsDir()))) {
			http.ServeFile(w, r, filepath.Join(staticDir, "index.html"))
			return
		}

		fs.ServeHTTP(w, r)
	}
}
