package app

import (
	"io/fs"
	"log/slog"
	"mime"
	"net/http"
	"sync"
)

// assetTypes pins the content types of embedded assets. Minimal container
// images ship without /etc/mime.types.
var assetTypes = map[string]string{
	".css": "text/css; charset=utf-8",
	".js":  "text/javascript; charset=utf-8",
	".svg": "image/svg+xml",
	".ico": "image/x-icon",
}

var registerAssetTypes = sync.OnceFunc(func() {
	for ext, typ := range assetTypes {
		if mime.TypeByExtension(ext) == "" {
			if err := mime.AddExtensionType(ext, typ); err != nil {
				slog.Default().Warn("register mime type", slog.String("ext", ext), slog.Any("error", err))
			}
		}
	}
})

// assetHandler serves files from static under /static/ with a one hour
// browser cache.
func assetHandler(static fs.FS) http.Handler {
	registerAssetTypes()
	files := http.StripPrefix("/static/", http.FileServer(http.FS(static)))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Cache-Control", "public, max-age=3600")
		files.ServeHTTP(w, r)
	})
}
