package main

import (
	"log"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"strings"
	"sync"
)

// iconRegistry resolves per-profile marker icons and serves the
// file-backed ones. Resolution priority, first available wins:
//
//	1) {PREFIX}_ICON_BASE64  embedded image data (with or without data: header)
//	2) {PREFIX}_ICON_FILE    local path, served under /icons/
//	3) {PREFIX}_ICON_URL     public URL, passed through to the page
type iconRegistry struct {
	mu    sync.RWMutex
	files map[string]string // served name -> local path
}

func newIconRegistry() *iconRegistry {
	return &iconRegistry{files: make(map[string]string)}
}

// resolve returns an icon reference usable directly by the map page: a
// data URI, a /icons/ path, a remote URL, or "" when nothing is configured.
func (reg *iconRegistry) resolve(prefix string) string {
	if b64 := strings.TrimSpace(os.Getenv(prefix + "_ICON_BASE64")); b64 != "" {
		if strings.HasPrefix(b64, "data:") {
			return b64
		}
		// Raw base64 without the data: header; assume PNG like the pipeline
		// produces.
		return "data:image/png;base64," + b64
	}

	if file := strings.TrimSpace(os.Getenv(prefix + "_ICON_FILE")); file != "" {
		if _, err := os.Stat(file); err != nil {
			log.Printf("⚠️  Icon file for %s not readable, skipping: %v", prefix, err)
		} else {
			name := strings.ToLower(prefix) + filepath.Ext(file)
			reg.mu.Lock()
			reg.files[name] = file
			reg.mu.Unlock()
			return "/icons/" + name
		}
	}

	if url := strings.TrimSpace(os.Getenv(prefix + "_ICON_URL")); url != "" {
		return url
	}

	return ""
}

// serveFile handles GET /icons/<name> for file-backed icons.
func (reg *iconRegistry) serveFile(w http.ResponseWriter, r *http.Request) {
	name := path.Base(r.URL.Path)

	reg.mu.RLock()
	file, ok := reg.files[name]
	reg.mu.RUnlock()

	if !ok {
		http.NotFound(w, r)
		return
	}
	http.ServeFile(w, r, file)
}
