package main

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	hdl "voyagecover.io/recommender-web/internal/handlers"
)

// GuideHandler renders a markdown guide page (e.g. how coverage levels
// compare) with conditional-request caching.
func GuideHandler(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	page, err := guideStore.Page(slug)
	if err != nil {
		logger.Warn("guide not found", zap.String("slug", slug), zap.Error(err))
		http.NotFound(w, r)
		return
	}

	sum := sha256.Sum256([]byte(page.Version + "\x00" + string(page.Body)))
	etag := `W/"` + hex.EncodeToString(sum[:16]) + `"`
	w.Header().Set("Cache-Control", "public, max-age=600")
	w.Header().Set("ETag", etag)
	if !page.UpdatedAt.IsZero() {
		w.Header().Set("Last-Modified", page.UpdatedAt.UTC().Format(http.TimeFormat))
	}
	if inm := r.Header.Get("If-None-Match"); inm != "" && inm == etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	vm := hdl.PageData{
		Title:     page.Title,
		Path:      r.URL.Path,
		Analytics: hdl.LoadAnalyticsFromEnv(),
		Guide:     page,
	}
	vm.SEO.Title = page.Title + " | VoyageCover"
	vm.SEO.Description = page.Summary
	render(w, r, "page_guide", vm)
}
