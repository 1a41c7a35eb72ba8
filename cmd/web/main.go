package main

import (
	"flag"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"voyagecover.io/recommender-web/internal/cart"
	"voyagecover.io/recommender-web/internal/catalog"
	"voyagecover.io/recommender-web/internal/content"
	mw "voyagecover.io/recommender-web/internal/middleware"
	"voyagecover.io/recommender-web/internal/theme"
)

var (
	templatesDir = "templates"
	publicDir    = "public"
	guidesDir    = "content/guides"
	// devMode is set in main() based on env: RECOMMENDER_DEV (preferred) or DEV (fallback)
	devMode   bool
	tmplCache *template.Template

	logger        *zap.Logger
	settings      theme.Settings
	catalogClient *catalog.Client
	cartClient    *cart.Client
	guideStore    *content.Store
)

func main() {
	// Flags/environment
	var (
		addr         string
		tmplPath     string
		pubPath      string
		guidesPath   string
		settingsPath string
	)
	// Port resolution: prefer RECOMMENDER_PORT, then PORT, else 8080
	port := os.Getenv("RECOMMENDER_PORT")
	if port == "" {
		port = os.Getenv("PORT")
	}
	if port == "" {
		port = "8080"
	}
	flag.StringVar(&addr, "addr", ":"+port, "HTTP listen address")
	flag.StringVar(&tmplPath, "templates", templatesDir, "templates directory")
	flag.StringVar(&pubPath, "public", publicDir, "public assets directory")
	flag.StringVar(&guidesPath, "guides", guidesDir, "guide content directory")
	flag.StringVar(&settingsPath, "settings", os.Getenv("RECOMMENDER_SETTINGS"), "widget settings file (YAML)")
	flag.Parse()

	templatesDir = tmplPath
	publicDir = pubPath
	guidesDir = guidesPath

	// Dev mode: prefer RECOMMENDER_DEV, fallback to DEV
	devMode = os.Getenv("RECOMMENDER_DEV") != "" || os.Getenv("DEV") != ""

	var err error
	if devMode {
		logger, err = zap.NewDevelopment()
	} else {
		logger, err = zap.NewProduction()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "init logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	settings, err = theme.Load(settingsPath, logger)
	if err != nil {
		logger.Fatal("load settings", zap.Error(err))
	}
	catalogClient = catalog.NewClient(settings.Routes.CatalogBaseURL, logger)
	cartClient = cart.NewClient(settings.Routes.CartAddURL, logger)
	guideStore = content.NewStore(guidesDir)

	if !devMode {
		// Parse templates once in production
		tc, err := parseTemplates()
		if err != nil {
			logger.Fatal("parse templates", zap.Error(err))
		}
		tmplCache = tc
	}

	r := newRouter()

	srv := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	logger.Info("recommender web listening", zap.String("addr", addr), zap.Bool("dev", devMode))
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		logger.Fatal("listen", zap.Error(err))
	}
}

func newRouter() chi.Router {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	// If deployed behind a trusted reverse proxy/load balancer, RealIP will
	// use X-Forwarded-For to determine the client IP. Ensure only trusted
	// proxies can set these headers in production environments.
	r.Use(chimw.RealIP)
	r.Use(mw.HTMX)
	r.Use(mw.Session)
	r.Use(mw.CSRF)
	r.Use(mw.Logger(logger))
	r.Use(chimw.Recoverer)
	r.Use(chimw.Compress(5))
	r.Use(chimw.Timeout(30 * time.Second))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	// Static assets under /assets/
	assets := http.StripPrefix("/assets", mw.AssetsWithCache(filepath.Join(publicDir, "assets")))
	r.Handle("/assets/*", assets)

	r.Get("/", RecommenderHandler)
	r.Get("/recommender/step", RecommenderStepFrag)
	r.Get("/recommender/result", RecommenderResultFrag)
	r.Post("/recommender/reset", RecommenderResetHandler)
	r.Post("/cart/add", CartAddHandler)
	r.Get("/guide/{slug}", GuideHandler)

	return r
}

func parseTemplates() (*template.Template, error) {
	funcMap := template.FuncMap{
		"now": time.Now,
	}
	// Recursively discover and parse all .tmpl files. Note: ParseGlob doesn't support **.
	var files []string
	if err := filepath.WalkDir(templatesDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if strings.HasSuffix(d.Name(), ".tmpl") {
			files = append(files, path)
		}
		return nil
	}); err != nil {
		return nil, err
	}
	if len(files) == 0 {
		return nil, fmt.Errorf("no templates found under %s", templatesDir)
	}
	return template.New("_root").Funcs(funcMap).ParseFiles(files...)
}

// render executes a named template. In dev mode, templates are reparsed on
// each request.
func render(w http.ResponseWriter, r *http.Request, name string, data any) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	var t *template.Template
	if devMode {
		tc, err := parseTemplates()
		if err != nil {
			http.Error(w, fmt.Sprintf("template parse error: %v", err), http.StatusInternalServerError)
			return
		}
		t = tc
	} else {
		t = tmplCache
	}
	if t == nil {
		http.Error(w, "template not initialized", http.StatusInternalServerError)
		return
	}
	if err := t.ExecuteTemplate(w, name, data); err != nil {
		logger.Error("template exec", zap.String("template", name), zap.Error(err))
	}
}
