package main

import (
	"embed"
	"io/fs"
	"log"
	"mime"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"lab4/internal/content"
	"lab4/internal/handlers"
	"lab4/internal/store"
)

func main() {
	_ = mime.AddExtensionType(".js", "application/javascript")
	_ = mime.AddExtensionType(".css", "text/css")

	dsn := strings.TrimSpace(os.Getenv("DATA_DSN"))
	if dsn == "" {
		dsn = "./lab4.db"
	}
	db, err := store.OpenSQLite(dsn)
	if err != nil {
		log.Fatal(err)
	}
	defer db.Close()

	library := content.OpenLibrary(db)

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	staticFS, err := fs.Sub(embeddedStatic, "static")
	if err != nil {
		log.Fatal(err)
	}
	r.Mount("/static", http.StripPrefix("/static", http.FileServer(http.FS(staticFS))))
	r.Get("/", func(w http.ResponseWriter, req *http.Request) {
		http.ServeFileFS(w, req, staticFS, "index.html")
	})

	dashboard := handlers.NewDashboardHandler(library)
	play := handlers.NewPlayHandler(library)
	r.Group(func(r chi.Router) {
		r.Use(middleware.Timeout(15 * time.Second))
		dashboard.RegisterRoutes(r)
	})
	// Play routes carry no request timeout: the SSE stream stays open until
	// the client disconnects.
	play.RegisterRoutes(r)

	addr := ":" + strings.TrimSpace(os.Getenv("PORT"))
	if addr == ":" {
		addr = ":8080"
	}
	server := &http.Server{
		Addr:              addr,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		// No write timeout: SSE streams stay open until the client leaves.
		IdleTimeout: 60 * time.Second,
	}

	log.Printf("listening on http://localhost%s", addr)
	if err := server.ListenAndServe(); err != nil {
		log.Fatal(err)
	}
}

//go:embed static/*
var embeddedStatic embed.FS
