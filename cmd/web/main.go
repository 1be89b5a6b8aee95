package main

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/tomz197/firedodge/internal/config"
	"github.com/tomz197/firedodge/internal/store"
)

const (
	defaultHost      = "0.0.0.0"
	defaultPort      = "8080"
	defaultPrefsFile = "/app/data/firedodge.prefs"
)

//go:embed index.html
var htmlPage string

var pageTmpl = template.Must(template.New("index").Parse(htmlPage))

type pageData struct {
	SSHHost   string
	HighScore string
}

type highScoreResponse struct {
	HighScore float64 `json:"highScore"`
}

// site serves the landing page and the high-score feeds.
type site struct {
	log       *log.Logger
	sshHost   string
	prefsPath string
	poll      time.Duration // how often the live feed re-reads the store
}

func main() {
	if err := config.Load(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}
	logger := config.NewLogger(os.Stderr).WithPrefix("web")

	host := config.GetEnv("WEB_HOST", defaultHost)
	port := config.GetEnv("WEB_PORT", defaultPort)
	s := &site{
		log:       logger,
		sshHost:   config.GetEnv("SSH_DISPLAY_HOST", "your-server.com"),
		prefsPath: config.GetEnv("PREFS_FILE", defaultPrefsFile),
		poll:      config.GetDuration("HIGHSCORE_POLL", 2*time.Second),
	}

	addr := net.JoinHostPort(host, port)
	logger.Info("starting web server", "addr", "http://"+addr)
	if err := http.ListenAndServe(addr, s.router()); err != nil {
		logger.Fatal("server error", "err", err)
	}
}

func (s *site) router() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)

	r.Get("/", s.index)
	r.Get("/ws/highscore", s.liveHighScore)
	r.Route("/api", func(r chi.Router) {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"https://*", "http://*"},
			AllowedMethods: []string{http.MethodGet, http.MethodOptions},
			MaxAge:         300,
		}))
		r.Get("/highscore", s.apiHighScore)
	})
	return r
}

func (s *site) index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := pageData{
		SSHHost:   s.sshHost,
		HighScore: fmt.Sprintf("%.2fs", s.highScore()),
	}
	if err := pageTmpl.Execute(w, data); err != nil {
		s.log.Error("render page", "err", err)
	}
}

func (s *site) apiHighScore(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(highScoreResponse{HighScore: s.highScore()}); err != nil {
		s.log.Error("encode high score", "err", err)
	}
}

// highScore re-reads the preferences file written by the SSH server.
// A missing or unreadable file reports zero.
func (s *site) highScore() float64 {
	prefs, err := store.Open(s.prefsPath)
	if err != nil {
		s.log.Warn("read preferences", "err", err)
		return 0
	}
	return prefs.GetFloat(config.HighScoreKey, 0)
}
