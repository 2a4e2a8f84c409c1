package admin

import (
	"embed"
	"fmt"
	"net"
	"net/http"
	"os/exec"
	"runtime"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"

	"github.com/commercekit/filldb/internal/config"
	"github.com/commercekit/filldb/internal/store"
)

//go:embed templates/*
var TemplatesFS embed.FS

// Server is the admin configuration surface: one form that shows the
// persisted counts and triggers a seeding run, plus a small JSON API for
// scripted use.
type Server struct {
	app   *fiber.App
	cfg   *config.Config
	store *store.Store
	port  int

	// Serializes runs; two form posts must not interleave inserts.
	runMu sync.Mutex
}

func NewServer(cfg *config.Config, st *store.Store, port int) *Server {
	engine := html.NewFileSystem(http.FS(TemplatesFS), ".html")
	app := fiber.New(fiber.Config{
		Views:             engine,
		DisableStartupMessage: true,
	})

	server := &Server{
		app:   app,
		cfg:   cfg,
		store: st,
		port:  port,
	}

	server.setupRoutes()
	return server
}

func (s *Server) setupRoutes() {
	s.app.Get("/", s.handleConfigure)
	s.app.Post("/configure", s.handleSubmit)

	api := s.app.Group("/api")
	api.Get("/settings", s.handleGetSettings)
	api.Post("/fill", s.handleFill)
}

func (s *Server) Start(openBrowser bool) error {
	port := findAvailablePort(s.port)
	if port != s.port {
		fmt.Printf("⚠️  Port %d is in use, using port %d instead\n", s.port, port)
		s.port = port
	}

	url := fmt.Sprintf("http://localhost:%d", s.port)
	fmt.Printf("🚀 filldb admin starting on %s\n", url)

	if openBrowser {
		go browse(url)
	}

	return s.app.Listen(fmt.Sprintf(":%d", s.port))
}

func findAvailablePort(startPort int) int {
	for port := startPort; port < startPort+100; port++ {
		addr := fmt.Sprintf(":%d", port)
		ln, err := net.Listen("tcp4", addr)
		if err != nil {
			continue
		}
		ln.Close()

		time.Sleep(10 * time.Millisecond)
		conn, err := net.DialTimeout("tcp4", fmt.Sprintf("127.0.0.1:%d", port), 100*time.Millisecond)
		if err == nil {
			conn.Close()
			continue
		}
		return port
	}
	return startPort
}

func browse(url string) error {
	var cmd string
	var args []string

	switch runtime.GOOS {
	case "windows":
		cmd = "cmd"
		args = []string{"/c", "start", url}
	case "darwin":
		cmd = "open"
		args = []string{url}
	default:
		cmd = "xdg-open"
		args = []string{url}
	}

	return exec.Command(cmd, args...).Start()
}
