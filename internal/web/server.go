// Package web serves the read side of the blog: the root page, the index,
// individual posts addressable by both their flat id and their dated path,
// and the Atom/RSS feeds. All handlers read from the immutable post
// collection; nothing here mutates state after boot.
package web

import (
	"context"
	"embed"
	"errors"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/html/v2"
	urlkit "github.com/goliatone/go-urlkit"

	"github.com/goliatone/go-blog/internal/logging"
	"github.com/goliatone/go-blog/internal/posts"
	"github.com/goliatone/go-blog/internal/runtimeconfig"
	"github.com/goliatone/go-blog/pkg/interfaces"
)

//go:embed views/*.html views/layouts/*.html
var viewsFS embed.FS

const (
	routeGroup = "site"
	mainLayout = "views/layouts/main"
)

// ErrCollectionRequired is returned when the server is constructed without a
// built post collection.
var ErrCollectionRequired = errors.New("web: post collection is required")

// Config wires the HTTP layer to the built collection and site metadata.
type Config struct {
	Site   runtimeconfig.SiteConfig
	Server runtimeconfig.ServerConfig
	Posts  *posts.Collection
	Logger interfaces.Logger
}

// Server hosts the fiber application and the route manager used to build
// permalinks for templates and feeds.
type Server struct {
	app    *fiber.App
	cfg    Config
	routes *urlkit.RouteManager
	logger interfaces.Logger
}

// New constructs the HTTP server. The post collection must already be built;
// handlers never trigger ingestion.
func New(cfg Config) (*Server, error) {
	if cfg.Posts == nil {
		return nil, ErrCollectionRequired
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.NoOp()
	}
	if cfg.Server.HomePostCount <= 0 {
		cfg.Server.HomePostCount = 5
	}

	engine := html.NewFileSystem(http.FS(viewsFS), ".html")

	app := fiber.New(fiber.Config{
		AppName:               cfg.Site.Title,
		Views:                 engine,
		DisableStartupMessage: true,
	})

	s := &Server{
		app:    app,
		cfg:    cfg,
		routes: newRouteManager(cfg.Site.BaseURL),
		logger: cfg.Logger,
	}

	s.registerRoutes()
	return s, nil
}

func newRouteManager(baseURL string) *urlkit.RouteManager {
	return urlkit.NewRouteManager(&urlkit.Config{
		Groups: []urlkit.GroupConfig{
			{
				Name:    routeGroup,
				BaseURL: strings.TrimRight(strings.TrimSpace(baseURL), "/"),
				Paths: map[string]string{
					"home":  "/",
					"index": "/blog",
					"short": "/blog/:id",
					"post":  "/:year/:month/:day/:id",
					"atom":  "/feed.atom",
					"rss":   "/feed.rss",
				},
			},
		},
	})
}

func (s *Server) registerRoutes() {
	// Static routes first; the dated post route is a catch-all and must lose
	// to /blog and /feed.* during matching.
	s.app.Get("/", s.handleHome)
	s.app.Get("/blog", s.handleIndex)
	s.app.Get("/blog/:id", s.handleShow)
	s.app.Get("/feed.atom", s.handleAtomFeed)
	s.app.Get("/feed.rss", s.handleRSSFeed)
	s.app.Get("/:year<int>/:month<int>/:day<int>/:id", s.handleShow)

	// Anything else goes back to the index rather than an error page.
	s.app.Use(func(c *fiber.Ctx) error {
		return c.Redirect("/blog", fiber.StatusFound)
	})
}

// App exposes the underlying fiber application, primarily for tests.
func (s *Server) App() *fiber.App {
	return s.app
}

// Listen blocks serving HTTP traffic on the configured address.
func (s *Server) Listen(addr string) error {
	s.logger.Info("http server listening", "addr", addr)
	return s.app.Listen(addr)
}

// Shutdown drains in-flight requests and stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.app.ShutdownWithContext(ctx)
}

// postURL builds an absolute dated permalink for a post, falling back to
// string concatenation when the route manager cannot resolve.
func (s *Server) postURL(p *posts.Post) string {
	url, err := buildRouteURL(s.routes, "post", map[string]any{
		"year":  p.Date.Format("2006"),
		"month": p.Date.Format("01"),
		"day":   p.Date.Format("02"),
		"id":    p.ID,
	})
	if err != nil || url == "" {
		return strings.TrimRight(s.cfg.Site.BaseURL, "/") + p.Permalink()
	}
	return url
}

func (s *Server) routeURL(route string) string {
	url, err := buildRouteURL(s.routes, route, nil)
	if err != nil || url == "" {
		return strings.TrimRight(s.cfg.Site.BaseURL, "/")
	}
	return url
}

// buildRouteURL resolves a named route through go-urlkit, converting the
// library's panics on unknown groups or routes into errors.
func buildRouteURL(manager *urlkit.RouteManager, route string, params map[string]any) (url string, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			err = fiber.ErrNotFound
		}
	}()

	builder := manager.Group(routeGroup).Builder(route)
	for key, value := range params {
		builder.WithParam(key, value)
	}
	return builder.Build()
}
