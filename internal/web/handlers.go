package web

import (
	"errors"
	"html/template"

	"github.com/gofiber/fiber/v2"

	"github.com/goliatone/go-blog/internal/posts"
)

func (s *Server) handleHome(c *fiber.Ctx) error {
	recent := s.cfg.Posts.All()
	if len(recent) > s.cfg.Server.HomePostCount {
		recent = recent[:s.cfg.Server.HomePostCount]
	}

	return c.Render("views/home", fiber.Map{
		"Site":  s.cfg.Site,
		"Posts": postViews(recent),
	}, mainLayout)
}

func (s *Server) handleIndex(c *fiber.Ctx) error {
	return c.Render("views/index", fiber.Map{
		"Site":  s.cfg.Site,
		"Posts": postViews(s.cfg.Posts.All()),
	}, mainLayout)
}

// handleShow serves both URL forms: /blog/:id and /:year/:month/:day/:id.
// The date segments never participate in the lookup; the id alone identifies
// the post, so either form resolves to the same article.
func (s *Server) handleShow(c *fiber.Ctx) error {
	id := c.Params("id")

	post, err := s.cfg.Posts.Get(id)
	if err != nil {
		if errors.Is(err, posts.ErrPostNotFound) {
			s.logger.Debug("post lookup miss", "id", id)
			return c.Redirect("/blog", fiber.StatusFound)
		}
		return err
	}

	return c.Render("views/post", fiber.Map{
		"Site": s.cfg.Site,
		"Post": newPostView(post),
	}, mainLayout)
}

func (s *Server) handleAtomFeed(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "application/atom+xml; charset=utf-8")
	return c.SendString(s.buildAtomFeed())
}

func (s *Server) handleRSSFeed(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "application/rss+xml; charset=utf-8")
	return c.SendString(s.buildRSSFeed())
}

// postView adapts a Post for templates: the rendered body is marked as safe
// HTML and the permalink is precomputed.
type postView struct {
	ID        string
	Title     string
	Author    string
	Summary   string
	Date      string
	Permalink string
	Body      template.HTML
}

func newPostView(p *posts.Post) postView {
	return postView{
		ID:        p.ID,
		Title:     p.Title,
		Author:    p.Author,
		Summary:   p.Summary,
		Date:      p.Date.Format("January 2, 2006"),
		Permalink: p.Permalink(),
		Body:      template.HTML(p.Body),
	}
}

func postViews(list []*posts.Post) []postView {
	out := make([]postView, 0, len(list))
	for _, p := range list {
		out = append(out, newPostView(p))
	}
	return out
}
