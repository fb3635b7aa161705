package site

import (
	"bytes"
	"html/template"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	htmlrenderer "github.com/yuin/goldmark/renderer/html"
)

// markdown renderer for blog post bodies
var md = goldmark.New(
	goldmark.WithExtensions(
		extension.GFM,
		extension.Linkify,
	),
	goldmark.WithRendererOptions(
		htmlrenderer.WithUnsafe(),
	),
)

func (s *SiteModule) blogList(c *gin.Context) {
	posts, err := s.blogs.List()
	if err != nil {
		s.renderError(c, "تعذر تحميل المقالات")
		return
	}

	c.HTML(http.StatusOK, "site_blog.html", gin.H{
		"posts": posts,
	})
}

// blogPost renders the in-site article view. A post carrying an external
// link is redirected there instead; the list template links such posts out
// directly, so this is only a fallback for direct navigation.
func (s *SiteModule) blogPost(c *gin.Context) {
	post, err := s.blogs.Get(c.Param("id"))
	if err != nil {
		s.renderNotFound(c)
		return
	}

	if post.ExternalURL != "" {
		c.Redirect(http.StatusFound, post.ExternalURL)
		return
	}

	c.HTML(http.StatusOK, "site_blog_post.html", gin.H{
		"post":        post,
		"contentHTML": template.HTML(renderMarkdown(post.Content)),
	})
}

func renderMarkdown(content string) string {
	var buf bytes.Buffer
	if err := md.Convert([]byte(content), &buf); err != nil {
		// fall back to the raw text rather than breaking the page
		return content
	}
	return buf.String()
}
