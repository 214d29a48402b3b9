package handlers

import (
	"context"
	"html"
	"log"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"backend/internal/config"
	"backend/internal/models"
)

const (
	shareSiteName       = "House Plan Files"
	shareDefaultAuthor  = "House Plan Files"
	shareDefaultSummary = "Read this interesting article on House Plan Files."
	shareDefaultImage   = "/uploads/default-blog.jpg"

	// Crawlers read the meta description; keep it inside the usual snippet
	// length.
	shareDescriptionLimit = 160
)

var htmlTagPattern = regexp.MustCompile(`<[^>]*>`)

// cleanShareDescription strips HTML tags and truncates to the snippet limit.
func cleanShareDescription(description string) string {
	plain := htmlTagPattern.ReplaceAllString(description, "")

	runes := []rune(plain)
	if len(runes) > shareDescriptionLimit {
		return string(runes[:shareDescriptionLimit])
	}
	return plain
}

// resolveShareImageURL turns whatever image reference the post stores into an
// absolute https URL crawlers can fetch.
func resolveShareImageURL(backendURL, image string) string {
	var absolute string

	switch {
	case image == "":
		absolute = backendURL + shareDefaultImage
	case strings.HasPrefix(image, "http://") || strings.HasPrefix(image, "https://"):
		absolute = image
	case strings.HasPrefix(image, "/"):
		absolute = backendURL + image
	default:
		absolute = backendURL + "/" + image
	}

	if strings.HasPrefix(absolute, "http:") {
		absolute = "https:" + strings.TrimPrefix(absolute, "http:")
	}
	return absolute
}

type blogShareData struct {
	Title       string
	Description string
	Image       string
	URL         string
	Author      string
	Tags        string
}

const blogShareTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <title>[[TITLE]] | House Plan Files Blog</title>

    <!-- Primary Meta Tags -->
    <meta name="title" content="[[TITLE]]">
    <meta name="description" content="[[DESCRIPTION]]">
    <meta name="author" content="[[AUTHOR]]">
    [[KEYWORDS_META]]

    <!-- Open Graph / Facebook -->
    <meta property="og:type" content="article">
    <meta property="og:url" content="[[URL]]">
    <meta property="og:title" content="[[TITLE]]">
    <meta property="og:description" content="[[DESCRIPTION]]">
    <meta property="og:image" content="[[IMAGE]]">
    <meta property="og:image:secure_url" content="[[IMAGE]]">
    <meta property="og:image:width" content="1200">
    <meta property="og:image:height" content="630">
    <meta property="og:image:alt" content="[[TITLE]]">
    <meta property="og:site_name" content="House Plan Files">
    <meta property="article:author" content="[[AUTHOR]]">
    [[TAGS_META]]

    <!-- Twitter -->
    <meta name="twitter:card" content="summary_large_image">
    <meta name="twitter:url" content="[[URL]]">
    <meta name="twitter:title" content="[[TITLE]]">
    <meta name="twitter:description" content="[[DESCRIPTION]]">
    <meta name="twitter:image" content="[[IMAGE]]">
    <meta name="twitter:image:alt" content="[[TITLE]]">
    <meta name="twitter:creator" content="[[AUTHOR]]">

    <!-- JavaScript redirect for browsers; crawlers stay on this page -->
    <script>
      const isBot = /bot|crawler|spider|crawling|facebook|twitter|linkedin|whatsapp|telegram|pinterest/i.test(navigator.userAgent);
      if (!isBot) {
        setTimeout(() => {
          window.location.href = "[[URL]]";
        }, 500);
      }
    </script>

    <style>
      body {
        font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', sans-serif;
        display: flex;
        justify-content: center;
        align-items: center;
        min-height: 100vh;
        margin: 0;
        background: linear-gradient(135deg, #667eea 0%, #764ba2 100%);
        color: white;
        padding: 20px;
      }
      .content {
        text-align: center;
        max-width: 700px;
        background: rgba(255,255,255,0.1);
        padding: 40px;
        border-radius: 20px;
        backdrop-filter: blur(10px);
      }
      .blog-image {
        width: 100%;
        max-width: 600px;
        height: 300px;
        object-fit: cover;
        border-radius: 12px;
        margin: 20px auto;
        display: block;
        box-shadow: 0 10px 30px rgba(0,0,0,0.3);
      }
      h1 {
        margin: 0 0 16px 0;
        font-size: 32px;
        font-weight: 700;
        line-height: 1.3;
      }
      .author {
        font-size: 14px;
        opacity: 0.9;
        margin: 10px 0;
        font-style: italic;
      }
      p {
        font-size: 16px;
        opacity: 0.9;
        line-height: 1.6;
        margin: 16px 0;
      }
      .spinner {
        border: 4px solid rgba(255,255,255,0.3);
        border-radius: 50%;
        border-top: 4px solid white;
        width: 50px;
        height: 50px;
        animation: spin 1s linear infinite;
        margin: 20px auto;
      }
      @keyframes spin {
        0% { transform: rotate(0deg); }
        100% { transform: rotate(360deg); }
      }
      a {
        color: #ffd700;
        text-decoration: none;
        font-weight: 600;
        padding: 12px 32px;
        background: rgba(255,255,255,0.2);
        border-radius: 8px;
        display: inline-block;
        margin-top: 20px;
        transition: all 0.3s;
      }
      a:hover {
        background: rgba(255,255,255,0.3);
        transform: translateY(-2px);
      }
    </style>
</head>
<body>
    <div class="content">
      <h1>[[TITLE]]</h1>
      [[AUTHOR_LINE]]
      <img src="[[IMAGE]]" alt="[[TITLE]]" class="blog-image" onerror="this.style.display='none'">
      <p>[[DESCRIPTION]]</p>
      <div class="spinner"></div>
      <p style="font-size: 14px; margin-top: 30px;">Redirecting to House Plan Files Blog...</p>
      <a href="[[URL]]">Click here if not redirected automatically</a>
    </div>
</body>
</html>`

// renderBlogShareHTML substitutes the post values into the share page. Every
// value is HTML-escaped before substitution.
func renderBlogShareHTML(data blogShareData) string {
	title := html.EscapeString(data.Title)
	description := html.EscapeString(cleanShareDescription(data.Description))
	image := html.EscapeString(data.Image)
	pageURL := html.EscapeString(data.URL)
	author := html.EscapeString(data.Author)
	tags := html.EscapeString(data.Tags)

	keywordsMeta := ""
	tagsMeta := ""
	if tags != "" {
		keywordsMeta = `<meta name="keywords" content="` + tags + `">`
		tagsMeta = `<meta property="article:tag" content="` + tags + `">`
	}

	authorLine := ""
	if author != "" {
		authorLine = `<div class="author">By ` + author + `</div>`
	}

	return strings.NewReplacer(
		"[[TITLE]]", title,
		"[[DESCRIPTION]]", description,
		"[[IMAGE]]", image,
		"[[URL]]", pageURL,
		"[[AUTHOR]]", author,
		"[[KEYWORDS_META]]", keywordsMeta,
		"[[TAGS_META]]", tagsMeta,
		"[[AUTHOR_LINE]]", authorLine,
	).Replace(blogShareTemplate)
}

/*
GET /share/blog/:slug
- crawler-friendly share page for a blog post
- browsers get redirected to the frontend; crawlers read the meta tags
*/
func BlogShare(db *mongo.Database, cfg config.Config) gin.HandlerFunc {
	return func(c *gin.Context) {
		const route = "GET /share/blog/:slug"
		defer handlePanic(c, route)

		slug := c.Param("slug")
		blogURL := cfg.FrontendURL + "/blogs/" + url.PathEscape(slug)

		ctx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
		defer cancel()

		var post models.BlogPost
		err := db.Collection("blogposts").FindOne(ctx, bson.M{"slug": slug}).Decode(&post)
		if err == mongo.ErrNoDocuments {
			log.Printf("[%s] blog post not found: %s", route, slug)
			c.Redirect(http.StatusFound, blogURL)
			return
		}
		if err != nil {
			log.Printf("[%s] lookup error for %s: %v", route, slug, err)
			c.Redirect(http.StatusFound, blogURL)
			return
		}

		title := post.Title
		if title == "" {
			title = "Blog Post"
		}
		description := post.MetaDescription
		if description == "" {
			description = post.Description
		}
		if description == "" {
			description = shareDefaultSummary
		}
		author := post.Author
		if author == "" {
			author = shareDefaultAuthor
		}

		page := renderBlogShareHTML(blogShareData{
			Title:       title,
			Description: description,
			Image:       resolveShareImageURL(cfg.BackendURL, post.MainImage),
			URL:         blogURL,
			Author:      author,
			Tags:        strings.Join(post.Tags, ", "),
		})

		log.Printf("[%s] share page generated for: %s", route, title)

		c.Header("Cache-Control", "public, max-age=86400")
		c.Header("X-Robots-Tag", "noindex, follow")
		c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(page))
	}
}
