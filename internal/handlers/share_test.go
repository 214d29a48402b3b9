package handlers

import (
	"strings"
	"testing"
)

func TestCleanShareDescriptionStripsTagsAndTruncates(t *testing.T) {
	if got := cleanShareDescription("<p>Hello <b>World</b></p>"); got != "Hello World" {
		t.Fatalf("expected tags stripped, got %q", got)
	}

	long := strings.Repeat("a", 200)
	if got := cleanShareDescription(long); len([]rune(got)) != 160 {
		t.Fatalf("expected 160 runes, got %d", len([]rune(got)))
	}
}

func TestResolveShareImageURL(t *testing.T) {
	backend := "https://api.example.com"

	tests := []struct {
		image string
		want  string
	}{
		{"", "https://api.example.com/uploads/default-blog.jpg"},
		{"https://cdn.example.com/a.jpg", "https://cdn.example.com/a.jpg"},
		{"http://cdn.example.com/a.jpg", "https://cdn.example.com/a.jpg"},
		{"/uploads/a.jpg", "https://api.example.com/uploads/a.jpg"},
		{"uploads/a.jpg", "https://api.example.com/uploads/a.jpg"},
	}

	for _, tt := range tests {
		if got := resolveShareImageURL(backend, tt.image); got != tt.want {
			t.Fatalf("resolveShareImageURL(%q) = %q, want %q", tt.image, got, tt.want)
		}
	}
}

func TestRenderBlogShareHTMLMetaTags(t *testing.T) {
	page := renderBlogShareHTML(blogShareData{
		Title:       "Modern Duplex <Guide>",
		Description: "<p>All about duplex plans & budgets</p>",
		Image:       "https://api.example.com/uploads/duplex.jpg",
		URL:         "https://www.houseplanfiles.com/blogs/modern-duplex",
		Author:      "House Plan Files",
		Tags:        "duplex, modern",
	})

	for _, want := range []string{
		`<meta property="og:title" content="Modern Duplex &lt;Guide&gt;">`,
		`<meta property="og:description" content="All about duplex plans &amp; budgets">`,
		`<meta property="og:image" content="https://api.example.com/uploads/duplex.jpg">`,
		`<meta name="twitter:card" content="summary_large_image">`,
		`<meta name="keywords" content="duplex, modern">`,
		`<meta property="article:tag" content="duplex, modern">`,
		`<div class="author">By House Plan Files</div>`,
		`window.location.href = "https://www.houseplanfiles.com/blogs/modern-duplex";`,
	} {
		if !strings.Contains(page, want) {
			t.Fatalf("expected %s in share page", want)
		}
	}
}

func TestRenderBlogShareHTMLOmitsEmptyOptionalBlocks(t *testing.T) {
	page := renderBlogShareHTML(blogShareData{
		Title:       "Untagged Post",
		Description: "Short summary",
		Image:       "https://api.example.com/uploads/default-blog.jpg",
		URL:         "https://www.houseplanfiles.com/blogs/untagged",
	})

	if strings.Contains(page, `name="keywords"`) {
		t.Fatal("expected keywords meta to be omitted when tags are empty")
	}
	if strings.Contains(page, `article:tag`) {
		t.Fatal("expected article:tag meta to be omitted when tags are empty")
	}
	if strings.Contains(page, `class="author"`) {
		t.Fatal("expected author line to be omitted when author is empty")
	}
}
