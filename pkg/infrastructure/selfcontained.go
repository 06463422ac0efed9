package infrastructure

import (
	"bytes"
	"fmt"
	"io/fs"
	"net/url"
	"path"
	"regexp"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

var (
	cssImport = regexp.MustCompile(`(?i)@import\s+[^;]*;?`)
	cssURL    = regexp.MustCompile(`(?i)url\(\s*['"]?([^'")]*)['"]?\s*\)`)
)

// SelfContained rewrites an HTML document so it can be printed without any
// network access. Stylesheets linked with a relative href are inlined from
// assets when present there; every other external reference is dropped.
// Applying it twice yields the same document.
func SelfContained(doc string, assets fs.FS) (string, error) {
	root, err := html.Parse(strings.NewReader(doc))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}
	sanitize(root, assets)

	var buf bytes.Buffer
	if err := html.Render(&buf, root); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	return buf.String(), nil
}

func sanitize(n *html.Node, assets fs.FS) {
	for c := n.FirstChild; c != nil; {
		next := c.NextSibling
		if c.Type != html.ElementNode {
			sanitize(c, assets)
			c = next
			continue
		}

		switch c.DataAtom {
		case atom.Script, atom.Iframe, atom.Object, atom.Embed, atom.Base, atom.Frame:
			n.RemoveChild(c)
			c = next
			continue
		case atom.Link:
			if css, ok := stylesheet(c, assets); ok {
				n.InsertBefore(styleElement(css), c)
			}
			n.RemoveChild(c)
			c = next
			continue
		case atom.Style:
			for t := c.FirstChild; t != nil; t = t.NextSibling {
				if t.Type == html.TextNode {
					t.Data = sanitizeCSS(t.Data)
				}
			}
		}

		c.Attr = sanitizeAttrs(c.Attr)
		sanitize(c, assets)
		c = next
	}
}

func sanitizeAttrs(attrs []html.Attribute) []html.Attribute {
	kept := attrs[:0]
	for _, a := range attrs {
		key := strings.ToLower(a.Key)
		switch {
		case strings.HasPrefix(key, "on"):
			continue
		case key == "srcset":
			continue
		case key == "src" || key == "poster" || key == "background":
			if !isDataURI(a.Val) {
				continue
			}
		case key == "style":
			a.Val = sanitizeCSS(a.Val)
		}
		kept = append(kept, a)
	}
	return kept
}

func sanitizeCSS(css string) string {
	css = cssImport.ReplaceAllString(css, "")
	return cssURL.ReplaceAllStringFunc(css, func(m string) string {
		ref := cssURL.FindStringSubmatch(m)[1]
		if isDataURI(ref) {
			return m
		}
		return "none"
	})
}

// stylesheet loads the CSS referenced by a <link rel="stylesheet"> from assets.
func stylesheet(link *html.Node, assets fs.FS) (string, bool) {
	if assets == nil {
		return "", false
	}
	var rel, href string
	for _, a := range link.Attr {
		switch strings.ToLower(a.Key) {
		case "rel":
			rel = strings.ToLower(a.Val)
		case "href":
			href = strings.TrimSpace(a.Val)
		}
	}
	if !strings.Contains(rel, "stylesheet") || href == "" {
		return "", false
	}
	u, err := url.Parse(href)
	if err != nil || u.Scheme != "" || u.Host != "" || strings.HasPrefix(href, "/") {
		return "", false
	}
	name := path.Clean(strings.TrimPrefix(u.Path, "./"))
	if !fs.ValidPath(name) {
		return "", false
	}
	b, err := fs.ReadFile(assets, name)
	if err != nil {
		return "", false
	}
	return sanitizeCSS(string(b)), true
}

func styleElement(css string) *html.Node {
	style := &html.Node{Type: html.ElementNode, Data: "style", DataAtom: atom.Style}
	style.AppendChild(&html.Node{Type: html.TextNode, Data: css})
	return style
}

func isDataURI(ref string) bool {
	return strings.HasPrefix(strings.ToLower(strings.TrimSpace(ref)), "data:")
}
