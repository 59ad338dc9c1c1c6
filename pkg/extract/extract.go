// Package extract reduces a fetched page's HTML to a short plain-text digest
// for run summaries.
package extract

import (
	"fmt"
	"strings"

	"golang.org/x/net/html"
)

// Digest is the readable part of a page.
type Digest struct {
	Title       string `json:"title,omitempty"`
	Description string `json:"description,omitempty"`
	Text        string `json:"text,omitempty"`
	Links       int    `json:"links"`
	Truncated   bool   `json:"truncated,omitempty"`
}

// FromHTML parses rawHTML and collects up to maxText bytes of visible text.
// Scripts, styles and embedded documents are skipped; block elements start a
// new line. A maxText of zero or less collects no text but still fills the
// metadata.
func FromHTML(rawHTML string, maxText int) (*Digest, error) {
	doc, err := html.Parse(strings.NewReader(rawHTML))
	if err != nil {
		return nil, fmt.Errorf("failed to parse HTML: %w", err)
	}

	d := &Digest{
		Title:       findTitle(doc),
		Description: findMetaDescription(doc),
	}

	w := &textWriter{limit: maxText}
	w.walk(doc, d)
	d.Text = strings.TrimSpace(w.b.String())
	d.Truncated = w.truncated
	return d, nil
}

type textWriter struct {
	b         strings.Builder
	limit     int
	truncated bool
	lineOpen  bool
}

func (w *textWriter) walk(n *html.Node, d *Digest) {
	switch n.Type {
	case html.CommentNode:
		return
	case html.TextNode:
		w.text(n.Data)
		return
	case html.ElementNode:
		tag := strings.ToLower(n.Data)
		if skipped[tag] {
			return
		}
		if tag == "a" && hasAttr(n, "href") {
			d.Links++
		}
		// title and meta are read separately
		if tag == "head" {
			return
		}
		if blocks[tag] || tag == "br" {
			w.newline()
		}
		defer func() {
			if blocks[tag] {
				w.newline()
			}
		}()
	}

	for c := n.FirstChild; c != nil; c = c.NextSibling {
		w.walk(c, d)
	}
}

func (w *textWriter) text(s string) {
	s = strings.Join(strings.Fields(s), " ")
	if s == "" || w.truncated || w.limit <= 0 {
		return
	}

	if w.lineOpen {
		s = " " + s
	}
	room := w.limit - w.b.Len()
	if len(s) > room {
		s = truncateUTF8(s, room)
		w.truncated = true
	}
	w.b.WriteString(s)
	w.lineOpen = true
}

func (w *textWriter) newline() {
	if !w.lineOpen || w.truncated {
		return
	}
	if w.b.Len() < w.limit {
		w.b.WriteByte('\n')
	}
	w.lineOpen = false
}

// truncateUTF8 cuts s to at most n bytes without splitting a rune.
func truncateUTF8(s string, n int) string {
	if n <= 0 {
		return ""
	}
	for n > 0 && n < len(s) && !isRuneStart(s[n]) {
		n--
	}
	return s[:n]
}

func isRuneStart(b byte) bool {
	return b&0xC0 != 0x80
}

func hasAttr(n *html.Node, key string) bool {
	for _, a := range n.Attr {
		if strings.EqualFold(a.Key, key) {
			return true
		}
	}
	return false
}

func findTitle(doc *html.Node) string {
	var title string
	var visit func(*html.Node) bool
	visit = func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "title" {
			if n.FirstChild != nil && n.FirstChild.Type == html.TextNode {
				title = strings.TrimSpace(n.FirstChild.Data)
			}
			return true
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if visit(c) {
				return true
			}
		}
		return false
	}
	visit(doc)
	return title
}

func findMetaDescription(doc *html.Node) string {
	var desc string
	var visit func(*html.Node) bool
	visit = func(n *html.Node) bool {
		if n.Type == html.ElementNode && n.Data == "meta" {
			var isDesc bool
			var content string
			for _, a := range n.Attr {
				switch strings.ToLower(a.Key) {
				case "name":
					isDesc = strings.EqualFold(a.Val, "description")
				case "content":
					content = a.Val
				}
			}
			if isDesc && strings.TrimSpace(content) != "" {
				desc = strings.TrimSpace(content)
				return true
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if visit(c) {
				return true
			}
		}
		return false
	}
	visit(doc)
	return desc
}

var skipped = map[string]bool{
	"script":   true,
	"style":    true,
	"noscript": true,
	"template": true,
	"iframe":   true,
	"embed":    true,
	"object":   true,
	"svg":      true,
	"canvas":   true,
}

var blocks = map[string]bool{
	"address": true, "article": true, "aside": true, "blockquote": true,
	"dd": true, "div": true, "dl": true, "dt": true, "fieldset": true,
	"figcaption": true, "figure": true, "footer": true, "form": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"header": true, "hr": true, "li": true, "main": true, "nav": true,
	"ol": true, "p": true, "pre": true, "section": true, "table": true,
	"td": true, "th": true, "tr": true, "ul": true,
}
