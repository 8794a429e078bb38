// Package ingest loads documents for clause screening. The upstream
// extraction layer (OCR, converters) hands over plain-text dumps and the
// occasional HTML export; both are reduced here to one UTF-8 text blob.
package ingest

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"golang.org/x/net/html"
)

// ReadDocument loads a document's text from path. HTML files are reduced
// to their visible text; everything else is returned as-is.
func ReadDocument(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read document: %w", err)
	}

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return ExtractVisibleText(string(data))
	}

	return string(data), nil
}

// blockElements end with a paragraph break so downstream hard-break
// splitting sees document structure
var blockElements = map[string]bool{
	"p": true, "div": true, "li": true, "tr": true, "br": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
}

// ExtractVisibleText extracts text nodes from HTML, skipping
// scripts/styles, and inserts paragraph breaks after block elements
func ExtractVisibleText(htmlContent string) (string, error) {
	doc, err := html.Parse(strings.NewReader(htmlContent))
	if err != nil {
		return "", fmt.Errorf("parse html: %w", err)
	}

	var buf strings.Builder

	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode {
			switch n.Data {
			case "script", "style", "noscript", "iframe":
				return
			}
		}

		if n.Type == html.TextNode {
			text := strings.TrimSpace(n.Data)
			if text != "" {
				buf.WriteString(text)
				buf.WriteString(" ")
			}
		}

		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}

		if n.Type == html.ElementNode && blockElements[n.Data] {
			buf.WriteString("\n\n")
		}
	}

	walk(doc)
	return strings.TrimSpace(buf.String()), nil
}
