package ingest

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	return path
}

func TestReadDocument_PlainText(t *testing.T) {
	content := "Diese Bürgschaft ist unbefristet.\n\nGerichtsstand ist Berlin."
	path := writeFile(t, "doc.txt", content)

	text, err := ReadDocument(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if text != content {
		t.Errorf("expected plain text passed through unchanged")
	}
}

func TestReadDocument_Missing(t *testing.T) {
	if _, err := ReadDocument(filepath.Join(t.TempDir(), "nope.txt")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestReadDocument_HTML(t *testing.T) {
	content := `<html><head><style>p { color: red }</style></head>
	<body>
		<script>alert("ignored")</script>
		<p>Wir verpflichten uns zur Zahlung.</p>
		<p>Gerichtsstand ist Berlin.</p>
	</body></html>`
	path := writeFile(t, "doc.html", content)

	text, err := ReadDocument(path)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if strings.Contains(text, "alert") || strings.Contains(text, "color") {
		t.Errorf("expected script/style content stripped, got %q", text)
	}
	if !strings.Contains(text, "Wir verpflichten uns zur Zahlung.") {
		t.Errorf("expected paragraph text preserved, got %q", text)
	}
	if !strings.Contains(text, "\n\n") {
		t.Errorf("expected paragraph breaks between block elements, got %q", text)
	}
}
