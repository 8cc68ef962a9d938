package downloader

import (
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestHost(t *testing.T) {
	host, err := Host("https://example.site.com/novel/123")
	if err != nil {
		t.Fatalf("failed to derive host: %v", err)
	}
	if host != "https://example.site.com" {
		t.Fatalf("unexpected host %q", host)
	}

	for _, bad := range []string{
		"https://example.com/novel/123",
		"example.site.com/novel/123",
		"not a url",
	} {
		if _, err := Host(bad); !errors.Is(err, ErrInvalidURL) {
			t.Fatalf("expected ErrInvalidURL for %q, got %v", bad, err)
		}
	}
}

func TestValidateSourceURL(t *testing.T) {
	if err := ValidateSourceURL("https://www.lightnovelworld.com/novel/shadow-slave-05122222"); err != nil {
		t.Fatalf("supported url rejected: %v", err)
	}
	if err := ValidateSourceURL("https://www.example.com/novel/1"); !errors.Is(err, ErrUnsupportedSource) {
		t.Fatalf("expected ErrUnsupportedSource, got %v", err)
	}
	if err := ValidateSourceURL("garbage"); !errors.Is(err, ErrInvalidURL) {
		t.Fatalf("expected ErrInvalidURL, got %v", err)
	}
}

// newNovelSite serves a landing page, a cover image, and a fixed
// forward-linked chain of chapter pages.
func newNovelSite(t *testing.T, chapterTitles []string) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	var serverURL string

	mux.HandleFunc("/novel/the-book", func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, `<html><body>
<h1 class="novel-title">The Book</h1>
<div class="author"><a href="#"><span>Jane Writer</span></a></div>
<div class="fixed-img"><figure><img data-src="%s/img/cover.jpg" /></figure></div>
<a id="readchapterbtn" href="/chapter-1">Read</a>
</body></html>`, serverURL)
	})
	mux.HandleFunc("/img/cover.jpg", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("cover-bytes"))
	})
	for i, title := range chapterTitles {
		next := ""
		if i < len(chapterTitles)-1 {
			next = fmt.Sprintf(`<a class="button nextchap" href="/chapter-%d">Next</a>`, i+2)
		}
		page := fmt.Sprintf(`<html><body>
<span class="chapter-title">%s</span>
<div class="chapter-content"><p>Text of %s.</p><div class="adsbox">sponsored</div></div>
%s
</body></html>`, title, title, next)
		mux.HandleFunc(fmt.Sprintf("/chapter-%d", i+1), func(w http.ResponseWriter, _ *http.Request) {
			_, _ = w.Write([]byte(page))
		})
	}

	server := httptest.NewServer(mux)
	serverURL = server.URL
	t.Cleanup(server.Close)
	return server
}

func newTestNovel(t *testing.T, server *httptest.Server) *Novel {
	t.Helper()
	doc, err := fetchDocument(server.URL + "/novel/the-book")
	if err != nil {
		t.Fatalf("failed to fetch landing page: %v", err)
	}
	return &Novel{
		Workdir: t.TempDir(),
		HostURL: server.URL,
		Cover:   NewCoverPage(doc),
	}
}

func TestTraversalPersistsChaptersInOrder(t *testing.T) {
	server := newNovelSite(t, []string{"Chapter One", "Chapter Two"})
	novel := newTestNovel(t, server)

	if err := novel.SaveCover(); err != nil {
		t.Fatalf("failed to save cover: %v", err)
	}

	count := 0
	for novel.Next() != nil {
		count++
		if err := novel.SaveChapter(); err != nil {
			t.Fatalf("failed to save chapter %d: %v", count, err)
		}
	}
	if count != 2 {
		t.Fatalf("expected 2 chapters, got %d", count)
	}
	if novel.Current != nil {
		t.Fatalf("expected no current chapter after traversal")
	}
	if novel.Next() != nil {
		t.Fatalf("expected traversal to stay finished")
	}

	dir := filepath.Join(novel.Workdir, "The Book")
	for _, name := range []string{
		"The Book.jpg",
		"00000001 Chapter One.xhtml",
		"00000002 Chapter Two.xhtml",
	} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Fatalf("missing artifact %q: %v", name, err)
		}
	}

	content, err := os.ReadFile(filepath.Join(dir, "00000001 Chapter One.xhtml"))
	if err != nil {
		t.Fatalf("failed to read chapter file: %v", err)
	}
	if !strings.Contains(string(content), "<h1>Chapter One</h1>") {
		t.Fatalf("chapter heading missing: %q", content)
	}
	if !strings.Contains(string(content), "<p>Text of Chapter One.</p>") {
		t.Fatalf("chapter text missing: %q", content)
	}
	if strings.Contains(string(content), "adsbox") {
		t.Fatalf("ad block persisted: %q", content)
	}

	img, err := os.ReadFile(filepath.Join(dir, "The Book.jpg"))
	if err != nil {
		t.Fatalf("failed to read cover file: %v", err)
	}
	if string(img) != "cover-bytes" {
		t.Fatalf("unexpected cover content %q", img)
	}
}

func TestSaveChapterOverwrites(t *testing.T) {
	server := newNovelSite(t, []string{"Only Chapter"})
	novel := newTestNovel(t, server)

	if novel.Next() == nil {
		t.Fatalf("expected a first chapter")
	}
	if err := novel.SaveChapter(); err != nil {
		t.Fatalf("failed to save chapter: %v", err)
	}
	if err := novel.SaveChapter(); err != nil {
		t.Fatalf("failed to save chapter again: %v", err)
	}

	entries, err := os.ReadDir(filepath.Join(novel.Workdir, "The Book"))
	if err != nil {
		t.Fatalf("failed to read novel directory: %v", err)
	}
	count := 0
	for _, entry := range entries {
		if filepath.Ext(entry.Name()) == ".xhtml" {
			count++
		}
	}
	if count != 1 {
		t.Fatalf("expected 1 chapter file, got %d", count)
	}
}

func TestSaveChapterWithoutCurrent(t *testing.T) {
	novel := &Novel{Workdir: t.TempDir()}
	if err := novel.SaveChapter(); err == nil {
		t.Fatalf("expected error when no chapter is loaded")
	}
}
