package downloader

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"regexp"

	"lnworld-downloader/utils"

	"github.com/PuerkitoBio/goquery"
	"github.com/sirupsen/logrus"
)

var (
	hostRegexp   = regexp.MustCompile(`^https?://[[:alpha:]]+\.[[:alpha:]]+\.[[:alpha:]]+`)
	sourceRegexp = regexp.MustCompile(`lightnovelworld\.com`)
)

// Host extracts the scheme and authority from the novel page URL.
// Chapter links on the site are host-relative and are resolved
// against this origin.
func Host(pageURL string) (string, error) {
	host := hostRegexp.FindString(pageURL)
	if host == "" {
		return "", ErrInvalidURL
	}
	return host, nil
}

// ValidateSourceURL rejects URLs that do not point at the supported
// site, before any network request is made.
func ValidateSourceURL(pageURL string) error {
	if _, err := Host(pageURL); err != nil {
		return err
	}
	if !sourceRegexp.MatchString(pageURL) {
		return ErrUnsupportedSource
	}
	return nil
}

func fetchDocument(pageURL string) (*goquery.Document, error) {
	resp, err := utils.Request().Get(pageURL)
	if err != nil {
		return nil, err
	}
	logrus.Infof("Request url(%v): %v", resp.StatusCode(), pageURL)
	if resp.StatusCode() != http.StatusOK {
		return nil, &HTTPStatusError{Code: resp.StatusCode()}
	}
	return goquery.NewDocumentFromReader(bytes.NewReader(resp.Body()))
}

func fetchData(dataURL string) ([]byte, error) {
	resp, err := utils.Request().Get(dataURL)
	if err != nil {
		return nil, err
	}
	logrus.Infof("Request url(%v): %v", resp.StatusCode(), dataURL)
	if resp.StatusCode() != http.StatusOK {
		return nil, &HTTPStatusError{Code: resp.StatusCode()}
	}
	return resp.Body(), nil
}

// Novel is one download session. It holds at most one chapter page at
// a time: the files written under Workdir are the only record of the
// chapters already traversed.
type Novel struct {
	Workdir   string
	HostURL   string
	Cover     *CoverPage
	Current   *ChapterPage
	ChapterID int
}

// NewNovel derives the host origin from the landing page URL and
// fetches the landing page itself. No chapter is loaded yet.
func NewNovel(pageURL, workdir string) (*Novel, error) {
	host, err := Host(pageURL)
	if err != nil {
		return nil, err
	}
	doc, err := fetchDocument(pageURL)
	if err != nil {
		return nil, err
	}
	return &Novel{
		Workdir: workdir,
		HostURL: host,
		Cover:   NewCoverPage(doc),
	}, nil
}

// Next advances the session to the following chapter and returns it,
// or nil once the traversal is finished. Any failure to resolve,
// fetch, or parse the next page is treated as end of book; the site
// has no explicit last-chapter marker.
func (n *Novel) Next() *ChapterPage {
	if n.Current == nil && n.ChapterID > 0 {
		// Already terminated; do not restart from chapter one.
		return nil
	}
	var (
		page *ChapterPage
		err  error
	)
	if n.Current == nil {
		page, err = n.firstChapter()
	} else {
		page, err = n.nextChapter()
	}
	if err != nil {
		logrus.Debugf("traversal finished: %v", err)
		n.Current = nil
		return nil
	}
	n.Current = page
	n.ChapterID++
	return n.Current
}

func (n *Novel) firstChapter() (*ChapterPage, error) {
	href, err := n.Cover.FirstChapterURL()
	if err != nil {
		return nil, err
	}
	doc, err := fetchDocument(n.HostURL + href)
	if err != nil {
		return nil, err
	}
	return NewChapterPage(doc), nil
}

func (n *Novel) nextChapter() (*ChapterPage, error) {
	href, err := n.Current.NextChapterURL()
	if err != nil {
		return nil, err
	}
	doc, err := fetchDocument(n.HostURL + href)
	if err != nil {
		return nil, err
	}
	return NewChapterPage(doc), nil
}

func (n *Novel) novelDir() (string, error) {
	title, err := n.Cover.Title()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(n.Workdir, title)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	return dir, nil
}

// SaveCover fetches the cover image and writes it to
// <workdir>/<title>/<title>.<kind>, overwriting any previous copy.
func (n *Novel) SaveCover() error {
	dir, err := n.novelDir()
	if err != nil {
		return err
	}
	title, err := n.Cover.Title()
	if err != nil {
		return err
	}
	imgURL, err := n.Cover.ImageURL()
	if err != nil {
		return err
	}
	kind, err := n.Cover.ImageKind()
	if err != nil {
		return err
	}
	img, err := fetchData(imgURL)
	if err != nil {
		return err
	}

	filePath := filepath.Join(dir, fmt.Sprintf("%s.%s", title, kind))
	logrus.Infof("Save to %v", filePath)
	return os.WriteFile(filePath, img, 0644)
}

// SaveChapter writes the current chapter as a standalone XHTML file.
// The zero-padded sequence prefix makes lexical filename order equal
// chapter order, which is the only ordering signal the epub builder
// has.
func (n *Novel) SaveChapter() error {
	if n.Current == nil {
		return fmt.Errorf("no chapter loaded")
	}
	dir, err := n.novelDir()
	if err != nil {
		return err
	}
	title, err := n.Current.Title()
	if err != nil {
		return err
	}
	xhtml, err := n.Current.ComposeXHTML()
	if err != nil {
		return err
	}

	filePath := filepath.Join(dir, fmt.Sprintf("%08d %s.xhtml", n.ChapterID, title))
	logrus.Infof("Save to %v", filePath)
	return os.WriteFile(filePath, []byte(xhtml), 0644)
}
