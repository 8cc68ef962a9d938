package downloader

import (
	"bytes"
	"regexp"
	"strings"

	"lnworld-downloader/template"
	"lnworld-downloader/utils"

	"github.com/PuerkitoBio/goquery"
)

// Selector paths for lightnovelworld.com pages. The extraction rules
// are deliberately tied to this one site's markup and break if it
// changes.
const (
	titleSelector        = "h1.novel-title"
	authorSelector       = "div.author > a > span"
	coverImageSelector   = "div.fixed-img > figure > img"
	firstChapterSelector = "#readchapterbtn"
	chapterTitleSelector = "span.chapter-title"
	chapterBodySelector  = "div.chapter-content"
	nextChapterSelector  = "a.button.nextchap"

	lazySrcAttr = "data-src"
	hrefAttr    = "href"
)

var (
	imageKindRegexp = regexp.MustCompile(`([[:alpha:]]+)(?:\?v=\d*)?$`)
	adBlockRegexp   = regexp.MustCompile(`<div.*?</div>`)
)

func selectFirst(doc *goquery.Document, path string) (*goquery.Selection, error) {
	sel := doc.Find(path).First()
	if sel.Length() == 0 {
		return nil, &SelectorNotFoundError{Path: path}
	}
	return sel, nil
}

func attrOf(sel *goquery.Selection, name string) (string, error) {
	value, ok := sel.Attr(name)
	if !ok {
		return "", &AttributeNotFoundError{Name: name}
	}
	return value, nil
}

// cleanedTitle extracts the element's text and normalizes it for use
// as a filename segment and archive metadata.
func cleanedTitle(doc *goquery.Document, path, field string) (string, error) {
	sel, err := selectFirst(doc, path)
	if err != nil {
		return "", err
	}
	title := utils.CleanTitle(sel.Text())
	if title == "" {
		return "", &EmptyFieldError{Field: field}
	}
	return title, nil
}

// CoverPage wraps the parsed landing page of a novel. Fields are
// derived lazily from the document on every call.
type CoverPage struct {
	doc *goquery.Document
}

func NewCoverPage(doc *goquery.Document) *CoverPage {
	return &CoverPage{doc: doc}
}

func (p *CoverPage) Title() (string, error) {
	return cleanedTitle(p.doc, titleSelector, "novel title")
}

func (p *CoverPage) Author() (string, error) {
	sel, err := selectFirst(p.doc, authorSelector)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(sel.Text()), nil
}

func (p *CoverPage) ImageURL() (string, error) {
	sel, err := selectFirst(p.doc, coverImageSelector)
	if err != nil {
		return "", err
	}
	return attrOf(sel, lazySrcAttr)
}

// ImageKind derives a file extension from the cover image URL: the
// trailing run of letters, ignoring a cache-buster query such as
// "?v=3".
func (p *CoverPage) ImageKind() (string, error) {
	imgURL, err := p.ImageURL()
	if err != nil {
		return "", err
	}
	matches := imageKindRegexp.FindStringSubmatch(imgURL)
	if matches == nil {
		return "", &ImageKindError{URL: imgURL}
	}
	return matches[1], nil
}

func (p *CoverPage) FirstChapterURL() (string, error) {
	sel, err := selectFirst(p.doc, firstChapterSelector)
	if err != nil {
		return "", err
	}
	return attrOf(sel, hrefAttr)
}

// ChapterPage wraps one parsed chapter page.
type ChapterPage struct {
	doc *goquery.Document
}

func NewChapterPage(doc *goquery.Document) *ChapterPage {
	return &ChapterPage{doc: doc}
}

func (p *ChapterPage) Title() (string, error) {
	return cleanedTitle(p.doc, chapterTitleSelector, "chapter title")
}

// Body returns the chapter markup with advertisement div blocks
// removed. The removal is a shortest-match scan from an opening div
// to the next closing div and is not aware of nesting: an ad
// container holding nested block elements is cut short at the first
// closing tag. Accepted limitation, carried over from the reference
// extraction rules.
func (p *ChapterPage) Body() (string, error) {
	sel, err := selectFirst(p.doc, chapterBodySelector)
	if err != nil {
		return "", err
	}
	html, err := sel.Html()
	if err != nil {
		return "", err
	}
	return adBlockRegexp.ReplaceAllString(strings.TrimSpace(html), ""), nil
}

func (p *ChapterPage) NextChapterURL() (string, error) {
	sel, err := selectFirst(p.doc, nextChapterSelector)
	if err != nil {
		return "", err
	}
	return attrOf(sel, hrefAttr)
}

// ComposeXHTML wraps the chapter title and body into a minimal
// standalone XHTML document. The body is trusted markup from the
// source site and is embedded verbatim.
func (p *ChapterPage) ComposeXHTML() (string, error) {
	title, err := p.Title()
	if err != nil {
		return "", err
	}
	body, err := p.Body()
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	err = template.ChapterXHTML.Execute(&buf, template.ChapterData{Title: title, Body: body})
	if err != nil {
		return "", err
	}
	return buf.String(), nil
}
