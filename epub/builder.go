package epub

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"lnworld-downloader/downloader"
	"lnworld-downloader/template"

	"github.com/PuerkitoBio/goquery"
	goepub "github.com/go-shiori/go-epub"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
)

var chapterPrefixRegexp = regexp.MustCompile(`^\d+ `)

// Build assembles the artifacts persisted during traversal into a
// single epub at <workdir>/<title>.epub. Title, author, and cover
// kind are re-derived from the still-loaded landing page.
func Build(n *downloader.Novel) error {
	title, err := n.Cover.Title()
	if err != nil {
		return err
	}
	author, err := n.Cover.Author()
	if err != nil {
		return err
	}
	kind, err := n.Cover.ImageKind()
	if err != nil {
		return err
	}
	return BuildDir(n.Workdir, title, author, fmt.Sprintf("%s.%s", title, kind))
}

// BuildDir builds an epub from an already-populated novel directory
// <workdir>/<title>. Chapter order is the lexical order of the
// *.xhtml filenames; the zero-padded prefix written during download
// is the ordering contract.
func BuildDir(workdir, title, author, coverName string) error {
	novelDir := filepath.Join(workdir, title)

	book, err := goepub.NewEpub(title)
	if err != nil {
		return fmt.Errorf("failed to create epub: %v", err)
	}
	book.SetAuthor(author)
	book.SetIdentifier(fmt.Sprintf("urn:uuid:%s", uuid.NewString()))

	coverPath := filepath.Join(novelDir, coverName)
	if _, err := os.Stat(coverPath); err != nil {
		return fmt.Errorf("cover image not found: %v", err)
	}
	coverImage, err := book.AddImage(coverPath, "cover"+filepath.Ext(coverName))
	if err != nil {
		return fmt.Errorf("failed to add cover image: %v", err)
	}
	if err := book.SetCover(coverImage, ""); err != nil {
		return fmt.Errorf("failed to set cover: %v", err)
	}

	cssPath := filepath.Join(novelDir, "style.css")
	if err := os.WriteFile(cssPath, []byte(template.StyleCSS), 0644); err != nil {
		return fmt.Errorf("failed to write style: %v", err)
	}
	internalCSS, err := book.AddCSS(cssPath, "style.css")
	if err != nil {
		return fmt.Errorf("failed to add style: %v", err)
	}

	entries, err := os.ReadDir(novelDir)
	if err != nil {
		return fmt.Errorf("failed to read novel directory: %v", err)
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".xhtml" {
			continue
		}
		filePath := filepath.Join(novelDir, entry.Name())
		logrus.Infof("Reading %v", filePath)
		content, err := os.ReadFile(filePath)
		if err != nil {
			return fmt.Errorf("failed to read chapter: %v", err)
		}
		body, err := chapterBody(content)
		if err != nil {
			return fmt.Errorf("failed to parse chapter %v: %v", entry.Name(), err)
		}
		chapterTitle := chapterPrefixRegexp.ReplaceAllString(strings.TrimSuffix(entry.Name(), ".xhtml"), "")
		if _, err := book.AddSection(body, chapterTitle, "", internalCSS); err != nil {
			return fmt.Errorf("failed to add chapter: %v", err)
		}
	}

	savePath := filepath.Join(workdir, title+".epub")
	logrus.Infof("Save to %v", savePath)
	return book.Write(savePath)
}

// chapterBody unwraps the persisted document down to the markup
// between its body tags; the epub library puts each section into a
// document shell of its own.
func chapterBody(content []byte) (string, error) {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(content))
	if err != nil {
		return "", err
	}
	return doc.Find("body").Html()
}
