package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"lnworld-downloader/epub"

	"github.com/spf13/cobra"
)

type packArgs struct {
	DirPath string
	Author  string
}

var pArgs packArgs

var packCmd = &cobra.Command{
	Use:   "pack",
	Short: "Pack an epub file from an already-downloaded novel directory",
	Long:  "Pack an epub file from an already-downloaded novel directory",
	RunE:  runPack,
}

func init() {
	packCmd.Flags().StringVarP(&pArgs.DirPath, "dir-path", "d", "", "novel directory path")
	packCmd.Flags().StringVarP(&pArgs.Author, "author", "a", "Unknown", "author metadata")
	RootCmd.AddCommand(packCmd)
}

func runPack(cmd *cobra.Command, args []string) error {
	if pArgs.DirPath == "" {
		return fmt.Errorf("directory path is required")
	}
	dir := filepath.Clean(pArgs.DirPath)
	title := filepath.Base(dir)

	coverName, err := findCover(dir, title)
	if err != nil {
		return err
	}

	err = epub.BuildDir(filepath.Dir(dir), title, pArgs.Author, coverName)
	if err != nil {
		return fmt.Errorf("failed to create epub: %v", err)
	}
	return nil
}

// findCover locates the image saved next to the chapter files. It is
// the one file sharing the novel title as its base name.
func findCover(dir, title string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read novel directory: %v", err)
	}
	for _, entry := range entries {
		name := entry.Name()
		ext := filepath.Ext(name)
		if ext == ".xhtml" || ext == ".css" {
			continue
		}
		if strings.TrimSuffix(name, ext) == title {
			return name, nil
		}
	}
	return "", fmt.Errorf("no cover image for %q in %v", title, dir)
}
