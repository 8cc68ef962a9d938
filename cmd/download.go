package cmd

import (
	"fmt"

	"lnworld-downloader/downloader"
	"lnworld-downloader/epub"

	"github.com/spf13/cobra"
)

var downloadCmd = &cobra.Command{
	Use:   "download <novel-url>",
	Short: "Download a novel and pack it into an epub file",
	Long:  "Download a novel from its landing page URL, chapter by chapter, and pack it into an epub file",
	Args:  cobra.ExactArgs(1),
	RunE:  runDownload,
}

var downloadOutputPath string

func init() {
	downloadCmd.Flags().StringVarP(&downloadOutputPath, "output-path", "o", "./novels", "output path")
	RootCmd.AddCommand(downloadCmd)
}

func runDownload(cmd *cobra.Command, args []string) error {
	novelURL := args[0]
	if err := downloader.ValidateSourceURL(novelURL); err != nil {
		return err
	}

	novel, err := downloader.NewNovel(novelURL, downloadOutputPath)
	if err != nil {
		return fmt.Errorf("failed to open novel page: %v", err)
	}

	if err := novel.SaveCover(); err != nil {
		return fmt.Errorf("failed to save cover: %v", err)
	}
	for novel.Next() != nil {
		if err := novel.SaveChapter(); err != nil {
			return fmt.Errorf("failed to save chapter: %v", err)
		}
	}

	if err := epub.Build(novel); err != nil {
		return fmt.Errorf("failed to build epub: %v", err)
	}

	return nil
}
