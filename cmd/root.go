package cmd

import (
	"github.com/spf13/cobra"
)

var RootCmd = &cobra.Command{
	Use:   "lnworld-downloader",
	Short: "Download web novels from lightnovelworld.com and pack them into epub files",
	Long:  "Download web novels from lightnovelworld.com and pack them into epub files",
}
