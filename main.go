package main

import (
	"lnworld-downloader/cmd"

	"github.com/sirupsen/logrus"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		logrus.Fatalf("Error executing command: %v", err)
	}
}
