package main

import (
	"context"
	"os"

	log "github.com/sirupsen/logrus"

	"github.com/esmanning/emmAMR/app"
)

func main() {
	cmd := app.AllCommands()
	if err := cmd.Dispatch(context.Background(), os.Args[1:]); err != nil {
		log.Errorf("**err**: %v", err)
		os.Exit(1)
	}
}
