package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/legacy-vault/internal/client"
	"github.com/MKhiriev/legacy-vault/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := client.NewApp(
		models.NewAppBuildInfo(buildVersion, buildDate, buildCommit),
		os.Stdin,
		os.Stdout,
		os.Stderr,
	)

	if err := app.Run(ctx, os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, client.ErrorLine(err))
		stop()
		os.Exit(1)
	}
}
