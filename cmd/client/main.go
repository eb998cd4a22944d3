package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/amnplus-client/internal/cli"
	"github.com/MKhiriev/amnplus-client/models"
)

// Set by the linker.
var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)

	build := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	err := cli.New(build, cli.Options{}).Run(ctx, os.Args[1:])
	stop()

	if err != nil {
		fmt.Fprintln(os.Stderr, "amnplus:", cli.Describe(err))
		os.Exit(1)
	}
}
