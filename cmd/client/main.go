package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-nts-client/internal/adapter"
	"github.com/MKhiriev/go-nts-client/internal/app"
	"github.com/MKhiriev/go-nts-client/internal/client"
	"github.com/MKhiriev/go-nts-client/internal/config"
	"github.com/MKhiriev/go-nts-client/internal/logger"
	"github.com/MKhiriev/go-nts-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one client run and returns the process exit code. The
// report goes to stdout, logs and diagnostics to stderr.
func run(args []string, stdout, stderr io.Writer) int {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)

	settings, err := config.GetSettings(args)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return client.ExitOK
		}
		fmt.Fprintf(stderr, "%s: %v\n", app.MsgInvalidConfiguration, err)
		return client.ExitConfigError
	}

	log := logger.NewClientLogger("nts-client", stderr, settings.Log.Level)
	log.Debug().Object("build", buildInfo).Msg("starting")
	for _, w := range settings.Warnings {
		log.Warn().Err(w).Msg("continuing without trust anchor")
	}

	ctx := log.WithContext(context.Background())

	serverAdapter := adapter.NewNTSServerAdapter(settings.Adapter)
	return client.NewApp(serverAdapter, settings.Client, stdout, stderr).Run(ctx)
}
