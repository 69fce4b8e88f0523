package client

import (
	"context"
	"fmt"
	"io"

	"github.com/MKhiriev/go-nts-client/internal/adapter"
	"github.com/MKhiriev/go-nts-client/internal/app"
	"github.com/MKhiriev/go-nts-client/internal/config"
	"github.com/MKhiriev/go-nts-client/internal/logger"
	"github.com/MKhiriev/go-nts-client/internal/utils"
)

// Process exit codes.
const (
	ExitOK          = 0
	ExitConfigError = 1
	ExitKEFailed    = 125
	ExitNTPFailed   = 126
)

// App runs the NTS client once: key establishment, then time
// synchronization, then the report.
type App struct {
	adapter adapter.ServerAdapter
	cfg     config.ClientConfig

	stdout io.Writer
	stderr io.Writer

	runIDs *utils.UUIDGenerator
	err    error
}

// NewApp constructs an [App]. The report goes to stdout and failure
// diagnostics to stderr.
func NewApp(serverAdapter adapter.ServerAdapter, cfg config.ClientConfig, stdout, stderr io.Writer) *App {
	return &App{
		adapter: serverAdapter,
		cfg:     cfg,
		stdout:  stdout,
		stderr:  stderr,
		runIDs:  utils.NewUUIDGenerator(),
	}
}

// Run implements [Client]. It returns [ExitKEFailed] when key establishment
// fails, in which case time synchronization is not attempted, and
// [ExitNTPFailed] when time synchronization fails. Nothing is retried.
//
// Log entries of the run are tagged with the run ID found in ctx, or with a
// freshly generated one.
func (a *App) Run(ctx context.Context) int {
	ctx = a.withRunID(ctx)
	log := logger.FromContext(ctx)
	a.err = nil

	state, err := a.adapter.EstablishKeys(ctx, a.cfg)
	if err != nil {
		return a.fail(ctx, ErrKEStage, app.MsgKEStageFailed, ExitKEFailed, err)
	}
	log.Debug().Msg("keys established")

	result, err := a.adapter.SyncTime(ctx, state)
	if err != nil {
		return a.fail(ctx, ErrNTPStage, app.MsgNTPStageFailed, ExitNTPFailed, err)
	}

	fmt.Fprintf(a.stdout, app.ReportStratum, result.Stratum)
	fmt.Fprintf(a.stdout, app.ReportOffset, result.TimeDiff)

	log.Debug().
		Int("stratum", result.Stratum).
		Float64("offset", result.TimeDiff).
		Dur("rtt", result.RTT).
		Msg("run completed")

	return ExitOK
}

// Err returns the error of the last failed run, wrapped with the stage it
// failed in, or nil.
func (a *App) Err() error {
	return a.err
}

func (a *App) withRunID(ctx context.Context) context.Context {
	runID, ok := utils.GetRunIDFromContext(ctx)
	if !ok {
		runID = a.runIDs.Generate()
		ctx = utils.WithRunID(ctx, runID)
	}
	return logger.FromContext(ctx).WithRunID(runID).WithContext(ctx)
}

func (a *App) fail(ctx context.Context, stage error, msg string, code int, err error) int {
	a.err = fmt.Errorf("%w: %w", stage, err)

	logger.FromContext(ctx).Debug().
		Err(a.err).
		Int("exit_code", code).
		Msg("run failed")

	fmt.Fprintf(a.stderr, "%s: %v\n", msg, err)
	return code
}
