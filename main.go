package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"statement-wizard/config"
	"statement-wizard/domain"
	httpLayer "statement-wizard/http"
	"statement-wizard/logging"
	"statement-wizard/repository"
	"statement-wizard/service"
	"statement-wizard/tui"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	envPath := flag.String("env", ".env", "path to a dotenv file")
	endpoint := flag.String("endpoint", "", "submission server base URL")
	transport := flag.String("transport", "", "HTTP transport: net/http or fasthttp")
	plan := flag.String("plan", "", "preselect a plan (cas, visa, both)")
	summaryJSON := flag.Bool("summary-json", false, "print the wizard view as JSON before every step")
	flag.Parse()

	cfg, err := config.Load(*configPath, *envPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}
	if *endpoint != "" {
		cfg.Endpoint = *endpoint
	}
	if *transport != "" {
		cfg.Transport = *transport
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(2)
	}

	logger := logging.New(os.Stderr, cfg.Log.Level, cfg.Log.Format)

	var submitter service.Submitter
	switch cfg.Transport {
	case config.TransportFastHTTP:
		submitter = httpLayer.NewFastSubmissionClient(cfg.Endpoint, cfg.SubmitPath, cfg.Timeout)
	default:
		submitter = httpLayer.NewSubmissionClient(cfg.Endpoint, cfg.SubmitPath, cfg.Timeout)
	}

	focus := &tui.FocusRecorder{}
	submissionService := service.NewSubmissionService(submitter, logger)
	wizard := service.NewWizardService(
		repository.NewAttachmentRepositoryMemory(),
		submissionService,
		service.WithNotifier(tui.NewConsoleNotifier(os.Stdout)),
		service.WithFocuser(focus),
		service.WithLogger(logger),
	)

	if *plan != "" {
		if err := wizard.SelectPlanAndOpen(domain.PlanID(*plan)); err != nil {
			logger.Error("cannot preselect plan", "error", err)
			os.Exit(2)
		}
	} else {
		wizard.Open()
	}

	opts := []tui.RunnerOption{
		tui.WithFocus(focus),
		tui.WithResetDelay(cfg.ResetDelay),
		tui.WithLogger(logger),
	}
	if *summaryJSON {
		opts = append(opts, tui.WithViewJSON(os.Stdout))
	}
	runner := tui.NewRunner(wizard, opts...)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	runErr := make(chan error, 1)
	go func() {
		logger.Info("wizard started", "endpoint", cfg.Endpoint, "transport", cfg.Transport)
		runErr <- runner.Run(ctx)
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-runErr:
		switch {
		case err == nil:
		case errors.Is(err, tui.ErrAborted):
			logger.Info("wizard cancelled")
		default:
			logger.Error("wizard stopped", "error", err)
			os.Exit(1)
		}
	case <-quit:
		logger.Info("shutting down")
		cancel()
	}

	logger.Info("wizard exited")
}
