package main

import (
	"flag"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iwvelando/loan-projection/internal/config"
	"github.com/iwvelando/loan-projection/internal/server"
	"github.com/iwvelando/loan-projection/internal/sweep"
	"github.com/iwvelando/loan-projection/pkg/amortize"
	"github.com/iwvelando/loan-projection/pkg/constants"
	"github.com/iwvelando/loan-projection/pkg/format"
	"github.com/iwvelando/loan-projection/pkg/mortgage"
	"github.com/iwvelando/loan-projection/pkg/output"
	"github.com/iwvelando/loan-projection/pkg/validation"
)

// version is stamped at build time.
var version = "dev"

// initializeLogger creates a zap logger based on configuration and CLI override
func initializeLogger(loggingConfig config.LoggingConfig, logLevelOverride string) (*zap.Logger, error) {
	// Determine log level (CLI override takes precedence)
	level := loggingConfig.Level
	if logLevelOverride != "" {
		level = logLevelOverride
	}
	if level == "" {
		level = "info" // Default to info level
	}

	// Parse log level
	var zapLevel zapcore.Level
	switch level {
	case "debug":
		zapLevel = zapcore.DebugLevel
	case "info":
		zapLevel = zapcore.InfoLevel
	case "warn", "warning":
		zapLevel = zapcore.WarnLevel
	case "error":
		zapLevel = zapcore.ErrorLevel
	default:
		return nil, fmt.Errorf("invalid log level: %s", level)
	}

	// Determine output format
	logFormat := loggingConfig.Format
	if logFormat == "" {
		logFormat = "json" // Default to JSON for production
	}

	// Configure encoder
	var zapConfig zap.Config
	switch logFormat {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", logFormat)
	}

	// Configure output file if specified
	if loggingConfig.OutputFile != "" {
		// Ensure the directory exists
		if dir := filepath.Dir(loggingConfig.OutputFile); dir != "." {
			if err := os.MkdirAll(dir, 0755); err != nil {
				return nil, fmt.Errorf("failed to create log directory %s: %v", dir, err)
			}
		}

		// Test if we can create/write to the file
		if file, err := os.OpenFile(loggingConfig.OutputFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err != nil {
			return nil, fmt.Errorf("failed to open log file %s: %v", loggingConfig.OutputFile, err)
		} else {
			_ = file.Close()
		}

		zapConfig.OutputPaths = []string{loggingConfig.OutputFile}
		zapConfig.ErrorOutputPaths = []string{loggingConfig.OutputFile}
	}

	return zapConfig.Build()
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	metricFlag := flag.String("metric", "", "project a single metric instead of the full schedule (loan, interest, payments, interestRatio)")
	atFlag := flag.String("at", "", "time in years for -metric; defaults to the loan term")
	targetPaymentFlag := flag.String("target-payment", "", "solve for the rate whose per-period repayment equals this amount")
	serveFlag := flag.Bool("serve", false, "run the HTTP API instead of a one-shot projection")
	addrFlag := flag.String("addr", constants.DefaultServerAddress, "HTTP listen address for -serve")
	flag.Parse()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		return
	}

	// Initialize logging based on config and CLI override
	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		return
	}
	defer func() {
		_ = logger.Sync()
	}()

	if *serveFlag {
		logger.Info("starting HTTP API",
			zap.String("op", "main"),
			zap.String("addr", *addrFlag),
		)
		handler := server.NewHandler(logger, constants.DefaultMaxUploadSizeBytes, version)
		if err := http.ListenAndServe(*addrFlag, handler); err != nil {
			logger.Fatal("server stopped",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		return
	}

	// Determine output format (CLI override takes precedence over config)
	outputFormat := conf.Output.Format
	if *outputFormatFlag != "" {
		outputFormat = *outputFormatFlag
	}
	if outputFormat == "" {
		outputFormat = constants.OutputFormatPretty // Default to pretty format
	}

	err = validation.ValidateOutputFormat(outputFormat)
	if err != nil {
		logger.Fatal(err.Error(),
			zap.String("op", "main"),
		)
	}

	// Validate configuration and display any warnings
	warnings := conf.ValidateConfiguration()
	for _, warning := range warnings {
		logger.Warn("Configuration warning: "+warning,
			zap.String("op", "main"),
		)
	}

	// Build the typed loan definition.
	loan, err := buildLoan(conf)
	if err != nil {
		logger.Fatal("failed to construct loan definition",
			zap.String("op", "main"),
			zap.Error(err),
		)
	}

	// A target payment short-circuits into the rate solver.
	if *targetPaymentFlag != "" {
		target, err := strconv.ParseFloat(*targetPaymentFlag, 64)
		if err != nil {
			logger.Fatal("invalid -target-payment value",
				zap.String("op", "main"),
				zap.String("value", *targetPaymentFlag),
			)
		}
		rate, err := amortize.RateForRepayment(logger, loan, target)
		if err != nil {
			logger.Fatal("failed to solve for rate",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		fmt.Printf("rate for %s repayment: %.6f\n", format.Currency(target, loan.Currency().Symbol()), rate)
		return
	}

	// A metric flag short-circuits into a single point-in-time projection.
	if *metricFlag != "" {
		metric, err := amortize.ParseMetric(*metricFlag)
		if err != nil {
			logger.Fatal(err.Error(),
				zap.String("op", "main"),
			)
		}
		at, err := parseTimeFlag(*atFlag, loan.Term())
		if err != nil {
			logger.Fatal("invalid -at value",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		value, err := amortize.ProjectAt(loan, metric, at)
		if err != nil {
			logger.Fatal("failed to project metric",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		if metric == amortize.MetricInterestRatio {
			fmt.Printf("%s at %.3fy: %.4f\n", metric, at, value)
		} else {
			fmt.Printf("%s at %.3fy: %s\n", metric, at, format.Currency(value, loan.Currency().Symbol()))
		}
		return
	}

	// Run the sweep when one is configured, otherwise a single schedule.
	if conf.Sweep != nil {
		variable, err := sweep.ParseVariable(conf.Sweep.Variable)
		if err != nil {
			logger.Fatal(err.Error(),
				zap.String("op", "main"),
			)
		}
		runner := sweep.NewRunner(logger, 0)
		result, err := runner.Run(loan, variable, conf.Sweep.Values)
		if err != nil {
			logger.Fatal("failed to compute sweep",
				zap.String("op", "main"),
				zap.Error(err),
			)
		}
		switch outputFormat {
		case constants.OutputFormatPretty:
			output.SweepPrettyFormat(result)
		case constants.OutputFormatCSV:
			output.SweepCsvFormat(result)
		}
		return
	}

	schedule := amortize.Compute(loan)
	switch outputFormat {
	case constants.OutputFormatPretty:
		output.PrettyFormat(schedule)
	case constants.OutputFormatCSV:
		output.CsvFormat(schedule)
	}
}

// parseTimeFlag parses the -at flag, falling back when it was left unset.
// Negative values parse fine here so that the projection can reject them.
func parseTimeFlag(raw string, fallback float64) (float64, error) {
	if raw == "" {
		return fallback, nil
	}
	return strconv.ParseFloat(raw, 64)
}

// buildLoan converts the configuration into a Mortgage, re-denominating it in
// the display currency when one is configured.
func buildLoan(conf *config.Configuration) (mortgage.Mortgage, error) {
	loan, err := conf.Mortgage()
	if err != nil {
		return mortgage.Mortgage{}, err
	}
	if conf.Display == "" || conf.Display == loan.Currency().Symbol() {
		return loan, nil
	}
	price, err := loan.Price().Convert(conf.Display)
	if err != nil {
		return mortgage.Mortgage{}, err
	}
	return mortgage.New(price, loan.Deposit(), loan.Rate(), loan.Term(), loan.Frequency(), loan.StampDuty())
}
