package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/pvtools/loan-pv/internal/config"
	"github.com/pvtools/loan-pv/internal/prompt"
	"github.com/pvtools/loan-pv/pkg/constants"
	"github.com/pvtools/loan-pv/pkg/output"
	"github.com/pvtools/loan-pv/pkg/presentvalue"
	"github.com/pvtools/loan-pv/pkg/validation"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

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
	format := loggingConfig.Format
	if format == "" {
		format = "console" // Default to console for an interactive tool
	}

	// Configure encoder
	var zapConfig zap.Config
	switch format {
	case "console":
		zapConfig = zap.NewDevelopmentConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	case "json":
		zapConfig = zap.NewProductionConfig()
		zapConfig.Level = zap.NewAtomicLevelAt(zapLevel)
	default:
		return nil, fmt.Errorf("invalid log format: %s", format)
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

// buildRequest assembles the calculation inputs either from the one-shot
// flags or, when no payment flag was given, interactively.
func buildRequest(logger *zap.Logger, payment, ratePercent float64, years, frequency int) (prompt.Request, error) {
	if payment > 0 {
		return prompt.Request{
			Payment:        payment,
			AnnualRate:     ratePercent / constants.PercentageMultiplier,
			Periods:        years * frequency,
			PeriodsPerYear: frequency,
		}, nil
	}

	logger.Debug("no payment flag given, prompting interactively",
		zap.String("op", "main"),
	)
	fmt.Println("Loan Present Value Calculator")
	fmt.Println("----------------------------------------")
	return prompt.NewPrompter(os.Stdin, os.Stdout).Collect(frequency)
}

func main() {
	// Process command line flags first to get config location
	configLocation := flag.String("config", constants.DefaultConfigFile, "path to configuration file")
	outputFormatFlag := flag.String("output-format", "", "type of output override: pretty, csv")
	logLevel := flag.String("log-level", "", "log level override (debug, info, warn, error)")
	paymentFlag := flag.Float64("payment", 0, "periodic payment amount; omit to be prompted")
	rateFlag := flag.Float64("rate", 0, "annual interest rate as a percentage, e.g. 5.5")
	yearsFlag := flag.Int("years", 0, "loan term in years")
	frequencyFlag := flag.Int("frequency", 0, "payment periods per year: 1, 2, 4, 12, 52, or 365")
	flag.Parse()

	// Load the config file to get logging configuration
	conf, err := config.LoadConfiguration(*configLocation)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to load configuration at %s\", \"error\": \"%v\"}\n", *configLocation, err)
		os.Exit(1)
	}

	// Initialize logging based on config and CLI override
	logger, err := initializeLogger(conf.Logging, *logLevel)
	if err != nil {
		fmt.Printf("{\"op\": \"main\", \"level\": \"fatal\", \"msg\": \"failed to initialize logger\", \"error\": \"%v\"}\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

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

	// Determine the payment frequency (CLI flag takes precedence over the
	// configured default). The engine rejects invalid values.
	frequency := conf.Defaults.PeriodsPerYear
	if *frequencyFlag != 0 {
		frequency = *frequencyFlag
	}

	request, err := buildRequest(logger, *paymentFlag, *rateFlag, *yearsFlag, frequency)
	if err != nil {
		logger.Debug("failed to collect inputs",
			zap.String("op", "main"),
			zap.Error(err),
		)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Debug("calculating present value",
		zap.String("op", "main"),
		zap.Float64("payment", request.Payment),
		zap.Float64("annualRate", request.AnnualRate),
		zap.Int("periods", request.Periods),
		zap.Int("periodsPerYear", request.PeriodsPerYear),
	)

	breakdown, err := presentvalue.Analyze(request.Payment, request.AnnualRate, request.Periods, request.PeriodsPerYear)
	if err != nil {
		logger.Debug("calculation rejected",
			zap.String("op", "main"),
			zap.Error(err),
		)
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	// Handle output.
	switch outputFormat {
	case constants.OutputFormatPretty:
		fmt.Println()
		output.PrettyFormat(os.Stdout, breakdown)
	case constants.OutputFormatCSV:
		output.CsvFormat(os.Stdout, breakdown)
	}
}
