package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/alecthomas/kingpin/v2"
	"go.uber.org/zap"

	"github.com/eugenenazirov/samsconf/internal/application"
	"github.com/eugenenazirov/samsconf/internal/config"
	"github.com/eugenenazirov/samsconf/internal/logging"
)

func main() {
	kingpinApp := kingpin.New("samsconf", "SAMS proxy configuration - loads sams2.conf and the per-proxy settings from the database")
	configFile := kingpinApp.Flag("config", "Path to YAML bootstrap configuration file").String()
	confFile := kingpinApp.Flag("conf-file", "Path to sams2.conf").String()
	logLevel := kingpinApp.Flag("log-level", "Log level (debug, info, warn, error)").String()

	checkCmd := kingpinApp.Command("check", "Load the configuration and report the result")

	getCmd := kingpinApp.Command("get", "Print a single attribute")
	getName := getCmd.Arg("name", "Attribute name").Required().String()
	getType := getCmd.Flag("type", "Attribute type").Default(typeString).Enum(typeString, typeInt, typeDouble, typeBool)

	dumpCmd := kingpinApp.Command("dump", "Print all attributes")
	dumpFormat := dumpCmd.Flag("format", "Output format").Default(formatText).Enum(formatText, formatYAML)

	engineCmd := kingpinApp.Command("engine", "Print the selected database engine")

	command := kingpin.MustParse(kingpinApp.Parse(os.Args[1:]))

	overrides := &config.CLIOverrides{
		ConfigFile: *configFile,
	}

	if *confFile != "" {
		overrides.ConfFile = confFile
	}

	if *logLevel != "" {
		overrides.LogLevel = logLevel
	}

	cfg, err := config.Load(overrides)
	if err != nil {
		panic(fmt.Sprintf("failed to load configuration: %v", err))
	}

	logger, err := logging.New(cfg.LogLevel, cfg.LogEncoding)
	if err != nil {
		panic(fmt.Sprintf("failed to initialize logger: %v", err))
	}
	defer func() {
		_ = logger.Sync()
	}()

	app, err := application.New(cfg, logger)
	if err != nil {
		logger.Fatal("failed to initialize application", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Start(ctx); err != nil {
		logger.Fatal("failed to load configuration", zap.Error(err))
	}

	store := app.Store()
	switch command {
	case checkCmd.FullCommand():
		err = printCheck(os.Stdout, store)
	case getCmd.FullCommand():
		err = printAttribute(os.Stdout, store, *getName, *getType)
	case dumpCmd.FullCommand():
		err = printDump(os.Stdout, store, *dumpFormat)
	case engineCmd.FullCommand():
		err = printEngine(os.Stdout, store)
	}
	if err != nil {
		logger.Fatal("command failed", zap.String("command", command), zap.Error(err))
	}
}
