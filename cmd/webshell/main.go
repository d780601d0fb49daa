package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/brettbedarf/webshell/config"
	"github.com/brettbedarf/webshell/internal/util"
	"github.com/brettbedarf/webshell/server"
	"github.com/brettbedarf/webshell/shell"
)

func main() {
	// Parse command line arguments
	var (
		configPath string
		verbose    int
		serve      bool
		addr       string
	)
	flag.StringVar(&configPath, "config", "", "Path to a YAML or JSON config file. Defaults to "+config.DefaultConfigPath+" if it exists.")
	flag.StringVar(&configPath, "c", "", "--config (shorthand)")
	flag.IntVar(&verbose, "verbose", config.InfoVerbose, "Log verbosity level between 1 (error) and 5 (trace). Default is 3 (info).")
	flag.IntVar(&verbose, "v", config.InfoVerbose, "--verbose (shorthand)")
	flag.BoolVar(&serve, "serve", false, "Serve consoles over HTTP instead of starting an interactive prompt.")
	flag.BoolVar(&serve, "s", false, "--serve (shorthand)")
	flag.StringVar(&addr, "addr", "", "HTTP listen address when serving. Default is "+config.DefaultAddr+".")
	flag.Parse()

	// Initialize logger
	verbose = util.Clamp(verbose, config.ErrorVerbose, config.TraceVerbose)
	util.InitializeLogger(config.LogLevelFromVerbose(verbose))
	logger := util.GetLogger("main")

	// Load config; explicit flags win over the file
	override, err := loadOverride(configPath)
	if err != nil {
		logger.Fatal().Err(err).Str("config", configPath).Msg("Failed to load config file")
	}
	if override == nil {
		override = &config.ConfigOverride{}
	}
	flag.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "verbose", "v":
			override.LogLvl = &verbose
		case "addr":
			override.Addr = &addr
		}
	})
	cfg := config.NewConfig(override)
	util.InitializeLogger(cfg.LogLvl)
	logger = util.GetLogger("main")

	if !serve {
		logger.Debug().Msg("Starting interactive console")
		if err := runREPL(os.Stdin, os.Stdout, shell.NewSession(cfg), cfg); err != nil {
			logger.Fatal().Err(err).Msg("Console read failed")
		}
		return
	}

	srv := server.New(cfg)
	done := srv.ServeAsync(cfg.Server.Addr)

	// Setup signal handling for graceful shutdown
	signalChan := make(chan os.Signal, 1)
	signal.Notify(signalChan, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	select {
	case err := <-done:
		if err != nil {
			logger.Fatal().Err(err).Str("addr", cfg.Server.Addr).Msg("Failed to start server")
		}
		return
	case sig := <-signalChan:
		logger.Info().Str("signal", sig.String()).Msg("Received signal, shutting down")
	}

	// Finish in-flight requests with a timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Error().Err(err).Msg("Server forced to shutdown")
	} else {
		logger.Info().Msg("Server exited cleanly")
	}
}

// loadOverride reads path, or the default config file when path is empty
func loadOverride(path string) (*config.ConfigOverride, error) {
	if path == "" {
		return config.LoadDefaultConfigFile()
	}
	return config.LoadConfigOverrideFile(path)
}
