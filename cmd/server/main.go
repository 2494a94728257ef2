// Command server is the main entry point for the MCP MultiTool Server
package main

import (
	"os"

	"github.com/charmbracelet/log"
	"github.com/mark3labs/mcp-go/server"
	"github.com/theapemachine/mcp-server-multitool/pkg/config"
	"github.com/theapemachine/mcp-server-multitool/pkg/multitool"
)

func main() {
	// stdout carries the protocol, so logs go to stderr.
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "multitool",
	})
	log.SetDefault(logger)

	cfg, err := config.Load()
	if err != nil {
		logger.Fatal("failed to load configuration", "error", err)
	}

	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	} else {
		logger.Warn("unknown log level, keeping info", "level", cfg.LogLevel)
	}

	if err := cfg.Validate(); err != nil {
		logger.Warn("configuration warning", "error", err)
	}

	mt, err := multitool.New(cfg, multitool.Options{Logger: logger})
	if err != nil {
		logger.Fatal("failed to build server", "error", err)
	}

	logger.Info("server started, waiting for requests")

	if err := server.ServeStdio(mt.Server); err != nil {
		logger.Fatal("server error", "error", err)
	}

	logger.Info("server shutdown complete")
}
