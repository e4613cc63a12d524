package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/cloudlagoon/lagoon"
	"github.com/cloudlagoon/lagoon/infra/config"
	"github.com/cloudlagoon/lagoon/lib"
)

const (
	retNoErrorCode      = 0
	retGenericErrorCode = 1
)

func main() {
	// Use config file name from env LAGOON_CONFIG
	// or lagoon.yml
	config.ConfigFileName = lib.GetEnvDefault("LAGOON_CONFIG", config.ConfigFileName)

	// Handle command line arguments
	flag.StringVar(&config.Listen, "listen", config.Listen, "web server listen address")
	flag.StringVar(&config.ConfigFileName, "config", config.ConfigFileName, "config file name")
	flag.Parse()

	//
	// Create logger
	//
	log := slog.Default()
	log.Info("starting")

	err := lagoon.App(log)

	code := retNoErrorCode
	if err != nil {
		code = retGenericErrorCode
		if i, ok := err.(lib.ErrorCode); ok {
			code = i.Code()
		}
		log.Error("exit", slog.Int("code", code), slog.Any("err", err))
	} else {
		log.Info("exit")
	}

	os.Exit(code)
}
