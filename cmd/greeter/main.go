package main

import (
	"context"
	"fmt"
	"os"

	"go.uber.org/zap"

	"github.com/daniel-harrison-cko/railway-workshop/internal/cli"
)

func main() {
	logger, err := zap.NewProduction()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer logger.Sync()

	if err := cli.NewCommand(logger).ExecuteContext(context.Background()); err != nil {
		logger.Error("greeter failed", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}
