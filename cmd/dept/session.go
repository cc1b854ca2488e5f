package main

import (
	"os"
	"os/signal"

	"github.com/sandevgo/deptdir/pkg/log"
	"github.com/sandevgo/deptdir/pkg/srv"
	"github.com/spf13/cobra"
)

func runSession(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
	defer stop()

	// logger setup
	var flushLog func()
	ctx, flushLog = setupLogger(ctx)
	defer flushLog()

	logger := log.FromCtx(ctx)

	session, err := NewSession(ctx)
	if err != nil {
		return err
	}

	if err := srv.Run(ctx, session); err != nil {
		return err
	}

	logger.Debug().Msg("dept has been shut down gracefully")
	return nil
}
