package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/goliatone/go-propgen/internal/prompt"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCmd(os.Stdout, os.Stderr, prompt.NewSurveyDriver())
	if err := cmd.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, prompt.ErrAborted) {
			fmt.Fprintln(os.Stderr, "propgen:", err)
		}
		os.Exit(1)
	}
}
