package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	bytesizecmd "bytesize/internal/cli/cmd"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := bytesizecmd.Execute(ctx); err != nil {
		var ee *bytesizecmd.ExitError
		if errors.As(err, &ee) {
			if ee.Err != nil {
				fmt.Fprintln(os.Stderr, "bytesize:", ee.Err)
			}
			os.Exit(ee.Code)
		}
		fmt.Fprintln(os.Stderr, "bytesize:", err)
		os.Exit(bytesizecmd.ExitCLIError)
	}
	os.Exit(bytesizecmd.ExitOK)
}
