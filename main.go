package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"os"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
	"golang.org/x/exp/slog"
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintln(os.Stderr, "failed to load .env:", err)
	}
	if err := Run(context.Background(), os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}

// Reads a request document, answers its stat requests and writes them as a
// json array.
func Run(ctx context.Context, args []string, stdin io.Reader, stdout io.Writer, stderr io.Writer) error {
	flags := flag.NewFlagSet("transit", flag.ContinueOnError)
	flags.SetOutput(stderr)
	config_path := flags.String("config", "", "config file (default $"+CONFIG_ENV+" or "+DEFAULT_CONFIG+")")
	in := flags.String("in", "", "request document (default stdin)")
	out := flags.String("out", "", "response file (default stdout)")
	if err := flags.Parse(args); err != nil {
		return err
	}

	run_id := uuid.NewString()
	slog.SetDefault(slog.New(NewLogHandler(stderr, nil)).With("run", run_id))

	config, err := ReadConfig(ResolveConfigPath(*config_path))
	if err != nil {
		return err
	}
	level := ParseLogLevel(config.Logging.Level)
	slog.SetDefault(slog.New(NewLogHandler(stderr, &slog.HandlerOptions{Level: level})).With("run", run_id))

	doc, err := ReadRequestDocument(*in, stdin)
	if err != nil {
		return err
	}
	manager, err := NewTransitManager(ctx, config, doc)
	if err != nil {
		return err
	}
	responses := NewTransitRequestMux(manager).HandleAll(doc.StatRequests)

	w := stdout
	if *out != "" {
		file, err := os.Create(*out)
		if err != nil {
			return fmt.Errorf("create response file: %w", err)
		}
		defer file.Close()
		w = file
	}
	if err := WriteResponse(w, responses); err != nil {
		return err
	}
	slog.Info("answered stat requests", "count", len(responses))
	return nil
}
