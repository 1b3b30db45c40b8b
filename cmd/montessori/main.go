package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/alexanderramin/montessori/internal/cli"
	"github.com/alexanderramin/montessori/internal/db"
	"github.com/alexanderramin/montessori/internal/intelligence"
	"github.com/alexanderramin/montessori/internal/llm"
	"github.com/alexanderramin/montessori/internal/repository"
	"github.com/alexanderramin/montessori/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	ctx := context.Background()
	backend := strings.ToLower(strings.TrimSpace(os.Getenv("MONTESSORI_STORAGE")))
	if backend == "" {
		backend = "sqlite"
	}

	store, closeStore, err := openStore(backend, os.Getenv("MONTESSORI_DATA"))
	if err != nil {
		return err
	}
	defer closeStore()

	var opts []service.Option
	if on, _ := strconv.ParseBool(os.Getenv("MONTESSORI_LOG")); on {
		logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
		opts = append(opts, service.WithObserver(service.NewSlogUseCaseObserver(logger)))
	}

	state, err := service.Load(ctx, store, opts...)
	if err != nil {
		return fmt.Errorf("loading classroom data: %w", err)
	}

	app := &cli.App{
		Students:  state,
		Works:     state,
		Progress:  state,
		Snapshots: state,
	}

	// Prompts and the board only run on a terminal.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	// Wire curriculum suggestions (only when the LLM is enabled)
	llmCfg := llm.LoadConfig()
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		app.Suggest = intelligence.NewSuggestionService(llm.NewClient(llmCfg, observer))
	}

	return cli.NewRootCmd(app).ExecuteContext(ctx)
}

// openStore builds the entry store for backend. The returned close func is
// always safe to call.
func openStore(backend, path string) (repository.EntryStore, func(), error) {
	noop := func() {}
	switch backend {
	case "memory":
		return repository.NewMemoryEntryStore(), noop, nil

	case "file":
		if path == "" {
			dir, err := defaultDir()
			if err != nil {
				return nil, noop, err
			}
			path = filepath.Join(dir, "data")
		}
		store, err := repository.NewFileEntryStore(path)
		if err != nil {
			return nil, noop, fmt.Errorf("opening data directory: %w", err)
		}
		return store, noop, nil

	case "sqlite":
		if path == "" {
			dir, err := defaultDir()
			if err != nil {
				return nil, noop, err
			}
			path = filepath.Join(dir, "montessori.db")
		}
		database, err := db.OpenDB(path)
		if err != nil {
			return nil, noop, fmt.Errorf("opening database: %w", err)
		}
		return repository.NewSQLiteEntryStore(database), func() { closeQuietly(database) }, nil

	default:
		return nil, noop, fmt.Errorf("unknown MONTESSORI_STORAGE %q (want sqlite, file or memory)", backend)
	}
}

func defaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("finding home directory: %w", err)
	}
	return filepath.Join(home, ".montessori"), nil
}

func closeQuietly(c io.Closer) {
	_ = c.Close()
}
