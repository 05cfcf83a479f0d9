// Command ringqueue drives a ring buffer queue with commands read from stdin.
//
// Commands, one per line:
//
//	enqueue VALUE...   (alias push)
//	dequeue            (alias pop)
//	peek
//	list
//	stats
//	clear
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/huynhanx03/go-ringqueue/pkg/datastructs/queue"
	"github.com/huynhanx03/go-ringqueue/pkg/logger"
	"github.com/huynhanx03/go-ringqueue/pkg/settings"
)

const (
	exitOK     = 0
	exitFailed = 1
	exitUsage  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("ringqueue", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "path to a YAML config file")
	capacity := fs.Int("capacity", 0, "initial queue capacity (overrides the config file)")
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		return exitUsage
	}

	cfg, err := settings.Load(*configPath)
	if err != nil {
		fmt.Fprintf(stderr, "ringqueue: %v\n", err)
		return exitFailed
	}
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "capacity" {
			cfg.Queue.InitialCapacity = capacity
		}
	})

	var log *zap.Logger
	if cfg.Logger.FileLogName == "" {
		log, err = logger.NewWithWriter(cfg.Logger, stderr)
	} else {
		log, err = logger.New(cfg.Logger)
	}
	if err != nil {
		fmt.Fprintf(stderr, "ringqueue: %v\n", err)
		return exitFailed
	}
	defer func() { _ = log.Sync() }()

	q, err := queue.NewWithCapacity[string](*cfg.Queue.InitialCapacity)
	if err != nil {
		log.Error("create queue", zap.Error(err))
		fmt.Fprintf(stderr, "ringqueue: %v\n", err)
		return exitFailed
	}
	log.Info("queue ready", zap.Int("capacity", q.Cap()))

	if err := newSession(q, stdout, log).run(stdin); err != nil {
		log.Error("session aborted", zap.Error(err))
		return exitFailed
	}
	log.Info("session finished", zap.Int("count", q.Len()), zap.Int("capacity", q.Cap()))
	return exitOK
}
