package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/huynhanx03/go-ringqueue/pkg/datastructs/queue"
)

// session executes queue commands read line by line.
type session struct {
	queue *queue.RingBuffer[string]
	out   io.Writer
	log   *zap.Logger
}

func newSession(q *queue.RingBuffer[string], out io.Writer, log *zap.Logger) *session {
	return &session{queue: q, out: out, log: log}
}

// run executes every line of in until EOF.
func (s *session) run(in io.Reader) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		s.exec(scanner.Text())
	}
	return errors.Wrap(scanner.Err(), "read commands")
}

func (s *session) exec(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 || strings.HasPrefix(fields[0], "#") {
		return
	}

	cmd, args := strings.ToLower(fields[0]), fields[1:]
	switch cmd {
	case "enqueue", "push":
		if len(args) == 0 {
			s.fail(cmd, errors.New("usage: enqueue VALUE..."))
			return
		}
		capBefore := s.queue.Cap()
		s.queue.EnqueueAll(args...)
		s.log.Debug("enqueued",
			zap.Strings("items", args),
			zap.Int("count", s.queue.Len()),
			zap.Bool("grew", s.queue.Cap() != capBefore),
		)

	case "dequeue", "pop":
		item, err := s.queue.Dequeue()
		if err != nil {
			s.fail(cmd, err)
			return
		}
		s.log.Debug("dequeued", zap.String("item", item), zap.Int("count", s.queue.Len()))
		fmt.Fprintln(s.out, item)

	case "peek":
		item, err := s.queue.Peek()
		if err != nil {
			s.fail(cmd, err)
			return
		}
		fmt.Fprintln(s.out, item)

	case "list":
		fmt.Fprintln(s.out, s.queue.String())

	case "stats":
		fmt.Fprintf(s.out, "count=%d capacity=%d start=%d end=%d\n",
			s.queue.Len(), s.queue.Cap(), s.queue.StartIndex(), s.queue.EndIndex())

	case "clear":
		s.queue.Clear()
		s.log.Debug("cleared", zap.Int("capacity", s.queue.Cap()))

	default:
		s.fail(cmd, errors.Errorf("unknown command %q", cmd))
	}
}

func (s *session) fail(cmd string, err error) {
	s.log.Warn("command failed", zap.String("command", cmd), zap.Error(err))
	fmt.Fprintf(s.out, "error: %v\n", err)
}
