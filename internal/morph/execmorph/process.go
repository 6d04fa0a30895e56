// Package execmorph drives a long-lived analyzer process over a line
// protocol: the process reads one word per line on stdin and answers each
// with one line on stdout holding a JSON array of parses:
//
//	> полетели
//	< [{"tag":"VERB","lemma":"полететь","score":0.98}]
//
// An empty array means the word is unknown. This keeps Python-only analyzers
// such as pymorphy2 or Natasha behind a thin wrapper script.
package execmorph

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os/exec"
	"strings"
	"sync"
	"time"

	"github.com/RexarX/Contexto/internal/morph"
)

const (
	maxResponseSize     = 1 << 20
	defaultCloseTimeout = 5 * time.Second
)

// ErrBroken is returned once the process has died or the protocol went out of sync.
var ErrBroken = errors.New("execmorph: analyzer process unavailable")

type response struct {
	line string
	err  error
}

// Process is a running analyzer co-process. Analyze calls are serialized.
type Process struct {
	cmd    *exec.Cmd
	stdin  io.WriteCloser
	lines  chan response
	log    *slog.Logger
	mu     sync.Mutex
	broken bool
	// done is closed by Close; exited is closed when readLoop has returned.
	done   chan struct{}
	exited chan struct{}

	closeTimeout time.Duration
}

var _ morph.Analyzer = (*Process)(nil)

// Start launches command with args.
func Start(command string, args []string, logger *slog.Logger) (*Process, error) {
	if strings.TrimSpace(command) == "" {
		return nil, errors.New("execmorph: command is empty")
	}

	cmd := exec.Command(command, args...)
	stdin, err := cmd.StdinPipe()
	if err != nil {
		return nil, fmt.Errorf("execmorph: stdin pipe: %w", err)
	}
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("execmorph: stdout pipe: %w", err)
	}

	log := logger.With("adapter", "execmorph")
	cmd.Stderr = &logWriter{log: log}

	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("execmorph: start %s: %w", command, err)
	}

	p := &Process{
		cmd:          cmd,
		stdin:        stdin,
		lines:        make(chan response),
		log:          log,
		done:         make(chan struct{}),
		exited:       make(chan struct{}),
		closeTimeout: defaultCloseTimeout,
	}
	go p.readLoop(stdout)

	log.Debug("analyzer process started", slog.String("command", command), slog.Int("pid", cmd.Process.Pid))
	return p, nil
}

func (p *Process) readLoop(r io.Reader) {
	defer close(p.exited)
	defer close(p.lines)

	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxResponseSize)
	for sc.Scan() {
		select {
		case p.lines <- response{line: sc.Text()}:
		case <-p.done:
			return
		}
	}

	err := sc.Err()
	if err == nil {
		err = io.ErrUnexpectedEOF
	}
	select {
	case p.lines <- response{err: err}:
	case <-p.done:
	}
}

// Analyze sends word to the process and decodes its answer.
func (p *Process) Analyze(ctx context.Context, word string) ([]morph.Parse, error) {
	if strings.ContainsAny(word, "\r\n") {
		return nil, fmt.Errorf("execmorph: word %q contains a line break", word)
	}

	p.mu.Lock()
	defer p.mu.Unlock()

	if p.broken {
		return nil, ErrBroken
	}

	if _, err := io.WriteString(p.stdin, word+"\n"); err != nil {
		p.broken = true
		return nil, fmt.Errorf("execmorph: write: %w", err)
	}

	select {
	case <-ctx.Done():
		// The pending answer would be read by the next call.
		p.broken = true
		return nil, ctx.Err()
	case resp, ok := <-p.lines:
		if !ok {
			p.broken = true
			return nil, ErrBroken
		}
		if resp.err != nil {
			p.broken = true
			return nil, fmt.Errorf("execmorph: read: %w", resp.err)
		}

		var parses []morph.Parse
		if err := json.Unmarshal([]byte(resp.line), &parses); err != nil {
			return nil, fmt.Errorf("execmorph: decode response for %q: %w", word, err)
		}
		if len(parses) == 0 {
			return nil, nil
		}
		return parses, nil
	}
}

// Close closes stdin so the process can exit and waits until its stdout is
// drained. A process still running after closeTimeout is killed. Wait is
// only called once the reader has finished.
func (p *Process) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	select {
	case <-p.done:
		return nil
	default:
	}
	close(p.done)
	p.broken = true

	_ = p.stdin.Close()

	killed := false
	select {
	case <-p.exited:
	case <-time.After(p.closeTimeout):
		p.log.Warn("analyzer process did not exit, killing")
		_ = p.cmd.Process.Kill()
		killed = true
		<-p.exited
	}

	if err := p.cmd.Wait(); err != nil && !killed {
		return fmt.Errorf("execmorph: wait: %w", err)
	}
	return nil
}

// logWriter forwards the process stderr to the logger line by line.
type logWriter struct {
	log *slog.Logger
}

func (w *logWriter) Write(b []byte) (int, error) {
	for _, line := range strings.Split(strings.TrimRight(string(b), "\n"), "\n") {
		if line != "" {
			w.log.Warn("analyzer stderr", slog.String("line", line))
		}
	}
	return len(b), nil
}
