package engine

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
	"time"
)

// Client defines the interface for inventory engine operations.
// Every call returns the complete resulting collection.
type Client interface {
	// List returns the current collection without mutating it.
	List(ctx context.Context) ([]Book, error)
	// Add registers a new book. Available is initialized to TotalCopies
	// by the engine; the Available field of the argument is ignored.
	Add(ctx context.Context, b Book) ([]Book, error)
	// Delete removes a book by id.
	Delete(ctx context.Context, id int) ([]Book, error)
	// Issue decrements the available count of a book by one.
	Issue(ctx context.Context, id int) ([]Book, error)
	// Return increments the available count of a book by one,
	// clamped at the total.
	Return(ctx context.Context, id int) ([]Book, error)
}

// Error is a failed engine invocation: a non-zero exit or unparseable
// output. No snapshot accompanies it and no local state may change.
type Error struct {
	// Command is the engine command that failed (e.g. "issue").
	Command string
	// Stderr is the diagnostic output captured from the engine.
	Stderr string
	// Err is the underlying exec or decode error.
	Err error
}

func (e *Error) Error() string {
	if e.Stderr != "" {
		return fmt.Sprintf("engine %s failed: %v: %s", e.Command, e.Err, strings.TrimSpace(e.Stderr))
	}
	return fmt.Sprintf("engine %s failed: %v", e.Command, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

type cliClient struct {
	binary  string
	dir     string
	timeout time.Duration
}

// NewClient creates a client for the configured engine binary.
// It verifies the binary exists so a misconfiguration fails at startup
// instead of on the first request.
func NewClient(cfg Config) (Client, error) {
	if _, err := os.Stat(cfg.Binary); err != nil {
		return nil, fmt.Errorf("engine binary not found at %s: %w", cfg.Binary, err)
	}

	timeout := cfg.TimeoutSeconds
	if timeout <= 0 {
		timeout = 30
	}

	return &cliClient{
		binary:  cfg.Binary,
		dir:     cfg.Dir,
		timeout: time.Duration(timeout) * time.Second,
	}, nil
}

func (c *cliClient) List(ctx context.Context) ([]Book, error) {
	return c.run(ctx, "list")
}

func (c *cliClient) Add(ctx context.Context, b Book) ([]Book, error) {
	return c.run(ctx, "add",
		strconv.Itoa(b.ID),
		EscapeArg(b.Title),
		EscapeArg(b.Author),
		EscapeArg(b.Category),
		strconv.Itoa(b.TotalCopies),
	)
}

func (c *cliClient) Delete(ctx context.Context, id int) ([]Book, error) {
	return c.run(ctx, "delete", strconv.Itoa(id))
}

func (c *cliClient) Issue(ctx context.Context, id int) ([]Book, error) {
	return c.run(ctx, "issue", strconv.Itoa(id))
}

func (c *cliClient) Return(ctx context.Context, id int) ([]Book, error) {
	return c.run(ctx, "return", strconv.Itoa(id))
}

// run invokes the engine binary and decodes its stdout as a snapshot.
//
// The invocation does not inherit request cancellation: killing the engine
// mid-write could corrupt the authoritative data file, so once issued the
// call runs to completion, bounded only by the configured timeout.
func (c *cliClient) run(_ context.Context, command string, args ...string) ([]Book, error) {
	ctx, cancel := context.WithTimeout(context.Background(), c.timeout)
	defer cancel()

	argv := append([]string{command}, args...)
	cmd := exec.CommandContext(ctx, c.binary, argv...)
	cmd.Dir = c.dir

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, &Error{Command: command, Stderr: stderr.String(), Err: err}
	}

	books, err := decodeSnapshot(stdout.Bytes())
	if err != nil {
		return nil, &Error{Command: command, Stderr: stderr.String(), Err: err}
	}
	return books, nil
}

// decodeSnapshot parses engine stdout. Empty output is an empty collection;
// anything that is not a JSON array of books is a failure, so a partially
// decoded snapshot is never adopted.
func decodeSnapshot(out []byte) ([]Book, error) {
	trimmed := bytes.TrimSpace(out)
	if len(trimmed) == 0 {
		return []Book{}, nil
	}

	var books []Book
	if err := json.Unmarshal(trimmed, &books); err != nil {
		return nil, fmt.Errorf("malformed snapshot: %w", err)
	}
	if books == nil {
		// JSON "null" decodes without error; normalize it.
		books = []Book{}
	}
	return books, nil
}
