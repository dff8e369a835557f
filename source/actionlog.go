package source

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	"github.com/s0up4200/trendarr/trending"
)

const (
	// MaxLineSize bounds a single action log line
	MaxLineSize = 4 * 1024 * 1024
	// DefaultConcurrency is the number of log files read at once
	DefaultConcurrency = 4
)

// ReadActionLog decodes every action in r, in order
func ReadActionLog(ctx context.Context, r io.Reader) ([]trending.Action, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), MaxLineSize)

	var actions []trending.Action
	line := 0
	for scanner.Scan() {
		line++
		if line%256 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		text := bytes.TrimSpace(scanner.Bytes())
		if len(text) == 0 || text[0] == '#' {
			continue
		}

		action, err := trending.DecodeAction(text)
		if err != nil {
			return nil, &LineError{Line: line, Err: err}
		}
		actions = append(actions, action)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read action log: %w", err)
	}

	return actions, nil
}

// ReadActionLogFile opens path and decodes it with ReadActionLog.
// "-" reads standard input.
func ReadActionLogFile(ctx context.Context, path string) ([]trending.Action, error) {
	if path == "-" {
		return ReadActionLog(ctx, os.Stdin)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open action log: %w", err)
	}
	defer f.Close()

	actions, err := ReadActionLog(ctx, f)
	if err != nil {
		var lineErr *LineError
		if errors.As(err, &lineErr) {
			lineErr.Path = path
			return nil, lineErr
		}
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return actions, nil
}

// LoadActionLogs reads all paths concurrently and returns their actions
// concatenated in the order the paths were given. "-" may appear at most once.
func LoadActionLogs(ctx context.Context, paths ...string) ([]trending.Action, error) {
	if len(paths) == 0 {
		return nil, nil
	}
	var stdin int
	for _, path := range paths {
		if path == "-" {
			stdin++
		}
	}
	if stdin > 1 {
		return nil, fmt.Errorf("load action logs: %w", ErrStdinRepeated)
	}

	results := make([][]trending.Action, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(DefaultConcurrency)

	for i, path := range paths {
		g.Go(func() error {
			actions, err := ReadActionLogFile(ctx, path)
			if err != nil {
				return err
			}
			results[i] = actions
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	var total int
	for _, actions := range results {
		total += len(actions)
	}
	all := make([]trending.Action, 0, total)
	for _, actions := range results {
		all = append(all, actions...)
	}
	return all, nil
}

// WriteActionLog writes actions to w as JSON lines
func WriteActionLog(w io.Writer, actions []trending.Action) error {
	bw := bufio.NewWriter(w)
	for i, action := range actions {
		data, err := trending.EncodeAction(action)
		if err != nil {
			return fmt.Errorf("action %d: %w", i, err)
		}
		if _, err := bw.Write(data); err != nil {
			return fmt.Errorf("failed to write action log: %w", err)
		}
		if err := bw.WriteByte('\n'); err != nil {
			return fmt.Errorf("failed to write action log: %w", err)
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("failed to write action log: %w", err)
	}
	return nil
}
