package cmd

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/papapumpkin/shapelist/internal/config"
	"github.com/papapumpkin/shapelist/internal/telemetry"
)

var telemetryCmd = &cobra.Command{
	Use:   "telemetry [file]",
	Short: "View the JSONL event log of an editing session",
	Long: `Reads and formats a JSONL telemetry file written by 'run --telemetry'.

Without a file argument, uses telemetry_path from the config.
With --follow (-f), watches the file for new events (like tail -f).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runTelemetry,
}

func init() {
	telemetryCmd.Flags().BoolP("follow", "f", false, "follow the file for new events")
	telemetryCmd.Flags().String("kind", "", "only show events of this kind")
	rootCmd.AddCommand(telemetryCmd)
}

func runTelemetry(cmd *cobra.Command, args []string) error {
	follow, _ := cmd.Flags().GetBool("follow")
	kind, _ := cmd.Flags().GetString("kind")

	path, err := resolveTelemetryPath(args)
	if err != nil {
		return err
	}

	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("telemetry: open %s: %w", path, err)
	}
	defer f.Close()

	// Print all existing events. The same reader is kept for follow mode so
	// it continues from exactly where this pass stopped.
	lr := newLineReader(f)
	if err := lr.printLines(cmd.OutOrStdout(), kind); err != nil {
		return fmt.Errorf("telemetry: read %s: %w", path, err)
	}

	if !follow {
		lr.flush(cmd.OutOrStdout(), kind)
		return nil
	}

	return tailFollow(cmd.OutOrStdout(), lr, path, kind)
}

// lineReader yields newline-terminated lines. A trailing fragment without a
// newline is held back until the rest of the line arrives.
type lineReader struct {
	r       *bufio.Reader
	partial strings.Builder
}

func newLineReader(r io.Reader) *lineReader {
	return &lineReader{r: bufio.NewReader(r)}
}

// printLines prints every complete line available from the reader.
func (lr *lineReader) printLines(w io.Writer, kind string) error {
	for {
		chunk, err := lr.r.ReadString('\n')
		lr.partial.WriteString(chunk)
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
		line := strings.TrimSpace(lr.partial.String())
		lr.partial.Reset()
		if line != "" {
			printEvent(w, line, kind)
		}
	}
}

// flush prints a held-back final line that never got its newline.
func (lr *lineReader) flush(w io.Writer, kind string) {
	line := strings.TrimSpace(lr.partial.String())
	lr.partial.Reset()
	if line != "" {
		printEvent(w, line, kind)
	}
}

// tailFollow watches the file for new data using fsnotify and prints new events.
func tailFollow(w io.Writer, lr *lineReader, path, kind string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("telemetry: create watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(path); err != nil {
		return fmt.Errorf("telemetry: watch %s: %w", path, err)
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write == 0 {
				continue
			}
			if err := lr.printLines(w, kind); err != nil {
				return fmt.Errorf("telemetry: read %s: %w", path, err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("telemetry: watch %s: %w", path, err)
		}
	}
}

// printEvent decodes a JSONL line and prints a human-readable representation.
// Events whose kind differs from a non-empty filter are skipped.
func printEvent(w io.Writer, line, kind string) {
	var evt telemetry.Event
	if err := json.Unmarshal([]byte(line), &evt); err != nil {
		fmt.Fprintf(w, "??? %s\n", line)
		return
	}
	if kind != "" && evt.Kind != kind {
		return
	}

	parts := []string{fmt.Sprintf("[%s]", evt.Timestamp.Format(time.TimeOnly)), evt.Kind}
	if evt.SessionID != "" {
		parts = append(parts, fmt.Sprintf("session=%s", evt.SessionID))
	}
	if evt.Data != nil {
		if m, ok := evt.Data.(map[string]any); ok {
			parts = append(parts, formatDataMap(m))
		} else {
			data, _ := json.Marshal(evt.Data)
			parts = append(parts, string(data))
		}
	}

	fmt.Fprintln(w, strings.Join(parts, " "))
}

// formatDataMap formats a data map as key=value pairs sorted by key.
// Nested values are rendered as compact JSON.
func formatDataMap(m map[string]any) string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	for i, k := range keys {
		if i > 0 {
			b.WriteByte(' ')
		}
		switch v := m[k].(type) {
		case map[string]any, []any:
			data, _ := json.Marshal(v)
			fmt.Fprintf(&b, "%s=%s", k, data)
		default:
			fmt.Fprintf(&b, "%s=%v", k, v)
		}
	}
	return b.String()
}

// resolveTelemetryPath returns the file named in args, or the configured
// telemetry path.
func resolveTelemetryPath(args []string) (string, error) {
	if len(args) == 1 {
		return args[0], nil
	}
	cfg, err := config.Load()
	if err != nil {
		return "", fmt.Errorf("failed to load config: %w", err)
	}
	if cfg.TelemetryPath == "" {
		return "", errors.New("telemetry: no file given and telemetry_path is not configured")
	}
	return cfg.TelemetryPath, nil
}
