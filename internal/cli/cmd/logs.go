package cmd

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/bnema/includs/internal/cli/styles"
	"github.com/bnema/includs/internal/logging"
)

const (
	defaultLogsLines = 50
	followInterval   = 100 * time.Millisecond
)

var (
	logsFollow   bool
	logsLines    int
	logsClearAll bool
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "View the log file",
	Long: `View the includs log file.

File logging is controlled by logging.enable_file_log in the config. The
log lives in logging.log_dir and rolls over at logging.max_size_mb.

Examples:
  includs logs            # Last 50 lines
  includs logs -n 200     # Last 200 lines
  includs logs -f         # Follow new lines`,
	Args: cobra.NoArgs,
	RunE: runLogs,
}

var logsClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove rotated log files",
	Long: `Remove rotated log files. With --all the active log is truncated too.`,
	Args:  cobra.NoArgs,
	RunE:  runLogsClear,
}

func init() {
	rootCmd.AddCommand(logsCmd)
	logsCmd.AddCommand(logsClearCmd)

	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "follow log output in real-time")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", defaultLogsLines, "number of lines to show")
	logsClearCmd.Flags().BoolVar(&logsClearAll, "all", false, "also truncate the active log")
}

func runLogs(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}

	logPath := filepath.Join(app.Config.Logging.LogDir, logging.LogFileName)
	if _, err := os.Stat(logPath); errors.Is(err, os.ErrNotExist) {
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Subtle.Render("No log file yet. Set logging.enable_file_log = true in the config."))
		return nil
	}

	if err := showLog(cmd.OutOrStdout(), logPath, logsLines, app.Theme); err != nil {
		return err
	}
	if !logsFollow {
		return nil
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return tailLog(ctx, cmd.OutOrStdout(), logPath, app.Theme)
}

// lastLines returns at most n trailing lines of r.
func lastLines(r io.Reader, n int) ([]string, error) {
	var lines []string
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), 1024*1024)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
		if n > 0 && len(lines) > n {
			lines = lines[1:]
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read log file: %w", err)
	}
	return lines, nil
}

func showLog(w io.Writer, logPath string, n int, theme *styles.Theme) (retErr error) {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() {
		if closeErr := file.Close(); closeErr != nil && retErr == nil {
			retErr = fmt.Errorf("close log file: %w", closeErr)
		}
	}()

	lines, err := lastLines(file, n)
	if err != nil {
		return err
	}
	for _, line := range lines {
		fmt.Fprintln(w, colorizeLogLine(line, theme))
	}
	return nil
}

// tailLog follows the log until ctx is done.
func tailLog(ctx context.Context, w io.Writer, logPath string, theme *styles.Theme) error {
	file, err := os.Open(logPath)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer func() { _ = file.Close() }()

	_, _ = file.Seek(0, io.SeekEnd)

	fmt.Fprintln(w, theme.Subtle.Render("Following logs... (Ctrl+C to stop)"))

	reader := bufio.NewReader(file)
	pending := ""
	for {
		chunk, err := reader.ReadString('\n')
		pending += chunk
		if err != nil && err != io.EOF {
			return fmt.Errorf("read log file: %w", err)
		}
		if err == io.EOF {
			select {
			case <-ctx.Done():
				return nil
			case <-time.After(followInterval):
			}
			continue
		}
		fmt.Fprintln(w, colorizeLogLine(strings.TrimSuffix(pending, "\n"), theme))
		pending = ""
	}
}

// logEntry represents a parsed JSON log entry.
type logEntry struct {
	Level     string `json:"level"`
	Time      string `json:"time"`
	Message   string `json:"message"`
	Component string `json:"component"`
	Error     string `json:"error"`
}

// colorizeLogLine adds color based on log level.
func colorizeLogLine(line string, theme *styles.Theme) string {
	var entry logEntry
	if err := json.Unmarshal([]byte(line), &entry); err == nil && entry.Level != "" {
		return formatJSONLogLine(entry, theme)
	}

	// Console format
	switch {
	case containsAny(line, " ERR ", " FTL "):
		return theme.ErrorStyle.Render(line)
	case containsAny(line, " WRN "):
		return theme.WarningStyle.Render(line)
	case containsAny(line, " DBG ", " TRC "):
		return theme.Subtle.Render(line)
	default:
		return line
	}
}

// formatJSONLogLine formats a parsed JSON log entry with colors.
func formatJSONLogLine(entry logEntry, theme *styles.Theme) string {
	timeStr := entry.Time
	if t, err := time.Parse(time.RFC3339, entry.Time); err == nil {
		timeStr = t.Format("15:04:05")
	}

	var levelStr string
	switch entry.Level {
	case "error", "fatal":
		levelStr = theme.ErrorStyle.Render("ERR")
	case "warn":
		levelStr = theme.WarningStyle.Render("WRN")
	case "info":
		levelStr = theme.Highlight.Render("INF")
	case "debug":
		levelStr = theme.Subtle.Render("DBG")
	case "trace":
		levelStr = theme.Subtle.Render("TRC")
	default:
		levelStr = entry.Level
	}

	parts := []string{theme.Subtle.Render(timeStr), levelStr}
	if entry.Component != "" {
		parts = append(parts, theme.Subtle.Render("["+entry.Component+"]"))
	}
	parts = append(parts, entry.Message)
	if entry.Error != "" {
		parts = append(parts, theme.ErrorStyle.Render("error="+entry.Error))
	}
	return strings.Join(parts, " ")
}

func containsAny(s string, substrs ...string) bool {
	for _, substr := range substrs {
		if strings.Contains(s, substr) {
			return true
		}
	}
	return false
}

// rotatedLogs lists the backups the rotator left in dir.
func rotatedLogs(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read log directory: %w", err)
	}
	var out []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasPrefix(e.Name(), logging.LogFileName+".") {
			out = append(out, filepath.Join(dir, e.Name()))
		}
	}
	return out, nil
}

func runLogsClear(cmd *cobra.Command, _ []string) error {
	app := GetApp()
	if app == nil {
		return fmt.Errorf("app not initialized")
	}
	log := logging.FromContext(app.Ctx())
	logDir := app.Config.Logging.LogDir

	backups, err := rotatedLogs(logDir)
	if err != nil {
		return err
	}

	removed := 0
	for _, path := range backups {
		if err := os.Remove(path); err != nil {
			log.Warn().Err(err).Str("path", path).Msg("failed to remove log file")
			continue
		}
		removed++
	}

	if logsClearAll {
		active := filepath.Join(logDir, logging.LogFileName)
		if err := os.Truncate(active, 0); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("truncate log file: %w", err)
		}
	}

	if removed == 0 && !logsClearAll {
		fmt.Fprintln(cmd.OutOrStdout(), app.Theme.Subtle.Render("No rotated logs to clear"))
		return nil
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Removed %d rotated log file(s)\n", removed)
	return nil
}
