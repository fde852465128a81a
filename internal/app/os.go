// Package app implements the interactive pane manager that hosts
// golden-ratio mode: a bubbletea model over a layout.Workspace.
package app

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"github.com/Gaurav-Gosain/goldenratio/internal/config"
	"github.com/Gaurav-Gosain/goldenratio/internal/host"
	"github.com/Gaurav-Gosain/goldenratio/internal/layout"
	"github.com/Gaurav-Gosain/goldenratio/pkg/goldenratio"
	"github.com/charmbracelet/log"
	"github.com/google/uuid"
)

// OS represents the application state: the pane workspace, the golden-ratio
// mode attached to it, and the UI overlays.
type OS struct {
	Workspace       *layout.Workspace
	GoldenRatio     *goldenratio.Mode
	Config          *config.UserConfig
	KeybindRegistry *config.KeybindRegistry
	Logger          *log.Logger

	Width  int
	Height int

	PrefixActive   bool
	LastPrefixTime time.Time

	MinibufferInput string

	ShowHelp        bool
	ShowLogs        bool
	LogMessages     []LogMessage
	LogScrollOffset int
	Notifications   []Notification

	Quitting bool
}

// Notification represents a temporary notification message.
type Notification struct {
	ID        string
	Message   string
	Type      string // "info", "success", "warning", "error"
	StartTime time.Time
	Duration  time.Duration
}

// LogMessage represents a log entry with timestamp and level.
type LogMessage struct {
	Time    time.Time
	Level   string // DEBUG, INFO, WARN, ERROR
	Message string
}

// New builds the application for a terminal of width x height. golden-ratio
// mode starts enabled unless cfg says otherwise.
func New(cfg *config.UserConfig, width, height int) *OS {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	o := &OS{
		Config:          cfg,
		KeybindRegistry: config.NewKeybindRegistry(cfg),
		Width:           width,
		Height:          height,
	}

	level, err := log.ParseLevel(cfg.Log.Level)
	if err != nil {
		level = log.InfoLevel
	}
	o.Logger = log.NewWithOptions(&logSink{os: o}, log.Options{Level: level})

	o.Workspace = layout.NewWorkspace(width, o.workspaceHeight(), layout.WithLogger(o.Logger))
	o.GoldenRatio = goldenratio.New(o.Workspace,
		goldenratio.WithUserConfig(cfg),
		goldenratio.WithLogger(o.Logger),
	)
	Bind(o.Workspace, o.GoldenRatio)
	o.Workspace.Define(CmdQuit, func() error { o.Quitting = true; return nil })

	if cfg.IsEnabled() {
		o.GoldenRatio.Enable()
	}
	o.LogInfo("workspace %dx%d, golden-ratio %s", width, o.workspaceHeight(), onOff(o.GoldenRatio.Enabled()))
	return o
}

// workspaceHeight is the height left for panes below the status bar and
// minibuffer.
func (m *OS) workspaceHeight() int {
	return max(m.Height-config.StatusBarHeight-config.MinibufferHeight, 1)
}

// Resize adapts the workspace to a new terminal size.
func (m *OS) Resize(width, height int) {
	m.Width = width
	m.Height = height
	m.Workspace.SetDisplay(width, m.workspaceHeight())
}

// Execute runs cmd on the workspace. Failures are reported as a warning
// notification.
func (m *OS) Execute(cmd host.Command) {
	if err := m.Workspace.Execute(cmd); err != nil {
		m.ShowNotification(err.Error(), "warning", config.NotificationDuration)
	}
}

// ToggleGoldenRatio flips golden-ratio mode and reports the new state.
func (m *OS) ToggleGoldenRatio() {
	on := m.GoldenRatio.Toggle()
	m.ShowNotification("golden-ratio "+onOff(on), "info", config.NotificationDuration)
}

func createID() string {
	return uuid.New().String()
}

// logSink feeds structured log output into the log viewer.
type logSink struct {
	os *OS
}

func (s *logSink) Write(p []byte) (int, error) {
	for line := range bytes.SplitSeq(bytes.TrimRight(p, "\n"), []byte("\n")) {
		level, msg := splitLevel(string(line))
		s.os.Log(level, "%s", msg)
	}
	return len(p), nil
}

// splitLevel separates the level prefix charmbracelet/log writes in text mode.
func splitLevel(line string) (string, string) {
	prefix, rest, ok := strings.Cut(line, " ")
	if !ok {
		return "INFO", line
	}
	switch prefix {
	case "DEBU":
		return "DEBUG", rest
	case "INFO":
		return "INFO", rest
	case "WARN":
		return "WARN", rest
	case "ERRO", "FATA":
		return "ERROR", rest
	}
	return "INFO", line
}

// Log adds a new log message to the log buffer.
func (m *OS) Log(level, format string, args ...any) {
	logMsg := LogMessage{
		Time:    time.Now(),
		Level:   level,
		Message: fmt.Sprintf(format, args...),
	}

	wasAtBottom := m.LogScrollOffset >= m.maxLogScroll()-2

	// Keep only last MaxLogMessages messages
	m.LogMessages = append(m.LogMessages, logMsg)
	if len(m.LogMessages) > config.MaxLogMessages {
		m.LogMessages = m.LogMessages[len(m.LogMessages)-config.MaxLogMessages:]
	}

	if wasAtBottom && m.ShowLogs {
		m.LogScrollOffset = m.maxLogScroll()
	}
}

// logsPerPage is how many log lines fit in the viewer.
func (m *OS) logsPerPage() int {
	// title, blank, blank, hint
	return max(max(m.Height-8, 8)-4, 1)
}

func (m *OS) maxLogScroll() int {
	return max(len(m.LogMessages)-m.logsPerPage(), 0)
}

// ScrollLogs moves the log viewer by delta lines.
func (m *OS) ScrollLogs(delta int) {
	m.LogScrollOffset = min(max(m.LogScrollOffset+delta, 0), m.maxLogScroll())
}

// LogInfo logs an informational message.
func (m *OS) LogInfo(format string, args ...any) {
	m.Log("INFO", format, args...)
}

// LogWarn logs a warning message.
func (m *OS) LogWarn(format string, args ...any) {
	m.Log("WARN", format, args...)
}

// LogError logs an error message.
func (m *OS) LogError(format string, args ...any) {
	m.Log("ERROR", format, args...)
}

// ShowNotification displays a temporary notification.
func (m *OS) ShowNotification(message, notifType string, duration time.Duration) {
	m.Notifications = append(m.Notifications, Notification{
		ID:        createID(),
		Message:   message,
		Type:      notifType,
		StartTime: time.Now(),
		Duration:  duration,
	})

	switch notifType {
	case "error":
		m.LogError("%s", message)
	case "warning":
		m.LogWarn("%s", message)
	default:
		m.LogInfo("%s", message)
	}
}

// CleanupNotifications removes expired notifications.
func (m *OS) CleanupNotifications() {
	now := time.Now()
	var active []Notification
	for _, notif := range m.Notifications {
		if now.Sub(notif.StartTime) < notif.Duration {
			active = append(active, notif)
		}
	}
	m.Notifications = active
}

func onOff(on bool) string {
	if on {
		return "on"
	}
	return "off"
}
