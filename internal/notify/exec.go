// exec.go invokes the configured audio player and desktop notifier as
// subprocesses.
package notify

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/pomo-dev/pomo/internal/config"
	"github.com/pomo-dev/pomo/internal/log"
)

// desktopTimeout bounds one notify-send invocation.
const desktopTimeout = 5 * time.Second

// ExecNotifier shells out to an audio player (mpg123 by default) and a
// desktop notifier (notify-send by default). Sounds play detached so the
// timer never waits on playback.
type ExecNotifier struct {
	cfg    *config.Config
	logger *log.Logger
}

// NewExecNotifier creates an ExecNotifier using the given config.
// Failures are reported to logger and nowhere else.
func NewExecNotifier(cfg *config.Config, logger *log.Logger) *ExecNotifier {
	return &ExecNotifier{cfg: cfg, logger: logger}
}

// Notify plays the sound mapped to event and posts a desktop popup with
// the given message. Both legs are best effort.
func (n *ExecNotifier) Notify(event Event, message string) {
	n.playSound(event)
	if message != "" {
		n.desktop(event, message)
	}
}

// playSound starts the configured player for the event's sound file and
// releases the process so playback outlives the notifier call.
func (n *ExecNotifier) playSound(event Event) {
	audio := n.cfg.Audio
	if audio.Player == "" {
		return
	}
	name, ok := audio.Sounds[string(event)]
	if !ok {
		return
	}

	path := name
	if !filepath.IsAbs(path) {
		path = filepath.Join(soundBase(audio.SoundDir), name)
	}
	if _, err := os.Stat(path); err != nil {
		n.report(audio.Player, fmt.Errorf("sound file: %w", err))
		return
	}

	args := append(append([]string(nil), audio.PlayerArgs...), path)
	cmd := exec.Command(audio.Player, args...)
	cmd.Stdout = nil
	cmd.Stderr = nil
	if err := cmd.Start(); err != nil {
		n.report(audio.Player, err)
		return
	}
	if err := cmd.Process.Release(); err != nil {
		n.report(audio.Player, err)
	}
}

// desktop posts a popup via the configured command. Reminders and
// countdown completion use critical urgency so they persist until
// dismissed; everything else expires on its own.
func (n *ExecNotifier) desktop(event Event, message string) {
	desk := n.cfg.Desktop
	if desk.Command == "" {
		return
	}

	args := []string{"--app-name=" + desk.AppName}
	switch event {
	case ReminderBreak, ReminderWork, ReminderCountdown, CountdownComplete:
		args = append(args, "--urgency=critical")
	default:
		args = append(args, "--expire-time=3000")
	}
	args = append(args, message)

	ctx, cancel := context.WithTimeout(context.Background(), desktopTimeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, desk.Command, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		if stderr.Len() > 0 {
			err = fmt.Errorf("%w: %s", err, stderr.String())
		}
		n.report(desk.Command, err)
	}
}

// Dismiss withdraws pending popups posted under our app name. It lists
// notifications via the configured dismiss command (makoctl by default)
// and dismisses each matching one by id. Best effort like everything
// else here.
func (n *ExecNotifier) Dismiss() {
	desk := n.cfg.Desktop
	if desk.DismissCommand == "" {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), desktopTimeout)
	defer cancel()

	out, err := exec.CommandContext(ctx, desk.DismissCommand, "list").Output()
	if err != nil {
		n.report(desk.DismissCommand, err)
		return
	}

	for _, id := range pendingIDs(string(out), desk.AppName) {
		if err := exec.CommandContext(ctx, desk.DismissCommand, "dismiss", "-n", id).Run(); err != nil {
			n.report(desk.DismissCommand, err)
		}
	}
}

// pendingIDs extracts the notification ids belonging to appName from
// makoctl list output. Entries look like:
//
//	Notification 42: Work session 1 complete
//	  App name: pomo
func pendingIDs(out, appName string) []string {
	lines := strings.Split(strings.TrimSpace(out), "\n")
	var ids []string
	for i, line := range lines {
		if !strings.HasPrefix(line, "Notification ") || i+1 >= len(lines) {
			continue
		}
		if !strings.Contains(lines[i+1], "App name: "+appName) {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) < 2 {
			continue
		}
		ids = append(ids, strings.TrimSuffix(fields[1], ":"))
	}
	return ids
}

// report writes a notifier failure to the event log. Logging failures
// are themselves ignored.
func (n *ExecNotifier) report(command string, err error) {
	if n.logger == nil {
		return
	}
	_ = n.logger.Append(log.LogEvent{
		Event:   log.EventNotifierError,
		Command: command,
		Error:   err.Error(),
	})
}

// soundBase resolves a relative sound directory against the pomo home.
func soundBase(dir string) string {
	if dir == "" || filepath.IsAbs(dir) {
		return dir
	}
	home, err := config.Dir()
	if err != nil {
		return dir
	}
	return filepath.Join(home, dir)
}
