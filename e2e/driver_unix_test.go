//go:build e2e && unix

package main

import (
	"bytes"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/creack/pty"
)

var binPath = "multipick_e2e"

const (
	keyEnter = "\r"
	keyCtrlC = "\x03"
	keyEsc   = "\x1b"
	keyDown  = "\x1b[B"
	keyUp    = "\x1b[A"
)

// ansiRe matches CSI, OSC, charset and keypad sequences plus carriage returns
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` +
		`(?:\x1b\][^\x07]*\x07)|` +
		`(?:\x1b[\(\)][A-Za-z])|` +
		`(?:\x1b=|\x1b>)|` +
		`\r`,
)

// app is one multipick process running on a pty
type app struct {
	t       *testing.T
	home    string
	cmd     *exec.Cmd
	pty     *os.File
	done    chan struct{} // closed once the process has exited
	exitErr error
	outMu   sync.Mutex
	output  bytes.Buffer
	timeout time.Duration
}

// newApp prepares an isolated $HOME; start launches the binary
func newApp(t *testing.T) *app {
	t.Helper()
	a := &app{
		t:       t,
		home:    t.TempDir(),
		done:    make(chan struct{}),
		timeout: 3 * time.Second,
	}
	t.Cleanup(a.close)
	return a
}

func (a *app) start(args ...string) {
	a.t.Helper()
	a.cmd = exec.Command(binPath, args...)
	a.cmd.Env = append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C",
		"LANG=C",
		"HOME="+a.home,
		"XDG_CONFIG_HOME="+filepath.Join(a.home, ".config"),
		"MULTIPICK_E2E_TEST=1",
	)

	f, err := pty.StartWithSize(a.cmd, &pty.Winsize{Rows: 40, Cols: 120})
	if err != nil {
		a.t.Fatalf("failed to start %s: %v", binPath, err)
	}
	a.pty = f

	go a.read()
	go func() {
		a.exitErr = a.cmd.Wait()
		close(a.done)
	}()

	if !a.waitPlain("__READY__", 5*time.Second) {
		a.dumpTail("not-ready")
		a.t.Fatal("app never signalled ready")
	}
}

func (a *app) read() {
	buf := make([]byte, 4096)
	for {
		n, err := a.pty.Read(buf)
		if n > 0 {
			a.outMu.Lock()
			a.output.Write(buf[:n])
			a.outMu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

// plain returns everything the app wrote so far without escape sequences
func (a *app) plain() string {
	a.outMu.Lock()
	defer a.outMu.Unlock()
	return ansiRe.ReplaceAllString(a.output.String(), "")
}

func (a *app) waitPlain(text string, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		if strings.Contains(a.plain(), text) {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(25 * time.Millisecond)
	}
}

// see waits for text to show up in the rendered output
func (a *app) see(text string) bool {
	a.t.Helper()
	return a.waitPlain(text, a.timeout)
}

func (a *app) send(keys ...string) {
	a.t.Helper()
	for _, k := range keys {
		if _, err := a.pty.Write([]byte(k)); err != nil {
			a.t.Fatalf("write %q: %v", k, err)
		}
		time.Sleep(20 * time.Millisecond)
	}
}

// typeText sends text one rune at a time
func (a *app) typeText(text string) {
	a.t.Helper()
	for _, r := range text {
		a.send(string(r))
	}
}

// wait blocks until the process exits
func (a *app) wait(timeout time.Duration) error {
	select {
	case <-a.done:
		return a.exitErr
	case <-time.After(timeout):
		return fmt.Errorf("process did not exit within %v", timeout)
	}
}

// dumpTail logs the last few KiB of output for a failing test
func (a *app) dumpTail(name string) {
	s := a.plain()
	if len(s) > 4096 {
		s = s[len(s)-4096:]
	}
	a.t.Logf("--- %s ---\n%s", name, s)
}

// writeCandidates writes a plain-text candidates file into $HOME
func (a *app) writeCandidates(name string, labels ...string) string {
	a.t.Helper()
	path := filepath.Join(a.home, name)
	if err := os.WriteFile(path, []byte(strings.Join(labels, "\n")+"\n"), 0644); err != nil {
		a.t.Fatalf("write candidates: %v", err)
	}
	return path
}

func (a *app) logPath() string {
	return filepath.Join(a.home, "multipick.log")
}

func (a *app) close() {
	if a.pty != nil {
		_ = a.pty.Close()
	}
	if a.cmd == nil || a.cmd.Process == nil {
		return
	}
	select {
	case <-a.done:
	default:
		_ = a.cmd.Process.Kill()
		<-a.done
	}
}
