//go:build e2e && unix

package main

import (
	"errors"
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
	"github.com/stretchr/testify/require"
)

// maxOutput bounds the captured terminal output; older bytes are dropped
const maxOutput = 1 << 20

var binPath = "denpicker_e2e"

// Keys as the terminal sends them
const (
	KeyEnter     = "\r"
	KeyCtrlC     = "\x03"
	KeyCtrlX     = "\x18"
	KeyTab       = "\t"
	KeyEsc       = "\x1b"
	KeySpace     = " "
	KeyArrowDown = "\x1b[B"
	KeyDown      = "j"
	KeyRemove    = "d"
	KeyCopy      = "y"
	KeyQuit      = "q"
	KeyHelp      = "?"
)

// ansiRe strips CSI, OSC, charset and keypad sequences plus carriage returns
var ansiRe = regexp.MustCompile(
	`(?:\x1b\[[0-9;?]*[ -/]*[@-~])|` +
		`(?:\x1b\][^\x07]*\x07)|` +
		`(?:\x1b[\(\)][A-Za-z])|` +
		`(?:\x1b=|\x1b>)|` +
		`\r`,
)

// TUITest runs one denpicker process in a pseudo terminal
type TUITest struct {
	t         *testing.T
	workspace string

	cmd    *exec.Cmd
	pty    *os.File
	exited chan error

	mu  sync.Mutex
	out []byte
}

// NewTUITest prepares a workspace holding the catalog fixture
func NewTUITest(t *testing.T) *TUITest {
	t.Helper()
	tt := &TUITest{t: t, workspace: t.TempDir()}
	require.NoError(t, os.WriteFile(tt.catalogPath(), []byte(fixtureCatalog), 0644))
	t.Cleanup(tt.stop)
	return tt
}

func (tt *TUITest) env() []string {
	return append(os.Environ(),
		"TERM=xterm-256color",
		"LC_ALL=C",
		"LANG=C",
		"HOME="+tt.workspace,
		"XDG_CONFIG_HOME="+filepath.Join(tt.workspace, ".config"),
	)
}

// Start launches the binary against the workspace fixtures; args follow the fixture flags
func (tt *TUITest) Start(args ...string) {
	tt.t.Helper()

	tt.cmd = exec.Command(binPath, append(tt.fixtureFlags(), args...)...)
	tt.cmd.Env = tt.env()

	f, err := pty.StartWithSize(tt.cmd, &pty.Winsize{Rows: 40, Cols: 120})
	require.NoError(tt.t, err, "failed to start app in a pty")
	tt.pty = f

	go tt.capture()

	tt.exited = make(chan error, 1)
	go func(cmd *exec.Cmd) {
		tt.exited <- cmd.Wait()
	}(tt.cmd)

	if !tt.See("PokePicker") || !tt.See("in den") {
		tt.dumpTail("startup")
		tt.t.Fatal("app did not render its first frame")
	}
}

func (tt *TUITest) capture() {
	buf := make([]byte, 8192)
	for {
		n, err := tt.pty.Read(buf)
		if n > 0 {
			tt.mu.Lock()
			tt.out = append(tt.out, buf[:n]...)
			if over := len(tt.out) - maxOutput; over > 0 {
				tt.out = tt.out[over:]
			}
			tt.mu.Unlock()
		}
		if err != nil {
			return
		}
	}
}

// Send writes keys to the terminal, one sequence at a time
func (tt *TUITest) Send(keys ...string) {
	tt.t.Helper()
	for _, k := range keys {
		_, err := tt.pty.Write([]byte(k))
		require.NoError(tt.t, err)
	}
}

// Plain returns everything printed so far without escape sequences
func (tt *TUITest) Plain() string {
	tt.mu.Lock()
	defer tt.mu.Unlock()
	return ansiRe.ReplaceAllString(string(tt.out), "")
}

// WaitFor polls the plain output until pred holds or timeout passes
func (tt *TUITest) WaitFor(pred func(string) bool, timeout time.Duration) bool {
	deadline := time.Now().Add(timeout)
	for {
		if pred(tt.Plain()) {
			return true
		}
		if time.Now().After(deadline) {
			return false
		}
		time.Sleep(25 * time.Millisecond)
	}
}

// See waits for text to appear in the plain output
func (tt *TUITest) See(text string) bool {
	tt.t.Helper()
	return tt.WaitFor(func(s string) bool { return strings.Contains(s, text) }, 3*time.Second)
}

// WaitExit waits for the process to terminate
func (tt *TUITest) WaitExit(timeout time.Duration) error {
	select {
	case err := <-tt.exited:
		tt.cmd = nil
		return err
	case <-time.After(timeout):
		tt.dumpTail("exit")
		return fmt.Errorf("app did not exit within %s", timeout)
	}
}

// Exit quits with ctrl+c and waits for the process
func (tt *TUITest) Exit() {
	tt.t.Helper()
	tt.Send(KeyCtrlC)
	require.NoError(tt.t, tt.WaitExit(2*time.Second))
}

func (tt *TUITest) dumpTail(name string) {
	s := tt.Plain()
	if len(s) > 4096 {
		s = s[len(s)-4096:]
	}
	p := filepath.Join(tt.t.TempDir(), name+".txt")
	if err := os.WriteFile(p, []byte(s), 0644); err == nil {
		tt.t.Logf("saved output tail to %s", p)
	}
}

func (tt *TUITest) stop() {
	if tt.pty != nil {
		_ = tt.pty.Close()
	}
	if tt.cmd != nil && tt.cmd.Process != nil {
		_ = tt.cmd.Process.Kill()
		if err := tt.WaitExit(2 * time.Second); err != nil && !errors.Is(err, os.ErrProcessDone) {
			tt.t.Logf("cleanup: %v", err)
		}
	}
}
