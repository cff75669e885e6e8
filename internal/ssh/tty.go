// Package ssh adapts a gliderlabs SSH session into a tcell terminal so the
// game can be served remotely. Every connection gets its own adapter and
// its own screen.
package ssh

import (
	"sync"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
)

// RemoteTty presents an SSH session channel as a tcell.Tty. Keyboard
// input arrives on the session's stdin; rendered cells leave on stdout.
type RemoteTty struct {
	sess     gossh.Session
	mu       sync.Mutex
	size     gossh.Window
	resizes  <-chan gossh.Window
	onResize func()
}

// NewRemoteTty wraps the session. pty carries the window size negotiated
// at connect time; resizes delivers later window-change requests.
func NewRemoteTty(sess gossh.Session, pty gossh.Pty, resizes <-chan gossh.Window) *RemoteTty {
	return &RemoteTty{
		sess:    sess,
		size:    pty.Window,
		resizes: resizes,
	}
}

func (t *RemoteTty) Read(b []byte) (int, error)  { return t.sess.Read(b) }
func (t *RemoteTty) Write(b []byte) (int, error) { return t.sess.Write(b) }

// Close tears down the SSH channel.
func (t *RemoteTty) Close() error { return t.sess.Close() }

// Start is a no-op; the channel is open before the adapter exists.
func (t *RemoteTty) Start() error { return nil }

// Stop is a no-op; the server handler goroutine owns the channel.
func (t *RemoteTty) Stop() error { return nil }

// Drain is a no-op; the SSH transport does not buffer writes.
func (t *RemoteTty) Drain() error { return nil }

// WindowSize reports the most recent terminal dimensions.
func (t *RemoteTty) WindowSize() (tcell.WindowSize, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return tcell.WindowSize{Width: t.size.Width, Height: t.size.Height}, nil
}

// NotifyResize registers tcell's resize callback and starts draining the
// window-change channel for the rest of the session.
func (t *RemoteTty) NotifyResize(cb func()) {
	t.mu.Lock()
	t.onResize = cb
	t.mu.Unlock()

	go func() {
		for win := range t.resizes {
			t.mu.Lock()
			t.size = win
			cb := t.onResize
			t.mu.Unlock()
			if cb != nil {
				cb()
			}
		}
	}()
}
