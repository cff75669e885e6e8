// antsiege-server serves the game over SSH. Every connection gets its own
// independent colony and campaign. Build:
//
//	go build -o antsiege-server ./cmd/server
//
// Usage:
//
//	./antsiege-server [--port 2222] [--key server_host_key]
//
// Connect:
//
//	ssh -p 2222 localhost
package main

import (
	"crypto/ed25519"
	cryptorand "crypto/rand"
	"encoding/pem"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"strings"
	"sync"
	"time"

	"antsiege/internal/engine"
	"antsiege/internal/shell"
	internalssh "antsiege/internal/ssh"

	"github.com/gdamore/tcell/v2"
	gossh "github.com/gliderlabs/ssh"
	xssh "golang.org/x/crypto/ssh"
)

func main() {
	port := flag.Int("port", 2222, "SSH server port")
	keyFile := flag.String("key", "server_host_key", "Path to the PEM-encoded host key (auto-generated if absent)")
	tunnels := flag.Int("tunnels", shell.DefaultConfig.Tunnels, "Number of tunnels toward the queen")
	length := flag.Int("length", shell.DefaultConfig.TunnelLength, "Cells per tunnel")
	food := flag.Int("food", shell.DefaultConfig.StartingFood, "Starting food reserve")
	flood := flag.Int("flood", shell.DefaultConfig.FloodPeriod, "Every Nth cell is water (0 disables)")
	flag.Parse()

	cfg := engine.ColonyConfig{
		StartingFood: *food,
		Tunnels:      *tunnels,
		TunnelLength: *length,
		FloodPeriod:  *flood,
	}

	signer := loadOrCreateHostKey(*keyFile)

	srv := &gossh.Server{
		Addr: fmt.Sprintf(":%d", *port),
		Handler: func(s gossh.Session) {
			handleSession(s, cfg)
		},
		// Any client may request a PTY.
		PtyCallback: func(_ gossh.Context, _ gossh.Pty) bool { return true },
		// No authentication: this is a game server for a trusted network.
		// Add gossh.PublicKeyAuth or gossh.PasswordAuth for anything else.
		HostSigners: []gossh.Signer{signer},
	}

	log.Printf("antsiege SSH server listening on :%d", *port)
	log.Printf("Connect with:  ssh -p %d -o StrictHostKeyChecking=no localhost", *port)
	log.Fatal(srv.ListenAndServe())
}

// handleSession runs one player's campaign. It blocks for the lifetime of
// the connection so the SSH channel stays open.
func handleSession(s gossh.Session, cfg engine.ColonyConfig) {
	pty, winCh, hasPTY := s.Pty()
	if !hasPTY {
		fmt.Fprintln(s, "This game requires a PTY. Connect with: ssh -t -p 2222 <host>")
		return
	}

	// Determine the terminal type from the session environment.
	term := "xterm-256color"
	for _, env := range s.Environ() {
		if strings.HasPrefix(env, "TERM=") {
			term = env[5:]
			break
		}
	}

	// TERM must be set in the process environment before
	// NewTerminfoScreenFromTty, so screen creation is serialized.
	tty := internalssh.NewRemoteTty(s, pty, winCh)
	termMu.Lock()
	_ = os.Setenv("TERM", term)
	screen, err := tcell.NewTerminfoScreenFromTty(tty)
	termMu.Unlock()
	if err != nil {
		fmt.Fprintf(s, "Terminal setup failed: %v\n", err)
		return
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(s, "Screen init failed: %v\n", err)
		return
	}
	defer screen.Fini()

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	factory := func() *engine.Match {
		return shell.DefaultMatch(cfg, rng.Int63())
	}
	shell.New(screen, factory, rng).Run()
}

// termMu protects os.Setenv("TERM") across concurrent session setups.
var termMu sync.Mutex

// loadOrCreateHostKey returns the signer for the PEM key at path,
// generating and persisting a fresh ed25519 key when the file is absent
// or unparseable.
func loadOrCreateHostKey(path string) gossh.Signer {
	if data, err := os.ReadFile(path); err == nil {
		if signer, err := xssh.ParsePrivateKey(data); err == nil {
			log.Printf("Loaded host key from %s", path)
			return signer
		}
	}

	log.Printf("Generating ed25519 host key at %s", path)
	_, key, err := ed25519.GenerateKey(cryptorand.Reader)
	if err != nil {
		log.Fatalf("generate host key: %v", err)
	}
	signer, err := xssh.NewSignerFromKey(key)
	if err != nil {
		log.Fatalf("create signer: %v", err)
	}
	// Best effort; a failed write just means a new key next run.
	if pemBlock, err := xssh.MarshalPrivateKey(key, "antsiege server"); err == nil {
		_ = os.WriteFile(path, pem.EncodeToMemory(pemBlock), 0600)
	}
	return signer
}
