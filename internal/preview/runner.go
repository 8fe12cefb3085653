package preview

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"
	"time"
)

var (
	DefaultInstall = []string{"npm", "install"}
	DefaultDev     = []string{"npm", "run", "dev"}
)

// ErrExitedBeforeReady is returned when the dev process ends without ever
// printing a server address.
var ErrExitedBeforeReady = errors.New("dev server exited before it was ready")

// Runner installs dependencies in Dir and starts the dev server there.
type Runner struct {
	Dir     string
	Install []string
	Dev     []string

	// Output receives the combined output of both processes. Nil discards it.
	Output io.Writer
}

// Server is a running dev server.
type Server struct {
	URL  string
	Port int

	cmd  *exec.Cmd
	done chan struct{}
	err  error
}

type readyEvent struct {
	url  string
	port int
}

// Start runs the install command to completion, then starts the dev command
// and returns once its output names a served address.
func (r *Runner) Start(ctx context.Context) (*Server, error) {
	out := r.Output
	if out == nil {
		out = io.Discard
	}

	install := r.Install
	if len(install) == 0 {
		install = DefaultInstall
	}
	dev := r.Dev
	if len(dev) == 0 {
		dev = DefaultDev
	}

	ic := exec.CommandContext(ctx, install[0], install[1:]...)
	ic.Dir = r.Dir
	ic.Stdout = out
	ic.Stderr = out
	if err := ic.Run(); err != nil {
		return nil, fmt.Errorf("%s: %w", strings.Join(install, " "), err)
	}

	pr, pw := io.Pipe()
	cmd := exec.CommandContext(ctx, dev[0], dev[1:]...)
	cmd.Dir = r.Dir
	cmd.Stdout = pw
	cmd.Stderr = pw
	// Children of the dev command may hold the pipe open after it is killed.
	cmd.WaitDelay = 2 * time.Second
	if err := cmd.Start(); err != nil {
		return nil, fmt.Errorf("%s: %w", strings.Join(dev, " "), err)
	}

	srv := &Server{cmd: cmd, done: make(chan struct{})}
	go func() {
		srv.err = cmd.Wait()
		pw.Close()
		close(srv.done)
	}()

	ready := make(chan readyEvent, 1)
	scanned := make(chan struct{})
	go func() {
		defer close(scanned)
		sc := bufio.NewScanner(pr)
		sc.Buffer(make([]byte, 64*1024), 1024*1024)
		found := false
		for sc.Scan() {
			line := sc.Text()
			fmt.Fprintln(out, line)
			if found {
				continue
			}
			if url, port, ok := DetectServer(line); ok {
				found = true
				ready <- readyEvent{url: url, port: port}
			}
		}
		io.Copy(io.Discard, pr)
	}()

	select {
	case ev := <-ready:
		srv.URL, srv.Port = ev.url, ev.port
		return srv, nil
	case <-scanned:
		select {
		case ev := <-ready:
			srv.URL, srv.Port = ev.url, ev.port
			return srv, nil
		default:
		}
		<-srv.done
		if srv.err != nil {
			return nil, fmt.Errorf("%w: %v", ErrExitedBeforeReady, srv.err)
		}
		return nil, ErrExitedBeforeReady
	case <-ctx.Done():
		srv.Stop()
		return nil, ctx.Err()
	}
}

// Done is closed when the dev process has exited.
func (s *Server) Done() <-chan struct{} {
	return s.done
}

// Wait blocks until the dev process exits and returns its exit error.
func (s *Server) Wait() error {
	<-s.done
	return s.err
}

// Stop kills the dev process and waits for it to exit.
func (s *Server) Stop() {
	select {
	case <-s.done:
		return
	default:
	}
	if s.cmd.Process != nil {
		s.cmd.Process.Kill()
	}
	<-s.done
}
