// Package ipctest runs a scripted sway/i3 IPC server on a temporary Unix
// socket for tests.
package ipctest

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"
	"net"
	"os"
	"path/filepath"
	"sync"
	"testing"
)

// Message types answered by the server
const (
	RunCommand    uint32 = 0
	GetWorkspaces uint32 = 1
	GetOutputs    uint32 = 3
	GetVersion    uint32 = 7
)

var magic = []byte("i3-ipc")

// Server replies to each request type with a fixed JSON body and records
// the commands it receives.
type Server struct {
	Path string

	listener net.Listener

	mu       sync.Mutex
	replies  map[uint32]string
	commands []string
	silent   bool
}

// NewServer starts a server that is shut down when the test ends
func NewServer(t testing.TB) *Server {
	t.Helper()

	// t.TempDir paths can exceed the Unix socket path limit
	dir, err := os.MkdirTemp("", "swaynav")
	if err != nil {
		t.Fatalf("temp dir: %v", err)
	}
	t.Cleanup(func() { os.RemoveAll(dir) })

	path := filepath.Join(dir, "ipc.sock")
	l, err := net.Listen("unix", path)
	if err != nil {
		t.Fatalf("listen: %v", err)
	}
	t.Cleanup(func() { l.Close() })

	s := &Server{
		Path:     path,
		listener: l,
		replies:  make(map[uint32]string),
	}
	go s.serve()
	return s
}

// Reply sets the body sent back for msgType
func (s *Server) Reply(msgType uint32, body string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.replies[msgType] = body
}

// SetSilent makes the server read requests without answering them
func (s *Server) SetSilent(silent bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.silent = silent
}

// Commands returns the RUN_COMMAND payloads received so far
func (s *Server) Commands() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.commands...)
}

func (s *Server) serve() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			return
		}
		go s.handle(conn)
	}
}

func (s *Server) handle(conn net.Conn) {
	defer conn.Close()

	for {
		msgType, payload, err := readMessage(conn)
		if err != nil {
			return
		}

		s.mu.Lock()
		if msgType == RunCommand {
			s.commands = append(s.commands, string(payload))
		}
		body, silent := s.replies[msgType], s.silent
		s.mu.Unlock()

		if silent {
			continue
		}
		if _, err := conn.Write(encodeMessage(msgType, []byte(body))); err != nil {
			return
		}
	}
}

func encodeMessage(msgType uint32, payload []byte) []byte {
	buf := make([]byte, len(magic)+8+len(payload))
	copy(buf, magic)
	binary.NativeEndian.PutUint32(buf[len(magic):], uint32(len(payload)))
	binary.NativeEndian.PutUint32(buf[len(magic)+4:], msgType)
	copy(buf[len(magic)+8:], payload)
	return buf
}

func readMessage(r io.Reader) (uint32, []byte, error) {
	header := make([]byte, len(magic)+8)
	if _, err := io.ReadFull(r, header); err != nil {
		return 0, nil, err
	}
	if !bytes.Equal(header[:len(magic)], magic) {
		return 0, nil, fmt.Errorf("bad magic %q", header[:len(magic)])
	}

	length := binary.NativeEndian.Uint32(header[len(magic):])
	msgType := binary.NativeEndian.Uint32(header[len(magic)+4:])

	payload := make([]byte, length)
	if _, err := io.ReadFull(r, payload); err != nil {
		return 0, nil, err
	}
	return msgType, payload, nil
}
