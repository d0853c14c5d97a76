package ipc

import (
	"bufio"
	"fmt"
	"io"
	"log"
	"net"
	"os"
	"sync"

	"github.com/1broseidon/wsglyph/internal/runtimepath"
)

// Controller is the daemon surface the control socket drives.
type Controller interface {
	// Status reports daemon counters and effective settings.
	Status() StatusData
	// RenameNow runs a full reconciliation pass.
	RenameNow() error
	// Clean strips icon annotations from all workspace names.
	Clean() error
}

// Server handles control requests from clients
type Server struct {
	socketPath   string
	listener     net.Listener
	ctrl         Controller
	shuttingDown bool
	shutdownMu   sync.Mutex
}

// NewServer creates a new control server
func NewServer(ctrl Controller) (*Server, error) {
	socketPath, err := runtimepath.SocketPath()
	if err != nil {
		return nil, fmt.Errorf("failed to resolve control socket path: %w", err)
	}

	// Remove existing socket if present
	os.Remove(socketPath)

	return &Server{
		socketPath: socketPath,
		ctrl:       ctrl,
	}, nil
}

// Start begins listening for control connections
func (s *Server) Start() error {
	listener, err := net.Listen("unix", s.socketPath)
	if err != nil {
		return fmt.Errorf("failed to create control socket: %w", err)
	}
	s.listener = listener

	if err := os.Chmod(s.socketPath, 0600); err != nil {
		return fmt.Errorf("failed to set socket permissions: %w", err)
	}

	log.Printf("Control server listening on %s", s.socketPath)

	go s.acceptLoop()

	return nil
}

// Stop closes the listener and removes the socket
func (s *Server) Stop() {
	s.shutdownMu.Lock()
	s.shuttingDown = true
	s.shutdownMu.Unlock()

	if s.listener != nil {
		s.listener.Close()
	}
	os.Remove(s.socketPath)
}

// acceptLoop accepts incoming connections
func (s *Server) acceptLoop() {
	for {
		conn, err := s.listener.Accept()
		if err != nil {
			s.shutdownMu.Lock()
			if s.shuttingDown {
				s.shutdownMu.Unlock()
				return
			}
			s.shutdownMu.Unlock()
			log.Printf("Control accept error: %v", err)
			continue
		}

		go s.handleConnection(conn)
	}
}

// handleConnection handles a single control connection
func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()

	reader := bufio.NewReader(conn)
	line, err := reader.ReadBytes('\n')
	if err != nil {
		if err != io.EOF {
			log.Printf("Control read error: %v", err)
		}
		return
	}

	req, err := ParseRequest(line)
	if err != nil {
		s.writeResponse(conn, NewErrorResponse(err.Error()))
		return
	}

	s.writeResponse(conn, s.dispatch(req))
}

func (s *Server) dispatch(req *Request) *Response {
	switch req.Command {
	case CommandGetStatus:
		resp, err := NewOKResponse(s.ctrl.Status())
		if err != nil {
			return NewErrorResponse(err.Error())
		}
		return resp

	case CommandRenameNow:
		if err := s.ctrl.RenameNow(); err != nil {
			return NewErrorResponse(err.Error())
		}
		resp, _ := NewOKResponse(nil)
		return resp

	case CommandClean:
		if err := s.ctrl.Clean(); err != nil {
			return NewErrorResponse(err.Error())
		}
		resp, _ := NewOKResponse(nil)
		return resp

	default:
		return NewErrorResponse(fmt.Sprintf("unknown command: %s", req.Command))
	}
}

func (s *Server) writeResponse(conn net.Conn, resp *Response) {
	data, err := resp.Marshal()
	if err != nil {
		log.Printf("Control marshal error: %v", err)
		return
	}
	data = append(data, '\n')
	if _, err := conn.Write(data); err != nil {
		log.Printf("Control write error: %v", err)
	}
}
