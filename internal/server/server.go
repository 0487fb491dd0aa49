package server

import (
	"errors"
	"fmt"
	"io"
	"net"
	"sync"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"tcpresponder/internal/shared"
	"tcpresponder/internal/shared/logger"
	"tcpresponder/internal/shared/types"
)

// Server is a TCP server that answers every connection with a single canned
// response. Each accepted connection goes through exactly one exchange: one
// read, one response, then the write side is closed. The transaction listener
// is notified at every lifecycle point.
type Server struct {
	port       int
	response   string
	bufferSize int
	listener   TransactionListener
	wiretap    bool

	mu           sync.Mutex
	ln           net.Listener
	listenerInfo *types.ListenerInfo

	closeOnce sync.Once
	waitGroup sync.WaitGroup
}

// New creates a server for the given configuration. The port must be
// positive and the listener must be present; both are checked fail-fast so a
// misconfigured server never reaches Start.
func New(cfg *types.ServerConf, listener TransactionListener) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("server: config is required")
	}
	if cfg.Port <= 0 {
		return nil, fmt.Errorf("server: port must be a positive integer, got %d", cfg.Port)
	}
	if listener == nil {
		return nil, errors.New("server: transaction listener is required")
	}
	bufferSize := cfg.BufferSize
	if bufferSize <= 0 {
		bufferSize = 4096
	}
	return &Server{
		port:       cfg.Port,
		response:   cfg.Response,
		bufferSize: bufferSize,
		listener:   listener,
		wiretap:    cfg.Wiretap,
	}, nil
}

// SetWiretap toggles low-level connection tracing. Must be called before
// Start; the flag is read-only once the server is serving.
func (s *Server) SetWiretap(wiretap bool) {
	s.wiretap = wiretap
}

// InitializeListener notifies the transaction listener and binds the
// listening socket, but does not block. It returns the bound port.
//
// OnStart deliberately fires before the bind: the observer must see "start"
// before any connection could possibly be handled, even if the bind then
// fails.
func (s *Server) InitializeListener() (int, error) {
	s.listener.OnStart()

	listenAddr := fmt.Sprintf("0.0.0.0:%d", s.port)
	ln, err := net.Listen("tcp", listenAddr)
	if err != nil {
		return 0, fmt.Errorf("server failed to listen on %s: %w", listenAddr, err)
	}

	tcpAddr := ln.Addr().(*net.TCPAddr)

	s.mu.Lock()
	s.ln = ln
	s.listenerInfo = &types.ListenerInfo{
		Address: tcpAddr.IP.String(),
		Port:    tcpAddr.Port,
	}
	s.mu.Unlock()

	logger.Info().Str("listen_addr", ln.Addr().String()).Bool("wiretap", s.wiretap).Msgf(">>> Server is listening.")

	return tcpAddr.Port, nil
}

// Serve runs the blocking accept loop. Must be called after
// InitializeListener; it returns once Stop releases the listening socket.
func (s *Server) Serve() {
	s.mu.Lock()
	ln := s.ln
	s.mu.Unlock()
	if ln == nil {
		logger.Error().Msgf("Server.Serve() called before InitializeListener()")
		return
	}
	s.acceptLoop(ln)
}

// Start notifies the listener, binds the configured port and serves until
// Stop is called. A bind failure is fatal to the start attempt and is
// returned to the caller; the server never reaches a running state.
func (s *Server) Start() error {
	if _, err := s.InitializeListener(); err != nil {
		return err
	}
	s.Serve()
	return nil
}

// Port returns the port the server is actually bound to, or 0 before bind.
func (s *Server) Port() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listenerInfo == nil {
		return 0
	}
	return s.listenerInfo.Port
}

// Stop notifies the transaction listener and releases the listening socket,
// unblocking Start. It is idempotent: extra calls, or a call on a server
// that never started, are no-ops. In-flight exchanges are not waited for;
// they either complete or get cut off with the process.
//
// OnStop fires before the socket release, mirroring the start-before-bind
// ordering.
func (s *Server) Stop() {
	s.closeOnce.Do(func() {
		s.listener.OnStop()

		s.mu.Lock()
		ln := s.ln
		s.mu.Unlock()
		if ln == nil {
			logger.Debug().Msgf("Server.Stop() called on a server that never bound, nothing to release.")
			return
		}
		if err := ln.Close(); err != nil {
			logger.Warn().Err(err).Msgf("Failed to close listening socket")
		}
		log.Info().Msg("Server has been shut down")
	})
}

func (s *Server) acceptLoop(ln net.Listener) {
	for {
		conn, err := ln.Accept()
		if err != nil {
			if errors.Is(err, net.ErrClosed) {
				logger.Info().Msgf("Server listener is closing.")
				return
			}
			logger.Warn().Err(err).Msgf("Server failed to accept connection")
			continue
		}
		s.waitGroup.Add(1)
		go s.handleConnection(conn)
	}
}

// handleConnection drives one exchange: read the request, notify the
// listener, send the canned response, notify again, then half-close the
// write side. Any fault terminates this connection only; the accept loop and
// other connections are never affected.
func (s *Server) handleConnection(conn net.Conn) {
	defer s.waitGroup.Done()
	defer conn.Close()

	traceID := uuid.NewString()
	l := log.With().Str("trace_id", traceID).Str("client_ip", conn.RemoteAddr().String()).Logger()

	if s.wiretap {
		conn = shared.NewWiretapConn(conn, l)
	}

	buf := make([]byte, s.bufferSize)
	n, err := conn.Read(buf)
	if err != nil && !errors.Is(err, io.EOF) {
		l.Warn().Err(err).Msg("Failed to read request")
		return
	}

	// A clean EOF with no bytes counts as an empty request: the peer closed
	// its write side, which is still a readable event worth reporting.
	request := string(buf[:n])
	l.Debug().Int("bytes", n).Msg("Received request")
	s.listener.OnReceive(request)

	s.listener.OnSend(s.response)
	if _, err := conn.Write([]byte(s.response)); err != nil {
		l.Warn().Err(err).Msg("Failed to write response")
		return
	}

	if cw, ok := conn.(interface{ CloseWrite() error }); ok {
		if err := cw.CloseWrite(); err != nil {
			l.Warn().Err(err).Msg("Failed to half-close connection")
		}
	}
}
