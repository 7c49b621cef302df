package queryserver

import (
	"context"
	"errors"
	"io"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/travigo/stationboard/pkg/stationquery"
)

const (
	DefaultListen = "127.0.0.1:65432"

	// ReadBufferSize is the most a single request read will consume.
	ReadBufferSize = 1024

	minAcceptDelay = 5 * time.Millisecond
	maxAcceptDelay = time.Second
)

var ErrConnectionClosed = errors.New("connection closed")

type Querier interface {
	Query(ctx context.Context, stationName string) (stationquery.Record, error)
}

// Server answers station names with prediction records over plain TCP. Each
// connection gets its own goroutine and its requests are handled in order.
type Server struct {
	Service Querier

	// IdleTimeout closes connections that send nothing for this long. Zero
	// keeps them open until the client hangs up.
	IdleTimeout time.Duration

	listener net.Listener

	mutex       sync.Mutex
	connections map[net.Conn]struct{}
	wg          sync.WaitGroup
}

// Listen binds the address. A bind failure is returned as is so the caller can
// exit.
func Listen(address string, service Querier) (*Server, error) {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return nil, err
	}

	return &Server{
		Service:     service,
		listener:    listener,
		connections: map[net.Conn]struct{}{},
	}, nil
}

func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Serve accepts connections until ctx is cancelled, then closes the listener
// and every open connection and waits for their handlers to return.
func (s *Server) Serve(ctx context.Context) error {
	log.Info().Str("address", s.Addr().String()).Msg("Query server listening")

	stopped := make(chan struct{})
	defer close(stopped)

	go func() {
		select {
		case <-ctx.Done():
		case <-stopped:
		}
		s.shutdown()
	}()

	var acceptDelay time.Duration

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				s.shutdown()
				s.wg.Wait()

				if ctx.Err() != nil {
					log.Info().Msg("Query server stopped")
					return nil
				}
				return err
			}

			// Failures such as EMFILE pass once connections are released.
			if acceptDelay == 0 {
				acceptDelay = minAcceptDelay
			} else {
				acceptDelay = min(2*acceptDelay, maxAcceptDelay)
			}
			log.Warn().Err(err).Dur("retry", acceptDelay).Msg("Accept failed")

			select {
			case <-time.After(acceptDelay):
			case <-ctx.Done():
			}
			continue
		}
		acceptDelay = 0

		if !s.track(conn) {
			conn.Close()
			continue
		}

		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			defer s.untrack(conn)

			s.handle(ctx, conn)
		}()
	}
}

func (s *Server) track(conn net.Conn) bool {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	if s.connections == nil {
		return false
	}
	s.connections[conn] = struct{}{}
	return true
}

func (s *Server) untrack(conn net.Conn) {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.connections, conn)
	conn.Close()
}

func (s *Server) shutdown() {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	s.listener.Close()

	for conn := range s.connections {
		conn.Close()
	}
	s.connections = nil
}

func (s *Server) handle(ctx context.Context, conn net.Conn) {
	connLogger := log.With().Str("remote", conn.RemoteAddr().String()).Logger()
	connLogger.Debug().Msg("Connection accepted")

	buffer := make([]byte, ReadBufferSize)

	for {
		stationName, err := s.readRequest(conn, buffer)
		if err != nil {
			var netErr net.Error

			switch {
			case errors.Is(err, ErrConnectionClosed):
				connLogger.Debug().Msg("Connection closed by client")
			case ctx.Err() != nil, errors.Is(err, net.ErrClosed):
				connLogger.Debug().Msg("Connection closed by shutdown")
			case errors.As(err, &netErr) && netErr.Timeout():
				connLogger.Debug().Msg("Connection idle, closing")
			default:
				connLogger.Warn().Err(err).Msg("Connection read failed")
			}
			return
		}

		reply := s.respond(ctx, stationName)

		if _, err := conn.Write([]byte(reply)); err != nil {
			connLogger.Warn().Err(err).Msg("Connection write failed")
			return
		}
	}
}

func (s *Server) readRequest(conn net.Conn, buffer []byte) (string, error) {
	if s.IdleTimeout > 0 {
		if err := conn.SetReadDeadline(time.Now().Add(s.IdleTimeout)); err != nil {
			return "", err
		}
	}

	n, err := conn.Read(buffer)
	if n == 0 {
		if err == nil || errors.Is(err, io.EOF) {
			return "", ErrConnectionClosed
		}
		return "", err
	}

	return strings.TrimRight(string(buffer[:n]), "\r\n"), nil
}

// respond always produces exactly one frame: a record or "ERR <code>".
func (s *Server) respond(ctx context.Context, stationName string) string {
	record, err := s.Service.Query(ctx, stationName)
	if err != nil {
		code := stationquery.ErrorCode(err)

		event := log.Warn()
		if code == stationquery.CodeUnknownStation {
			event = log.Info()
		}
		event.Err(err).Str("station", stationName).Str("code", code).Msg("Station query failed")

		return ErrorFrame(code)
	}

	return record.String()
}

func ErrorFrame(code string) string {
	return "ERR " + code
}
