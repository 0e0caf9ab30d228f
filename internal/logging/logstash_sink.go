package logging

import (
	"errors"
	"io"
	"net"
	"strings"
	"sync"
	"time"
)

var errSinkBackoff = errors.New("logstash: waiting before reconnect")

// SinkConfig describes a Logstash TCP input.
type SinkConfig struct {
	Addr         string
	DialTimeout  time.Duration // 2s when zero
	WriteTimeout time.Duration // 1s when zero
	Backoff      time.Duration // pause after a failed dial or write, 5s when zero
}

// LogstashSink mirrors JSON log lines to Logstash over one TCP connection.
// Lines that cannot be delivered are counted and discarded; the caller's write never fails.
type LogstashSink struct {
	cfg SinkConfig

	mu           sync.Mutex
	conn         net.Conn
	backoffUntil time.Time
	closed       bool
	sent         uint64
	dropped      uint64
}

func NewLogstashSink(cfg SinkConfig) (*LogstashSink, error) {
	if strings.TrimSpace(cfg.Addr) == "" {
		return nil, errors.New("logstash: empty address")
	}
	if cfg.DialTimeout <= 0 {
		cfg.DialTimeout = 2 * time.Second
	}
	if cfg.WriteTimeout <= 0 {
		cfg.WriteTimeout = time.Second
	}
	if cfg.Backoff <= 0 {
		cfg.Backoff = 5 * time.Second
	}
	return &LogstashSink{cfg: cfg}, nil
}

func (s *LogstashSink) Write(p []byte) (int, error) {
	if len(p) == 0 {
		return 0, nil
	}
	line := make([]byte, len(p), len(p)+1)
	copy(line, p)
	if line[len(line)-1] != '\n' {
		line = append(line, '\n')
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return 0, io.ErrClosedPipe
	}
	if err := s.deliverLocked(line); err != nil {
		s.dropped++
	} else {
		s.sent++
	}
	return len(p), nil
}

func (s *LogstashSink) deliverLocked(line []byte) error {
	if s.conn == nil {
		if time.Now().Before(s.backoffUntil) {
			return errSinkBackoff
		}
		conn, err := net.DialTimeout("tcp", s.cfg.Addr, s.cfg.DialTimeout)
		if err != nil {
			s.backoffUntil = time.Now().Add(s.cfg.Backoff)
			return err
		}
		s.conn = conn
	}

	_ = s.conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
	if _, err := s.conn.Write(line); err != nil {
		_ = s.conn.Close()
		s.conn = nil
		s.backoffUntil = time.Now().Add(s.cfg.Backoff)
		return err
	}
	return nil
}

// Stats reports how many lines were delivered and how many were discarded.
func (s *LogstashSink) Stats() (sent, dropped uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sent, s.dropped
}

func (s *LogstashSink) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return nil
	}
	s.closed = true
	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	return err
}
