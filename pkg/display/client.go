package display

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strings"
	"time"

	"github.com/travigo/stationboard/pkg/stationquery"
)

const (
	DefaultTimeout = 5 * time.Second

	readBufferSize = 1024
)

// ServerError is an "ERR <code>" frame returned by the query server.
type ServerError struct {
	Code string
}

func (e *ServerError) Error() string {
	return fmt.Sprintf("query server error: %s", e.Code)
}

// Client keeps one connection to the query server open between polls and
// redials after any failure.
type Client struct {
	Address string
	Timeout time.Duration

	conn net.Conn
}

func NewClient(address string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	return &Client{
		Address: address,
		Timeout: timeout,
	}
}

func (c *Client) Fetch(ctx context.Context, stationName string) (stationquery.Record, error) {
	record, err := c.fetch(ctx, stationName)
	if err != nil {
		var serverErr *ServerError
		if !errors.As(err, &serverErr) {
			c.Close()
		}
	}

	return record, err
}

func (c *Client) fetch(ctx context.Context, stationName string) (stationquery.Record, error) {
	if c.conn == nil {
		dialer := net.Dialer{Timeout: c.Timeout}

		conn, err := dialer.DialContext(ctx, "tcp", c.Address)
		if err != nil {
			return stationquery.Record{}, err
		}
		c.conn = conn
	}

	deadline := time.Now().Add(c.Timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}
	if err := c.conn.SetDeadline(deadline); err != nil {
		return stationquery.Record{}, err
	}

	if _, err := c.conn.Write([]byte(stationName)); err != nil {
		return stationquery.Record{}, err
	}

	buffer := make([]byte, readBufferSize)
	n, err := c.conn.Read(buffer)
	if err != nil {
		return stationquery.Record{}, err
	}

	reply := string(buffer[:n])
	if code, ok := strings.CutPrefix(reply, "ERR "); ok {
		return stationquery.Record{}, &ServerError{Code: code}
	}

	return stationquery.ParseRecord(reply)
}

func (c *Client) Close() error {
	if c.conn == nil {
		return nil
	}

	err := c.conn.Close()
	c.conn = nil
	return err
}
