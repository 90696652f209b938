// Package sender delivers finished syslog wire text to a remote
// collector over UDP or TCP. Sends are one-shot and fail fast: a fixed
// timeout bounds both the connect and the write.
package sender

import (
	"fmt"
	"log"
	"net"
	"strconv"
	"time"
)

const sendTimeout = 5 * time.Second

// ValidationError reports a caller-supplied protocol outside the
// recognized enumeration. Distinct from transport I/O failures.
type ValidationError struct {
	msg string
}

func (e *ValidationError) Error() string {
	return e.msg
}

// TransportError reports a failed or timed-out network send.
type TransportError struct {
	Proto string
	Err   error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("%s send failed: %v", e.Proto, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// Send delivers message to host:port over the given protocol ("udp" or
// "tcp"). Any other protocol fails with a ValidationError before any
// socket is opened.
func Send(protocol, message, host string, port int) error {
	switch protocol {
	case "udp":
		return sendUDP(message, host, port)
	case "tcp":
		return sendTCP(message, host, port)
	default:
		return &ValidationError{msg: "Protocol must be 'udp' or 'tcp'"}
	}
}

func sendUDP(message, host string, port int) error {
	addr := net.JoinHostPort(host, strconv.Itoa(port))

	conn, err := net.DialTimeout("udp", addr, sendTimeout)
	if err != nil {
		return &TransportError{Proto: "UDP", Err: err}
	}
	defer conn.Close()

	conn.SetWriteDeadline(time.Now().Add(sendTimeout))
	if _, err := conn.Write([]byte(message)); err != nil {
		return &TransportError{Proto: "UDP", Err: err}
	}

	log.Printf("UDP message sent to %s", addr)
	return nil
}

func sendTCP(message, host string, port int) error {
	addr := net.JoinHostPort(host, strconv.Itoa(port))

	conn, err := net.DialTimeout("tcp", addr, sendTimeout)
	if err != nil {
		return &TransportError{Proto: "TCP", Err: err}
	}
	defer conn.Close()

	conn.SetWriteDeadline(time.Now().Add(sendTimeout))
	if _, err := conn.Write([]byte(message)); err != nil {
		return &TransportError{Proto: "TCP", Err: err}
	}

	log.Printf("TCP message sent to %s", addr)
	return nil
}
