package listener

import (
	"bufio"
	"log"
	"net"
	"sync"
	"time"

	"slogforge/utils"
)

// tcpReadTimeout bounds how long a connection may stay silent between
// messages. Shortened by tests.
var tcpReadTimeout = 10 * time.Second

func StartTCPListener() {
	port := utils.TcpPort

	_, err := net.LookupPort("tcp", port)
	if err != nil {
		log.Fatalf("Invalid TCP port %s: %v", port, err)
	}

	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		log.Fatalf("Failed to start TCP listener on port %s: %v", port, err)
	}
	defer listener.Close()

	log.Printf("TCP debug listener is running on port :%s", port)

	// Bound the number of concurrent connections
	maxConcurrentConnections := 100
	semaphore := make(chan struct{}, maxConcurrentConnections)

	var wg sync.WaitGroup

	for {
		conn, err := listener.Accept()
		if err != nil {
			log.Printf("Error accepting TCP connection: %v", err)
			continue
		}

		semaphore <- struct{}{}
		wg.Add(1)

		go func(c net.Conn) {
			defer func() {
				<-semaphore
				wg.Done()
			}()
			handleTCPConnection(c)
		}(conn)
	}
}

// handleTCPConnection reads newline-delimited messages until the peer
// goes away or stays silent past the read timeout. A Scanner latches
// its first error, so a timed-out connection cannot be resumed; it is
// closed instead.
func handleTCPConnection(conn net.Conn) {
	defer conn.Close()

	client := conn.RemoteAddr().String()

	scanner := bufio.NewScanner(conn)

	const maxScanSize = 1024 * 1024
	buffer := make([]byte, 0, 64*1024)
	scanner.Buffer(buffer, maxScanSize)

	conn.SetReadDeadline(time.Now().Add(tcpReadTimeout))

	for {
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
					log.Printf("TCP connection from %s idle, closing", client)
					return
				}
				log.Printf("TCP connection closed: %v", err)
			}
			return
		}

		conn.SetReadDeadline(time.Now().Add(tcpReadTimeout))

		message := scanner.Text()
		if message == "" {
			continue
		}

		logReceived("TCP", client, message)
	}
}
