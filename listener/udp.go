package listener

import (
	"log"
	"net"
	"strings"
	"sync"
	"time"

	"slogforge/utils"
)

func StartUDPListener() {
	port := utils.UdpPort

	intPort, err := net.LookupPort("udp", port)
	if err != nil {
		log.Fatalf("Invalid UDP port %s: %v", port, err)
	}

	addr := net.UDPAddr{
		Port: intPort,
		IP:   net.ParseIP("0.0.0.0"),
	}

	listener, err := net.ListenUDP("udp", &addr)
	if err != nil {
		log.Fatalf("Failed to start UDP listener on port %s: %v", port, err)
	}
	defer listener.Close()

	log.Printf("UDP debug listener is running on port :%s", port)

	// Bound the number of in-flight processors
	maxConcurrentProcessors := 100
	semaphore := make(chan struct{}, maxConcurrentProcessors)

	var wg sync.WaitGroup

	const bufferSize = 64 * 1024
	buffer := make([]byte, bufferSize)

	for {
		listener.SetReadDeadline(time.Now().Add(30 * time.Second))

		n, remote, err := listener.ReadFromUDP(buffer)
		if err != nil {
			if netErr, ok := err.(net.Error); ok && netErr.Timeout() {
				continue
			}
			log.Printf("Error reading from UDP: %v", err)
			continue
		}

		messageCopy := make([]byte, n)
		copy(messageCopy, buffer[:n])
		client := remote.String()

		select {
		case semaphore <- struct{}{}:
			wg.Add(1)

			go func(data []byte) {
				defer func() {
					<-semaphore
					wg.Done()
				}()
				processUDPDatagram(data, client)
			}(messageCopy)
		default:
			log.Printf("Warning: UDP processing at capacity, dropping datagram")
		}
	}
}

// processUDPDatagram handles one datagram. A datagram may carry several
// newline-separated messages.
func processUDPDatagram(data []byte, client string) {
	input := strings.ReplaceAll(string(data), "\r\n", "\n")

	for _, part := range strings.Split(input, "\n") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		logReceived("UDP", client, part)
	}
}
