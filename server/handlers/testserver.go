package handlers

import (
	"fmt"
	"net"
	"net/http"
	"strconv"
	"time"
)

// TestServer binds a one-shot UDP receiver on localhost and waits
// briefly for a single datagram, so a sender can be verified end to end
// without a real collector.
func TestServer(w http.ResponseWriter, r *http.Request) {
	port, err := strconv.Atoi(r.PathValue("port"))
	if err != nil {
		http.Error(w, "Invalid port", http.StatusBadRequest)
		return
	}

	conn, err := net.ListenUDP("udp", &net.UDPAddr{
		IP:   net.ParseIP("127.0.0.1"),
		Port: port,
	})
	if err != nil {
		writeJSON(w, map[string]any{
			"success": false,
			"error":   fmt.Sprintf("Test server error: %v", err),
		})
		return
	}
	defer conn.Close()

	conn.SetReadDeadline(time.Now().Add(1 * time.Second))

	buffer := make([]byte, 1024)
	n, addr, err := conn.ReadFromUDP(buffer)
	if err != nil {
		writeJSON(w, map[string]any{
			"success": false,
			"error":   "No message received within timeout",
		})
		return
	}

	writeJSON(w, map[string]any{
		"success":          true,
		"received_message": string(buffer[:n]),
		"from_address":     addr.String(),
	})
}
