package main

import (
	"slices"

	"slogforge/listener"
	"slogforge/server"
	"slogforge/utils"
)

func main() {
	if slices.Contains(utils.Listeners, "udp") {
		go listener.StartUDPListener()
	}

	if slices.Contains(utils.Listeners, "tcp") {
		go listener.StartTCPListener()
	}

	server.StartHTTPServer()
}
