// Manual test client: sends one request to a running responder and prints
// the canned response. Usage: go run test/simple_client.go
package main

import (
	"fmt"
	"io"
	"log"
	"net"
	"time"
)

func main() {
	port := "8080"
	address := "127.0.0.1:" + port

	log.Printf(">>> Simple Client: Attempting to connect to %s...", address)

	conn, err := net.DialTimeout("tcp", address, 5*time.Second)
	if err != nil {
		log.Fatalf("Connection failed: %v. Is the responder running on port %s?", err, port)
	}
	defer conn.Close()

	if _, err := conn.Write([]byte("ping")); err != nil {
		log.Fatalf("Failed to send request: %v", err)
	}
	if err := conn.(*net.TCPConn).CloseWrite(); err != nil {
		log.Fatalf("Failed to half-close: %v", err)
	}

	response, err := io.ReadAll(conn)
	if err != nil {
		log.Fatalf("Failed to read response: %v", err)
	}
	fmt.Printf("Received from server: %s\n", string(response))
}
