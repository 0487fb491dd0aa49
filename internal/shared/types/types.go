package types

// ListenerInfo describes the address a server is actually listening on.
type ListenerInfo struct {
	Address string
	Port    int
}
