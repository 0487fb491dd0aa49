package server

// TransactionListener is the extension hook which allows reacting to the
// server's lifecycle and per-exchange events. Implementations must be fast,
// synchronous and non-blocking: hooks are invoked inline from the goroutine
// driving the exchange.
type TransactionListener interface {
	// OnStart reacts to the server starting.
	OnStart()
	// OnStop reacts to the server stopping.
	OnStop()
	// OnReceive reacts to a request arriving from a client.
	OnReceive(message string)
	// OnSend reacts to a response being sent to a client.
	OnSend(message string)
}

// MultiListener fans every hook out to a list of listeners, in order.
type MultiListener []TransactionListener

func (m MultiListener) OnStart() {
	for _, l := range m {
		l.OnStart()
	}
}

func (m MultiListener) OnStop() {
	for _, l := range m {
		l.OnStop()
	}
}

func (m MultiListener) OnReceive(message string) {
	for _, l := range m {
		l.OnReceive(message)
	}
}

func (m MultiListener) OnSend(message string) {
	for _, l := range m {
		l.OnSend(message)
	}
}
