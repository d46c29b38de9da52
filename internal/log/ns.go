package log

// Namespaces used across the server logs.
const (
	NsServer  = "server"
	NsGateway = "gateway"
	NsConfig  = "config"
)
