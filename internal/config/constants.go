package config

// Metadata defaults.
const (
	DefaultPartition  = "Common"
	DefaultConfigName = "default-config"
)

// Monitor defaults.
const (
	DefaultMonitorInterval = 30
	DefaultMonitorTimeout  = 90

	// DefaultMonitorSend is written verbatim into the script, so the escape
	// sequences stay as literal backslashes for tmsh to interpret.
	DefaultMonitorSend    = `GET / HTTP/1.1\r\nHost: example.com\r\n\r\n`
	DefaultMonitorReceive = "HTTP/1.1 200 OK"
)

// DefaultPoolMonitor is the built-in ICMP gateway monitor assigned to pools
// that do not name one.
const DefaultPoolMonitor = "gateway_icmp"

// MaxPort is the highest valid TCP port for a virtual server destination.
const MaxPort = 65535
