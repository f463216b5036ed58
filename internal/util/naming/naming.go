package naming

import (
	"fmt"
	"net/netip"
	"strconv"
)

// Artifact file names inside a bundle.
const (
	ScriptFile = "configure_f5_ltm.sh"
	ReadmeFile = "README.md"
)

// MemberPort is the service port used for every pool member.
const MemberPort = 80

// Bundle returns the bundle directory name "{lac}-{name}-{partition}".
// An empty lac keeps the leading hyphen.
func Bundle(lac, name, partition string) string {
	return fmt.Sprintf("%s-%s-%s", lac, name, partition)
}

// Object returns the full path "/{partition}/{name}" of a tmsh object.
func Object(partition, name string) string {
	return fmt.Sprintf("/%s/%s", partition, name)
}

// Member formats a pool member as address:port.
func Member(address string) string {
	return hostPort(address, MemberPort)
}

// Destination formats a virtual server destination from its address and
// listening port.
func Destination(address string, port int) string {
	return hostPort(address, port)
}

// hostPort joins with ":" except for IPv6 literals, which tmsh separates
// from the port with a dot ("2001:db8::1.80").
func hostPort(address string, port int) string {
	if ip, err := netip.ParseAddr(address); err == nil && ip.Is6() && !ip.Is4In6() {
		return address + "." + strconv.Itoa(port)
	}
	return address + ":" + strconv.Itoa(port)
}

// ObjectKey is the object-storage key of an artifact within a bundle.
func ObjectKey(bundle, file string) string {
	return bundle + "/" + file
}
