package conneg

// A Key stashes values in a context.Context.
type Key string

const (
	// IpAddrKey stashes the IP address of an HTTP request being handled.
	IpAddrKey Key = "IpAddrKey"

	// OutcomeKey stashes the negotiation outcome of an HTTP request
	// so that every render of that request shares one candidate list.
	OutcomeKey Key = "OutcomeKey"

	// RequestIDKey stashes a unique UUID for each HTTP request.
	RequestIDKey Key = "RequestIDKey"
)

// String formats the stringified key with additional contextual information
func (k Key) String() string {
	return "conneg context key: " + string(k)
}
