package ports

import (
	"context"
	"net"
)

// Responder binds addr and serves the fixed reply until ctx is done.
// ready is called once, after a successful bind, with the bound address.
type Responder interface {
	ListenAndServe(ctx context.Context, addr string, ready func(net.Addr)) error
}
