package failure

import (
	"log/slog"

	"shopadmin/internal/apis/backend/endpoints"
)

// MaintenanceLocation is where the app is sent when the backend is down.
const MaintenanceLocation = "/maintenance"

type Kind int

const (
	// KindClient: a reply with status < 500, or an error raised before any request left.
	KindClient Kind = iota
	// KindNetwork: no reply received.
	KindNetwork
	// KindServer: a reply with status >= 500.
	KindServer
)

func (k Kind) String() string {
	switch k {
	case KindNetwork:
		return "network"
	case KindServer:
		return "server"
	default:
		return "client"
	}
}

// Unavailable reports whether the kind means the backend itself is unusable.
func (k Kind) Unavailable() bool {
	return k == KindNetwork || k == KindServer
}

func Classify(err error) Kind {
	if endpoints.IsNetwork(err) {
		return KindNetwork
	}
	if status, ok := endpoints.StatusCode(err); ok && status >= 500 {
		return KindServer
	}
	return KindClient
}

type Navigator interface {
	Navigate(location string)
}

type Policy struct {
	Nav   Navigator
	Log   *slog.Logger
	Retry RetryPolicy
}

func NewPolicy(nav Navigator, retry RetryPolicy, log *slog.Logger) *Policy {
	if log == nil {
		log = slog.Default()
	}
	return &Policy{Nav: nav, Log: log, Retry: retry.withDefaults()}
}

// Handle sends the app to maintenance on network and server failures and
// returns err unchanged in every case.
func (p *Policy) Handle(op string, err error) error {
	if err == nil {
		return nil
	}
	kind := Classify(err)
	if !kind.Unavailable() {
		return err
	}
	p.Log.Warn("backend unavailable", "op", op, "kind", kind.String(), "err", err)
	p.toMaintenance()
	return err
}

func (p *Policy) toMaintenance() {
	if p.Nav != nil {
		p.Nav.Navigate(MaintenanceLocation)
	}
}
