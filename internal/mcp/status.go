package mcp

import "sync"

// Status is the observed enablement state of one (target, server) pair.
type Status int

// StatusUnknown is the zero value so that a missing matrix entry never
// reads as enabled.
const (
	StatusUnknown Status = iota
	StatusEnabled
	StatusDisabled
	StatusNotInstalled
)

func (s Status) String() string {
	switch s {
	case StatusEnabled:
		return "enabled"
	case StatusDisabled:
		return "disabled"
	case StatusNotInstalled:
		return "not installed"
	default:
		return "unknown"
	}
}

// StatusKey identifies one cell of the status matrix.
type StatusKey struct {
	Target string
	Server string
}

// ProbeAll determines the status of every (target, server) pair. One
// worker runs per target: the installation check is the expensive step and
// bounds file-descriptor use far better than a worker per pair. Workers
// write disjoint key ranges into a shared map under a single mutex and are
// all joined before the map is returned. A worker's failure narrows its own
// entries to StatusUnknown; it never aborts the probe.
func ProbeAll(targets []Target, servers []Server) map[StatusKey]Status {
	results := make(map[StatusKey]Status, len(targets)*len(servers))
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, target := range targets {
		wg.Add(1)
		go func(target Target) {
			defer wg.Done()
			installed := target.IsInstalled()
			for _, server := range servers {
				var status Status
				if !installed {
					status = StatusNotInstalled
				} else {
					switch enabled, err := target.Config.IsEnabled(server); {
					case err != nil:
						status = StatusUnknown
					case enabled:
						status = StatusEnabled
					default:
						status = StatusDisabled
					}
				}
				mu.Lock()
				results[StatusKey{Target: target.Name, Server: server.ID}] = status
				mu.Unlock()
			}
		}(target)
	}

	wg.Wait()
	return results
}
