package mcp

import "os"

// SelectorAll enables or disables every catalog server at once.
const SelectorAll = "all"

// ResolveServers maps a command-line selector to the servers it names:
// "all" is the full catalog, anything else is a single server lookup.
// An unknown selector fails before any configuration file is touched.
func ResolveServers(selector string) ([]Server, error) {
	if selector == SelectorAll {
		return Servers(), nil
	}
	server, err := FindServer(selector)
	if err != nil {
		return nil, err
	}
	return []Server{server}, nil
}

// Outcome classifies a target's result within a batch operation.
type Outcome int

const (
	OutcomeOK Outcome = iota
	OutcomeSkipped
	OutcomeFailed
)

// TargetResult is one target's outcome in a batch enable or disable.
type TargetResult struct {
	Target  string
	Outcome Outcome
	// Message carries the failure or skip reason.
	Message string
}

// BatchResult aggregates a batch operation across all targets.
type BatchResult struct {
	Results   []TargetResult
	Succeeded int
	Skipped   int
	Failed    int
}

// EnableServers enables every given server on every installed target.
// Targets that are not installed are skipped. A failure on one server or
// one target never aborts the rest of the batch; it is recorded in that
// target's result and iteration continues.
func EnableServers(targets []Target, servers []Server) BatchResult {
	return applyServers(targets, servers, func(t Target, s Server) error {
		_, err := t.Config.Enable(s)
		return err
	})
}

// DisableServers disables every given server on every installed target,
// with the same skip and failure-isolation behavior as EnableServers.
func DisableServers(targets []Target, servers []Server) BatchResult {
	return applyServers(targets, servers, func(t Target, s Server) error {
		_, err := t.Config.Disable(s)
		return err
	})
}

func applyServers(targets []Target, servers []Server, apply func(Target, Server) error) BatchResult {
	var batch BatchResult
	for _, target := range targets {
		if !target.IsInstalled() {
			batch.Results = append(batch.Results, TargetResult{
				Target:  target.Name,
				Outcome: OutcomeSkipped,
				Message: "not installed",
			})
			batch.Skipped++
			continue
		}

		result := TargetResult{Target: target.Name, Outcome: OutcomeOK}
		for _, server := range servers {
			if err := apply(target, server); err != nil {
				// Keep going through the remaining servers; the first
				// error becomes the target's reported message.
				if result.Outcome != OutcomeFailed {
					result.Outcome = OutcomeFailed
					result.Message = err.Error()
				}
			}
		}
		if result.Outcome == OutcomeFailed {
			batch.Failed++
		} else {
			batch.Succeeded++
		}
		batch.Results = append(batch.Results, result)
	}
	return batch
}

// DoctorEntry is one target's diagnostic row: read-only, no mutation.
type DoctorEntry struct {
	Target       string
	Installed    bool
	ConfigPath   string
	ConfigExists bool
}

// Doctor reports installation state and configuration paths for all targets.
func Doctor(targets []Target) []DoctorEntry {
	entries := make([]DoctorEntry, 0, len(targets))
	for _, target := range targets {
		path := target.Config.Path()
		_, statErr := os.Stat(path)
		entries = append(entries, DoctorEntry{
			Target:       target.Name,
			Installed:    target.IsInstalled(),
			ConfigPath:   path,
			ConfigExists: statErr == nil,
		})
	}
	return entries
}
