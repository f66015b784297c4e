// Package gate decides whether a run may proceed before anything is mutated.
//
// Each check is a function of explicit inputs so it can be tested without
// changing real process state; Probe collects the ambient values once at
// startup:
//
//   - CheckSelfConsume: installed binary, inside a container, running as root
//   - CheckDryRunTarget: the dry-run directory is missing or empty
//   - CheckPrivilege: real runs need euid 0
//   - CheckOSFamily: os-release ID or ID_LIKE names the supported family
//
// The driver runs the checks once, in order, and any failure ends the run.
package gate
