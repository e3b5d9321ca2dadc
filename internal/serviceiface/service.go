package serviceiface

// Service is the unit the app manager sequences: each backend service exposes
// a name and non-blocking start/stop hooks.
type Service interface {
	Name() string
	Start() error
	Stop() error
}
