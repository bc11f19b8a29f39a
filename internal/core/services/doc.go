// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The recommendation selector (SelectBands) is a pure function of its
// inputs and the injected sampler. Services are pure Go with no CGO.
package services
