// Package services implements the driving port interfaces.
// Services contain the core parsing logic and orchestrate
// calls to driven ports (extractors and the chunker).
//
// Services are pure Go and perform no I/O.
package services
