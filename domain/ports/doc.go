// Package ports defines interfaces for the collaborators of the interpreter
// core. These ports enable dependency inversion - the lifecycle manager
// depends on abstractions, and infrastructure adapters implement them.
package ports
