// Package wazero adapts a WASM build of the interpreter runtime to the
// ports.Runtime contract. The module binary is compiled once at startup;
// each execution instantiates a fresh module with its stdio bound to the
// registered stream adapters.
package wazero
