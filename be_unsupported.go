//go:build !(amd64 || arm64 || 386 || arm || riscv64 || loong64 || mipsle || mips64le || ppc64le || wasm)

package main

// The oto backend hands float32 samples to a FormatFloat32LE stream by
// reinterpreting their memory, which only works in little-endian order.
var _ = "VoiceCard requires a little-endian architecture" + 1
