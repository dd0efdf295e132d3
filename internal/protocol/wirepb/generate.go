// Package wirepb holds the protobuf messages exchanged between the hub and
// its clients.
package wirepb

//go:generate protoc --go_out=. --go_opt=paths=source_relative wire.proto
