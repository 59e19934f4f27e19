package main

// _version is the version of pyg.
// Overridden at release time with:
//
//	go build -ldflags "-X main._version=..."
var _version = "dev"
