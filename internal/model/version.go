package model

// Version is the released version, overridden at build time with -ldflags.
var Version = "0.3.0"
