package cairo1compile

// Version is the release of this module. Release builds set it with
// -ldflags "-X github.com/aretw0/cairo1-compile.Version=...".
var Version = "0.1.0-dev"
