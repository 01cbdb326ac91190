// Package app wires application dependencies for the CLI.
//
// Config is layered from defaults, a passvault.yaml file, PASSVAULT_*
// environment variables and command-line flags. Wire builds the
// concrete deriver, codec, store and identity provisioner from it,
// exposing them for commands to use.
package app
