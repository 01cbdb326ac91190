// Package commands implements the passvault CLI.
//
// The vault is created on first save; there is no separate init step.
// Every command that touches the vault takes the master passphrase
// from --passphrase or prompts for it without echo.
package commands
