// Author: Kaviru Hapuarachchi
// GitHub: https://github.com/Kavirubc
// Created: 2026-10-17
// Last Modified: 2026-10-17

// Package main is the entry point for the gc2gh CLI.
package main

import "github.com/similigh/gc2gh/cmd/gc2gh/commands"

func main() {
	commands.Execute()
}
