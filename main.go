/*
Copyright © 2024-2025 Macaroni OS Linux
See AUTHORS and LICENSE for the license details and contributors.
*/
package main

import (
	"github.com/macaroni-os/simple-ut/cmd"

	_ "github.com/macaroni-os/simple-ut/pkg/samples"
)

func main() {
	cmd.Execute()
}
