// SPDX-License-Identifier: Apache-2.0
// Copyright (c) 2025 Mufeed Ali

package main

import "ttr/cmd/cli"

func main() {
	cli.RunCLI()
}
