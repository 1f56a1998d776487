// cmd/linscan/main.go
package main

import (
	"pizzachili/internal/appshell"
	"pizzachili/internal/scanapp"
)

func main() { appshell.Main(scanapp.RunContext) }
