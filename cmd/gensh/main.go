// cmd/gensh/main.go
package main

import (
	"pizzachili/internal/appshell"
	"pizzachili/internal/shgenapp"
)

func main() { appshell.Main(shgenapp.RunContext) }
