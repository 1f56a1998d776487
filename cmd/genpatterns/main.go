// cmd/genpatterns/main.go
package main

import (
	"pizzachili/internal/appshell"
	"pizzachili/internal/patternapp"
)

func main() { appshell.Main(patternapp.RunContext) }
