// cmd/fasta2txt/main.go
package main

import (
	"pizzachili/internal/appshell"
	"pizzachili/internal/concatapp"
)

func main() { appshell.Main(concatapp.RunContext) }
