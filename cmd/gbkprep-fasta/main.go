// cmd/gbkprep-fasta/main.go
package main

import (
	"gbkprep/internal/appshell"
	"gbkprep/internal/fastaapp"
)

func main() {
	appshell.Main(fastaapp.RunContext)
}
