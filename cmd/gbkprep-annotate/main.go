// cmd/gbkprep-annotate/main.go
package main

import (
	"gbkprep/internal/annotateapp"
	"gbkprep/internal/appshell"
)

func main() {
	appshell.Main(annotateapp.RunContext)
}
