// cmd/gbkprep-gbk/main.go
package main

import (
	"gbkprep/internal/appshell"
	"gbkprep/internal/gbkapp"
)

func main() {
	appshell.Main(gbkapp.RunContext)
}
