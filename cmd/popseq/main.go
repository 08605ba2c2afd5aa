// cmd/popseq/main.go
package main

import (
	"popseq/internal/app"
	"popseq/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
