// cmd/asoscreen/main.go
package main

import (
	"github.com/Elococin/aso-offtarget-pipeline/internal/app"
	"github.com/Elococin/aso-offtarget-pipeline/internal/appshell"
)

func main() {
	appshell.Main(app.RunContext)
}
