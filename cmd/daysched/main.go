package main

import (
	"os"

	"github.com/daysched/daysched/cmd/daysched/cmd"
	"github.com/daysched/daysched/internal/common"
)

func main() {
	common.ConfigureLogging()
	common.BindCommandlineArguments()
	err := cmd.RootCmd().Execute()
	if err != nil {
		os.Exit(1)
	}
}
