package main

import (
	"os"

	"github.com/msto63/snowflake/cmd/snowflake/cmd"
	sferror "github.com/msto63/snowflake/foundation/core/error"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(sferror.GetCode(err).ExitCode())
	}
}
