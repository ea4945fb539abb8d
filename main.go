package main

import (
	"fmt"
	"os"

	"github.com/BerryBytes/agsctl/cmd/root"
	generalutils "github.com/BerryBytes/agsctl/utils/general"
)

func main() {
	ctx := generalutils.NewGeneralUtilsManager().HandleSignals()
	if err := root.RootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
