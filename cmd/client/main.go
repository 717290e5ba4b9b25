package main

import (
	"os"

	"github.com/MKhiriev/go-tabpfn-client/cmd/client/commands"
	"github.com/MKhiriev/go-tabpfn-client/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	if err := commands.Execute(info); err != nil {
		os.Exit(1)
	}
}
