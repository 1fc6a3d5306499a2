package main

import (
	"github.com/ifmsabrazil/adminpanel/cmd"
	"github.com/ifmsabrazil/adminpanel/config"
)

var version = "dev"

func main() {
	cmd.SetVersion(version)
	if err := cmd.Execute(); err != nil {
		config.Exitf("adminpanel: %v", err)
	}
}
