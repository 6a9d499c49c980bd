package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/sanyco86/sample-app/cmd"
)

var (
	version = "0.0.1"
	commit  = ""
	date    = ""
	builtBy = ""
)

func main() {
	showVersion := flag.Bool("version", false, "print version information and exit")
	flag.Parse()

	info := cmd.BuildVersion(version, commit, date, builtBy)
	if *showVersion {
		fmt.Println(info.String())
		return
	}

	if err := cmd.Start(info); err != nil {
		fmt.Printf("server run into an error: %s", err)
		os.Exit(1)
	}
}
