// Command uniseparate converts between CSV and USV files.
//
//	uniseparate convert people.csv            # writes people.usv
//	uniseparate convert --replace notes.usv   # rewrites notes.usv as CSV
//	uniseparate stats people.csv
//	uniseparate browse --dir ./exports
package main

import "github.com/JonMunkholm/uniseparate/internal/cli"

func main() {
	cli.Main()
}
