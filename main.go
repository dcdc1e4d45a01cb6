package main

import "github.com/fschutt/erp-site/cmd"

func main() {
	cmd.Execute()
}
