package main

import "github.com/thenoetrevino/staffdesk/cmd"

func main() {
	cmd.Execute()
}
