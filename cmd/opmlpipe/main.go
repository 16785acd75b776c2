// Command opmlpipe converts OPML outlines. See "opmlpipe --help".
package main

import "github.com/gaurav-prasanna/opmlpipe/cmd"

func main() {
	cmd.Execute()
}
