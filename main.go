// htmlmd converts HTML documents and websites into Markdown, JSON, or PDF.
package main

import "github.com/gaurav-prasanna/htmlmd/cmd"

func main() {
	cmd.Execute()
}
