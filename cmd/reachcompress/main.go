// Command reachcompress builds and queries compressed reachability
// indices over directed graphs and hypergraphs.
package main

import "github.com/katalvlaran/reachcompress/cmd/reachcompress/cli"

func main() {
	cli.Execute()
}
