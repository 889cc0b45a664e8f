// Command motif runs subgraph-isomorphism experiments from the terminal:
// it samples a random labeled data graph, extracts an embeddable query
// pattern, and enumerates every embedding.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
