// Command cutsearch finds the cheapest set of edges whose removal
// disconnects two terminals of an undirected weighted graph.
//
// Usage:
//
//	cutsearch solve machine_room.txt
//	cutsearch path machine_room.txt
//	cutsearch verify machine_room.txt 2-3
//	cutsearch bound machine_room.txt
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
