// Command dartctl inspects, builds, validates, and merges finalized
// dartbuf documents from the shell. Grounded on hivekit's cmd/hivectl,
// the same cobra-based command-per-file layout generalized from registry
// hive operations to dartbuf document operations.
package main

func main() {
	execute()
}
