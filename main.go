// Reprise drills memorised text through cloze deletions.
package main

import "github.com/mouse-blink/reprise/cmd"

func main() {
	cmd.Execute()
}
