package sysutil

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
)

// clearSequence moves the cursor home and erases the screen.
const clearSequence = "\033[H\033[2J"

// ClearTerminal clears the terminal screen in supported operating systems.
func ClearTerminal() {
	clearTerminal(runtime.GOOS, os.Stdout)
}

func clearTerminal(goos string, w io.Writer) {
	if goos == "windows" {
		cmd := exec.Command("cmd", "/c", "cls")
		cmd.Stdout = w
		if err := cmd.Run(); err == nil {
			return
		}
	}

	fmt.Fprint(w, clearSequence)
}
