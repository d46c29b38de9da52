package version

import "fmt"

const (
	Version = "v0.1.0"

	colorReset     = "\033[0m"
	colorCyanBold  = "\033[36;1m"
	bannerHomepage = "https://github.com/nsqlite/mcpsqlite"
)

// asciiArtTpl returns the ASCII art of mcpsqlite.
func asciiArtTpl() string {
	asciiArt := `
                             _____ _
   ____ ___  _________  ___ / ___/(_)___ _
  / __ '__ \/ ___/ __ \/ __/\__ \/ / __ '/
 / / / / / / /__/ /_/ (__  )__/ / / /_/ /
/_/ /_/ /_/\___/ .___/____/____/_/\__, /
              /_/                   /_/
%s ` + Version + `
For more information visit ` + bannerHomepage

	asciiArt = asciiArt[1:] // drop the leading newline
	asciiArt = colorCyanBold + asciiArt + colorReset

	return asciiArt
}

// ServerVersion returns the banner of the mcpsqlited server.
func ServerVersion() string {
	return fmt.Sprintf(asciiArtTpl(), "Server")
}

// ClientVersion returns the banner of the mcpsqlite REPL.
func ClientVersion() string {
	return fmt.Sprintf(asciiArtTpl(), "CLI")
}

// BenchVersion returns the banner of the mcpsqlitebench tool.
func BenchVersion() string {
	return fmt.Sprintf(asciiArtTpl(), "Bench")
}
