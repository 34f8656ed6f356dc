package main

import (
	. "github.com/saylorsolutions/modmake"
)

const (
	mcryptVersion = "0.1.0"
)

func main() {
	b := NewBuild()
	b.Generate().DependsOnRunner("tidy", "", Go().ModTidy())

	mcrypt := NewAppBuild("mcrypt", "cmd/mcrypt", mcryptVersion)
	mcrypt.Build(func(gb *GoBuild) {
		gb.
			StripDebugSymbols().
			SetVariable("main", "version", mcryptVersion).
			CgoEnabled(false)
	})
	mcrypt.Variant("windows", "amd64")
	mcrypt.Variant("linux", "amd64")
	mcrypt.Variant("linux", "arm64")
	mcrypt.Variant("darwin", "amd64")
	mcrypt.Variant("darwin", "arm64")
	b.ImportApp(mcrypt)

	b.Execute()
}
