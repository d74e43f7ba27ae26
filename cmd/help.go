package cmd

import (
	"fmt"
	"io"

	"github.com/Devon-White/openssg/internal/config"
)

const optionDescription = `Available options:
[-v | --version]			Display program information
[-h | --help]				Display how to use options
[-i | --input <file-or-folder>]		Specify input file or folder
[-o | --output <folder-name>]		Specify output folder. Default is ` + config.DefaultOutputDir + `
[-s | --stylesheet <CSS-URL...>]	Add CSS links to each of the html files
`

func printVersion(w io.Writer) {
	fmt.Fprintf(w, "%s version %s, %s\n", config.ProgramName, config.Version, config.ReleaseDate)
}

func printHelp(w io.Writer) {
	fmt.Fprintf(w, "usage: %s <option>\n\n%s", config.ProgramName, optionDescription)
}
