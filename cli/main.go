package main

import (
	"fmt"
	"io"
	"os"

	"github.com/BertoldVdb/aptio-tools/aptio"
	"github.com/alecthomas/kong"
	"github.com/fatih/color"
)

type PatchCmd struct {
	Filename string `arg:"" help:"The binary BIOS file."`
	Enable   uint8  `arg:"" name:"enable_disable" type:"state" help:"1 to enable, 0 to disable."`

	Force    bool `optional:"" short:"f" help:"Write the output file even if it already exists."`
	Dump     bool `optional:"" help:"Show a hexdump of every CpuSetup record before and after patching."`
	LogLevel int  `optional:"" help:"Higher values give more output."`
}

var CLI PatchCmd

func (p *PatchCmd) Run(w io.Writer) error {
	config := aptio.Config{
		Filename: p.Filename,
		Enable:   p.Enable,
		Force:    p.Force,

		LogFunc: func(level int, format string, param ...interface{}) {
			if level > p.LogLevel {
				return
			}
			str := fmt.Sprintf(format, param...)
			fmt.Fprintf(w, "APTIO(%d): %s\n", level, str)
		},
	}

	res, err := aptio.PatchFile(config)
	if err != nil {
		return err
	}

	if p.Dump {
		for _, m := range res.Changes {
			fmt.Fprint(w, dumpChange(m))
		}
	}

	color.New(color.FgGreen).Fprintf(w, "Wrote %q (%d CpuSetup records)\n", res.Output, len(res.Changes))
	return nil
}

func main() {
	k, err := kong.New(&CLI,
		kong.Name("aptio-hwp"),
		kong.Description("Enable/disable HWP in an Aptio V BIOS."),
		kong.NamedMapper("state", stateMapper{}))
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	_, err = k.Parse(os.Args[1:])
	k.FatalIfErrorf(err)

	err = CLI.Run(os.Stdout)
	k.FatalIfErrorf(err)
}
