package main

import (
	"fmt"

	"github.com/BertoldVdb/aptio-tools/aptio/cpusetup"
	"github.com/fatih/color"
)

func hexdump(offset int, data []byte, mark []bool) string {
	var result string
	red := color.New(color.FgRed)

	for len(data) > 0 {
		l := len(data)
		if l > 32 {
			l = 32
		}
		work := data[:l]
		data = data[l:]
		var workMark []bool
		if mark != nil {
			workMark = mark[:l]
			mark = mark[l:]
		}

		var workHex string
		var workAscii string
		for i := 0; i < 32; i++ {
			if i >= len(work) {
				workHex += "   "
				workAscii += " "
			} else {
				m := work[i]
				delta := workMark != nil && workMark[i]

				c := m
				if c < 32 || c > 126 {
					c = '.'
				}
				if delta {
					workHex += red.Sprintf("%02x ", m)
					workAscii += red.Sprintf("%c", c)
				} else {
					workHex += fmt.Sprintf("%02x ", m)
					workAscii += fmt.Sprintf("%c", c)
				}
			}
			if i%8 == 7 {
				workHex += " "
			}
		}

		result += fmt.Sprintf("%08x  %s|%s|\n", offset, workHex, workAscii)
		offset += l
	}

	return result
}

/* Marker plus record, before and after, with changed bytes marked */
func dumpChange(c cpusetup.Change) string {
	before := c.Before.Bytes()
	after := c.After.Bytes()

	start := c.Offset - len(cpusetup.Marker)
	mark := make([]bool, len(cpusetup.Marker)+cpusetup.Size)
	for i := range after {
		mark[len(cpusetup.Marker)+i] = before[i] != after[i]
	}

	old := append(append([]byte(nil), cpusetup.Marker...), before[:]...)
	patched := append(append([]byte(nil), cpusetup.Marker...), after[:]...)

	return fmt.Sprintf("CpuSetup @ 0x%x\n  before: %s  after:  %s", c.Offset, hexdump(start, old, nil), hexdump(start, patched, mark))
}
