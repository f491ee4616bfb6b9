package aptio

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/BertoldVdb/aptio-tools/aptio/cpusetup"
)

type LogFunc func(level int, format string, param ...interface{})

type Config struct {
	Filename string
	Enable   uint8
	Force    bool

	LogFunc LogFunc
}

type Result struct {
	Input   string
	Output  string
	Changes []cpusetup.Change
}

func (c Config) log(level int, format string, param ...interface{}) {
	if c.LogFunc != nil {
		c.LogFunc(level, format, param...)
	}
}

// OutputPath returns <stem>_hwp<enable><suffix> next to filename.
func OutputPath(filename string, enable uint8) string {
	dir, base := filepath.Split(filename)

	/* A leading or trailing dot does not start a suffix */
	stem, ext := base, ""
	if i := strings.LastIndex(base, "."); i > 0 && i < len(base)-1 {
		stem, ext = base[:i], base[i:]
	}

	return filepath.Join(dir, fmt.Sprintf("%s_hwp%d%s", stem, enable, ext))
}

// PatchFile sets EnableHwp in every CpuSetup record of the input image and
// writes the result to OutputPath. The input file is never modified.
func PatchFile(config Config) (*Result, error) {
	if config.Enable > 1 {
		return nil, fmt.Errorf("%w: got %d", ErrorInvalidState, config.Enable)
	}

	info, err := os.Stat(config.Filename)
	if err != nil || !info.Mode().IsRegular() {
		return nil, fmt.Errorf("%w: %q", ErrorInputNotFound, config.Filename)
	}

	out := OutputPath(config.Filename, config.Enable)
	if !config.Force {
		if _, err := os.Stat(out); err == nil {
			return nil, fmt.Errorf("%w: %q", ErrorOutputExists, out)
		}
	}

	data, err := os.ReadFile(config.Filename)
	if err != nil {
		return nil, err
	}
	config.log(1, "Read %d bytes from %q", len(data), config.Filename)

	changes, err := cpusetup.Patch(data, cpusetup.Marker, cpusetup.SetEnableHwp(config.Enable))
	if err != nil {
		return nil, err
	}

	for _, m := range changes {
		config.log(1, "CpuSetup at 0x%x: EnableHwp %d -> %d", m.Offset, m.Before.EnableHwp, m.After.EnableHwp)
		config.log(2, "Before: %s", m.Before)
	}
	if len(changes) == 0 {
		config.log(0, "No CpuSetup records found in %q", config.Filename)
	}

	if err := writeFile(out, data, config.Force); err != nil {
		return nil, err
	}

	return &Result{
		Input:   config.Filename,
		Output:  out,
		Changes: changes,
	}, nil
}

func writeFile(name string, data []byte, force bool) error {
	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !force {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}

	f, err := os.OpenFile(name, flags, 0644)
	if errors.Is(err, fs.ErrExist) {
		return fmt.Errorf("%w: %q", ErrorOutputExists, name)
	} else if err != nil {
		return err
	}

	_, err = f.Write(data)
	if cerr := f.Close(); err == nil {
		err = cerr
	}
	return err
}
