package aptio

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/BertoldVdb/aptio-tools/aptio/cpusetup"
	"github.com/stretchr/testify/require"
)

var testImage = append([]byte("CpuSetup\x00"), 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 0)

func writeInput(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0644))
	return path
}

func TestOutputPath(t *testing.T) {
	tests := []struct {
		in     string
		enable uint8
		want   string
	}{
		{"bios.bin", 1, "bios_hwp1.bin"},
		{"bios.bin", 0, "bios_hwp0.bin"},
		{filepath.Join("dir", "sub", "image.rom"), 1, filepath.Join("dir", "sub", "image_hwp1.rom")},
		{"archive.tar.gz", 1, "archive.tar_hwp1.gz"},
		{"noext", 0, "noext_hwp0"},
		{".hidden", 1, ".hidden_hwp1"},
		{"trailing.", 1, "trailing._hwp1"},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			require.Equal(t, tc.want, OutputPath(tc.in, tc.enable))
		})
	}
}

func TestPatchFileEnable(t *testing.T) {
	in := writeInput(t, "bios.bin", testImage)

	var logged []string
	res, err := PatchFile(Config{
		Filename: in,
		Enable:   1,
		LogFunc: func(level int, format string, param ...interface{}) {
			logged = append(logged, fmt.Sprintf(format, param...))
		},
	})
	require.NoError(t, err)
	require.Equal(t, filepath.Join(filepath.Dir(in), "bios_hwp1.bin"), res.Output)
	require.Len(t, res.Changes, 1)
	require.NotEmpty(t, logged)

	out, err := os.ReadFile(res.Output)
	require.NoError(t, err)
	require.Equal(t, append([]byte("CpuSetup\x00"), 1, 2, 3, 4, 5, 6, 7, 8, 9, 10, 11, 1), out)

	/* Input untouched */
	orig, err := os.ReadFile(in)
	require.NoError(t, err)
	require.Equal(t, testImage, orig)
}

func TestPatchFileSameValue(t *testing.T) {
	in := writeInput(t, "bios.bin", testImage)

	res, err := PatchFile(Config{Filename: in, Enable: 0})
	require.NoError(t, err)

	out, err := os.ReadFile(res.Output)
	require.NoError(t, err)
	require.Equal(t, testImage, out)
}

func TestPatchFileNoMatch(t *testing.T) {
	data := bytes.Repeat([]byte{0xde, 0xad, 0xbe, 0xef}, 64)
	in := writeInput(t, "plain.bin", data)

	res, err := PatchFile(Config{Filename: in, Enable: 1})
	require.NoError(t, err)
	require.Empty(t, res.Changes)

	out, err := os.ReadFile(res.Output)
	require.NoError(t, err)
	require.Equal(t, data, out)
}

func TestPatchFileOutputExists(t *testing.T) {
	in := writeInput(t, "bios.bin", testImage)
	existing := OutputPath(in, 1)
	require.NoError(t, os.WriteFile(existing, []byte("keep"), 0644))

	t.Run("Without force", func(t *testing.T) {
		_, err := PatchFile(Config{Filename: in, Enable: 1})
		require.ErrorIs(t, err, ErrorOutputExists)

		out, err := os.ReadFile(existing)
		require.NoError(t, err)
		require.Equal(t, []byte("keep"), out)
	})

	t.Run("With force", func(t *testing.T) {
		_, err := PatchFile(Config{Filename: in, Enable: 1, Force: true})
		require.NoError(t, err)

		first, err := os.ReadFile(existing)
		require.NoError(t, err)
		require.Equal(t, byte(1), first[len(first)-1])

		_, err = PatchFile(Config{Filename: in, Enable: 1, Force: true})
		require.NoError(t, err)

		second, err := os.ReadFile(existing)
		require.NoError(t, err)
		require.Equal(t, first, second)
	})
}

func TestPatchFileInputNotFound(t *testing.T) {
	dir := t.TempDir()

	t.Run("Missing", func(t *testing.T) {
		_, err := PatchFile(Config{Filename: filepath.Join(dir, "missing.bin"), Enable: 1})
		require.ErrorIs(t, err, ErrorInputNotFound)
	})

	t.Run("Directory", func(t *testing.T) {
		_, err := PatchFile(Config{Filename: dir, Enable: 1})
		require.ErrorIs(t, err, ErrorInputNotFound)
	})
}

func TestPatchFileInvalidState(t *testing.T) {
	in := writeInput(t, "bios.bin", testImage)

	_, err := PatchFile(Config{Filename: in, Enable: 2})
	require.ErrorIs(t, err, ErrorInvalidState)

	_, err = os.Stat(OutputPath(in, 2))
	require.True(t, os.IsNotExist(err))
}

func TestPatchFileTruncated(t *testing.T) {
	data := append(append([]byte(nil), testImage...), []byte("CpuSetup\x00\x01\x02")...)
	in := writeInput(t, "bios.bin", data)

	_, err := PatchFile(Config{Filename: in, Enable: 1})
	require.ErrorIs(t, err, cpusetup.ErrorTruncatedRecord)

	_, err = os.Stat(OutputPath(in, 1))
	require.True(t, os.IsNotExist(err))
}
