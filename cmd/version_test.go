package cmd

import (
	"bytes"
	"runtime/debug"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Output(t *testing.T) {
	cmd := newVersionCmd()

	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{})

	err := cmd.Execute()
	require.NoError(t, err)

	output := out.String()
	if strings.Contains(output, "version: unknown") {
		assert.Contains(t, output, "version: unknown")
		return
	}

	assert.Contains(t, output, "fixpool version")
	assert.Contains(t, output, "go version")
}

func TestVersionLines(t *testing.T) {
	mainModule := debug.Module{Path: "fixpool.dev/pkg/fixpool", Version: "v0.3.0"}

	tests := []struct {
		name string
		info *debug.BuildInfo
		want []string
	}{
		{
			name: "no build info",
			want: []string{"version: unknown"},
		},
		{
			name: "empty main version",
			info: &debug.BuildInfo{GoVersion: "go1.25.1"},
			want: []string{"version: unknown"},
		},
		{
			name: "without vcs stamp",
			info: &debug.BuildInfo{GoVersion: "go1.25.1", Main: mainModule},
			want: []string{"fixpool version\tv0.3.0", "go version\tgo1.25.1"},
		},
		{
			name: "clean checkout",
			info: &debug.BuildInfo{
				GoVersion: "go1.25.1",
				Main:      mainModule,
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "0123456789abcdef0123"},
					{Key: "vcs.modified", Value: "false"},
				},
			},
			want: []string{"fixpool version\tv0.3.0", "go version\tgo1.25.1", "commit\t\t0123456789ab"},
		},
		{
			name: "dirty checkout",
			info: &debug.BuildInfo{
				GoVersion: "go1.25.1",
				Main:      mainModule,
				Settings: []debug.BuildSetting{
					{Key: "vcs.revision", Value: "abc123"},
					{Key: "vcs.modified", Value: "true"},
				},
			},
			want: []string{"fixpool version\tv0.3.0", "go version\tgo1.25.1", "commit\t\tabc123 (modified)"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, versionLines(tt.info))
		})
	}
}
