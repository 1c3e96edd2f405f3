package flagx

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFilterArgs(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		allowed []string
		want    []string
	}{
		{
			name:    "separate value argument",
			args:    []string{"-c", "conf.json", "-l", "debug"},
			allowed: []string{"-c"},
			want:    []string{"-c", "conf.json"},
		},
		{
			name:    "equals form",
			args:    []string{"-config=conf.json", "-l", "debug"},
			allowed: []string{"-config"},
			want:    []string{"-config=conf.json"},
		},
		{
			name:    "bool flag followed by another flag",
			args:    []string{"-x", "-l", "debug"},
			allowed: []string{"-x", "-l"},
			want:    []string{"-x", "-l", "debug"},
		},
		{
			name:    "nothing allowed",
			args:    []string{"-c", "conf.json"},
			allowed: []string{"-d"},
			want:    []string{},
		},
		{
			name:    "empty args",
			args:    []string{},
			allowed: []string{"-c"},
			want:    []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FilterArgs(tt.args, tt.allowed))
		})
	}
}

func TestConfigFileFlag(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	os.Args = []string{"testbin", "-c", "short.json"}
	assert.Equal(t, "short.json", ConfigFileFlag())

	os.Args = []string{"testbin", "-config", "long.json"}
	assert.Equal(t, "long.json", ConfigFileFlag())

	// The long form wins when both are present.
	os.Args = []string{"testbin", "-c", "short.json", "-config", "long.json"}
	assert.Equal(t, "long.json", ConfigFileFlag())

	os.Args = []string{"testbin"}
	assert.Equal(t, "", ConfigFileFlag())
}
