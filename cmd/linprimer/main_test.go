package main

import (
	"bytes"
	"slices"
	"strings"
	"testing"
)

func TestNegativeArgs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want []string
	}{
		{"negative value", []string{"truncate", "-0.871", "2"}, []string{"truncate", "--", "-0.871", "2"}},
		{"flag after", []string{"truncate", "-0.871", "2", "--fixed"}, []string{"truncate", "--fixed", "--", "-0.871", "2"}},
		{
			"persistent flag with value",
			[]string{"--theme", "retro", "matrix", "-1,2;3,4", "--env", "pmatrix"},
			[]string{"matrix", "--theme", "retro", "--env", "pmatrix", "--", "-1,2;3,4"},
		},
		{"inline flag value", []string{"matrix", "--env=vmatrix", "-.5"}, []string{"matrix", "--env=vmatrix", "--", "-.5"}},
		{"positive", []string{"truncate", "0.5", "1"}, []string{"truncate", "0.5", "1"}},
		{"already separated", []string{"truncate", "--", "-1"}, []string{"truncate", "--", "-1"}},
		{"negative flag value", []string{"export-svg", "vectors", "1", "--tick", "-1"}, []string{"export-svg", "vectors", "1", "--tick", "-1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := negativeArgs(newRootCmd(), tt.args)
			if !slices.Equal(got, tt.want) {
				t.Errorf("negativeArgs(%q) = %q, want %q", tt.args, got, tt.want)
			}
		})
	}
}

func execute(t *testing.T, args ...string) string {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(negativeArgs(root, args))
	if err := root.Execute(); err != nil {
		t.Fatalf("%q: %v (%s)", args, err, out.String())
	}
	return out.String()
}

func TestTruncateCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"truncate", "0.879", "2"}, "0.87"},
		{[]string{"truncate", "-0.871", "2"}, "-0.88"},
		{[]string{"truncate", "-0.871", "2", "--fixed"}, "-0.88"},
		{[]string{"truncate", "1.5", "2", "--fixed"}, "1.50"},
		{[]string{"truncate", "0.12345678901", "010"}, "0.123456789"},
		{[]string{"truncate", "0.999", "08"}, "0.999"},
		{[]string{"truncate", "1", "-400"}, "0"},
	}

	for _, tt := range tests {
		t.Run(strings.Join(tt.args, " "), func(t *testing.T) {
			if got := strings.TrimSpace(execute(t, tt.args...)); got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestMatrixCommandNegativeLiteral(t *testing.T) {
	got := strings.TrimSpace(execute(t, "matrix", "-1,2;3,4", "--raw"))
	want := `\begin{bmatrix} -1 & 2 \\ 3 & 4 \end{bmatrix}`
	if got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
