package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"
)

const testListingsJSON = `[
  {
    "id": "frontend",
    "title": "Frontend Developer Intern",
    "description": "Software programming internship for students",
    "category": "technology",
    "location": "Singapore",
    "skills": ["React", "JavaScript", "HTML", "CSS"],
    "requirements": ["Entry level"]
  },
  {
    "id": "finance",
    "title": "Finance Analyst Intern",
    "description": "Budget forecasting spreadsheets",
    "category": "finance",
    "location": "Jakarta",
    "skills": ["Excel"],
    "requirements": ["Senior analyst mentorship"]
  }
]`

const testProfileJSON = `{
  "id": "student-1",
  "skills": ["React", "JavaScript", "HTML", "CSS"],
  "major": "Computer Science",
  "location": "Singapore",
  "experience": [],
  "education": []
}`

// writeFile writes content into the test's temp dir and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

// resetFlags restores every flag on every command to its default so tests do not leak state.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, sub := range cmd.Commands() {
		resetFlags(sub)
	}
}

// execute runs the root command with args and returns stdout and the error.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")
	resetFlags(rootCmd)

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})

	err := rootCmd.Execute()
	return stdout.String(), err
}
