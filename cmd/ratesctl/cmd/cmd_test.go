package cmd

import (
	"bytes"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	resetFlags()
	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

// resetFlags restores flag defaults between executions of the shared command tree.
func resetFlags() {
	quoteCmd.Flags().VisitAll(func(f *pflag.Flag) {
		if sv, ok := f.Value.(pflag.SliceValue); ok {
			_ = sv.Replace(nil)
		} else {
			_ = f.Value.Set(f.DefValue)
		}
		f.Changed = false
	})
}

func TestQuote_Offline(t *testing.T) {
	out, _, err := run(t, "quote", "--offline",
		"--unit", "Deluxe Suite", "--arrival", "15/12/2024", "--departure", "20/12/2024", "--ages", "25,30,8")
	require.NoError(t, err)

	var resp map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "Deluxe Suite", resp["Unit Name"])
	assert.Equal(t, "2024-12-15 to 2024-12-20", resp["Date Range"])
	assert.Equal(t, true, resp["Availability"])
	assert.Equal(t, true, resp["Synthetic"])
}

func TestQuote_Invalid(t *testing.T) {
	_, errOut, err := run(t, "quote", "--offline",
		"--unit", "Deluxe Suite", "--arrival", "31/02/2024", "--departure", "20/12/2024", "--ages", "25")
	require.Error(t, err)
	assert.Contains(t, errOut, "Arrival date must be in dd/mm/yyyy format")
}

func TestQuote_ZeroOccupantsIsRejected(t *testing.T) {
	_, errOut, err := run(t, "quote", "--offline", "--occupants", "0",
		"--unit", "Deluxe Suite", "--arrival", "15/12/2024", "--departure", "20/12/2024", "--ages", "25")
	require.Error(t, err)
	assert.Contains(t, errOut, "Occupants must be a positive integer")
}

func TestQuote_ExplicitOccupantsMismatch(t *testing.T) {
	_, errOut, err := run(t, "quote", "--offline", "--occupants", "2",
		"--unit", "Deluxe Suite", "--arrival", "15/12/2024", "--departure", "20/12/2024", "--ages", "25")
	require.Error(t, err)
	assert.Contains(t, errOut, "Number of ages must match occupants count")
}

// TestQuote_StdoutIsPureJSON runs against the process stdout so config notices would be caught.
func TestQuote_StdoutIsPureJSON(t *testing.T) {
	chdir(t, t.TempDir())
	resetFlags()

	r, w, err := os.Pipe()
	require.NoError(t, err)
	orig := os.Stdout
	os.Stdout = w
	defer func() { os.Stdout = orig }()

	done := make(chan []byte)
	go func() {
		b, _ := io.ReadAll(r)
		done <- b
	}()

	rootCmd.SetOut(nil)
	rootCmd.SetErr(io.Discard)
	rootCmd.SetArgs([]string{"quote", "--offline",
		"--unit", "Deluxe Suite", "--arrival", "15/12/2024", "--departure", "20/12/2024", "--ages", "25,30,8"})
	execErr := rootCmd.Execute()
	require.NoError(t, w.Close())
	out := <-done

	require.NoError(t, execErr)
	var resp map[string]any
	require.NoError(t, json.Unmarshal(out, &resp), "stdout: %s", out)
	assert.Equal(t, "Deluxe Suite", resp["Unit Name"])
}

func TestUnits(t *testing.T) {
	out, _, err := run(t, "units")
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(out, "NAME"))
	assert.Contains(t, out, "Kalahari Farmhouse")
}
