package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validHeader = "year,Map Images Left,Extreme_Drought,Severe_Drought,Moderate_Drought,Extremely_Wet,Moderately_Wet,Near_Normal"

func writeDataset(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main_data.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunPassesOnValidDataset(t *testing.T) {
	path := writeDataset(t, validHeader+"\n"+
		"1981,https://example.org/maps/1981.jpg,30.0,20.0,15.0,5.0,10.0,20.0\n"+
		"1982,https://example.org/maps/1982.jpg,2.5,7.5,10.0,15.0,25.0,40.0\n")

	assert.Equal(t, 0, run(path))
}

func TestRunWarningsKeepZeroExit(t *testing.T) {
	// Sum drift and a non-http reference are reported but must not fail the run.
	path := writeDataset(t, validHeader+"\n"+
		"1981,ftp://example.org/maps/1981.jpg,30.0,20.0,15.0,5.0,10.0,17.0\n")

	assert.Equal(t, 0, run(path))
}

func TestRunFailsOnBrokenDataset(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name: "missing column",
			content: "year,Map Images Left,Extreme_Drought,Severe_Drought,Moderate_Drought,Extremely_Wet,Moderately_Wet\n" +
				"1981,https://example.org/maps/1981.jpg,30.0,20.0,15.0,5.0,10.0\n",
		},
		{
			name: "duplicate column",
			content: validHeader + ",year\n" +
				"1981,https://example.org/maps/1981.jpg,30.0,20.0,15.0,5.0,10.0,20.0,1981\n",
		},
		{
			name: "duplicate year",
			content: validHeader + "\n" +
				"1981,https://example.org/maps/a.jpg,30.0,20.0,15.0,5.0,10.0,20.0\n" +
				"1981,https://example.org/maps/b.jpg,30.0,20.0,15.0,5.0,10.0,20.0\n",
		},
		{
			name: "negative share",
			content: validHeader + "\n" +
				"1981,https://example.org/maps/1981.jpg,-1.0,21.0,15.0,5.0,10.0,50.0\n",
		},
		{
			name: "non numeric share",
			content: validHeader + "\n" +
				"1981,https://example.org/maps/1981.jpg,n/a,20.0,15.0,5.0,10.0,50.0\n",
		},
		{
			name: "non integer year",
			content: validHeader + "\n" +
				"early,https://example.org/maps/1981.jpg,30.0,20.0,15.0,5.0,10.0,20.0\n",
		},
		{
			name: "empty image reference",
			content: validHeader + "\n" +
				"1981,,30.0,20.0,15.0,5.0,10.0,20.0\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, 1, run(writeDataset(t, tt.content)))
		})
	}
}

func TestRunFailsOnMissingFile(t *testing.T) {
	assert.Equal(t, 1, run(filepath.Join(t.TempDir(), "absent.csv")))
}
