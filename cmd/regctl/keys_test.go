package main

import (
	"testing"
)

func TestKeysCommand(t *testing.T) {
	tests := []struct {
		name           string
		path           string
		wantErr        bool
		wantContain    []string
		wantNotContain []string
		wantJSON       bool
	}{
		{
			name:        "list hive children",
			path:        `HKLM\Software`,
			wantContain: []string{"App"},
		},
		{
			name:        "list sub-keys",
			path:        `HKLM\Software\App`,
			wantContain: []string{"Settings"},
		},
		{
			name:        "list keys as JSON",
			path:        `HKLM\Software`,
			wantJSON:    true,
			wantContain: []string{"App", "count"},
		},
		{
			name:    "missing key fails",
			path:    `HKLM\Software\Nope`,
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resetFlags(t)
			storeFile = seedStore(t)
			jsonOut = tt.wantJSON

			output, err := captureOutput(t, func() error {
				return runKeys([]string{tt.path})
			})

			if (err != nil) != tt.wantErr {
				t.Errorf("runKeys() error = %v, wantErr %v", err, tt.wantErr)
				return
			}

			if tt.wantJSON {
				assertJSON(t, output)
			}

			assertContains(t, output, tt.wantContain)
			assertNotContains(t, output, tt.wantNotContain)
		})
	}
}

func TestValuesCommand(t *testing.T) {
	resetFlags(t)
	storeFile = seedStore(t)

	output, err := captureOutput(t, func() error {
		return runValues([]string{`HKLM\Software\App`})
	})
	if err != nil {
		t.Fatalf("runValues() error = %v", err)
	}
	assertContains(t, output, []string{"Version", "1.2.3", "Port", "8080"})
}
