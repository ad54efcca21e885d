package main

import (
	"fmt"
	"testing"
)

func TestStatsCommand(t *testing.T) {
	db := writeTestCabinet(t)

	t.Run("text", func(t *testing.T) {
		resetFlags()
		output, err := captureOutput(t, func() error {
			return runStats([]string{db})
		})
		if err != nil {
			t.Fatalf("runStats() error = %v", err)
		}
		assertContains(t, output, []string{
			"4 (header claims 4)",
			"1 (16 bytes)",
			fmt.Sprintf("%d total, %d used", testBucketCount, testUsedBuckets),
			"pool entries:      1",
		})
	})

	t.Run("json", func(t *testing.T) {
		resetFlags()
		jsonOut = true
		output, err := captureOutput(t, func() error {
			return runStats([]string{db})
		})
		if err != nil {
			t.Fatalf("runStats() error = %v", err)
		}
		assertJSON(t, output)
		assertContains(t, output, []string{
			`"records": 4`,
			`"free_blocks": 1`,
			`"free_bytes": 16`,
			`"pool_entries": 1`,
			fmt.Sprintf(`"buckets_used": %d`, testUsedBuckets),
		})
	})
}
