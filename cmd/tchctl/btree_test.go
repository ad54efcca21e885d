package main

import (
	"fmt"
	"strings"
	"testing"
)

func TestBtreeCommand(t *testing.T) {
	db := writeTestCabinet(t)

	t.Run("bucket with a chain dumps right-self-left", func(t *testing.T) {
		resetFlags()
		output, err := captureOutput(t, func() error {
			return runBtree([]string{db, fmt.Sprint(testAlphaBucket)})
		})
		if err != nil {
			t.Fatalf("runBtree() error = %v", err)
		}
		// alpha is the root, delta hangs off its left chain: the traversal
		// emits the node before its left subtree.
		assertContains(t, output, []string{"alpha", "delta"})
		if strings.Index(output, "alpha") > strings.Index(output, "delta") {
			t.Errorf("expected alpha before delta\nGot: %s", output)
		}
	})

	t.Run("empty bucket", func(t *testing.T) {
		resetFlags()
		output, err := captureOutput(t, func() error {
			return runBtree([]string{db, "1"})
		})
		if err != nil {
			t.Fatalf("runBtree() error = %v", err)
		}
		assertNotContains(t, output, []string{"alpha", "beta", "gamma", "delta"})
	})

	t.Run("bucket out of range", func(t *testing.T) {
		resetFlags()
		_, err := captureOutput(t, func() error {
			return runBtree([]string{db, "99"})
		})
		if err == nil {
			t.Error("expected an error for an out-of-range bucket")
		}
	})

	t.Run("invalid bucket number", func(t *testing.T) {
		resetFlags()
		_, err := captureOutput(t, func() error {
			return runBtree([]string{db, "not-a-number"})
		})
		if err == nil {
			t.Error("expected an error for a non-numeric bucket")
		}
	})

	t.Run("json with values", func(t *testing.T) {
		resetFlags()
		jsonOut = true
		btreeValues = true
		output, err := captureOutput(t, func() error {
			return runBtree([]string{db, fmt.Sprint(testAlphaBucket)})
		})
		if err != nil {
			t.Fatalf("runBtree() error = %v", err)
		}
		assertJSON(t, output)
		assertContains(t, output, []string{
			`"key": "alpha"`,
			`"key": "delta"`,
			`"value": "shadow value"`,
		})
	})
}
