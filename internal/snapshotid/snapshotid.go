// Package snapshotid derives short opaque identifiers for telemetry
// snapshots from their sequence numbers.
package snapshotid

import (
	"fmt"

	"github.com/sqids/sqids-go"
)

const minLength = 8

type Generator struct {
	sqids *sqids.Sqids
	boot  uint64
}

// New returns a generator whose IDs also encode boot, so sequence numbers
// restarting after a process restart do not collide with earlier IDs.
func New(boot uint64) (*Generator, error) {
	s, err := sqids.New(sqids.Options{
		MinLength: minLength,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create sqids encoder: %w", err)
	}
	return &Generator{sqids: s, boot: boot}, nil
}

func (g *Generator) Generate(seq uint64) (string, error) {
	return g.sqids.Encode([]uint64{g.boot, seq})
}

// Decode reverses Generate.
func (g *Generator) Decode(id string) (boot, seq uint64, ok bool) {
	nums := g.sqids.Decode(id)
	if len(nums) != 2 {
		return 0, 0, false
	}
	// sqids decodes non-canonical input to numbers that re-encode differently
	if canonical, err := g.sqids.Encode(nums); err != nil || canonical != id {
		return 0, 0, false
	}
	return nums[0], nums[1], true
}
