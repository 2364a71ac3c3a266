// Package project defines the top-level container isolating an entry
// collection.
package project

import "tableflip.dev/pestle/pkg/timeutil"

// Project is a named workspace. ID is assigned once at creation; Updated is
// never revised by any current operation, matching the stored records this
// tool has always produced.
type Project struct {
	ID      string             `json:"id"`
	Name    string             `json:"name"`
	Created timeutil.Timestamp `json:"createdAt"`
	Updated timeutil.Timestamp `json:"updatedAt"`
}
