// Package schemas embeds the JSON Schemas for listing and profile files.
package schemas

import _ "embed"

// Listings validates a JSON array of listings.
//
//go:embed listings.schema.json
var Listings string

// Profile validates a single candidate profile.
//
//go:embed profile.schema.json
var Profile string

// Profiles validates a JSON array of candidate profiles for batch ranking.
//
//go:embed profiles.schema.json
var Profiles string
