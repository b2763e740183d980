// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package db

// Seed is a catalog entry for a generation worth keeping.
type Seed struct {
	Generator string  `dynamo:"generator" json:"generator"` // "fractal", "noise", or "chaos"
	Seed      int64   `dynamo:"seed" json:"seed"`
	Label     string  `dynamo:"label" json:"label"`
	Amplitude float32 `dynamo:"amplitude" json:"amplitude"`
	Roughness float32 `dynamo:"roughness" json:"roughness"`
	SeaLevel  float32 `dynamo:"seaLevel" json:"seaLevel"`
	MapKey    string  `dynamo:"mapKey" json:"mapKey"` // uploaded image object key
	Timestamp int64   `dynamo:"timestamp" json:"timestamp"`
}
