// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"relief/cloud/db"
	"relief/hydro"
	"relief/rle"
	"relief/terrain"
)

type (
	// MapPublished confirms a cloud publish with the stored object key.
	MapPublished struct {
		Key string `json:"key"`
	}

	// SeedCatalog lists the curated seed catalog.
	SeedCatalog struct {
		Seeds []db.Seed `json:"seeds"`
	}

	// TerrainSnapshot carries a generated heightmap to the client.
	// Data and Water are nibble run-length encoded (see package rle);
	// both expand to width*height cells.
	TerrainSnapshot struct {
		Width    int     `json:"width"`
		Height   int     `json:"height"`
		SeaLevel float32 `json:"seaLevel"`
		Label    string  `json:"label,omitempty"`
		Data     []byte  `json:"data"`
		Water    []byte  `json:"water,omitempty"`
	}
)

func init() {
	registerOutbound(
		&MapPublished{},
		&SeedCatalog{},
		&TerrainSnapshot{},
	)
}

// Snapshot is a generated terrain kept server-side between messages.
// The grid and mask are owned by the hub goroutine and never mutated
// after generation.
type Snapshot struct {
	Generator string
	Seed      int64
	Amplitude float32
	Roughness float32
	SeaLevel  float32
	Label     string
	Grid      *terrain.Grid
	Mask      *hydro.Mask
}

func (snapshot *Snapshot) outbound() *TerrainSnapshot {
	out := &TerrainSnapshot{
		Width:    snapshot.Grid.Width,
		Height:   snapshot.Grid.Height,
		SeaLevel: snapshot.SeaLevel,
		Label:    snapshot.Label,
		Data:     rle.Compress(snapshot.Grid.Values),
	}
	if snapshot.Mask != nil {
		out.Water = rle.CompressMask(snapshot.Mask.Cells)
	}
	return out
}

func (snapshot *Snapshot) seed() db.Seed {
	return db.Seed{
		Generator: snapshot.Generator,
		Seed:      snapshot.Seed,
		Label:     snapshot.Label,
		Amplitude: snapshot.Amplitude,
		Roughness: snapshot.Roughness,
		SeaLevel:  snapshot.SeaLevel,
	}
}
