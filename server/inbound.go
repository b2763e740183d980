// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"fmt"

	"relief/hydro"
	"relief/terrain"
	"relief/terrain/noise"

	"github.com/finnbear/moderation"
)

const (
	// maxDimension bounds requested grid sizes; generation is O(area).
	maxDimension = 1024
	maxLabelLen  = 64
)

// Make sure to register in init function
type (
	// GenerateTerrain runs the full pipeline and replies with a
	// TerrainSnapshot.
	GenerateTerrain struct {
		Width        int          `json:"width"`
		Height       int          `json:"height"`
		Generator    string       `json:"generator"` // "fractal" (default), "noise", or "chaos"
		Seed         int64        `json:"seed"`
		Amplitude    float32      `json:"amplitude"`
		Roughness    float32      `json:"roughness"`
		SmoothRadius int          `json:"smoothRadius"`
		SmoothPasses int          `json:"smoothPasses"`
		SeaLevel     float32      `json:"seaLevel"` // <= 0 disables water
		FillAll      bool         `json:"fillAll"`  // threshold instead of edge flood
		SeedPoint    *hydro.Point `json:"seedPoint"`
		Label        string       `json:"label"`
	}

	// InvalidInbound means invalid message type from client (possibly out of date).
	// NOTE: Do not register, otherwise client could send type "invalidInbound"
	InvalidInbound struct {
		messageType messageType
	}

	// ListSeeds requests the curated seed catalog, optionally filtered to
	// one generator.
	ListSeeds struct {
		Generator string `json:"generator,omitempty"`
	}

	// PublishMap publishes the client's latest snapshot to the cloud.
	PublishMap struct{}
)

func init() {
	registerInbound(
		&GenerateTerrain{},
		&ListSeeds{},
		&PublishMap{},
	)
}

func (data *GenerateTerrain) Inbound(h *Hub, client Client) {
	width := clampInt(data.Width, 1, maxDimension)
	height := clampInt(data.Height, 1, maxDimension)

	var source terrain.Source
	generator := data.Generator
	switch generator {
	case "noise":
		source = noise.New(data.Seed)
	case "chaos":
		source = terrain.NewChaos(data.Seed)
	default:
		generator = "fractal"
		fractal := terrain.NewFractal(data.Seed)
		if data.Amplitude != 0 {
			fractal.Amplitude = data.Amplitude
		}
		if data.Roughness != 0 {
			fractal.Roughness = data.Roughness
		}
		source = fractal
	}

	grid := source.Generate(width, height)
	terrain.Blur(grid, data.SmoothRadius, data.SmoothPasses)

	var mask *hydro.Mask
	if data.SeaLevel > 0 {
		mode := hydro.EdgeFlood
		if data.FillAll {
			mode = hydro.ThresholdAll
		}
		mask = hydro.Classify(grid, data.SeaLevel, mode, data.SeedPoint)
	}

	snapshot := &Snapshot{
		Generator: generator,
		Seed:      data.Seed,
		Amplitude: data.Amplitude,
		Roughness: data.Roughness,
		SeaLevel:  data.SeaLevel,
		Label:     censorLabel(data.Label),
		Grid:      grid,
		Mask:      mask,
	}

	client.Data().Snapshot = snapshot
	h.latest = snapshot
	client.Send(snapshot.outbound())
}

func (data *InvalidInbound) Inbound(h *Hub, client Client) {
	fmt.Println("invalid inbound message type:", data.messageType)
}

func (data *ListSeeds) Inbound(h *Hub, client Client) {
	c := h.cloud
	go func() {
		seeds, err := c.ReadSeeds(data.Generator)
		if err != nil {
			fmt.Println("read seeds error:", err)
			return
		}
		h.deliver <- SignedOutbound{Client: client, outbound: &SeedCatalog{Seeds: seeds}}
	}()
}

func (data *PublishMap) Inbound(h *Hub, client Client) {
	snapshot := client.Data().Snapshot
	if snapshot == nil {
		return
	}

	c := h.cloud
	go func() {
		key, err := publishSnapshot(c, snapshot)
		if err != nil {
			fmt.Println("publish error:", err)
			return
		}
		h.deliver <- SignedOutbound{Client: client, outbound: &MapPublished{Key: key}}
	}()
}

// censorLabel trims a user-supplied label and censors inappropriate text
// before it can reach the catalog or status JSON.
func censorLabel(label string) string {
	if len(label) > maxLabelLen {
		label = label[:maxLabelLen]
	}

	result := moderation.Scan(label)
	if result.Is(moderation.Inappropriate) {
		label, _ = moderation.Censor(label, moderation.Inappropriate)
	}

	return label
}

func clampInt(v, min, max int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
