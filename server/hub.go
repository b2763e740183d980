// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package server is a websocket preview server for the terrain pipeline.
// Clients request generations and receive run-length encoded snapshots;
// labeled snapshots can be published through the cloud layer.
package server

import (
	"bytes"
	"fmt"
	"sync/atomic"
	"time"

	"relief/cloud"
	"relief/ppm"
	"relief/terrain"
)

const (
	statusPeriod  = 5 * time.Second
	publishPeriod = 5 * time.Minute
)

// Hub maintains the set of active clients and owns all snapshots.
// Everything except Send runs on the hub goroutine.
type Hub struct {
	clients map[Client]struct{}
	cloud   *cloud.Cloud
	// latest is the most recent generation from any client.
	latest *Snapshot
	// published is the last snapshot handed to the cloud by the ticker.
	published *Snapshot

	// statusJSON is served atomically by HTTP.
	statusJSON atomic.Value

	// Inbound channels
	inbound    chan SignedInbound
	register   chan Client
	unregister chan Client
	// deliver carries results of cloud goroutines back to the hub
	// goroutine; Send must never be called off it.
	deliver    chan SignedOutbound

	statusTicker  *time.Ticker
	publishTicker *time.Ticker
}

func NewHub(c *cloud.Cloud) *Hub {
	fmt.Println("cloud:", c)

	return &Hub{
		clients:       make(map[Client]struct{}),
		cloud:         c,
		inbound:       make(chan SignedInbound, 16),
		register:      make(chan Client, 8),
		unregister:    make(chan Client, 16),
		deliver:       make(chan SignedOutbound, 16),
		statusTicker:  time.NewTicker(statusPeriod),
		publishTicker: time.NewTicker(publishPeriod),
	}
}

func (h *Hub) Run() {
	h.updateStatus()

	for {
		select {
		case client := <-h.register:
			h.clients[client] = struct{}{}
			client.Data().Hub = h
			client.Init()
		case client := <-h.unregister:
			if _, ok := h.clients[client]; ok {
				delete(h.clients, client)
				client.Close()
			}
		case signed := <-h.inbound:
			// Ignore messages from clients that already unregistered.
			if _, ok := h.clients[signed.Client]; ok {
				signed.Inbound(h, signed.Client)
			}
		case signed := <-h.deliver:
			h.forward(signed)
		case <-h.statusTicker.C:
			h.updateStatus()
		case <-h.publishTicker.C:
			h.publishLatest()
		}
	}
}

// forward hands an async result to its client unless it unregistered in
// the meantime (its send channel is closed by then).
func (h *Hub) forward(signed SignedOutbound) {
	if _, ok := h.clients[signed.Client]; ok {
		signed.Client.Send(signed.outbound)
	}
}

// publishLatest uploads the newest labeled snapshot once. Unlabeled
// snapshots are considered scratch work and never auto-published.
func (h *Hub) publishLatest() {
	snapshot := h.latest
	if snapshot == nil || snapshot.Label == "" || snapshot == h.published {
		return
	}
	h.published = snapshot

	c := h.cloud
	go func() {
		key, err := publishSnapshot(c, snapshot)
		if err != nil {
			fmt.Println("publish error:", err)
			return
		}
		if key != "" {
			fmt.Println("published", snapshot.Label, "as", key)
		}
	}()
}

type status struct {
	Clients int    `json:"clients"`
	Latest  string `json:"latest,omitempty"`
	Cloud   string `json:"cloud"`
	Uptime  int64  `json:"uptime"`
}

var started = time.Now()

func (h *Hub) updateStatus() {
	s := status{
		Clients: len(h.clients),
		Cloud:   h.cloud.String(),
		Uptime:  int64(time.Since(started).Seconds()),
	}
	if h.latest != nil {
		s.Latest = h.latest.Label
	}

	buf, err := json.Marshal(s)
	if err != nil {
		fmt.Println("status marshal error:", err)
		return
	}
	h.statusJSON.Store(buf)
}

// publishSnapshot renders the snapshot as a color PPM and hands it to the
// cloud layer. Offline (nil) clouds return an empty key.
func publishSnapshot(c *cloud.Cloud, snapshot *Snapshot) (string, error) {
	var water func(x, y int) bool
	if snapshot.Mask != nil {
		water = snapshot.Mask.At
	}
	rgb := terrain.ColorMap(snapshot.Grid, snapshot.SeaLevel, water)

	var buf bytes.Buffer
	if err := ppm.Encode(&buf, snapshot.Grid.Width, snapshot.Grid.Height, rgb); err != nil {
		return "", err
	}

	return c.PublishMap(snapshot.seed(), "image/x-portable-pixmap", buf.Bytes())
}
