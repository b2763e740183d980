// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"reflect"
	"strings"
	"testing"

	"relief/rle"
)

// testClient collects sent messages without a socket.
type testClient struct {
	ClientData
	sent []outbound
}

func (client *testClient) Init()             {}
func (client *testClient) Close()            {}
func (client *testClient) Destroy()          {}
func (client *testClient) Data() *ClientData { return &client.ClientData }
func (client *testClient) Send(out outbound) { client.sent = append(client.sent, out) }

func TestGenerateTerrain(t *testing.T) {
	hub := NewHub(nil)
	client := &testClient{ClientData: ClientData{Hub: hub}}

	request := &GenerateTerrain{
		Width:    32,
		Height:   16,
		Seed:     42,
		SeaLevel: 0.4,
		Label:    "archipelago",
	}
	request.Inbound(hub, client)

	if len(client.sent) != 1 {
		t.Fatal("expected 1 message got", len(client.sent))
	}

	snapshot, ok := client.sent[0].(*TerrainSnapshot)
	if !ok {
		t.Fatalf("expected *TerrainSnapshot got %T", client.sent[0])
	}
	if snapshot.Width != 32 || snapshot.Height != 16 {
		t.Error("expected 32x16 got", snapshot.Width, "x", snapshot.Height)
	}
	if snapshot.Label != "archipelago" {
		t.Error("label lost:", snapshot.Label)
	}

	heights := rle.Decompress(snapshot.Data, snapshot.Width*snapshot.Height)
	for i, v := range heights {
		if v < 0 || v > 1 {
			t.Fatal("decoded height", i, "out of range:", v)
		}
	}

	if snapshot.Water == nil {
		t.Error("positive sea level expected a water mask")
	}

	if client.Snapshot == nil || hub.latest == nil {
		t.Error("snapshot not retained for publishing")
	}
}

func TestGenerateTerrain_Clamped(t *testing.T) {
	hub := NewHub(nil)
	client := &testClient{ClientData: ClientData{Hub: hub}}

	request := &GenerateTerrain{Width: 1 << 20, Height: -3}
	request.Inbound(hub, client)

	snapshot := client.sent[0].(*TerrainSnapshot)
	if snapshot.Width != maxDimension || snapshot.Height != 1 {
		t.Error("dimensions not clamped:", snapshot.Width, "x", snapshot.Height)
	}
	if snapshot.Water != nil {
		t.Error("zero sea level produced a water mask")
	}
}

func TestGenerateTerrain_Noise(t *testing.T) {
	hub := NewHub(nil)
	client := &testClient{ClientData: ClientData{Hub: hub}}

	request := &GenerateTerrain{Width: 16, Height: 16, Generator: "noise", Seed: 1}
	request.Inbound(hub, client)

	if client.Snapshot.Generator != "noise" {
		t.Error("generator lost:", client.Snapshot.Generator)
	}
}

func TestCensorLabel(t *testing.T) {
	if out := censorLabel("Rolling Hills"); out != "Rolling Hills" {
		t.Error("clean label changed:", out)
	}

	long := strings.Repeat("a", 200)
	if out := censorLabel(long); len(out) != maxLabelLen {
		t.Error("long label not trimmed:", len(out))
	}

	if out := censorLabel("fuck mountain"); strings.Contains(out, "fuck") {
		t.Error("inappropriate label not censored:", out)
	}
}

func TestMessageRegistry(t *testing.T) {
	for _, name := range []string{"generateTerrain", "listSeeds", "publishMap"} {
		if _, ok := inboundMessageTypes[messageType(name)]; !ok {
			t.Error("inbound type not registered:", name)
		}
	}
	if _, ok := inboundMessageTypes["invalidInbound"]; ok {
		t.Error("invalidInbound must not be registrable by clients")
	}

	// The decoder allocates pointers to the registered types, so each one
	// must handle messages through its pointer.
	for name, typ := range inboundMessageTypes {
		if _, ok := reflect.New(typ).Interface().(inbound); !ok {
			t.Error("registered type cannot handle messages:", name)
		}
	}
}
