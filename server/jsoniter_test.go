// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

import (
	"bytes"
	"testing"
)

func TestJsonIter(t *testing.T) {
	testUpdate := Message{Data: &TerrainSnapshot{
		Width:    4,
		Height:   2,
		SeaLevel: 0.25,
		Label:    "islands",
		Data:     []byte{0x83},
	}}

	const testUpdateString = `{"data":{"width":4,"height":2,"seaLevel":0.25,"label":"islands","data":"gw=="},"type":"terrainSnapshot"}`

	buf, err := json.Marshal(testUpdate)
	if err != nil {
		t.Error("error marshaling:", err.Error())
		return
	}
	if !bytes.Equal(buf, []byte(testUpdateString)) {
		t.Error("different output:\none:", testUpdateString, "\ntwo:", string(buf))
	}
}

func TestJsonIter_Inbound(t *testing.T) {
	const input = `{"type": "generateTerrain", "data": {"width": 64, "height": 32, "seed": 7, "seaLevel": 0.3, "label": "test"}}`

	var message Message
	if err := json.Unmarshal([]byte(input), &message); err != nil {
		t.Fatal("error unmarshaling:", err.Error())
	}

	data, ok := message.Data.(*GenerateTerrain)
	if !ok {
		t.Fatalf("expected *GenerateTerrain got %T", message.Data)
	}
	if data.Width != 64 || data.Height != 32 || data.Seed != 7 || data.Label != "test" {
		t.Errorf("fields lost: %+v", data)
	}
}

func TestJsonIter_InvalidInbound(t *testing.T) {
	var message Message
	if err := json.Unmarshal([]byte(`{"type": "selfDestruct", "data": {}}`), &message); err != nil {
		t.Fatal("error unmarshaling:", err.Error())
	}

	invalid, ok := message.Data.(*InvalidInbound)
	if !ok {
		t.Fatalf("expected *InvalidInbound got %T", message.Data)
	}
	if invalid.messageType != "selfDestruct" {
		t.Error("expected selfDestruct got", invalid.messageType)
	}

	// invalidInbound itself is not registered, so clients cannot forge it.
	if err := json.Unmarshal([]byte(`{"type": "invalidInbound", "data": {}}`), &message); err != nil {
		t.Fatal("error unmarshaling:", err.Error())
	}
	if _, ok := message.Data.(*InvalidInbound); !ok {
		t.Fatalf("expected *InvalidInbound got %T", message.Data)
	}
}

func TestJsonIter_BadData(t *testing.T) {
	var message Message
	if err := json.Unmarshal([]byte(`{"type": "generateTerrain", "data": {"width": "wide"}}`), &message); err == nil {
		t.Error("expected error for mistyped field")
	}
}

func TestJsonIter_EmptyData(t *testing.T) {
	var message Message
	if err := json.Unmarshal([]byte(`{"type": "listSeeds"}`), &message); err != nil {
		t.Fatal("error unmarshaling:", err.Error())
	}
	if _, ok := message.Data.(*ListSeeds); !ok {
		t.Fatalf("expected *ListSeeds got %T", message.Data)
	}
}
