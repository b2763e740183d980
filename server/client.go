// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package server

type (
	// Client is an actor on the Hub.
	Client interface {
		// Init is called once by the hub goroutine when the client is
		// registered. client.Data().Hub is set by then.
		Init()

		// Close is called by (only) the hub goroutine when the client is
		// unregistered.
		Close()

		// Send is how the server sends a message to the client.
		Send(out outbound)

		// Destroy marks the client for destruction. It must notify the hub
		// only once no matter how many times it is called. It may be called
		// anywhere.
		Destroy()

		// Data is the state all clients share.
		Data() *ClientData
	}

	// ClientData is the data all clients must have.
	ClientData struct {
		Hub *Hub
		// Snapshot is the client's most recent generation.
		Snapshot *Snapshot
	}
)
