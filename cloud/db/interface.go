// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package db

type Database interface {
	UpdateSeed(seed Seed) error
	ReadSeeds() ([]Seed, error)
	ReadSeedsByGenerator(generator string) ([]Seed, error)
}
