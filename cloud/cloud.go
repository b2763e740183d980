// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cloud publishes rendered maps and a curated seed catalog.
package cloud

import (
	"fmt"
	"time"

	"relief/cloud/db"
	"relief/cloud/fs"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
)

// A nil cloud is valid to use with any methods (acts as a no-op)
// This just means the server is in offline mode
type Cloud struct {
	region   string
	stage    string
	database db.Database
	fs       fs.Filesystem
}

func (cloud *Cloud) String() string {
	if cloud == nil {
		return "[offline]"
	}
	return "[" + cloud.region + " " + cloud.stage + "]"
}

// Returns nil cloud on error
func New(region, stage string) (*Cloud, error) {
	cloud := &Cloud{
		region: region,
		stage:  stage,
	}

	sess, err := session.NewSession(&aws.Config{Region: aws.String(region)})
	if err != nil {
		return nil, err
	}

	cloud.database, err = db.NewDynamoDBDatabase(sess, stage)
	if err != nil {
		return nil, err
	}
	cloud.fs, err = fs.NewS3Filesystem(sess, stage)
	if err != nil {
		return nil, err
	}

	return cloud, nil
}

// PublishMap uploads a rendered map and records its seed in the catalog.
// The object key is returned for status reporting.
func (cloud *Cloud) PublishMap(seed db.Seed, contentType string, data []byte) (string, error) {
	if cloud == nil {
		return "", nil
	}

	ext := ".ppm"
	if contentType == "image/png" {
		ext = ".png"
	}
	key := fmt.Sprintf("%s-%d-%d%s", seed.Generator, seed.Seed, time.Now().Unix(), ext)

	if err := cloud.fs.UploadMap(key, contentType, data); err != nil {
		return "", err
	}

	seed.MapKey = key
	seed.Timestamp = time.Now().Unix()
	if err := cloud.database.UpdateSeed(seed); err != nil {
		return "", err
	}

	return key, nil
}

// ReadSeeds lists the curated seed catalog, optionally filtered to one
// generator ("fractal" or "noise"; empty lists everything).
func (cloud *Cloud) ReadSeeds(generator string) ([]db.Seed, error) {
	if cloud == nil {
		return nil, nil
	}
	if generator != "" {
		return cloud.database.ReadSeedsByGenerator(generator)
	}
	return cloud.database.ReadSeeds()
}
