// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package db

import (
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/dynamodb"
	"github.com/guregu/dynamo"
)

type DynamoDBDatabase struct {
	svc        *dynamodb.DynamoDB
	db         *dynamo.DB
	seedsTable dynamo.Table
}

func NewDynamoDBDatabase(session *session.Session, stage string) (*DynamoDBDatabase, error) {
	ddb := &DynamoDBDatabase{svc: dynamodb.New(session)}
	ddb.db = dynamo.NewFromIface(ddb.svc)
	ddb.seedsTable = ddb.db.Table("relief-" + stage + "-seeds")
	return ddb, nil
}

// UpdateSeed keeps the newest entry per (generator, seed).
func (ddb *DynamoDBDatabase) UpdateSeed(seed Seed) error {
	err := ddb.seedsTable.Put(seed).If("attribute_not_exists(timestamp) OR timestamp < ?", seed.Timestamp).Run()
	if err != nil {
		if _, ok := err.(*dynamodb.ConditionalCheckFailedException); ok {
			return nil
		}
	}
	return err
}

func (ddb *DynamoDBDatabase) ReadSeeds() (seeds []Seed, err error) {
	query := ddb.seedsTable.Scan().Iter()

	for {
		var seed Seed
		ok := query.Next(&seed)
		if !ok {
			err = query.Err()
			return
		}
		seeds = append(seeds, seed)
	}
}

func (ddb *DynamoDBDatabase) ReadSeedsByGenerator(generator string) (seeds []Seed, err error) {
	query := ddb.seedsTable.Get("generator", generator).Iter()

	for {
		var seed Seed
		ok := query.Next(&seed)
		if !ok {
			err = query.Err()
			return
		}
		seeds = append(seeds, seed)
	}
}
