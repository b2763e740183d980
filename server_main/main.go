// SPDX-FileCopyrightText: 2021 Softbear, Inc.
// SPDX-License-Identifier: AGPL-3.0-or-later

package main

import (
	"flag"
	"fmt"
	"log"
	"net"
	"net/http"
	_ "net/http/pprof"

	"relief/cloud"
	"relief/server"

	"golang.org/x/net/netutil"
)

func main() {
	var (
		port           int
		maxConnections int
		region         string
		stage          string
	)

	flag.IntVar(&port, "port", 8192, "http service port")
	flag.IntVar(&maxConnections, "max-connections", 256, "maximum number of inbound TCP connections")
	flag.StringVar(&region, "region", "", "aws region (empty for offline mode)")
	flag.StringVar(&stage, "stage", "dev", "deployment stage")
	flag.Parse()

	var c *cloud.Cloud
	if region != "" {
		var err error
		c, err = cloud.New(region, stage)
		if err != nil {
			// Cloud is not required for server to function, just log an error
			log.Printf("Cloud error: %v\n", err)
			c = nil
		}
	}

	hub := server.NewHub(c)
	go hub.Run()

	log.Println("terrain preview server started")

	http.HandleFunc("/", hub.ServeIndex)
	http.HandleFunc("/ws", hub.ServeSocket)

	l, err := net.Listen("tcp", fmt.Sprint(":", port))
	if err != nil {
		log.Fatalf("Listen: %v", err)
	}
	defer l.Close()

	l = netutil.LimitListener(l, maxConnections)

	log.Fatal("Serve: ", http.Serve(l, nil))
}
