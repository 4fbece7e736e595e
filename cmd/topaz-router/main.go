// Copyright © 2024 The Things Industries, distributed under the MIT license (see LICENSE file)

// The Topaz router routes published messages to matching routes and
// watchers.
//
//	Usage: topaz-router [options]
//
//	Options:
//	-d, --debug                      Print debug logs
//	    --listen.status string       Address for status+API server to listen on (default ":9690")
//	    --publish.burst int          Publish burst size (default 16)
//	    --publish.rate float         Maximum publishes per second (0 to disable)
//	    --routes.file string         Location of the routes file
//	    --websocket.pattern string   URL pattern for the websocket watch endpoint (default "/watch")
package main

import (
	_ "net/http/pprof" // Add pprof handlers to the default http mux

	"github.com/TheThingsIndustries/topaz"
	"github.com/TheThingsIndustries/topaz/pkg/router"
)

func main() {
	topaz.Configure("topaz-router")
	r := router.New(topaz.Context())
	topaz.RunServer(r)
}
