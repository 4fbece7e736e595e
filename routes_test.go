// Copyright © 2024 The Things Industries, distributed under the MIT license (see LICENSE file)

package topaz

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/smartystreets/assertions"
	"github.com/smartystreets/assertions/should"

	"github.com/TheThingsIndustries/topaz/pkg/subscription"
)

func writeRoutes(t *testing.T, content string) string {
	t.Helper()
	file := filepath.Join(t.TempDir(), "routes")
	if err := os.WriteFile(file, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	return file
}

func TestParseRoutes(t *testing.T) {
	a := assertions.New(t)

	routes, err := ParseRoutes(writeRoutes(t, `
// alerts go to the pagers
alerts/# pagers 1

sensors/+/temperature dashboard
`))
	a.So(err, should.BeNil)
	a.So(routes, should.Resemble, []subscription.Route[string]{
		{Filter: "alerts/#", Origin: "pagers", QoS: 1},
		{Filter: "sensors/+/temperature", Origin: "dashboard"},
	})

	_, err = ParseRoutes(writeRoutes(t, "a/#/c pagers\n"))
	a.So(err, should.NotBeNil)

	_, err = ParseRoutes(writeRoutes(t, "alerts/# pagers 9\n"))
	a.So(err, should.NotBeNil)

	_, err = ParseRoutes(writeRoutes(t, "alerts/#\n"))
	a.So(err, should.NotBeNil)

	_, err = ParseRoutes(filepath.Join(t.TempDir(), "missing"))
	a.So(err, should.NotBeNil)
}
