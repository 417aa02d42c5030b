// Copyright 2025 walteh LLC
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.
package main

import (
	"fmt"
	"runtime"
	"runtime/debug"
	"strings"
)

// buildInfo is what `enumfix version` reports
type buildInfo struct {
	Version  string
	Revision string
	Time     string
	Dirty    bool
	Go       string
	Platform string
}

// readBuildInfo fills buildInfo from the embedded module and VCS data
func readBuildInfo() buildInfo {
	bi := buildInfo{
		Version:  "dev",
		Go:       runtime.Version(),
		Platform: runtime.GOOS + "/" + runtime.GOARCH,
	}

	info, ok := debug.ReadBuildInfo()
	if !ok {
		return bi
	}
	if v := info.Main.Version; v != "" && v != "(devel)" {
		bi.Version = v
	}
	for _, s := range info.Settings {
		switch s.Key {
		case "vcs.revision":
			bi.Revision = s.Value
		case "vcs.time":
			bi.Time = s.Value
		case "vcs.modified":
			bi.Dirty = s.Value == "true"
		}
	}
	return bi
}

// String renders one field per line
func (b buildInfo) String() string {
	rev := b.Revision
	if rev == "" {
		rev = "unknown"
	}
	if b.Dirty {
		rev += " (modified)"
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🚀 enumfix %s\n", b.Version)
	fmt.Fprintf(&sb, "   revision: %s\n", rev)
	if b.Time != "" {
		fmt.Fprintf(&sb, "   built:    %s\n", b.Time)
	}
	fmt.Fprintf(&sb, "   go:       %s %s\n", b.Go, b.Platform)
	return sb.String()
}

// FormatVersion returns the version block printed by `enumfix version`
func FormatVersion() string {
	return readBuildInfo().String()
}
