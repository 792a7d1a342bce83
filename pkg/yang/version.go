// Copyright 2015 Google Inc.
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

package yang

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a yang-version argument: "1" parses as {1, 0}, "1.1" as {1, 1}.
type Version struct {
	Major int
	Minor int
}

// String renders v in its source form.
func (v Version) String() string {
	if v.Minor == 0 {
		return strconv.Itoa(v.Major)
	}
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}

// ParseVersion parses a yang-version argument.
func ParseVersion(s string) (Version, error) {
	s = strings.TrimSpace(s)
	parts := strings.SplitN(s, ".", 2)
	major, err := strconv.Atoi(parts[0])
	if err != nil {
		return Version{}, &Error{Kind: InvalidArgument, Message: "invalid yang-version: " + s}
	}
	if len(parts) == 1 {
		return Version{Major: major}, nil
	}
	minor, err := strconv.Atoi(parts[1])
	if err != nil {
		return Version{}, &Error{Kind: InvalidArgument, Message: "invalid yang-version: " + s}
	}
	return Version{Major: major, Minor: minor}, nil
}
