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

// Program yangvalidate parses a single YANG source file through the front
// end and reports whether it is a well-formed module or submodule.
//
// Usage: yangvalidate validate [--path PATH] [--dump] [--lenient-section-order] FILE
//
// PATH is a comma separated list of directories; it is accepted and parsed
// for forward compatibility with a future multi-file mode but is not yet
// consulted by validate.
package main

import (
	"fmt"
	"io/ioutil"
	"os"

	"github.com/kylelemons/godebug/pretty"
	"github.com/pborman/getopt"

	"github.com/nsyang/yangfront/pkg/yang"
)

func main() {
	var path []string
	var dump bool
	var lenient bool
	getopt.CommandLine.ListVarLong(&path, "path", 0, "comma separated list of directories to add to PATH")
	getopt.CommandLine.BoolVarLong(&dump, "dump", 0, "pretty-print the parsed statement tree before reporting success")
	getopt.CommandLine.BoolVarLong(&lenient, "lenient-section-order", 0, "accept a module whose header/linkage/meta/revision statements are out of order")
	getopt.Parse()

	args := getopt.Args()
	if len(args) < 2 || args[0] != "validate" {
		fmt.Fprintln(os.Stderr, "usage: yangvalidate validate [--path PATH] [--dump] [--lenient-section-order] FILE")
		os.Exit(1)
	}

	data, err := ioutil.ReadFile(args[1])
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	opts := yang.Options{LenientSectionOrder: lenient}
	if err := validate(string(data), dump, opts); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// validate parses text as a module, falling back to submodule, and prints
// the outcome to stdout. It returns the accumulated parse diagnostic on
// failure.
func validate(text string, dump bool, opts yang.Options) error {
	if dump {
		stripped, err := yang.StripComments(text)
		if err != nil {
			return err
		}
		stmt, err := yang.ParseStatement(stripped)
		if err != nil {
			return err
		}
		fmt.Println(pretty.Sprint(stmt))
	}

	if m, err := yang.ParseModule(text, opts); err == nil {
		if m.Kind() == "submodule" {
			fmt.Printf("Detected submodule: %s\n", m.NName())
		} else {
			fmt.Printf("Detected module: %s\n", m.NName())
		}
		for _, d := range m.Diagnostics {
			fmt.Fprintf(os.Stderr, "warning: %v\n", d)
		}
		return nil
	}

	m, err := yang.ParseSubmodule(text, opts)
	if err != nil {
		return err
	}
	fmt.Printf("Detected submodule: %s\n", m.NName())
	for _, d := range m.Diagnostics {
		fmt.Fprintf(os.Stderr, "warning: %v\n", d)
	}
	return nil
}
