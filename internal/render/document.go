/*
Copyright © 2026 SUSE LLC
SPDX-License-Identifier: Apache-2.0

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package render

import (
	"bytes"
	"encoding/json"
	"encoding/xml"
	"strings"
)

// document accumulates the lines of an artifact. Blocks are appended in the
// order they must appear, each guarded by the condition that enables it.
type document struct {
	lines []string
}

func (d *document) add(lines ...string) {
	d.lines = append(d.lines, lines...)
}

func (d *document) addIf(cond bool, lines ...string) {
	if cond {
		d.add(lines...)
	}
}

// blank adds an empty separator line unless the previous line is already empty
func (d *document) blank() {
	if len(d.lines) == 0 || d.lines[len(d.lines)-1] == "" {
		return
	}
	d.lines = append(d.lines, "")
}

func (d *document) String() string {
	return strings.Join(d.lines, "\n") + "\n"
}

// xmlEscape escapes s for use in XML text and attribute values
func xmlEscape(s string) string {
	var b bytes.Buffer
	_ = xml.EscapeText(&b, []byte(s))
	return b.String()
}

// dockerQuote escapes double quotes inside a Dockerfile quoted value
func dockerQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `\"`) + `"`
}

// execForm formats arguments as a Dockerfile exec form JSON array
func execForm(args []string) string {
	quoted := make([]string, 0, len(args))
	for _, a := range args {
		var b bytes.Buffer
		enc := json.NewEncoder(&b)
		enc.SetEscapeHTML(false)
		_ = enc.Encode(a)
		quoted = append(quoted, strings.TrimSuffix(b.String(), "\n"))
	}
	return "[" + strings.Join(quoted, ", ") + "]"
}
