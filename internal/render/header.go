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
	"fmt"
	"strings"
)

const infoHeaderFormat = `Copyright (c) %d SUSE LLC

All modifications and additions to the file contributed by third parties
remain the property of their copyright owners, unless otherwise agreed
upon.

The content of THIS FILE IS AUTOGENERATED and should not be manually modified.
It is maintained by the BCI team and generated by
https://github.com/SUSE/BCI-dockerfile-generator

Please submit bugfixes or comments via https://bugs.opensuse.org/
You can contact the BCI team via https://github.com/SUSE/bci/discussions`

// Header is the generated-file warning placed on top of every artifact. It
// is computed once per run and shared by all renders.
type Header struct {
	year int
	text string
}

func NewHeader(year int) Header {
	return Header{year: year, text: fmt.Sprintf(infoHeaderFormat, year)}
}

func (h Header) Year() int {
	return h.year
}

func (h Header) Lines() []string {
	return strings.Split(h.text, "\n")
}

// Commented prefixes every non blank line with the given comment marker
func (h Header) Commented(marker string) []string {
	lines := h.Lines()
	for i, l := range lines {
		if l != "" {
			lines[i] = marker + l
		}
	}
	return lines
}
