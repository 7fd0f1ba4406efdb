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

package staging

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/suse/bci-dockerfile-generator/internal/image"
)

var ErrInvalidSelector = errors.New("invalid container family")

type Family int

const (
	NoFamily Family = iota
	Application
	Language
)

func (f Family) String() string {
	switch f {
	case Application:
		return "app"
	case Language:
		return "lang"
	default:
		return ""
	}
}

// Selector picks the images of a test matrix: either the OS images of a
// single service pack or a whole container family
type Selector struct {
	OsVersion image.OsVersion
	Family    Family
}

func (s Selector) String() string {
	if s.Family != NoFamily {
		return s.Family.String()
	}
	return s.OsVersion.String()
}

// SelectorChoices lists every token accepted by ParseSelector
func SelectorChoices() []string {
	choices := []string{Application.String(), Language.String()}
	for _, v := range image.SLE15Versions() {
		choices = append(choices, v.String())
	}
	return choices
}

func ParseSelector(token string) (Selector, error) {
	switch token {
	case Application.String():
		return Selector{Family: Application}, nil
	case Language.String():
		return Selector{Family: Language}, nil
	}

	for _, v := range image.SLE15Versions() {
		if token == v.String() {
			return Selector{OsVersion: v}, nil
		}
	}

	return Selector{}, fmt.Errorf("%w %q, expected one of: %s", ErrInvalidSelector, token, strings.Join(SelectorChoices(), ", "))
}

// Match reports whether the image belongs to the selected test matrix
func (s Selector) Match(d *image.Descriptor) bool {
	if !slices.Contains(image.SLE15Versions(), d.OsVersion) {
		return false
	}

	switch s.Family {
	case Application:
		return d.Kind.IsApplicationStack()
	case Language:
		return d.Kind.IsDevelopment() && !d.Kind.IsApplicationStack()
	default:
		return d.OsVersion == s.OsVersion && d.Kind.IsOS()
	}
}
