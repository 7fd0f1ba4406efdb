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

package cmd

import (
	"fmt"
	"strings"

	"github.com/urfave/cli/v2"

	"github.com/suse/bci-dockerfile-generator/internal/staging"
)

type TestMatrixFlags struct {
	Family      string
	Destination string
	CatalogDir  string
}

var TestMatrixArgs TestMatrixFlags

func NewTestMatrixCommand(appName string, action func(*cli.Context) error) *cli.Command {
	return &cli.Command{
		Name:      "test-matrix",
		Usage:     "Write the openQA test matrix of a container family",
		UsageText: fmt.Sprintf("%s test-matrix --ctr-family FAMILY --destination FILE", appName),
		Action:    action,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "ctr-family",
				Aliases:     []string{"f"},
				Usage:       fmt.Sprintf("Container family to test, one of: %s", strings.Join(staging.SelectorChoices(), ", ")),
				Required:    true,
				Destination: &TestMatrixArgs.Family,
				Action: func(_ *cli.Context, family string) error {
					_, err := staging.ParseSelector(family)
					return err
				},
			},
			&cli.StringFlag{
				Name:        "destination",
				Aliases:     []string{"d"},
				Usage:       "File to which the yaml will be written",
				Required:    true,
				Destination: &TestMatrixArgs.Destination,
			},
			&cli.StringFlag{
				Name:        "catalog",
				Aliases:     []string{"c"},
				Usage:       "Directory holding the image catalog files",
				Value:       DefaultCatalogDir,
				Destination: &TestMatrixArgs.CatalogDir,
			},
		},
	}
}
