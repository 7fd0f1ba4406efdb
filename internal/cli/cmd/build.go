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

	"github.com/urfave/cli/v2"
)

type BuildFlags struct {
	CatalogDir string
	OutputDir  string
	Images     cli.StringSlice
	OsVersion  string
}

var BuildArgs BuildFlags

func NewBuildCommand(appName string, action func(*cli.Context) error) *cli.Command {
	return &cli.Command{
		Name:      "build",
		Usage:     "Render the build descriptions of the catalog images",
		UsageText: fmt.Sprintf("%s build [OPTIONS]", appName),
		Action:    action,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "catalog",
				Aliases:     []string{"c"},
				Usage:       "Directory holding the image catalog files",
				Value:       DefaultCatalogDir,
				Destination: &BuildArgs.CatalogDir,
			},
			&cli.StringFlag{
				Name:        "output",
				Aliases:     []string{"o"},
				Usage:       "Directory the package directories are written to",
				Required:    true,
				Destination: &BuildArgs.OutputDir,
			},
			&cli.StringSliceFlag{
				Name:        "image",
				Aliases:     []string{"i"},
				Usage:       "Only render the images with the given uid, can be repeated using the same flag form (-i a -i b)",
				Destination: &BuildArgs.Images,
			},
			&cli.StringFlag{
				Name:        "os-version",
				Usage:       "Only render the images of the given OS version (3, 4, 5, 6 or tumbleweed)",
				Destination: &BuildArgs.OsVersion,
			},
		},
	}
}
