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
	"github.com/urfave/cli/v2"

	"github.com/suse/bci-dockerfile-generator/pkg/log"
	"github.com/suse/bci-dockerfile-generator/pkg/sys"
)

const Usage = "Generate build descriptions and test matrices of the SUSE Base Container Images"

// DefaultCatalogDir is where the image catalog is looked up unless told otherwise
const DefaultCatalogDir = "catalog"

func GlobalFlags() []cli.Flag {
	return []cli.Flag{
		&cli.BoolFlag{
			Name:  "debug",
			Usage: "Set logging at debug level",
		},
	}
}

func Setup(ctx *cli.Context) error {
	s, err := sys.NewSystem(sys.WithLogger(log.New(log.WithDebug(ctx.Bool("debug")))))
	if err != nil {
		return err
	}

	if ctx.App.Metadata == nil {
		ctx.App.Metadata = map[string]any{}
	}
	ctx.App.Metadata["system"] = s
	return nil
}
