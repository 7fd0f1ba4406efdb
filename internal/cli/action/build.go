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

package action

import (
	"fmt"
	"slices"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/suse/bci-dockerfile-generator/internal/catalog"
	"github.com/suse/bci-dockerfile-generator/internal/cli/cmd"
	"github.com/suse/bci-dockerfile-generator/internal/image"
	"github.com/suse/bci-dockerfile-generator/internal/render"
	"github.com/suse/bci-dockerfile-generator/pkg/sys"
)

func Build(ctx *cli.Context) error {
	args := &cmd.BuildArgs
	s, err := system(ctx)
	if err != nil {
		return err
	}

	s.Logger().Info("Starting build action with args: %+v", args)

	var osVersion image.OsVersion
	if args.OsVersion != "" {
		osVersion, err = image.ParseOsVersion(args.OsVersion)
		if err != nil {
			s.Logger().Error("Input args are invalid")
			return err
		}
	}

	c, err := catalog.Load(s, args.CatalogDir)
	if err != nil {
		s.Logger().Error("failed loading the image catalog: %v", err)
		return err
	}
	c.Describe(s.Logger())

	images, err := selectImages(c, args.Images.Value(), osVersion)
	if err != nil {
		s.Logger().Error("failed selecting images: %v", err)
		return err
	}

	renderer := render.New(render.NewHeader(time.Now().Year()))
	if err = renderImages(s, renderer, args.OutputDir, images); err != nil {
		s.Logger().Error("build failed: %v", err)
		return err
	}

	s.Logger().Info("Rendered %d images into %s", len(images), args.OutputDir)
	return nil
}

func selectImages(c *catalog.Catalog, uids []string, osVersion image.OsVersion) ([]*image.Descriptor, error) {
	for _, uid := range uids {
		if len(c.Find(uid)) == 0 {
			return nil, fmt.Errorf("image %s not found in catalog", uid)
		}
	}

	images := c.Select(func(d *image.Descriptor) bool {
		if len(uids) > 0 && !slices.Contains(uids, d.UID()) {
			return false
		}
		return osVersion == 0 || d.OsVersion == osVersion
	})
	if len(images) == 0 {
		return nil, fmt.Errorf("no image matches the selection")
	}
	return images, nil
}

func renderImages(s *sys.System, r *render.Renderer, outputDir string, images []*image.Descriptor) error {
	for _, d := range images {
		artifacts, err := r.Artifacts(d)
		if err != nil {
			return err
		}

		dir, err := render.WritePackage(s.FS(), outputDir, d, artifacts)
		if err != nil {
			return err
		}
		s.Logger().Debug("Wrote %d files of %s (%s) to %s", len(artifacts), d.UID(), d.OsVersion.PrettyPrint(), dir)
	}
	return nil
}
