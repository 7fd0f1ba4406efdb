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
	"bytes"
	"fmt"
	"path/filepath"

	"github.com/urfave/cli/v2"

	"github.com/suse/bci-dockerfile-generator/internal/catalog"
	"github.com/suse/bci-dockerfile-generator/internal/cli/cmd"
	"github.com/suse/bci-dockerfile-generator/internal/staging"
	"github.com/suse/bci-dockerfile-generator/pkg/sys/vfs"
)

func TestMatrix(ctx *cli.Context) error {
	args := &cmd.TestMatrixArgs
	s, err := system(ctx)
	if err != nil {
		return err
	}

	s.Logger().Info("Starting test-matrix action with args: %+v", args)

	sel, err := staging.ParseSelector(args.Family)
	if err != nil {
		s.Logger().Error("Input args are invalid")
		return err
	}

	dest, err := vfs.ExpandPath(args.Destination)
	if err != nil {
		return fmt.Errorf("expanding destination %s: %w", args.Destination, err)
	}

	c, err := catalog.Load(s, args.CatalogDir)
	if err != nil {
		s.Logger().Error("failed loading the image catalog: %v", err)
		return err
	}

	doc, err := staging.Generate(s.Logger(), c.Images(), sel)
	if err != nil {
		s.Logger().Error("failed generating the test matrix: %v", err)
		return err
	}

	var buf bytes.Buffer
	if err = doc.Encode(&buf); err != nil {
		return fmt.Errorf("encoding test matrix: %w", err)
	}

	if err = vfs.MkdirAll(s.FS(), filepath.Dir(dest), vfs.DirPerm); err != nil {
		return fmt.Errorf("creating destination directory: %w", err)
	}
	if err = s.FS().WriteFile(dest, buf.Bytes(), vfs.FilePerm); err != nil {
		return fmt.Errorf("writing test matrix %s: %w", dest, err)
	}

	s.Logger().Info("Wrote %d projects of family %s to %s", len(doc.Projects), sel, dest)
	return nil
}
