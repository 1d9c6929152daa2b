/*
 * Copyright (c) 2025 the Chartboard authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package storage

import (
	"os"
	"path/filepath"
	"testing"

	gojsonschema "github.com/xeipuuv/gojsonschema"

	"chartboard/internal/domain"
	"chartboard/internal/ranges"
)

func TestManifestConformsToSchema(t *testing.T) {
	root := t.TempDir()
	h, err := Init(root, domain.Workspace{
		Name:   "Schema Test",
		Ranges: []domain.RangeRef{{ID: "R1", Name: "Sales"}},
	})
	if err != nil {
		t.Fatalf("Init error: %v", err)
	}
	c, err := AddChart(h, "Overview", 800, 500)
	if err != nil {
		t.Fatalf("AddChart error: %v", err)
	}
	reg := ranges.NewStatic(h.Workspace.Ranges)
	if _, err := AddButton(h, c.ID, reg); err != nil {
		t.Fatalf("AddButton error: %v", err)
	}
	if err := Save(h); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	data, err := os.ReadFile(h.ManifestPath)
	if err != nil {
		t.Fatalf("read manifest: %v", err)
	}

	schemaPath := filepath.Join("..", "..", "docs", "chartboard.schema.json")
	schemaBytes, err := os.ReadFile(schemaPath)
	if err != nil {
		t.Fatalf("read schema: %v", err)
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(schemaBytes),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		t.Fatalf("schema validate error: %v", err)
	}
	if !result.Valid() {
		for _, e := range result.Errors() {
			t.Logf("schema error: %s", e)
		}
		t.Fatalf("manifest does not conform to schema")
	}
}
