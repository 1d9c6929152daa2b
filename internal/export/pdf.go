/*
 * Copyright (c) 2025 the Chartboard authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package export

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/jung-kurt/gofpdf"

	"chartboard/internal/domain"
	"chartboard/internal/storage"
)

// PDFOptions controls PDF export behavior. Canvas units map 1:1 to points so
// the sheet matches the editor's coordinate space.
//
// Built-in Helvetica keeps text vector without embedding.
type PDFOptions struct {
	Charts   []string // chart ids; empty exports all in workspace order
	FontSize float64  // defaults to 10
}

// ExportPDF writes one page per chart to a single PDF at outPath. Relative
// paths are resolved under the workspace's exports folder.
func ExportPDF(h *storage.Handle, outPath string, opt PDFOptions) (string, error) {
	if h == nil {
		return "", fmt.Errorf("workspace handle is nil")
	}
	charts, err := selectCharts(h, opt.Charts)
	if err != nil {
		return "", err
	}
	if len(charts) == 0 {
		return "", fmt.Errorf("no charts to export")
	}
	fontSize := opt.FontSize
	if fontSize <= 0 {
		fontSize = 10
	}

	if !filepath.IsAbs(outPath) {
		outPath = filepath.Join(h.Root, "exports", outPath)
	}
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return "", fmt.Errorf("ensure out dir: %w", err)
	}

	first := charts[0]
	pdf := gofpdf.NewCustom(&gofpdf.InitType{
		UnitStr:        "pt",
		Size:           gofpdf.SizeType{Wd: first.CanvasWidth, Ht: first.CanvasHeight},
		OrientationStr: "",
	})
	pdf.SetTitle(h.Workspace.Name, false)
	pdf.SetAuthor("Chartboard", false)
	pdf.SetFont("Helvetica", "", fontSize)

	for _, c := range charts {
		pdf.AddPageFormat("", gofpdf.SizeType{Wd: c.CanvasWidth, Ht: c.CanvasHeight})
		for _, b := range c.Buttons {
			setFillColor(pdf, b.Fill)
			pdf.SetDrawColor(0, 0, 0)
			pdf.SetLineWidth(1)
			pdf.Rect(b.X, b.Y, b.Width, b.Height, "FD")
			if b.Name != "" {
				pdf.SetTextColor(0, 0, 0)
				tw := pdf.GetStringWidth(b.Name)
				if tw <= b.Width {
					pdf.Text(b.X+(b.Width-tw)/2, b.Y+b.Height/2+fontSize/3, b.Name)
				}
			}
		}
	}

	f, err := os.Create(outPath)
	if err != nil {
		return "", fmt.Errorf("create pdf: %w", err)
	}
	if err := pdf.Output(f); err != nil {
		_ = f.Close()
		return "", fmt.Errorf("write pdf: %w", err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("close pdf: %w", err)
	}
	return outPath, nil
}

func setFillColor(pdf *gofpdf.Fpdf, c domain.Color) {
	pdf.SetFillColor(int(c.R), int(c.G), int(c.B))
}

func selectCharts(h *storage.Handle, ids []string) ([]*domain.Chart, error) {
	if len(ids) == 0 {
		out := make([]*domain.Chart, 0, len(h.Workspace.Charts))
		for i := range h.Workspace.Charts {
			out = append(out, &h.Workspace.Charts[i])
		}
		return out, nil
	}
	out := make([]*domain.Chart, 0, len(ids))
	for _, id := range ids {
		c := h.Workspace.Chart(id)
		if c == nil {
			return nil, fmt.Errorf("%w: %s", storage.ErrChartNotFound, id)
		}
		out = append(out, c)
	}
	return out, nil
}
