/*
 * Copyright (c) 2025 the Chartboard authors.
 * This file is licensed to you under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with the License.  You may obtain a copy of the License at
 *   http://www.apache.org/licenses/LICENSE-2.0
 * Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on an
 * "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.  See the License for the specific language governing permissions and limitations under the License.
 */

package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"chartboard/internal/crash"
	"chartboard/internal/domain"
	"chartboard/internal/export"
	applog "chartboard/internal/log"
	"chartboard/internal/storage"
	"chartboard/internal/ui"
	"chartboard/internal/version"
)

func usage() {
	fmt.Println("Chartboard — interactive chart editor")
	fmt.Printf("Version: %s\n", version.String())
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  chartboard version|-v|--version          Show version")
	fmt.Println("  chartboard init <dir> <name>             Create a new workspace at <dir> with name <name>")
	fmt.Println("  chartboard open <dir>                    Open workspace at <dir> and print summary")
	fmt.Println("  chartboard save <dir>                    Save workspace at <dir> (creates backup)")
	fmt.Println("  chartboard search <dir> <query>          Full-text search over charts and buttons")
	fmt.Println("  chartboard export-png <dir>              Export every chart as a PNG under exports/")
	fmt.Println("  chartboard export-pdf <dir>              Export all charts to exports/charts.pdf")
	fmt.Println("  chartboard ui [<dir>]                    Launch desktop UI (build with -tags fyne for full UI)")
}

func main() {
	// initialize structured logging using environment defaults
	applog.Init(applog.FromEnv())
	l := applog.WithComponent("cli")
	var h *storage.Handle
	defer func() { crash.Recover(h) }()

	args := os.Args
	l.Debug("start", slog.Int("args", len(args)))
	if len(args) > 1 {
		switch args[1] {
		case "version", "--version", "-v":
			fmt.Println("Chartboard — interactive chart editor")
			fmt.Println(version.String())
			return
		case "init":
			if len(args) < 4 {
				fmt.Println("init requires <dir> and <name>")
				usage()
				os.Exit(2)
			}
			abs, _ := filepath.Abs(args[2])
			name := args[3]
			l.Info("init workspace", slog.String("root", abs), slog.String("name", name))
			nh, err := storage.Init(abs, domain.Workspace{Name: name})
			if err != nil {
				l.Error("init failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			h = nh
			fmt.Println("Created workspace at", abs)
			return
		case "open":
			if len(args) < 3 {
				fmt.Println("open requires <dir>")
				usage()
				os.Exit(2)
			}
			abs, _ := filepath.Abs(args[2])
			l.Info("open workspace", slog.String("root", abs))
			nh, err := storage.Open(abs)
			if err != nil {
				l.Error("open failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			h = nh
			fmt.Printf("Opened workspace: %s\n", h.Workspace.Name)
			fmt.Printf("Charts: %d\n", len(h.Workspace.Charts))
			fmt.Printf("Ranges: %d\n", len(h.Workspace.Ranges))
			fmt.Println("Root:", h.Root)
			return
		case "save":
			if len(args) < 3 {
				fmt.Println("save requires <dir>")
				usage()
				os.Exit(2)
			}
			abs, _ := filepath.Abs(args[2])
			l.Info("save workspace", slog.String("root", abs))
			nh, err := storage.Open(abs)
			if err != nil {
				l.Error("open before save failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			h = nh
			if err := storage.Save(h); err != nil {
				l.Error("save failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			if err := storage.UpdateIndex(context.Background(), h.Root, h.Workspace); err != nil {
				l.Warn("index update failed", slog.Any("err", err))
			}
			fmt.Println("Saved workspace and created a backup of the previous manifest (if any).")
			return
		case "search":
			if len(args) < 4 {
				fmt.Println("search requires <dir> and <query>")
				usage()
				os.Exit(2)
			}
			abs, _ := filepath.Abs(args[2])
			res, err := storage.Search(context.Background(), abs, storage.SearchQuery{Text: args[3]})
			if err != nil {
				l.Error("search failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			for _, r := range res {
				fmt.Printf("%-8s chart=%s ref=%s %s\n", r.Type, r.ChartID, r.RefID, r.Snippet)
			}
			fmt.Printf("%d match(es)\n", len(res))
			return
		case "export-png":
			if len(args) < 3 {
				fmt.Println("export-png requires <dir>")
				usage()
				os.Exit(2)
			}
			abs, _ := filepath.Abs(args[2])
			nh, err := storage.Open(abs)
			if err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			h = nh
			paths, err := export.ExportAllPNG(h, "", export.PNGOptions{})
			if err != nil {
				l.Error("png export failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			for _, p := range paths {
				fmt.Println("Wrote", p)
			}
			return
		case "export-pdf":
			if len(args) < 3 {
				fmt.Println("export-pdf requires <dir>")
				usage()
				os.Exit(2)
			}
			abs, _ := filepath.Abs(args[2])
			nh, err := storage.Open(abs)
			if err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			h = nh
			path, err := export.ExportPDF(h, "charts.pdf", export.PDFOptions{})
			if err != nil {
				l.Error("pdf export failed", slog.Any("err", err))
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			fmt.Println("Wrote", path)
			return
		case "ui":
			var dir string
			if len(args) >= 3 {
				dir = args[2]
			}
			if err := ui.Run(dir); err != nil {
				fmt.Println("Error:", err)
				os.Exit(1)
			}
			return
		}
	}

	usage()
}
